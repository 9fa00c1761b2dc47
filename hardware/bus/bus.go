// This file is part of ACRSim.
//
// ACRSim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ACRSim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ACRSim.  If not, see <https://www.gnu.org/licenses/>.
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

// Package bus implements the register-mapped byte bus between the host
// computer and the device under test. The bus has two registers, selected by
// bit 0 of PINC. Every transaction raises exactly one pin change interrupt
// on the device.
//
// The strobe bits are set by each transaction but are never cleared by the
// bus. It is the responsibility of the device to clear them if it needs to.
package bus

import (
	"fmt"

	"github.com/jetsetilly/acrsim/hardware/device"
	"github.com/jetsetilly/acrsim/hardware/registers"
)

// Selector chooses the register on the bus.
type Selector uint8

// List of valid Selector values.
const (
	Control Selector = 0 // control when writing, status when reading
	Data    Selector = 1
)

func (sel Selector) String() string {
	switch sel {
	case Control:
		return "control"
	case Data:
		return "data"
	}
	return fmt.Sprintf("register %d", uint8(sel))
}

// Bus connects the host side of the interface to the device under test.
type Bus struct {
	regs *registers.File
	dev  device.Interrupts
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus(regs *registers.File, dev device.Interrupts) *Bus {
	return &Bus{
		regs: regs,
		dev:  dev,
	}
}

// Read the selected register. The device places the value on PORTD in
// response to the PinChange0 interrupt.
func (b *Bus) Read(sel Selector) uint8 {
	b.regs.PINC = (b.regs.PINC &^ registers.BusSelect) | (uint8(sel) & registers.BusSelect)
	b.regs.PINB |= registers.ReadStrobe
	b.dev.PinChange0()
	return b.regs.PORTD
}

// Write data to the selected register. The data is placed on PIND and the
// device reads it in response to the PinChange1 interrupt.
func (b *Bus) Write(sel Selector, data uint8) {
	b.regs.PIND = data
	b.regs.PINC = (b.regs.PINC &^ registers.BusSelect) | registers.WriteStrobe | (uint8(sel) & registers.BusSelect)
	b.dev.PinChange1()
}
