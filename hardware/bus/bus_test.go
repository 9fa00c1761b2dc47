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

package bus_test

import (
	"testing"

	"github.com/jetsetilly/acrsim/hardware/bus"
	"github.com/jetsetilly/acrsim/hardware/device"
	"github.com/jetsetilly/acrsim/hardware/registers"
	"github.com/jetsetilly/acrsim/test"
)

// records pin change interrupts and echoes the selected register
type echo struct {
	device.NopInterrupts
	regs   *registers.File
	reads  int
	writes int
	sel    []uint8
	data   []uint8
}

func (e *echo) PinChange0() {
	e.reads++
	e.sel = append(e.sel, e.regs.PINC&registers.BusSelect)
	e.regs.PORTD = 0x40 | e.regs.PINC&registers.BusSelect
}

func (e *echo) PinChange1() {
	e.writes++
	e.sel = append(e.sel, e.regs.PINC&registers.BusSelect)
	e.data = append(e.data, e.regs.PIND)
}

func TestRead(t *testing.T) {
	var regs registers.File
	dev := &echo{regs: &regs}
	b := bus.NewBus(&regs, dev)

	regs.PINC = 0xf0
	test.ExpectEquality(t, b.Read(bus.Data), uint8(0x41))
	test.ExpectEquality(t, b.Read(bus.Control), uint8(0x40))
	test.ExpectEquality(t, dev.reads, 2)
	test.ExpectEquality(t, dev.writes, 0)
	test.ExpectEquality(t, regs.PINB&registers.ReadStrobe, registers.ReadStrobe)

	// other bits in PINC are preserved
	test.ExpectEquality(t, regs.PINC, uint8(0xf0))
}

func TestWrite(t *testing.T) {
	var regs registers.File
	dev := &echo{regs: &regs}
	b := bus.NewBus(&regs, dev)

	b.Write(bus.Control, 0xa0)
	b.Write(bus.Data, 0x55)
	test.ExpectEquality(t, dev.writes, 2)
	test.ExpectEquality(t, dev.reads, 0)
	test.ExpectEquality(t, len(dev.data), 2)
	test.ExpectEquality(t, dev.data[0], uint8(0xa0))
	test.ExpectEquality(t, dev.data[1], uint8(0x55))
	test.ExpectEquality(t, dev.sel[0], uint8(0))
	test.ExpectEquality(t, dev.sel[1], uint8(1))

	// write strobe is never cleared by the bus
	test.ExpectEquality(t, regs.PINC&registers.WriteStrobe, registers.WriteStrobe)
	test.ExpectEquality(t, regs.PIND, uint8(0x55))
}

func TestSelectorString(t *testing.T) {
	test.ExpectEquality(t, bus.Control.String(), "control")
	test.ExpectEquality(t, bus.Data.String(), "data")
	test.ExpectEquality(t, bus.Selector(3).String(), "register 3")
}
