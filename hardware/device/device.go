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

// Package device defines the contract between the simulated microcontroller
// and the device under test. The device under test is the firmware that would
// run on the real microcontroller. It sees only the register file and the
// interrupts raised by the peripherals.
//
// Interrupt handlers are called synchronously by the peripheral that raises
// them. A device that is not interested in an interrupt can embed
// NopInterrupts to provide a default, empty, handler.
package device

import "github.com/jetsetilly/acrsim/hardware/registers"

// Interrupts is implemented by types that can service the interrupts raised
// by the simulated peripherals. There is one method for each interrupt source.
type Interrupts interface {
	Timer0CompareA()
	Timer0CompareB()
	Timer0Overflow()

	Timer1CompareA()
	Timer1CompareB()
	Timer1Overflow()
	Timer1Capture()

	Timer2CompareA()
	Timer2CompareB()
	Timer2Overflow()

	// pin change interrupts raised by the bus. PinChange0 follows a read
	// request and PinChange1 follows a write request
	PinChange0()
	PinChange1()
}

// Device is the device under test.
type Device interface {
	Interrupts

	// Setup is called once before the first Loop(). The register file is
	// the one used by the rest of the simulation and should be retained by
	// the device.
	Setup(regs *registers.File)

	// Loop is called once per simulated clock tick, after the timers have
	// been stepped.
	Loop()
}

// NopInterrupts implements the Interrupts interface with empty handlers.
type NopInterrupts struct{}

func (NopInterrupts) Timer0CompareA() {}
func (NopInterrupts) Timer0CompareB() {}
func (NopInterrupts) Timer0Overflow() {}
func (NopInterrupts) Timer1CompareA() {}
func (NopInterrupts) Timer1CompareB() {}
func (NopInterrupts) Timer1Overflow() {}
func (NopInterrupts) Timer1Capture()  {}
func (NopInterrupts) Timer2CompareA() {}
func (NopInterrupts) Timer2CompareB() {}
func (NopInterrupts) Timer2Overflow() {}
func (NopInterrupts) PinChange0()     {}
func (NopInterrupts) PinChange1()     {}

// Idle is a device that does nothing. Useful for testing the peripherals in
// isolation.
type Idle struct {
	NopInterrupts
	Regs *registers.File
}

// Setup implements the Device interface.
func (d *Idle) Setup(regs *registers.File) {
	d.Regs = regs
}

// Loop implements the Device interface.
func (d *Idle) Loop() {}
