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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/acrsim/environment"
	"github.com/jetsetilly/acrsim/hardware/bus"
	"github.com/jetsetilly/acrsim/hardware/clocks"
	"github.com/jetsetilly/acrsim/hardware/device"
	"github.com/jetsetilly/acrsim/hardware/registers"
	"github.com/jetsetilly/acrsim/hardware/timer"
)

// MCU is the main container for the simulated components of the
// microcontroller.
type MCU struct {
	Env *environment.Environment

	Regs   *registers.File
	Device device.Device

	Timer0 *timer.Channel[uint8]
	Timer1 *timer.Channel[uint16]
	Timer2 *timer.Channel[uint8]

	Capture *timer.Capture
	Output  *timer.Output

	Bus *bus.Bus

	// the number of ticks since the simulation began
	Clock uint32

	frequency uint32

	// added to the time calculated from the clock. used when the input
	// doesn't start at time zero
	timeOffset float64

	// the most recent state of the LED pin
	led bool
}

// NewMCU creates a new MCU and connects the device under test. The device's
// Setup() function is called before NewMCU() returns.
func NewMCU(env *environment.Environment, dev device.Device) (*MCU, error) {
	if env == nil {
		return nil, fmt.Errorf("hardware: environment required")
	}
	if dev == nil {
		return nil, fmt.Errorf("hardware: device required")
	}

	scale := env.Prefs.ClockScale.Value()

	mcu := &MCU{
		Env:       env,
		Regs:      &registers.File{},
		Device:    dev,
		frequency: clocks.Frequency(scale),
	}

	mcu.Timer0 = &timer.Channel[uint8]{
		Label:      "Timer0",
		Control:    &mcu.Regs.TCCR0B,
		Counter:    &mcu.Regs.TCNT0,
		CompareA:   &mcu.Regs.OCR0A,
		CompareB:   &mcu.Regs.OCR0B,
		Mask:       &mcu.Regs.TIMSK0,
		Flags:      &mcu.Regs.TIFR0,
		Prescale:   timer.Prescale01,
		Scale:      scale,
		OnCompareA: dev.Timer0CompareA,
		OnCompareB: dev.Timer0CompareB,
		OnOverflow: dev.Timer0Overflow,
	}

	mcu.Timer1 = &timer.Channel[uint16]{
		Label:      "Timer1",
		Control:    &mcu.Regs.TCCR1B,
		Counter:    &mcu.Regs.TCNT1,
		CompareA:   &mcu.Regs.OCR1A,
		CompareB:   &mcu.Regs.OCR1B,
		Mask:       &mcu.Regs.TIMSK1,
		Flags:      &mcu.Regs.TIFR1,
		Prescale:   timer.Prescale01,
		Scale:      scale,
		OnCompareA: dev.Timer1CompareA,
		OnCompareB: dev.Timer1CompareB,
		OnOverflow: dev.Timer1Overflow,
	}

	mcu.Timer2 = &timer.Channel[uint8]{
		Label:      "Timer2",
		Control:    &mcu.Regs.TCCR2B,
		Counter:    &mcu.Regs.TCNT2,
		CompareA:   &mcu.Regs.OCR2A,
		CompareB:   &mcu.Regs.OCR2B,
		Mask:       &mcu.Regs.TIMSK2,
		Flags:      &mcu.Regs.TIFR2,
		Prescale:   timer.Prescale2,
		Scale:      scale,
		Waveform:   &mcu.Regs.TCCR2A,
		OnCompareA: dev.Timer2CompareA,
		OnCompareB: dev.Timer2CompareB,
		OnOverflow: dev.Timer2Overflow,
	}

	mcu.Capture = timer.NewCapture(mcu.Regs, uint32(env.Prefs.NoiseCancelWindow.Value()))
	mcu.Capture.OnCapture = dev.Timer1Capture

	mcu.Output = timer.NewOutput(mcu.Regs)
	mcu.Bus = bus.NewBus(mcu.Regs, dev)

	// hardware configuration pins are active low
	if env.Prefs.LegacyMode.Value() {
		mcu.Regs.PINB &^= registers.LegacyMode
	} else {
		mcu.Regs.PINB |= registers.LegacyMode
	}
	if env.Prefs.SkewCompensation.Value() {
		mcu.Regs.PINC &^= registers.SkewComp
	} else {
		mcu.Regs.PINC |= registers.SkewComp
	}

	dev.Setup(mcu.Regs)

	return mcu, nil
}

func (mcu *MCU) String() string {
	return fmt.Sprintf("clk=%d t=%.6f out=%v\n%s\n%s\n%s",
		mcu.Clock, mcu.Time(), mcu.Output.Level,
		mcu.Timer0, mcu.Timer1, mcu.Timer2)
}

// Frequency returns the frequency of the simulated clock in Hz.
func (mcu *MCU) Frequency() uint32 {
	return mcu.frequency
}

// Time returns the simulated time in seconds.
func (mcu *MCU) Time() float64 {
	return mcu.timeOffset + clocks.Seconds(mcu.Clock, mcu.frequency)
}

// SetTimeOffset sets the time at which the clock started. The offset is added
// to the value returned by Time().
func (mcu *MCU) SetTimeOffset(offset float64) {
	mcu.timeOffset = offset
}

// FeedLevel presents a level to the input capture pin of Timer1.
func (mcu *MCU) FeedLevel(level bool) {
	mcu.Capture.FeedLevel(level, mcu.Clock)
}

// OutputLevel returns the level of the Timer2 compare output pin.
func (mcu *MCU) OutputLevel() bool {
	return mcu.Output.Level
}

// LED returns the state of the carrier detect LED.
func (mcu *MCU) LED() bool {
	return mcu.Regs.PORTB&registers.LED == registers.LED
}
