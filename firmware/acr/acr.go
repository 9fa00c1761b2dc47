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

package acr

import (
	"github.com/jetsetilly/acrsim/hardware/device"
	"github.com/jetsetilly/acrsim/hardware/registers"
)

// Status register bits.
const (
	StatusEmpty   uint8 = 0x01
	StatusFraming uint8 = 0x08
	StatusTxFull  uint8 = 0x80
)

// DefaultMinGoodPulses is the number of consecutive mark half periods that
// must be seen before the carrier is considered present.
const DefaultMinGoodPulses = 100

// size of the receive buffer
const fifoSize = 64

// Firmware is the reference cassette interface firmware.
type Firmware struct {
	device.NopInterrupts

	regs *registers.File

	format  Format
	control uint8

	// configuration jumpers. sampled once by Setup()
	legacy bool
	skew   bool

	minGoodPulses int

	tx transmitter
	rx receiver

	// received bytes waiting to be read by the host
	fifo     [fifoSize]uint8
	fifoHead int
	fifoLen  int

	// latched until the status register is next read
	framing bool

	// number of bytes dropped because the receive buffer was full
	Overruns int
}

// NewFirmware is the preferred method of initialisation for the Firmware
// type.
func NewFirmware() *Firmware {
	fw := &Firmware{
		format:        MITS,
		minGoodPulses: DefaultMinGoodPulses,
	}
	fw.tx.fw = fw
	fw.rx.fw = fw
	return fw
}

// SetMinGoodPulses changes the number of mark half periods required before
// the carrier is detected. Values less than one are ignored.
func (fw *Firmware) SetMinGoodPulses(n int) {
	if n > 0 {
		fw.minGoodPulses = n
	}
}

// Format returns the tape format currently in use.
func (fw *Firmware) Format() Format {
	return fw.format
}

// Carrier returns true if the receiver has detected a carrier.
func (fw *Firmware) Carrier() bool {
	return fw.rx.state != rxNoCarrier
}

// Setup implements the device.Device interface.
func (fw *Firmware) Setup(regs *registers.File) {
	fw.regs = regs

	// jumpers are active low
	fw.legacy = regs.PINB&registers.LegacyMode == 0
	fw.skew = regs.PINC&registers.SkewComp == 0

	// Timer1 counts at 1MHz with input capture noise cancellation. the first
	// edge of interest is a rising edge
	regs.TCCR1A = 0x00
	regs.TCCR1B = registers.ICNC1 | registers.ICES1 | registers.CS11
	regs.TIMSK1 = registers.ICIE

	// Timer2 in CTC mode, matching every 16µs
	regs.TCCR2A = registers.WGM21
	regs.TCCR2B = 0x03
	regs.OCR2A = 3
	regs.TIMSK2 = registers.OCIEA

	regs.DDRB |= registers.LED
	regs.PORTB &^= registers.LED

	fw.setControl(ControlMITS)
}

// Loop implements the device.Device interface.
func (fw *Firmware) Loop() {
	fw.rx.timeout()
}

// Timer2CompareA implements the device.Interrupts interface.
func (fw *Firmware) Timer2CompareA() {
	fw.tx.tick()
}

// Timer1Capture implements the device.Interrupts interface.
func (fw *Firmware) Timer1Capture() {
	fw.regs.TCCR1B ^= registers.ICES1
	fw.rx.edge(fw.regs.ICR1)
}

// PinChange0 implements the device.Interrupts interface. The host is
// requesting a read.
func (fw *Firmware) PinChange0() {
	if fw.regs.PINC&registers.BusSelect == 0 {
		fw.regs.PORTD = fw.status()
		fw.framing = false
		return
	}
	fw.regs.PORTD = fw.pop()
}

// PinChange1 implements the device.Interrupts interface. The host is
// requesting a write.
func (fw *Firmware) PinChange1() {
	if fw.regs.PINC&registers.BusSelect == 0 {
		fw.setControl(fw.regs.PIND)
		return
	}
	fw.tx.hold(fw.regs.PIND)
}

func (fw *Firmware) setControl(v uint8) {
	fw.control = v
	if fw.legacy {
		fw.format = MITS
	} else {
		fw.format = FormatFromControl(v)
	}
	fw.rx.reset()
	fw.fifoHead = 0
	fw.fifoLen = 0
	fw.framing = false
}

func (fw *Firmware) status() uint8 {
	var s uint8
	if fw.fifoLen == 0 {
		s |= StatusEmpty
	}
	if fw.framing {
		s |= StatusFraming
	}
	if fw.tx.full {
		s |= StatusTxFull
	}
	return s
}

func (fw *Firmware) push(v uint8) {
	if fw.fifoLen == fifoSize {
		fw.Overruns++
		return
	}
	fw.fifo[(fw.fifoHead+fw.fifoLen)%fifoSize] = v
	fw.fifoLen++
}

func (fw *Firmware) pop() uint8 {
	if fw.fifoLen == 0 {
		return 0
	}
	v := fw.fifo[fw.fifoHead]
	fw.fifoHead = (fw.fifoHead + 1) % fifoSize
	fw.fifoLen--
	return v
}

func (fw *Firmware) setLED(on bool) {
	if on {
		fw.regs.PORTB |= registers.LED
	} else {
		fw.regs.PORTB &^= registers.LED
	}
}
