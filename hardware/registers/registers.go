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

// Package registers defines the register file of the simulated
// microcontroller. Only the registers used by the timer peripherals and the
// three I/O ports are present.
//
// The register file is owned by the MCU type in the hardware package and is
// shared by pointer with the timers, the bus and the device under test. The
// register file has no behaviour of its own.
//
// Bits in each register are referred to by the mask constants in this
// package. For example, testing whether noise cancellation is enabled for
// Timer1 input capture:
//
//	if regs.TCCR1B&registers.ICNC1 == registers.ICNC1 {
//	}
package registers

import (
	"fmt"
	"strings"
)

// File is the register file of the microcontroller.
type File struct {
	// Timer0
	TCCR0A uint8
	TCCR0B uint8
	TCNT0  uint8
	OCR0A  uint8
	OCR0B  uint8
	TIMSK0 uint8
	TIFR0  uint8

	// Timer1. the counter, compare and capture registers are 16 bit
	TCCR1A uint8
	TCCR1B uint8
	TCCR1C uint8
	TCNT1  uint16
	OCR1A  uint16
	OCR1B  uint16
	ICR1   uint16
	TIMSK1 uint8
	TIFR1  uint8

	// Timer2
	TCCR2A uint8
	TCCR2B uint8
	TCNT2  uint8
	OCR2A  uint8
	OCR2B  uint8
	TIMSK2 uint8
	TIFR2  uint8

	// I/O ports
	PINB  uint8
	PINC  uint8
	PIND  uint8
	PORTB uint8
	PORTC uint8
	PORTD uint8
	DDRB  uint8
	DDRC  uint8
	DDRD  uint8
}

// Interrupt flag (TIFRn) bits. The same bits are used by every timer.
const (
	TOV  uint8 = 0x01
	OCFA uint8 = 0x02
	OCFB uint8 = 0x04
	ICF  uint8 = 0x20
)

// Interrupt mask (TIMSKn) bits. The same bits are used by every timer.
const (
	TOIE  uint8 = 0x01
	OCIEA uint8 = 0x02
	OCIEB uint8 = 0x04
	ICIE  uint8 = 0x20
)

// Clock select bits are the lower three bits of TCCR0B, TCCR1B and TCCR2B.
const ClockSelect uint8 = 0x07

// TCCR1B bits.
const (
	ICNC1 uint8 = 0x80
	ICES1 uint8 = 0x40
	WGM13 uint8 = 0x10
	WGM12 uint8 = 0x08
	CS12  uint8 = 0x04
	CS11  uint8 = 0x02
	CS10  uint8 = 0x01
)

// TCCR2A bits.
const (
	COM2A1 uint8 = 0x80
	COM2A0 uint8 = 0x40
	COM2B1 uint8 = 0x20
	COM2B0 uint8 = 0x10
	WGM21  uint8 = 0x02
	WGM20  uint8 = 0x01
)

// TCCR2B bits.
const (
	FOC2A uint8 = 0x80
	FOC2B uint8 = 0x40
	WGM22 uint8 = 0x08
)

// Port bits with a documented meaning on the cassette interface board.
const (
	// PINB
	ReadStrobe uint8 = 0x02
	LegacyMode uint8 = 0x04 // active low

	// PINC
	BusSelect   uint8 = 0x01
	WriteStrobe uint8 = 0x04
	SkewComp    uint8 = 0x20 // active low

	// PORTB
	LED uint8 = 0x10
)

// Register gives named access to a single register in the file. Used when the
// register is chosen at runtime, for example by a scripted device.
type Register struct {
	Name string
	u8   *uint8
	u16  *uint16
}

// Width returns the number of bits in the register.
func (r Register) Width() int {
	if r.u16 != nil {
		return 16
	}
	return 8
}

// Value returns the current value of the register.
func (r Register) Value() uint16 {
	if r.u16 != nil {
		return *r.u16
	}
	return uint16(*r.u8)
}

// Set the value of the register. Values too large for an 8 bit register are
// truncated.
func (r Register) Set(v uint16) {
	if r.u16 != nil {
		*r.u16 = v
		return
	}
	*r.u8 = uint8(v)
}

func (r Register) String() string {
	if r.u16 != nil {
		return fmt.Sprintf("%s=%04x", r.Name, *r.u16)
	}
	return fmt.Sprintf("%s=%02x", r.Name, *r.u8)
}

// Registers returns every register in the file, in a fixed order.
func (f *File) Registers() []Register {
	return []Register{
		{Name: "TCCR0A", u8: &f.TCCR0A},
		{Name: "TCCR0B", u8: &f.TCCR0B},
		{Name: "TCNT0", u8: &f.TCNT0},
		{Name: "OCR0A", u8: &f.OCR0A},
		{Name: "OCR0B", u8: &f.OCR0B},
		{Name: "TIMSK0", u8: &f.TIMSK0},
		{Name: "TIFR0", u8: &f.TIFR0},
		{Name: "TCCR1A", u8: &f.TCCR1A},
		{Name: "TCCR1B", u8: &f.TCCR1B},
		{Name: "TCCR1C", u8: &f.TCCR1C},
		{Name: "TCNT1", u16: &f.TCNT1},
		{Name: "OCR1A", u16: &f.OCR1A},
		{Name: "OCR1B", u16: &f.OCR1B},
		{Name: "ICR1", u16: &f.ICR1},
		{Name: "TIMSK1", u8: &f.TIMSK1},
		{Name: "TIFR1", u8: &f.TIFR1},
		{Name: "TCCR2A", u8: &f.TCCR2A},
		{Name: "TCCR2B", u8: &f.TCCR2B},
		{Name: "TCNT2", u8: &f.TCNT2},
		{Name: "OCR2A", u8: &f.OCR2A},
		{Name: "OCR2B", u8: &f.OCR2B},
		{Name: "TIMSK2", u8: &f.TIMSK2},
		{Name: "TIFR2", u8: &f.TIFR2},
		{Name: "PINB", u8: &f.PINB},
		{Name: "PINC", u8: &f.PINC},
		{Name: "PIND", u8: &f.PIND},
		{Name: "PORTB", u8: &f.PORTB},
		{Name: "PORTC", u8: &f.PORTC},
		{Name: "PORTD", u8: &f.PORTD},
		{Name: "DDRB", u8: &f.DDRB},
		{Name: "DDRC", u8: &f.DDRC},
		{Name: "DDRD", u8: &f.DDRD},
	}
}

// Lookup returns the named register. Names are not case sensitive.
func (f *File) Lookup(name string) (Register, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for _, r := range f.Registers() {
		if r.Name == name {
			return r, true
		}
	}
	return Register{}, false
}

func (f *File) String() string {
	s := strings.Builder{}
	for i, r := range f.Registers() {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(r.String())
	}
	return s.String()
}
