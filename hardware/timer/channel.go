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

package timer

import (
	"fmt"

	"github.com/jetsetilly/acrsim/hardware/registers"
)

// Width is the set of types that can be used as a counter.
type Width interface {
	~uint8 | ~uint16
}

// Prescaler tables, indexed by the clock select bits of the TCCRnB register.
// A value of zero means the timer is stopped.
var (
	Prescale01 = [8]int{0, 1, 8, 64, 256, 1024, 0, 0}
	Prescale2  = [8]int{0, 1, 8, 32, 64, 128, 256, 1024}
)

// Channel is a single timer/counter. All fields that refer to registers must
// be set before Step() is called. Handlers can be nil.
type Channel[T Width] struct {
	Label string

	// clock select bits. also the WGMn2 bit for channels that support clear
	// on compare match
	Control *uint8

	Counter  *T
	CompareA *T
	CompareB *T

	// TIMSKn and TIFRn
	Mask  *uint8
	Flags *uint8

	// the prescaler table for the channel and the clock scale. the
	// effective divisor is Prescale[n]/Scale
	Prescale [8]int
	Scale    int

	// waveform generation bits in the TCCRnA register. nil if the channel
	// does not support clear on compare match
	Waveform *uint8

	OnCompareA func()
	OnCompareB func()
	OnOverflow func()
}

// Divisor returns the number of ticks between each count. A value of zero
// means the channel is stopped.
func (ch *Channel[T]) Divisor() int {
	if ch.Scale <= 0 {
		return 0
	}
	return ch.Prescale[*ch.Control&registers.ClockSelect] / ch.Scale
}

// the channel is in clear on compare match mode
func (ch *Channel[T]) ctc() bool {
	if ch.Waveform == nil {
		return false
	}
	return *ch.Waveform&(registers.WGM21|registers.WGM20) == registers.WGM21 &&
		*ch.Control&registers.WGM22 == 0
}

// Step the channel for the clock tick. Returns true if the counter matched
// compare register A on this tick.
func (ch *Channel[T]) Step(clock uint32) bool {
	d := ch.Divisor()
	if d <= 0 || clock&uint32(d-1) != 0 {
		return false
	}

	var matchA bool

	*ch.Counter++
	if *ch.Counter == 0 {
		*ch.Flags |= registers.TOV
	}
	if *ch.Counter == *ch.CompareA {
		*ch.Flags |= registers.OCFA
		matchA = true
	}
	if *ch.Counter == *ch.CompareB {
		*ch.Flags |= registers.OCFB
	}

	// int conversion so that a compare value of the maximum counter value
	// doesn't overflow
	if ch.ctc() && int(*ch.Counter) >= int(*ch.CompareA)+1 {
		*ch.Counter = 0
	}

	ch.dispatch(registers.OCFA, registers.OCIEA, ch.OnCompareA)
	ch.dispatch(registers.OCFB, registers.OCIEB, ch.OnCompareB)
	ch.dispatch(registers.TOV, registers.TOIE, ch.OnOverflow)

	return matchA
}

// call handler if flag is set and enabled. the flag is cleared only if the
// handler has been called
func (ch *Channel[T]) dispatch(flag uint8, enable uint8, handler func()) {
	if *ch.Flags&flag == 0 || *ch.Mask&enable == 0 {
		return
	}
	if handler != nil {
		handler()
	}
	*ch.Flags &^= flag
}

func (ch *Channel[T]) String() string {
	return fmt.Sprintf("%s: cnt=%d a=%d b=%d div=%d flags=%03b", ch.Label,
		*ch.Counter, *ch.CompareA, *ch.CompareB, ch.Divisor(), *ch.Flags&(registers.TOV|registers.OCFA|registers.OCFB))
}
