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

package timer_test

import (
	"testing"

	"github.com/jetsetilly/acrsim/hardware/registers"
	"github.com/jetsetilly/acrsim/hardware/timer"
	"github.com/jetsetilly/acrsim/test"
)

func TestCaptureNoiseCancel(t *testing.T) {
	var regs registers.File
	capt := timer.NewCapture(&regs, 20)

	var calls int
	capt.OnCapture = func() { calls++ }

	regs.TCCR1B = registers.ICNC1 | registers.ICES1

	// first transition is always accepted
	regs.TCNT1 = 100
	capt.FeedLevel(true, 10)
	test.ExpectEquality(t, calls, 1)
	test.ExpectEquality(t, regs.ICR1, uint16(100))
	test.ExpectEquality(t, capt.Level(), true)

	// too soon
	regs.TCNT1 = 105
	capt.FeedLevel(false, 15)
	test.ExpectEquality(t, regs.ICR1, uint16(100))
	test.ExpectEquality(t, capt.Level(), true)

	// exactly the window. falling edge does not call the handler
	regs.TCNT1 = 120
	capt.FeedLevel(false, 30)
	test.ExpectEquality(t, regs.ICR1, uint16(120))
	test.ExpectEquality(t, calls, 1)
	test.ExpectEquality(t, capt.Level(), false)

	regs.TCNT1 = 139
	capt.FeedLevel(true, 49)
	test.ExpectEquality(t, calls, 1)
	regs.TCNT1 = 140
	capt.FeedLevel(true, 50)
	test.ExpectEquality(t, calls, 2)
	test.ExpectEquality(t, regs.ICR1, uint16(140))

	// no change in level is not a transition
	regs.TCNT1 = 200
	capt.FeedLevel(true, 500)
	test.ExpectEquality(t, regs.ICR1, uint16(140))
}

func TestCaptureEdgeSelect(t *testing.T) {
	var regs registers.File
	capt := timer.NewCapture(&regs, 20)

	var calls int
	capt.OnCapture = func() { calls++ }

	// falling edge with noise cancellation disabled
	regs.TCCR1B = 0
	for tick := uint32(1); tick <= 10; tick++ {
		capt.FeedLevel(tick%2 == 1, tick)
	}
	test.ExpectEquality(t, calls, 5)

	// the handler can change edge between transitions
	calls = 0
	regs.TCCR1B = registers.ICES1
	capt.OnCapture = func() {
		calls++
		regs.TCCR1B ^= registers.ICES1
	}
	for tick := uint32(11); tick <= 20; tick++ {
		capt.FeedLevel(tick%2 == 1, tick)
	}
	test.ExpectEquality(t, calls, 10)
}

func TestOutput(t *testing.T) {
	var regs registers.File
	out := timer.NewOutput(&regs)

	// no match and no forced compare
	regs.TCCR2A = registers.COM2A0
	out.Update(false)
	test.ExpectEquality(t, out.Level, false)

	// toggle
	out.Update(true)
	test.ExpectEquality(t, out.Level, true)
	out.Update(true)
	test.ExpectEquality(t, out.Level, false)

	// forced compare is consumed
	regs.TCCR2B = registers.FOC2A
	out.Update(false)
	test.ExpectEquality(t, out.Level, true)
	test.ExpectEquality(t, regs.TCCR2B&registers.FOC2A, uint8(0))
	out.Update(false)
	test.ExpectEquality(t, out.Level, true)

	// clear and set
	regs.TCCR2A = registers.COM2A1
	out.Update(true)
	test.ExpectEquality(t, out.Level, false)
	regs.TCCR2A = registers.COM2A1 | registers.COM2A0
	out.Update(true)
	test.ExpectEquality(t, out.Level, true)
	out.Update(true)
	test.ExpectEquality(t, out.Level, true)

	// disconnected
	regs.TCCR2A = 0
	out.Update(true)
	test.ExpectEquality(t, out.Level, true)
}
