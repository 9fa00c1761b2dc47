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
	"github.com/jetsetilly/acrsim/hardware/registers"
)

// Capture is the input capture unit of Timer1. It converts a level on the
// input capture pin into capture events.
type Capture struct {
	regs *registers.File

	// minimum number of ticks between accepted transitions when noise
	// cancellation is enabled
	Window uint32

	OnCapture func()

	level    bool
	lastTick uint32

	// false until the first transition has been accepted. the first
	// transition has no predecessor and is never subject to noise
	// cancellation
	accepted bool
}

// NewCapture is the preferred method of initialisation for the Capture type.
func NewCapture(regs *registers.File, window uint32) *Capture {
	return &Capture{
		regs:   regs,
		Window: window,
	}
}

// Level returns the most recently accepted input level.
func (c *Capture) Level() bool {
	return c.level
}

// FeedLevel presents a new level on the input capture pin at the tick.
func (c *Capture) FeedLevel(level bool, tick uint32) {
	if level == c.level {
		return
	}

	if c.accepted && c.regs.TCCR1B&registers.ICNC1 == registers.ICNC1 {
		if tick-c.lastTick < c.Window {
			return
		}
	}

	c.regs.ICR1 = c.regs.TCNT1

	rising := c.regs.TCCR1B&registers.ICES1 == registers.ICES1
	if rising == level && c.OnCapture != nil {
		c.OnCapture()
	}

	c.level = level
	c.lastTick = tick
	c.accepted = true
}
