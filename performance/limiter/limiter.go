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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with:
//
//	lim := limiter.NewLimiter(100)
//	defer lim.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		mcu.RunUntil(mcu.Clock + ticksPerSlice)
//	}
package limiter

import (
	"time"
)

// this is a really rough attempt at rate limiting. probably only any good if
// base performance of the machine is well above the required rate.

// Limiter will trigger rate times per second.
type Limiter struct {
	rate     int
	interval time.Duration

	tick chan bool
	quit chan bool
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The rate is the number of times per second that Wait() will return.
func NewLimiter(rate int) *Limiter {
	lim := &Limiter{
		tick: make(chan bool),
		quit: make(chan bool),
	}
	lim.setLimit(rate)

	// run ticker concurrently
	go func() {
		adjusted := lim.interval
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}

			time.Sleep(adjusted)
			nt := time.Now()
			adjusted -= nt.Sub(t) - lim.interval
			t = nt
		}
	}()

	return lim
}

func (lim *Limiter) setLimit(rate int) {
	if rate < 1 {
		rate = 1
	}
	lim.rate = rate
	lim.interval = time.Second / time.Duration(rate)
}

// Rate returns the number of times per second that Wait() returns.
func (lim *Limiter) Rate() int {
	return lim.rate
}

// Wait will block until trigger.
func (lim *Limiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if the trigger has already happened and false if
// it is still yet to happen.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *Limiter) Stop() {
	close(lim.quit)
}
