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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/acrsim/hardware"
	"github.com/jetsetilly/acrsim/hardware/bus"
	"github.com/jetsetilly/acrsim/serial"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the time allowed for the simulation to settle before measurement begins
const leadTime = time.Second

// the end of the measurement period is only checked every performanceBrake
// ticks. checking the channel on every tick is relatively expensive
const performanceBrake = 1000

// Check the performance of the simulation. The MCU is run for the specified
// duration and the effective clock rate is written to output.
//
// The output of the device is fed back to its input and the device is given
// data to transmit whenever it is ready. Both halves of a device that
// modulates and demodulates are therefore exercised.
func Check(output io.Writer, profile Profile, mcu *hardware.MCU, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	if dur <= 0 {
		return fmt.Errorf("performance: duration must be positive: %s", duration)
	}

	var numTicks uint64
	var data uint8

	runner := func() error {
		// the timer channel receives false when the lead time has elapsed
		// and true when the measurement period has elapsed
		timerChan := make(chan bool, 2)

		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		brake := 0

		return mcu.Run(func() (bool, error) {
			mcu.FeedLevel(mcu.OutputLevel())
			numTicks++

			brake++
			if brake < performanceBrake {
				return true, nil
			}
			brake = 0

			if !serial.Status(mcu.Bus.Read(bus.Control)).Busy() {
				mcu.Bus.Write(bus.Data, data)
				data++
			}

			select {
			case v := <-timerChan:
				if v {
					return false, timedOut
				}
				// measurement begins
				numTicks = 0
			default:
			}

			return true, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	mhz, accuracy := CalcRate(mcu.Frequency(), numTicks, dur.Seconds())
	fmt.Fprintf(output, "%.2f MHz (%d ticks in %.2f seconds) %.1f%%\n", mhz, numTicks, dur.Seconds(), accuracy)

	return nil
}
