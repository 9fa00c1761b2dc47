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
	"github.com/jetsetilly/acrsim/logger"
)

// Step the simulation forward one tick.
func (mcu *MCU) Step() {
	mcu.Clock++

	mcu.Timer0.Step(mcu.Clock)
	mcu.Timer1.Step(mcu.Clock)
	matchA := mcu.Timer2.Step(mcu.Clock)

	mcu.Device.Loop()

	mcu.Output.Update(matchA)

	if led := mcu.LED(); led != mcu.led {
		mcu.led = led
		if led {
			logger.Logf(mcu.Env, "LED", "on : %.6f", mcu.Time())
		} else {
			logger.Logf(mcu.Env, "LED", "off : %.6f", mcu.Time())
		}
	}
}
