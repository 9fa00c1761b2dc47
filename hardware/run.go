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

// RunUntil steps the simulation until the clock reaches the target tick. If
// the clock is already at or beyond the target then the function returns
// immediately.
func (mcu *MCU) RunUntil(tick uint32) {
	for mcu.Clock < tick {
		mcu.Step()
	}
}

// Run steps the simulation until the continueCheck function returns false or
// an error. The continueCheck function is called once per tick, after the
// tick has completed.
func (mcu *MCU) Run(continueCheck func() (bool, error)) error {
	for {
		mcu.Step()
		ok, err := continueCheck()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}
