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
	"github.com/jetsetilly/acrsim/hardware/registers"
)

// State is a copy of the simulation state at a single tick. It is produced
// by the Snapshot() function.
type State struct {
	Clock  uint32
	Time   float64
	Regs   registers.File
	Output bool
	Input  bool
}

// Snapshot the state of the MCU. The device under test is not part of the
// snapshot.
func (mcu *MCU) Snapshot() *State {
	return &State{
		Clock:  mcu.Clock,
		Time:   mcu.Time(),
		Regs:   *mcu.Regs,
		Output: mcu.Output.Level,
		Input:  mcu.Capture.Level(),
	}
}
