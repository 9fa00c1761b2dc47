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

package preferences_test

import (
	"testing"

	"github.com/jetsetilly/acrsim/hardware/preferences"
	"github.com/jetsetilly/acrsim/prefs"
	"github.com/jetsetilly/acrsim/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.ClockScale.Value(), 8)
	test.ExpectEquality(t, p.NoiseCancelWindow.Value(), 20)
	test.ExpectEquality(t, p.StuckOutputTicks.Value(), 1250)
	test.ExpectEquality(t, p.OutputSampleRate.Value(), 48000)
	test.ExpectEquality(t, p.LeaderOffset.Value(), 200)
	test.ExpectEquality(t, p.KeepGoing.Value(), false)
	test.ExpectEquality(t, p.Quiet.Value(), false)
}

func TestClockScaleHook(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.ClockScale.Set(6))
	test.ExpectFailure(t, p.ClockScale.Set(0))
	test.ExpectEquality(t, p.ClockScale.Value(), 8)
	test.ExpectSuccess(t, p.ClockScale.Set(4))
	test.ExpectEquality(t, p.ClockScale.Value(), 4)

	test.ExpectSuccess(t, p.Reset())
	test.ExpectEquality(t, p.ClockScale.Value(), 8)
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("sim.noisecancel::30; serial.keepgoing::true")
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectEquality(t, p.NoiseCancelWindow.Value(), 30)
	test.ExpectEquality(t, p.KeepGoing.Value(), true)

	prefs.PushCommandLineStack("sim.clockscale::3")
	_, err = preferences.NewPreferences()
	test.ExpectFailure(t, err)
	prefs.PopCommandLineStack()
}
