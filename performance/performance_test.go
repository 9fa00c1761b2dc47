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

package performance_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/jetsetilly/acrsim/environment"
	"github.com/jetsetilly/acrsim/firmware/acr"
	"github.com/jetsetilly/acrsim/hardware"
	"github.com/jetsetilly/acrsim/performance"
	"github.com/jetsetilly/acrsim/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu, trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)
	test.ExpectEquality(t, p.String(), "CPU,TRACE")

	p, err = performance.ParseProfile("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	p, err = performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "NONE")

	_, err = performance.ParseProfile("cpu,gpu")
	test.ExpectFailure(t, err)
}

func TestCalcRate(t *testing.T) {
	mhz, accuracy := performance.CalcRate(1000000, 2000000, 1.0)
	test.ExpectEquality(t, mhz, 2.0)
	test.ExpectEquality(t, accuracy, 200.0)

	mhz, accuracy = performance.CalcRate(1000000, 500000, 2.0)
	test.ExpectEquality(t, mhz, 0.25)
	test.ExpectEquality(t, accuracy, 25.0)

	mhz, _ = performance.CalcRate(1000000, 500000, 0)
	test.ExpectEquality(t, mhz, 0.0)
}

func TestRunProfiler(t *testing.T) {
	header := filepath.Join(t.TempDir(), "test")

	var ran bool
	err := performance.RunProfiler(performance.ProfileCPU|performance.ProfileMem, header, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(header + "_cpu.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(header + "_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(header + "_trace.profile")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainSimulation, nil)
	test.DemandSuccess(t, err)
	env.Prefs.Quiet.Set(true)

	mcu, err := hardware.NewMCU(env, acr.NewFirmware())
	test.DemandSuccess(t, err)

	w := &test.CompareWriter{}
	test.ExpectFailure(t, performance.Check(w, performance.ProfileNone, mcu, "soon"))
	test.ExpectFailure(t, performance.Check(w, performance.ProfileNone, mcu, "0s"))

	test.ExpectSuccess(t, performance.Check(w, performance.ProfileNone, mcu, "100ms"))

	re := regexp.MustCompile(`^\d+\.\d\d MHz \(\d+ ticks in 0\.10 seconds\) \d+\.\d%\n$`)
	test.ExpectSuccess(t, re.MatchString(w.String()), w.String())
}
