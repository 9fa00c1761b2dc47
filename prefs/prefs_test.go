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

package prefs_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/acrsim/prefs"
	"github.com/jetsetilly/acrsim/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Value(), false)

	v.SetDefault(true)
	test.ExpectEquality(t, v.Value(), true)

	test.ExpectSuccess(t, v.Set("false"))
	test.ExpectEquality(t, v.Value(), false)
	test.ExpectSuccess(t, v.Set("TRUE"))
	test.ExpectEquality(t, v.Value(), true)
	test.ExpectSuccess(t, v.Set(false))
	test.ExpectEquality(t, v.String(), "false")

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Value(), true)

	test.ExpectFailure(t, v.Set(10))
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.Value(), 0)

	test.ExpectSuccess(t, v.Set(8))
	test.ExpectEquality(t, v.Value(), 8)
	test.ExpectSuccess(t, v.Set("0x10"))
	test.ExpectEquality(t, v.Value(), 16)
	test.ExpectFailure(t, v.Set("eight"))
	test.ExpectEquality(t, v.Value(), 16)

	// the pre hook can veto a change
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Value(), 16)

	var post int
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})
	test.ExpectSuccess(t, v.Set(20))
	test.ExpectEquality(t, post, 20)
}

func TestString(t *testing.T) {
	var v prefs.String
	v.SetDefault("KCS")
	test.ExpectEquality(t, v.Value(), "KCS")
	test.ExpectSuccess(t, v.Set("CUTS"))
	test.ExpectEquality(t, v.String(), "CUTS")
	test.ExpectFailure(t, v.Set(1))
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Value(), "KCS")
}

func TestDict(t *testing.T) {
	var a prefs.Int
	var b prefs.Bool

	dct := prefs.NewDict()
	test.ExpectSuccess(t, dct.Add("sim.a", &a))
	test.ExpectSuccess(t, dct.Add("sim.b", &b))
	test.ExpectFailure(t, dct.Add("sim.a", &a))

	prefs.PushCommandLineStack("sim.a::100; sim.b::true; sim.c::1")
	test.ExpectSuccess(t, dct.ApplyCommandLine())
	test.ExpectEquality(t, a.Value(), 100)
	test.ExpectEquality(t, b.Value(), true)

	// unused key remains on the stack
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "sim.c::1")

	test.ExpectEquality(t, dct.String(), "sim.a :: 100\nsim.b :: true\n")
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	v.SetDefault(0.5)
	test.ExpectEquality(t, v.Value(), 0.5)
	test.ExpectSuccess(t, v.Set("1.25"))
	test.ExpectEquality(t, v.Value(), 1.25)
	test.ExpectEquality(t, v.String(), "1.250")
	test.ExpectSuccess(t, v.Set(2))
	test.ExpectEquality(t, v.Value(), 2.0)
	test.ExpectFailure(t, v.Set("x"))
}
