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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/acrsim/modalflag"
	"github.com/jetsetilly/acrsim/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-q", "-f", "KCS", "input.wav", "extra"})
	quiet := md.AddBool("q", false, "quiet")
	format := md.AddString("f", "MITS", "tape format")

	test.ExpectFailure(t, *quiet)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, md.Parsed())
	test.ExpectSuccess(t, *quiet)
	test.ExpectEquality(t, *format, "KCS")
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "input.wav")
	test.ExpectEquality(t, md.GetArg(2), "")

	var set []string
	md.Visit(func(flag string) {
		set = append(set, flag)
	})
	test.ExpectEquality(t, len(set), 2)
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-q", "encode", "program.bin"})
	md.AddBool("q", false, "quiet")
	md.AddSubModes("auto", "encode", "decode")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "ENCODE")
	test.ExpectEquality(t, md.GetArg(0), "program.bin")

	// second layer
	md.NewMode()
	digest := md.AddBool("digest", false, "print digest")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, *digest)
	test.ExpectEquality(t, md.Path(), "ENCODE")
	test.ExpectEquality(t, md.GetArg(0), "program.bin")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"input.csv"})
	md.AddSubModes("auto", "encode", "decode")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "AUTO")
	test.ExpectEquality(t, md.GetArg(0), "input.csv")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-x"})
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"))
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("k", true, "keep going")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -k\tkeep going (default true)\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-h"})
	md.AddBool("digest", false, "print digest")
	md.AddSubModes("auto", "encode", "decode")
	md.AdditionalHelp("tape formats: MITS, CUTS, KCS")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -digest\n" +
		"    \tprint digest\n" +
		"\n" +
		"  available sub-modes: AUTO, ENCODE, DECODE\n" +
		"    default: AUTO\n" +
		"\n" +
		"tape formats: MITS, CUTS, KCS\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}
