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

// Package modalflag wraps the flag package of the standard library. It adds
// program modes, each with its own set of flags.
//
// Arguments are given to the Modes type with NewArgs(). Flags are then added
// and Parse() is called without arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	quiet := md.AddBool("q", false, "quiet mode")
//	md.AddSubModes("AUTO", "ENCODE", "DECODE")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// If sub-modes have been added then the first argument after the flags is
// compared against them. Comparisons are not case sensitive. If the argument
// doesn't match any sub-mode then the first sub-mode in the list is used. The
// selected sub-mode is returned by Mode():
//
//	switch md.Mode() {
//	case "ENCODE":
//		encode(md.RemainingArgs())
//	}
//
// A new set of flags and sub-modes for the selected mode is started with
// NewMode(), after which Parse() can be called again. The path of modes
// selected so far is returned by Path().
//
// A request for help (the -help or -h flag) prints the flags and sub-modes
// for the current mode to the Output writer and Parse() returns ParseHelp.
package modalflag
