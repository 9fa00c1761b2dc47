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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions report with t.Fatalf() and should be
// used when the value being tested is required by the remainder of the test.
// For example, testing the length of a slice before indexing it.
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions. A bool is successful if it is true and an error is
// successful if it is nil. The nil type is considered a success because that
// is how a nil error arrives once it has been converted to an interface.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output for comparison with an expected string.
package test
