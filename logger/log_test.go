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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/acrsim/logger"
	"github.com/jetsetilly/acrsim/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()
	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "serial", "framing error")
	log.Log(logger.Allow, "serial", "framing error")
	log.Log(logger.Allow, "serial", "framing error")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "serial: framing error (repeat x3)\n")
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", 1)
	log.Log(logger.Allow, "b", 2)
	log.Log(logger.Allow, "c", 3)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
}

type quiet bool

func (q quiet) AllowLogging() bool {
	return !bool(q)
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(quiet(true), "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Logf(quiet(false), "tag", "detail %d", 10)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail 10\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	echo := &test.CompareWriter{}
	log.SetEcho(echo)

	log.Log(logger.Allow, "led", "LED-ON : 0.500000")
	log.Log(logger.Allow, "led", "LED-ON : 0.500000")
	test.ExpectSuccess(t, echo.Compare("led: LED-ON : 0.500000\nled: LED-ON : 0.500000\n"))

	log.SetEcho(nil)
	log.Log(logger.Allow, "led", "LED-OFF : 1.000000")
	test.ExpectSuccess(t, echo.Compare("led: LED-ON : 0.500000\nled: LED-ON : 0.500000\n"))
}

type stringerTest struct{}

func (_ stringerTest) String() string {
	return "stringer test"
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Log(logger.Allow, "tag", stringerTest{})
	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\ntag: stringer test\ntag: 100\n")
}

func TestColorizerPassThrough(t *testing.T) {
	w := &test.CompareWriter{}
	c := logger.NewColorizer(w, "ERROR")
	test.ExpectFailure(t, c.IsTerminal())

	c.Write([]byte("FRAMING ERROR t=0.1\n"))
	test.ExpectSuccess(t, w.Compare("FRAMING ERROR t=0.1\n"))
}
