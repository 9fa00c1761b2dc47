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

// Package script implements a device under test whose behaviour is defined by
// a Lua script. It is useful for experimenting with the timer peripherals
// without writing Go.
//
// The script defines global functions that are called by the simulation. All
// functions are optional:
//
//	setup()		called once when the device is connected
//	loop()		called once per tick
//
//	timer0_compa() timer0_compb() timer0_ovf()
//	timer1_compa() timer1_compb() timer1_ovf() timer1_capt()
//	timer2_compa() timer2_compb() timer2_ovf()
//	pcint0()	read request from the bus
//	pcint1()	write request from the bus
//
// The script accesses the register file with the following functions.
// Register names are the same as those used by the registers package and
// are not case sensitive:
//
//	reg_get(name)
//	reg_set(name, value)
//
// A message can be added to the log with log(message).
//
// The first error raised by the script stops any further calls into the
// script. The error is available from the Err() function.
package script

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/acrsim/curated"
	"github.com/jetsetilly/acrsim/hardware/registers"
	"github.com/jetsetilly/acrsim/logger"
	lua "github.com/yuin/gopher-lua"
)

// Sentinal error patterns.
const (
	ScriptError = "script: %v"
)

const logTag = "script"

// names of the functions the script can define, in the order of the
// Interrupts interface
var handlerNames = []string{
	"setup", "loop",
	"timer0_compa", "timer0_compb", "timer0_ovf",
	"timer1_compa", "timer1_compb", "timer1_ovf", "timer1_capt",
	"timer2_compa", "timer2_compb", "timer2_ovf",
	"pcint0", "pcint1",
}

// Script is a device.Device implemented in Lua.
type Script struct {
	perm logger.Permission

	state *lua.LState
	regs  *registers.File

	registers map[string]registers.Register
	handlers  map[string]*lua.LFunction

	err error
}

// NewScript compiles and runs the top level of the Lua source.
func NewScript(perm logger.Permission, source string) (*Script, error) {
	scr := newScript(perm)
	if err := scr.state.DoString(source); err != nil {
		scr.state.Close()
		return nil, curated.Errorf(ScriptError, err)
	}
	scr.bind()
	return scr, nil
}

// LoadScript compiles and runs the top level of the Lua file.
func LoadScript(perm logger.Permission, filename string) (*Script, error) {
	scr := newScript(perm)
	if err := scr.state.DoFile(filename); err != nil {
		scr.state.Close()
		return nil, curated.Errorf(ScriptError, err)
	}
	scr.bind()
	logger.Logf(perm, logTag, "loaded %s", filename)
	return scr, nil
}

func newScript(perm logger.Permission) *Script {
	scr := &Script{
		perm:      perm,
		state:     lua.NewState(),
		registers: make(map[string]registers.Register),
		handlers:  make(map[string]*lua.LFunction),
	}

	scr.state.SetGlobal("reg_get", scr.state.NewFunction(scr.regGet))
	scr.state.SetGlobal("reg_set", scr.state.NewFunction(scr.regSet))
	scr.state.SetGlobal("log", scr.state.NewFunction(scr.log))

	return scr
}

// find the handler functions defined by the script
func (scr *Script) bind() {
	for _, n := range handlerNames {
		if fn, ok := scr.state.GetGlobal(n).(*lua.LFunction); ok {
			scr.handlers[n] = fn
		}
	}
}

// Close releases the Lua state.
func (scr *Script) Close() {
	scr.state.Close()
}

// Err returns the first error raised by the script.
func (scr *Script) Err() error {
	return scr.err
}

// Global returns the value of a global variable in the script.
func (scr *Script) Global(name string) lua.LValue {
	return scr.state.GetGlobal(name)
}

func (scr *Script) call(name string) {
	if scr.err != nil {
		return
	}

	fn, ok := scr.handlers[name]
	if !ok {
		return
	}

	err := scr.state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	})
	if err != nil {
		scr.err = curated.Errorf(ScriptError, err)
		logger.Logf(scr.perm, logTag, "%s: %v", name, err)
	}
}

func (scr *Script) lookup(L *lua.LState) registers.Register {
	name := strings.ToUpper(L.CheckString(1))
	r, ok := scr.registers[name]
	if !ok {
		L.RaiseError("unknown register: %s", name)
	}
	return r
}

func (scr *Script) regGet(L *lua.LState) int {
	r := scr.lookup(L)
	L.Push(lua.LNumber(r.Value()))
	return 1
}

func (scr *Script) regSet(L *lua.LState) int {
	r := scr.lookup(L)
	r.Set(uint16(L.CheckInt(2)))
	return 0
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(scr.perm, logTag, L.CheckString(1))
	return 0
}

// Setup implements the device.Device interface.
func (scr *Script) Setup(regs *registers.File) {
	scr.regs = regs
	for _, r := range regs.Registers() {
		scr.registers[r.Name] = r
	}
	scr.call("setup")
}

// Loop implements the device.Device interface.
func (scr *Script) Loop() { scr.call("loop") }

// Timer0CompareA implements the device.Interrupts interface.
func (scr *Script) Timer0CompareA() { scr.call("timer0_compa") }

// Timer0CompareB implements the device.Interrupts interface.
func (scr *Script) Timer0CompareB() { scr.call("timer0_compb") }

// Timer0Overflow implements the device.Interrupts interface.
func (scr *Script) Timer0Overflow() { scr.call("timer0_ovf") }

// Timer1CompareA implements the device.Interrupts interface.
func (scr *Script) Timer1CompareA() { scr.call("timer1_compa") }

// Timer1CompareB implements the device.Interrupts interface.
func (scr *Script) Timer1CompareB() { scr.call("timer1_compb") }

// Timer1Overflow implements the device.Interrupts interface.
func (scr *Script) Timer1Overflow() { scr.call("timer1_ovf") }

// Timer1Capture implements the device.Interrupts interface.
func (scr *Script) Timer1Capture() { scr.call("timer1_capt") }

// Timer2CompareA implements the device.Interrupts interface.
func (scr *Script) Timer2CompareA() { scr.call("timer2_compa") }

// Timer2CompareB implements the device.Interrupts interface.
func (scr *Script) Timer2CompareB() { scr.call("timer2_compb") }

// Timer2Overflow implements the device.Interrupts interface.
func (scr *Script) Timer2Overflow() { scr.call("timer2_ovf") }

// PinChange0 implements the device.Interrupts interface.
func (scr *Script) PinChange0() { scr.call("pcint0") }

// PinChange1 implements the device.Interrupts interface.
func (scr *Script) PinChange1() { scr.call("pcint1") }

func (scr *Script) String() string {
	defined := make([]string, 0, len(scr.handlers))
	for _, n := range handlerNames {
		if _, ok := scr.handlers[n]; ok {
			defined = append(defined, n)
		}
	}
	return fmt.Sprintf("script: %s", strings.Join(defined, ", "))
}
