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

// Package prefs provides typed preference values. Each value can have a
// hook that is run before the value is stored, which can veto the change by
// returning an error, and a hook that is run after.
//
// Values can be grouped in a Dict, which associates each value with a key.
// Keys can be overridden from the command line with a string of the form:
//
//	"sim.clockscale::1; serial.keepgoing::true"
//
// See PushCommandLineStack() and Dict.ApplyCommandLine().
package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// Pref is implemented by all preference types.
type Pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	value    atomic.Value // bool
	def      bool
	hookPre  func(value Value) error
	hookPost func(value Value) error
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.Get().(bool))
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) sets the
// value to false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.ToLower(strings.TrimSpace(v)) == "true"
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}

	if p.hookPre != nil {
		if err := p.hookPre(nv); err != nil {
			return err
		}
	}

	p.value.Store(nv)

	if p.hookPost != nil {
		if err := p.hookPost(nv); err != nil {
			return err
		}
	}

	return nil
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return p.def
	}
	return ov.(bool)
}

// Value returns the pref value as a bool.
func (p *Bool) Value() bool {
	return p.Get().(bool)
}

// SetDefault sets the value that Reset() restores.
func (p *Bool) SetDefault(v bool) {
	p.def = v
}

// Reset sets the value to the default.
func (p *Bool) Reset() error {
	return p.Set(p.def)
}

// SetHookPre sets the callback function to be called just before the value is
// updated. An error returned by the hook prevents the value changing.
func (p *Bool) SetHookPre(f func(value Value) error) {
	p.hookPre = f
}

// SetHookPost sets the callback function to be called just after the value is
// updated.
func (p *Bool) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}

// Int implements an integer type in the prefs system.
type Int struct {
	value    atomic.Value // int
	def      int
	hookPre  func(value Value) error
	hookPost func(value Value) error
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.Get().(int))
}

// Set new value to Int type. New value can be an int or a string that can be
// parsed as an integer. Prefixes such as 0x are accepted.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int:
		nv = v
	case int64:
		nv = int(v)
	case uint32:
		nv = int(v)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 0, 64)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Int: %w", v, err)
		}
		nv = int(n)
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
	}

	if p.hookPre != nil {
		if err := p.hookPre(nv); err != nil {
			return err
		}
	}

	p.value.Store(nv)

	if p.hookPost != nil {
		if err := p.hookPost(nv); err != nil {
			return err
		}
	}

	return nil
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return p.def
	}
	return ov.(int)
}

// Value returns the pref value as an int.
func (p *Int) Value() int {
	return p.Get().(int)
}

// SetDefault sets the value that Reset() restores.
func (p *Int) SetDefault(v int) {
	p.def = v
}

// Reset sets the value to the default.
func (p *Int) Reset() error {
	return p.Set(p.def)
}

// SetHookPre sets the callback function to be called just before the value is
// updated. An error returned by the hook prevents the value changing.
func (p *Int) SetHookPre(f func(value Value) error) {
	p.hookPre = f
}

// SetHookPost sets the callback function to be called just after the value is
// updated.
func (p *Int) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}

// String implements a string type in the prefs system.
type String struct {
	value    atomic.Value // string
	def      string
	hookPre  func(value Value) error
	hookPost func(value Value) error
}

func (p *String) String() string {
	return p.Get().(string)
}

// Set new value to String type. New value must be of type string.
func (p *String) Set(v Value) error {
	nv, ok := v.(string)
	if !ok {
		return fmt.Errorf("prefs: cannot convert %T to prefs.String", v)
	}

	if p.hookPre != nil {
		if err := p.hookPre(nv); err != nil {
			return err
		}
	}

	p.value.Store(nv)

	if p.hookPost != nil {
		if err := p.hookPost(nv); err != nil {
			return err
		}
	}

	return nil
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return p.def
	}
	return ov.(string)
}

// Value returns the pref value as a string.
func (p *String) Value() string {
	return p.Get().(string)
}

// SetDefault sets the value that Reset() restores.
func (p *String) SetDefault(v string) {
	p.def = v
}

// Reset sets the value to the default.
func (p *String) Reset() error {
	return p.Set(p.def)
}

// SetHookPre sets the callback function to be called just before the value is
// updated. An error returned by the hook prevents the value changing.
func (p *String) SetHookPre(f func(value Value) error) {
	p.hookPre = f
}

// SetHookPost sets the callback function to be called just after the value is
// updated.
func (p *String) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}

// Float implements a floating point type in the prefs system.
type Float struct {
	value    atomic.Value // float64
	def      float64
	hookPre  func(value Value) error
	hookPost func(value Value) error
}

func (p *Float) String() string {
	return fmt.Sprintf("%.3f", p.Get().(float64))
}

// Set new value to Float type. New value can be a float64, an int or a string
// that can be parsed as a float.
func (p *Float) Set(v Value) error {
	var nv float64
	switch v := v.(type) {
	case float64:
		nv = v
	case float32:
		nv = float64(v)
	case int:
		nv = float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Float: %w", v, err)
		}
		nv = f
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Float", v)
	}

	if p.hookPre != nil {
		if err := p.hookPre(nv); err != nil {
			return err
		}
	}

	p.value.Store(nv)

	if p.hookPost != nil {
		if err := p.hookPost(nv); err != nil {
			return err
		}
	}

	return nil
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return p.def
	}
	return ov.(float64)
}

// Value returns the pref value as a float64.
func (p *Float) Value() float64 {
	return p.Get().(float64)
}

// SetDefault sets the value that Reset() restores.
func (p *Float) SetDefault(v float64) {
	p.def = v
}

// Reset sets the value to the default.
func (p *Float) Reset() error {
	return p.Set(p.def)
}

// SetHookPre sets the callback function to be called just before the value is
// updated. An error returned by the hook prevents the value changing.
func (p *Float) SetHookPre(f func(value Value) error) {
	p.hookPre = f
}

// SetHookPost sets the callback function to be called just after the value is
// updated.
func (p *Float) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}
