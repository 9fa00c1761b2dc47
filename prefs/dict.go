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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// Dict associates preference values with keys.
type Dict struct {
	entries map[string]Pref
}

// NewDict is the preferred method of initialisation for the Dict type.
func NewDict() *Dict {
	return &Dict{
		entries: make(map[string]Pref),
	}
}

// Add a preference value to the dictionary. Keys must be unique.
func (dct *Dict) Add(key string, p Pref) error {
	if _, ok := dct.entries[key]; ok {
		return fmt.Errorf("prefs: key %s already exists", key)
	}
	dct.entries[key] = p
	return nil
}

// Get the preference value for the key.
func (dct *Dict) Get(key string) (Pref, bool) {
	p, ok := dct.entries[key]
	return p, ok
}

// Reset all values in the dictionary to their defaults.
func (dct *Dict) Reset() error {
	for k, p := range dct.entries {
		if err := p.Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}

// ApplyCommandLine sets any value that has an entry at the top of the command
// line stack.
func (dct *Dict) ApplyCommandLine() error {
	for k, p := range dct.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}
	return nil
}

// String returns every key and value in the dictionary, one per line and
// sorted by key.
func (dct *Dict) String() string {
	keys := make([]string, 0, len(dct.entries))
	for k := range dct.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, dct.entries[k]))
	}
	return s.String()
}
