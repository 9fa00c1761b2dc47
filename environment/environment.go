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

// Package environment bundles the preferences of a simulation with a label.
// An Environment is passed to every part of the simulation that needs access
// to the preferences.
package environment

import (
	"github.com/jetsetilly/acrsim/hardware/preferences"
)

// Label is used to name the environment
type Label string

// MainSimulation is the label used by the simulation started from the
// command line
const MainSimulation = Label("")

// Environment is used to provide context for a simulation.
type Environment struct {
	Label Label

	// the simulation preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the Environment type.
//
// The prefs argument can be nil, in which case a new Preferences instance will
// be created.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// Normalise ensures the environment is in a known default state. Useful for
// testing where the initial state must be the same for every run.
func (env *Environment) Normalise() error {
	return env.Prefs.Reset()
}

// IsMainSimulation returns true if the environment is intended for the main
// simulation in the system
func (env *Environment) IsMainSimulation() bool {
	return env.Label == MainSimulation
}

// AllowLogging implements the logger.Permission interface. Logging is
// suppressed in quiet mode.
func (env *Environment) AllowLogging() bool {
	return !env.Prefs.Quiet.Value()
}
