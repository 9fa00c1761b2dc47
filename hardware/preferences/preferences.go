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

// Package preferences collates the settings used by the simulation. All
// values have sensible defaults and any value can be overridden from the
// command line with the -prefs argument. For example:
//
//	acrsim -prefs "sim.noisecancel::30" tape.wav
package preferences

import (
	"fmt"

	"github.com/jetsetilly/acrsim/prefs"
)

// Preferences defines and collates all the preference values used by the
// simulation.
type Preferences struct {
	dict *prefs.Dict

	// the CPU clock is divided by the clock scale to give the frequency of the
	// simulated clock. must be a power of two
	ClockScale prefs.Int

	// minimum number of ticks between two accepted transitions on the input
	// capture pin when noise cancellation is enabled
	NoiseCancelWindow prefs.Int

	// number of ticks the compare output can stay at the same level before
	// the output is considered stuck
	StuckOutputTicks prefs.Int

	// sample rate of generated WAV files
	OutputSampleRate prefs.Int

	// number of ticks added to the three second leader before the first byte
	// is written
	LeaderOffset prefs.Int

	// continue after a framing, parity or comparison error
	KeepGoing prefs.Bool

	// suppress informational output
	Quiet prefs.Bool

	// the leader at the start of the comparison file can be of any length
	IgnoreLeaderLength prefs.Bool

	// legacy mode is signalled to the firmware by pulling PINB bit 2 low
	LegacyMode prefs.Bool

	// skew compensation is signalled to the firmware by pulling PINC bit 5 low
	SkewCompensation prefs.Bool
}

func (p *Preferences) String() string {
	return p.dict.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		dict: prefs.NewDict(),
	}

	p.ClockScale.SetDefault(8)
	p.NoiseCancelWindow.SetDefault(20)
	p.StuckOutputTicks.SetDefault(1250)
	p.OutputSampleRate.SetDefault(48000)
	p.LeaderOffset.SetDefault(200)

	p.ClockScale.SetHookPre(func(v prefs.Value) error {
		n := v.(int)
		if n <= 0 || n&(n-1) != 0 {
			return fmt.Errorf("preferences: clock scale must be a power of two (%d)", n)
		}
		return nil
	})
	p.OutputSampleRate.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("preferences: output sample rate must be positive (%d)", v.(int))
		}
		return nil
	})

	add := []struct {
		key string
		p   prefs.Pref
	}{
		{key: "sim.clockscale", p: &p.ClockScale},
		{key: "sim.noisecancel", p: &p.NoiseCancelWindow},
		{key: "sim.stuckoutput", p: &p.StuckOutputTicks},
		{key: "sim.samplerate", p: &p.OutputSampleRate},
		{key: "sim.leaderoffset", p: &p.LeaderOffset},
		{key: "serial.keepgoing", p: &p.KeepGoing},
		{key: "serial.quiet", p: &p.Quiet},
		{key: "serial.ignoreleader", p: &p.IgnoreLeaderLength},
		{key: "firmware.legacy", p: &p.LegacyMode},
		{key: "firmware.skew", p: &p.SkewCompensation},
	}

	for _, a := range add {
		err := p.dict.Add(a.key, a.p)
		if err != nil {
			return nil, err
		}
	}

	err := p.dict.ApplyCommandLine()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Reset all preferences to the default values.
func (p *Preferences) Reset() error {
	return p.dict.Reset()
}
