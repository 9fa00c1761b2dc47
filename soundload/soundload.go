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

// Package soundload feeds recorded tape audio into the simulation. Three
// sources are supported: WAV files, MP3 files and CSV files of timed level
// changes, such as those exported by a logic analyser.
//
// Each sample is converted to a level, presented to the input capture pin
// of the simulated microcontroller and the clock is advanced to the time of
// the next sample. The serial decoder is polled after every sample.
//
// By default the first error returned by the poller stops the load. If the
// keep going preference is set then errors are logged and counted and a
// DecodeErrors error is returned once the source has been exhausted.
package soundload

import (
	"path/filepath"
	"strings"

	"github.com/jetsetilly/acrsim/curated"
	"github.com/jetsetilly/acrsim/environment"
	"github.com/jetsetilly/acrsim/logger"
)

// Error patterns.
const (
	FileOpenError         = "soundload: unable to open %s file: %v"
	UnsupportedFileFormat = "soundload: unsupported format: %s"
	TruncatedData         = "soundload: truncated data: %d of %d samples"
	DecodeErrors          = "soundload: %d decode errors"
)

const logTag = "soundload"

// Machine is the view of the simulation required by the source adapters. It
// is satisfied by the hardware.MCU type.
type Machine interface {
	RunUntil(tick uint32)
	FeedLevel(level bool)
	Frequency() uint32
	SetTimeOffset(offset float64)
	Time() float64
}

// Poller is polled once per sample. It is satisfied by the serial.Decoder
// type.
type Poller interface {
	Poll() error
}

// IsSource returns true if the filename has an extension that can be loaded
// by the Load() function. A filename with no extension is assumed to be a
// WAV file.
func IsSource(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case "", ".wav", ".mp3", ".csv":
		return true
	}
	return false
}

// IsCSV returns true if the filename has a .csv extension.
func IsCSV(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".csv"
}

// Load the file and feed it into the simulation. The type of file is decided
// by the filename extension.
func Load(env *environment.Environment, filename string, m Machine, p Poller) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case "", ".wav":
		return ReadWAV(env, filename, m, p)
	case ".mp3":
		return ReadMP3(env, filename, m, p)
	case ".csv":
		return ReadCSV(env, filename, m, p)
	}
	return curated.Errorf(UnsupportedFileFormat, filepath.Ext(filename))
}

// poll wraps the Poller and applies the keep going preference
type poll struct {
	env    *environment.Environment
	p      Poller
	errors int
}

func (pl *poll) poll() error {
	err := pl.p.Poll()
	if err == nil {
		return nil
	}
	if !pl.env.Prefs.KeepGoing.Value() {
		return err
	}
	pl.errors++
	logger.Log(pl.env, logTag, err)
	return nil
}

// result of the load once the source has been exhausted
func (pl *poll) result() error {
	if pl.errors > 0 {
		return curated.Errorf(DecodeErrors, pl.errors)
	}
	return nil
}

// pcm feeds samples at a fixed sample rate into the simulation
type pcm struct {
	poll
	m              Machine
	ticksPerSample float64
	n              int
}

func newPCM(env *environment.Environment, m Machine, p Poller, sampleRate uint32) *pcm {
	return &pcm{
		poll: poll{
			env: env,
			p:   p,
		},
		m:              m,
		ticksPerSample: float64(m.Frequency()) / float64(sampleRate),
	}
}

// feed a single sample. the level is presented before the clock is advanced
// to the start of the next sample
func (s *pcm) feed(sample int) error {
	s.n++
	s.m.FeedLevel(sample > 0)
	s.m.RunUntil(uint32(float64(s.n)*s.ticksPerSample + 0.5))
	return s.poll.poll()
}
