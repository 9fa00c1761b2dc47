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

// Package wavwriter drives data through the simulated cassette interface and
// records the compare output as an 8 bit mono WAV file.
//
// The encoder writes a leader of three seconds (plus a small offset) before
// the first byte is sent, and continues recording for one second after the
// last byte is accepted by the device.
//
// Note that audio data is buffered in memory in its entirety and written to
// disk once encoding has finished. The number of samples must be known before
// the WAV header can be written.
package wavwriter

import (
	"io"
	"os"

	"github.com/jetsetilly/acrsim/curated"
	"github.com/jetsetilly/acrsim/digest"
	"github.com/jetsetilly/acrsim/hardware"
	"github.com/jetsetilly/acrsim/hardware/bus"
	"github.com/jetsetilly/acrsim/logger"
	"github.com/jetsetilly/acrsim/serial"
	"github.com/youpy/go-wav"
)

// Sentinal error patterns.
const (
	BufferStuckFault = "wavwriter: buffer stuck fault (t=%.6f)"
)

const logTag = "wavwriter"

// the amplitude of the output signal. the signal is filtered so the
// amplitude is approached but never exceeded
const amplitude = 120

// length of the leader in seconds
const leaderSeconds = 3

// number of ticks the encoder continues for if there is no data
const emptyTail = 1000

// Encoder records the compare output of the simulation.
type Encoder struct {
	mcu  *hardware.MCU
	dig  *digest.Stream
	rate uint32

	buffer []wav.Sample

	// the filtered signal
	sample int

	// the number of bytes accepted by the device
	written int
}

// NewEncoder is the preferred method of initialisation for the Encoder type.
// The sample rate is taken from the MCU's preferences.
func NewEncoder(mcu *hardware.MCU) *Encoder {
	return &Encoder{
		mcu:    mcu,
		rate:   uint32(mcu.Env.Prefs.OutputSampleRate.Value()),
		buffer: make([]wav.Sample, 0),
	}
}

// SetDigest sets the digest that every output sample is written to. A nil
// digest disables the feature.
func (enc *Encoder) SetDigest(dig *digest.Stream) {
	enc.dig = dig
}

// NumSamples returns the number of samples recorded so far.
func (enc *Encoder) NumSamples() int {
	return len(enc.buffer)
}

// Written returns the number of bytes accepted by the device.
func (enc *Encoder) Written() int {
	return enc.written
}

// Encode writes data to the device's data register and records the output.
// The data is written one byte at a time, whenever the device's status
// register indicates that it is ready.
//
// If the output stops changing after it has previously changed then encoding
// stops and the BufferStuckFault error is returned. The samples recorded up to
// that point are retained.
func (enc *Encoder) Encode(data []byte) error {
	mcu := enc.mcu
	prefs := mcu.Env.Prefs
	freq := mcu.Frequency()

	leader := mcu.Clock + leaderSeconds*freq + uint32(prefs.LeaderOffset.Value())
	end := leader + emptyTail
	stuck := uint32(prefs.StuckOutputTicks.Value())

	var n uint64
	var next uint32

	out := mcu.OutputLevel()
	toggled := false
	var lastToggle uint32

	for mcu.Clock < end {
		for mcu.Clock < next {
			// the status register is read on every tick whether or not
			// there is data to write
			status := serial.Status(mcu.Bus.Read(bus.Control))
			if !status.Busy() && mcu.Clock > leader && len(data) > 0 {
				mcu.Bus.Write(bus.Data, data[0])
				data = data[1:]
				enc.written++
				end = mcu.Clock + freq
			}

			mcu.Step()

			if l := mcu.OutputLevel(); l != out {
				out = l
				toggled = true
				lastToggle = mcu.Clock
			} else if toggled && mcu.Clock-lastToggle > stuck {
				if err := enc.record(out); err != nil {
					return err
				}
				logger.Logf(mcu.Env, logTag, "output unchanged since %d", lastToggle)
				return curated.Errorf(BufferStuckFault, mcu.Time())
			}
		}

		if err := enc.record(out); err != nil {
			return err
		}

		n++
		next = uint32((n*uint64(freq)*2 + uint64(enc.rate)) / (2 * uint64(enc.rate)))
	}

	return nil
}

func (enc *Encoder) record(level bool) error {
	if level {
		enc.sample = (enc.sample*2 + amplitude) / 3
	} else {
		enc.sample = (enc.sample*2 - amplitude) / 3
	}

	v := uint8(enc.sample + 128)

	s := wav.Sample{}
	s.Values[0] = int(v)
	enc.buffer = append(enc.buffer, s)

	if enc.dig != nil {
		if err := enc.dig.WriteByte(v); err != nil {
			return curated.Errorf("wavwriter: %v", err)
		}
	}

	return nil
}

// Write the recorded samples as a WAV file.
func (enc *Encoder) Write(w io.Writer) error {
	wr := wav.NewWriter(w, uint32(len(enc.buffer)), 1, enc.rate, 8)
	if wr == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}
	if err := wr.WriteSamples(enc.buffer); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	return nil
}

// WriteFile encodes the data and writes the result to the named file. The
// file is written even if encoding ends with the BufferStuckFault error, in
// which case that error is returned once the file has been closed.
func WriteFile(mcu *hardware.MCU, data []byte, filename string, dig *digest.Stream) (rerr error) {
	enc := NewEncoder(mcu)
	enc.SetDigest(dig)

	encErr := enc.Encode(data)

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
			return
		}
		if rerr == nil {
			rerr = encErr
		}
	}()

	logger.Logf(mcu.Env, logTag, "writing %d samples to %s", enc.NumSamples(), filename)

	return enc.Write(f)
}
