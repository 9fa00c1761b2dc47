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

package soundload

import (
	"errors"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/acrsim/curated"
	"github.com/jetsetilly/acrsim/environment"
	"github.com/jetsetilly/acrsim/logger"
)

// number of frames decoded at a time
const wavBufferFrames = 4096

// ReadWAV feeds a PCM WAV file into the simulation. Only the first channel is
// used. The header is validated before any sample data is read.
func ReadWAV(env *environment.Environment, filename string, m Machine, p Poller) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf(FileOpenError, "WAV", err)
	}
	defer f.Close()

	d, err := ReadDescriptor(f)
	if err != nil {
		return curated.Errorf(UnsupportedFileFormat, err)
	}

	logger.Logf(env, logTag, "wav: %s", d)

	_, err = f.Seek(0, io.SeekStart)
	if err != nil {
		return curated.Errorf("soundload: wav: %v", err)
	}

	dec := wav.NewDecoder(f)
	err = dec.FwdToPCM()
	if err != nil {
		return curated.Errorf(UnsupportedFileFormat, err)
	}

	// 8 bit samples are unsigned
	var bias int
	if d.BitsPerSample == 8 {
		bias = 128
	}

	chans := int(d.Channels)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: chans,
			SampleRate:  int(d.SampleRate),
		},
		Data: make([]int, wavBufferFrames*chans),
	}

	s := newPCM(env, m, p, d.SampleRate)
	expected := d.NumSamples()

	// the channel of the next value in the buffer. carried over between
	// buffers in case a read ends part way through a frame
	var ch int

	for s.n < expected {
		n, err := dec.PCMBuffer(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return curated.Errorf("soundload: wav: %v", err)
		}
		if n == 0 {
			break
		}

		for i := 0; i < n && s.n < expected; i++ {
			if ch == 0 {
				err := s.feed(buf.Data[i] - bias)
				if err != nil {
					return err
				}
			}
			ch = (ch + 1) % chans
		}
	}

	if s.n < expected {
		return curated.Errorf(TruncatedData, s.n, expected)
	}

	return s.result()
}
