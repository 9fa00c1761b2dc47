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
	"encoding/binary"
	"errors"
	"io"
	"os"

	"github.com/hajimehoshi/go-mp3"

	"github.com/jetsetilly/acrsim/curated"
	"github.com/jetsetilly/acrsim/environment"
	"github.com/jetsetilly/acrsim/logger"
)

// ReadMP3 feeds an MP3 file into the simulation. Only the left channel is
// used.
func ReadMP3(env *environment.Environment, filename string, m Machine, p Poller) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf(FileOpenError, "MP3", err)
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return curated.Errorf(UnsupportedFileFormat, err)
	}

	// according to the go-mp3 docs:
	//
	// "The stream is always formatted as 16bit (little endian) 2 channels even if
	// the source is single channel MP3. Thus, a sample always consists of 4
	// bytes.".
	logger.Logf(env, logTag, "mp3: %dHz, %.3fs", dec.SampleRate(),
		float64(dec.Length())/4/float64(dec.SampleRate()))

	s := newPCM(env, m, p, uint32(dec.SampleRate()))

	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)

		// index increment of 4 because there are two bytes per sample per
		// channel and only the left channel is wanted
		for i := 0; i+4 <= n; i += 4 {
			v := int16(binary.LittleEndian.Uint16(chunk[i:]))
			if err := s.feed(int(v)); err != nil {
				return err
			}
		}

		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return curated.Errorf("soundload: mp3: %v", err)
		}
	}

	return s.result()
}
