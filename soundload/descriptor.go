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
	"fmt"
	"io"
)

// DescriptorSize is the size of the canonical WAV header.
const DescriptorSize = 44

// Descriptor is the canonical 44 byte header of a PCM WAV file.
type Descriptor struct {
	Riff          [4]byte
	OverallSize   uint32
	Wave          [4]byte
	FmtMarker     [4]byte
	FmtLength     uint32
	FormatType    uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataMarker    [4]byte
	DataSize      uint32
}

// ReadDescriptor reads and validates the header. No sample data is read.
func ReadDescriptor(r io.Reader) (Descriptor, error) {
	var d Descriptor
	if err := binary.Read(r, binary.LittleEndian, &d); err != nil {
		return d, fmt.Errorf("header: %w", err)
	}
	return d, d.Validate()
}

// Validate returns an error if the header describes a file that can't be
// read.
func (d Descriptor) Validate() error {
	switch {
	case string(d.Riff[:]) != "RIFF":
		return fmt.Errorf("bad RIFF marker")
	case string(d.Wave[:]) != "WAVE":
		return fmt.Errorf("bad WAVE marker")
	case string(d.FmtMarker[:]) != "fmt ":
		return fmt.Errorf("bad fmt marker")
	case string(d.DataMarker[:]) != "data":
		return fmt.Errorf("bad data marker")
	case d.FormatType != 1:
		return fmt.Errorf("format type %d is not PCM", d.FormatType)
	case d.Channels == 0:
		return fmt.Errorf("no channels")
	case d.SampleRate == 0:
		return fmt.Errorf("sample rate of zero")
	}

	switch d.BitsPerSample {
	case 8, 16, 32:
	default:
		return fmt.Errorf("%d bit samples", d.BitsPerSample)
	}

	// bytes per sample must be completely divisible by the number of channels
	size := d.SampleSize()
	if (size/int(d.Channels))*int(d.Channels) != size {
		return fmt.Errorf("%d x %d <> %d", size/int(d.Channels), d.Channels, size)
	}

	return nil
}

// SampleSize returns the number of bytes in a single sample, across all
// channels.
func (d Descriptor) SampleSize() int {
	return int(d.Channels) * int(d.BitsPerSample) / 8
}

// NumSamples returns the number of samples according to the data size.
func (d Descriptor) NumSamples() int {
	return int(d.DataSize) * 8 / (int(d.Channels) * int(d.BitsPerSample))
}

// Duration returns the length of the recording in seconds.
func (d Descriptor) Duration() float64 {
	return float64(d.NumSamples()) / float64(d.SampleRate)
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%d channels, %dHz, %d bit, %d samples, %.3fs",
		d.Channels, d.SampleRate, d.BitsPerSample, d.NumSamples(), d.Duration())
}
