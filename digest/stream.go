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

package digest

import (
	"crypto/sha1"
	"fmt"
)

// the length of the buffer isn't really important. that said, it needs to be
// at least sha1.Size bytes in length
const bufferLength = 1024 + sha1.Size

// to allow digests of streams longer than bufferLength, the previous digest
// value is stuffed into the first part of the buffer and included in the
// next digest value
const bufferStart = sha1.Size

// Stream implements the Digest interface for a stream of bytes. It also
// implements io.Writer and io.ByteWriter.
type Stream struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewStream is the preferred method of initialisation for the Stream type.
func NewStream() *Stream {
	dig := &Stream{}
	dig.buffer = make([]uint8, bufferLength)
	dig.bufferCt = bufferStart
	return dig
}

// Hash implements the Digest interface. Any bytes not yet included in the
// digest are included before the hash is returned.
func (dig *Stream) Hash() string {
	if dig.bufferCt > bufferStart {
		dig.flush()
	}
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Stream) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	for i := range dig.buffer {
		dig.buffer[i] = 0
	}
	dig.bufferCt = bufferStart
}

// WriteByte implements the io.ByteWriter interface.
func (dig *Stream) WriteByte(b byte) error {
	dig.buffer[dig.bufferCt] = b
	dig.bufferCt++
	if dig.bufferCt >= bufferLength {
		dig.flush()
	}
	return nil
}

// Write implements the io.Writer interface.
func (dig *Stream) Write(p []byte) (int, error) {
	for _, b := range p {
		_ = dig.WriteByte(b)
	}
	return len(p), nil
}

func (dig *Stream) flush() {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = bufferStart
}
