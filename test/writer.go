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

package test

// CompareWriter is an implementation of the io.Writer interface. It should
// be used to capture output and to compare with predefined strings.
type CompareWriter struct {
	buffer []byte
}

// Write implements the io.Writer interface.
func (tw *CompareWriter) Write(p []byte) (n int, err error) {
	tw.buffer = append(tw.buffer, p...)
	return len(p), nil
}

// Clear empties the buffer.
func (tw *CompareWriter) Clear() {
	tw.buffer = tw.buffer[:0]
}

// Compare buffered output with predefined/example string.
func (tw *CompareWriter) Compare(s string) bool {
	return s == string(tw.buffer)
}

// Bytes returns a copy of the buffered output.
func (tw *CompareWriter) Bytes() []byte {
	b := make([]byte, len(tw.buffer))
	copy(b, tw.buffer)
	return b
}

// String implements the fmt.Stringer interface.
func (tw *CompareWriter) String() string {
	return string(tw.buffer)
}

// RingWriter is an implementation of the io.Writer interface that keeps only
// the most recent output, up to the size given to NewRingWriter().
type RingWriter struct {
	buffer []byte
	size   int
}

// NewRingWriter is the preferred method of initialisation for RingWriter.
func NewRingWriter(size int) *RingWriter {
	return &RingWriter{
		buffer: make([]byte, 0, size),
		size:   size,
	}
}

// Write implements the io.Writer interface.
func (r *RingWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	if len(p) >= r.size {
		r.buffer = append(r.buffer[:0], p[len(p)-r.size:]...)
		return n, nil
	}
	if len(r.buffer)+len(p) > r.size {
		r.buffer = append(r.buffer[:0], r.buffer[len(r.buffer)+len(p)-r.size:]...)
	}
	r.buffer = append(r.buffer, p...)
	return n, nil
}

// Reset empties the buffer.
func (r *RingWriter) Reset() {
	r.buffer = r.buffer[:0]
}

func (r *RingWriter) String() string {
	return string(r.buffer)
}
