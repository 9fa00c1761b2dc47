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

package serial

// Comparator checks received bytes against a reference stream.
//
// In leader tolerant mode the first byte of the reference stream is the
// leader byte. Received leader bytes are accepted without consuming the
// reference stream. The first received byte that isn't the leader byte
// causes the remaining leader bytes in the reference stream to be skipped,
// after which the comparison continues normally. This means the length of
// the leader tone on the tape doesn't need to match the length of the leader
// in the reference stream.
type Comparator struct {
	ref []byte
	pos int

	ignoreLeader bool

	// the leader byte or -1 if the leader byte isn't yet known
	leader int

	// the reference stream has been exhausted
	ended bool
}

// NewComparator is the preferred method of initialisation for the
// Comparator type.
func NewComparator(ref []byte, ignoreLeader bool) *Comparator {
	return &Comparator{
		ref:          ref,
		ignoreLeader: ignoreLeader,
		leader:       -1,
	}
}

// next byte from the reference stream. returns false if the stream is
// exhausted
func (c *Comparator) next() (uint8, bool) {
	if c.pos >= len(c.ref) {
		return 0, false
	}
	d := c.ref[c.pos]
	c.pos++
	return d, true
}

// Compare the received byte with the reference stream. Returns the expected
// byte and whether it matches the received byte.
//
// Once the reference stream has been exhausted every byte matches. Ended()
// will return true from that point on.
func (c *Comparator) Compare(data uint8) (uint8, bool) {
	if c.ended {
		return data, true
	}

	var d uint8
	var ok bool

	if c.ignoreLeader {
		switch {
		case c.leader == -1:
			d, ok = c.next()
			c.leader = int(d)
		case int(data) == c.leader:
			d, ok = data, true
		default:
			for {
				d, ok = c.next()
				if !ok || int(d) != c.leader {
					break
				}
			}
			c.ignoreLeader = false
		}
	} else {
		d, ok = c.next()
	}

	if !ok {
		c.ended = true
		return data, true
	}

	return d, d == data
}

// Ended returns true if the reference stream was exhausted while bytes were
// still being received.
func (c *Comparator) Ended() bool {
	return c.ended
}

// Consumed returns the number of bytes read from the reference stream.
func (c *Comparator) Consumed() int {
	return c.pos
}

// Remaining returns the number of bytes in the reference stream that have not
// been read.
func (c *Comparator) Remaining() int {
	return len(c.ref) - c.pos
}
