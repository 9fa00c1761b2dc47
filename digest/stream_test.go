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

package digest_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/acrsim/digest"
	"github.com/jetsetilly/acrsim/test"
)

func TestStream(t *testing.T) {
	var _ digest.Digest = digest.NewStream()

	a := digest.NewStream()
	b := digest.NewStream()

	data := bytes.Repeat([]byte{0x55, 0xaa, 0x00}, 2000)

	a.Write(data)
	for _, d := range data {
		b.WriteByte(d)
	}
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectEquality(t, len(a.Hash()), 40)

	// a single changed byte changes the hash
	data[1000] = 0x56
	c := digest.NewStream()
	c.Write(data)
	test.ExpectInequality(t, a.Hash(), c.Hash())

	// hash is stable when nothing more is written
	h := c.Hash()
	test.ExpectEquality(t, c.Hash(), h)

	c.ResetDigest()
	test.ExpectEquality(t, c.Hash(), "0000000000000000000000000000000000000000")
}
