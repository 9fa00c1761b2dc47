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

import (
	"fmt"
	"io"
)

// HexDump writes bytes in rows of sixteen. Each row is prefixed with the
// offset of the first byte in the row and there is an additional space after
// the eighth byte.
type HexDump struct {
	w io.Writer
	n int
}

// NewHexDump is the preferred method of initialisation for the HexDump type.
func NewHexDump(w io.Writer) *HexDump {
	return &HexDump{w: w}
}

// WriteByte implements the io.ByteWriter interface.
func (h *HexDump) WriteByte(b byte) error {
	var s string
	if h.n&15 == 0 {
		s = fmt.Sprintf("%04X:", h.n)
	}
	s = fmt.Sprintf("%s %02X", s, b)

	h.n++
	switch h.n & 15 {
	case 8:
		s += " "
	case 0:
		s += "\n"
	}

	_, err := io.WriteString(h.w, s)
	return err
}

// Finish terminates an incomplete row.
func (h *HexDump) Finish() error {
	if h.n&15 == 0 {
		return nil
	}
	_, err := io.WriteString(h.w, "\n")
	return err
}
