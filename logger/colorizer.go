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

package logger

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	penRed    = "\033[31m"
	penNormal = "\033[0m"
)

// Colorizer is an io.Writer that colours lines containing any of the
// highlight strings. Lines are written unchanged if the underlying writer is
// not a terminal.
type Colorizer struct {
	out       io.Writer
	color     bool
	highlight [][]byte
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type. Colouring is only enabled if out is an *os.File connected to a
// terminal.
func NewColorizer(out io.Writer, highlight ...string) *Colorizer {
	c := &Colorizer{out: out}
	if f, ok := out.(*os.File); ok {
		c.color = term.IsTerminal(int(f.Fd()))
	}
	for _, h := range highlight {
		c.highlight = append(c.highlight, []byte(h))
	}
	return c
}

// IsTerminal returns true if the colorizer is writing to a terminal.
func (c *Colorizer) IsTerminal() bool {
	return c.color
}

// Write implements the io.Writer interface.
func (c *Colorizer) Write(p []byte) (int, error) {
	if !c.color {
		return c.out.Write(p)
	}

	for _, h := range c.highlight {
		if bytes.Contains(p, h) {
			line := bytes.TrimRight(p, "\n")
			b := make([]byte, 0, len(p)+len(penRed)+len(penNormal))
			b = append(b, penRed...)
			b = append(b, line...)
			b = append(b, penNormal...)
			b = append(b, p[len(line):]...)
			if _, err := c.out.Write(b); err != nil {
				return 0, err
			}
			return len(p), nil
		}
	}

	return c.out.Write(p)
}
