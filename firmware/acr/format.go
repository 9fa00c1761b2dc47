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

package acr

import (
	"fmt"
	"strings"
)

// UnitMicroseconds is the length of a transmission unit. The transmitter can
// only toggle the output on a unit boundary.
const UnitMicroseconds = 16

// Format describes the modulation of a tape format. Mark, Space and Cell are
// measured in units.
type Format struct {
	Name string

	// length of a half period of the mark (1) and space (0) tones
	Mark  int
	Space int

	// length of a bit
	Cell int

	// half periods shorter than the threshold are classified as mark.
	// measured in microseconds
	Threshold int
}

// List of supported formats.
var (
	MITS = Format{Name: "MITS", Mark: 13, Space: 17, Cell: 208, Threshold: 240}
	CUTS = Format{Name: "CUTS", Mark: 26, Space: 52, Cell: 52, Threshold: 624}
	KCS  = Format{Name: "KCS", Mark: 13, Space: 26, Cell: 208, Threshold: 312}
)

// Control register values that select each format.
const (
	ControlMITS uint8 = 0x00
	ControlCUTS uint8 = 0x80
	ControlKCS  uint8 = 0xa0
)

// control register bits
const (
	controlFormat uint8 = 0x80
	controlKCS    uint8 = 0x20
)

// FormatFromControl returns the format selected by a control register value.
func FormatFromControl(v uint8) Format {
	if v&controlFormat == 0 {
		return MITS
	}
	if v&controlKCS == controlKCS {
		return KCS
	}
	return CUTS
}

// ParseFormat returns the format and the control register value for the
// format name. Names are not case sensitive.
func ParseFormat(name string) (Format, uint8, error) {
	switch {
	case strings.EqualFold(name, MITS.Name):
		return MITS, ControlMITS, nil
	case strings.EqualFold(name, CUTS.Name):
		return CUTS, ControlCUTS, nil
	case strings.EqualFold(name, KCS.Name):
		return KCS, ControlKCS, nil
	}
	return Format{}, 0, fmt.Errorf("unknown tape format specifier: %s", name)
}

func (f Format) String() string {
	return f.Name
}

// Baud returns the bit rate of the format.
func (f Format) Baud() int {
	return 1000000 / (f.Cell * UnitMicroseconds)
}

// MarkHz returns the frequency of the mark tone.
func (f Format) MarkHz() int {
	return 1000000 / (2 * f.Mark * UnitMicroseconds)
}

// SpaceHz returns the frequency of the space tone.
func (f Format) SpaceHz() int {
	return 1000000 / (2 * f.Space * UnitMicroseconds)
}
