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

package timer

import (
	"github.com/jetsetilly/acrsim/hardware/registers"
)

// Output is the compare output unit of Timer2 channel A.
type Output struct {
	regs *registers.File

	// the current level of the output pin
	Level bool
}

// NewOutput is the preferred method of initialisation for the Output type.
func NewOutput(regs *registers.File) *Output {
	return &Output{
		regs: regs,
	}
}

// Update the output level. Should be called once per tick with the result of
// the Step() function of Timer2. A forced compare (FOC2A) is treated the same
// as a compare match and is cleared.
//
// A channel B (OCR2B) match sets its flag but never changes the output.
func (o *Output) Update(matchA bool) {
	if o.regs.TCCR2B&registers.FOC2A == 0 && !matchA {
		return
	}
	o.regs.TCCR2B &^= registers.FOC2A

	switch o.regs.TCCR2A & (registers.COM2A1 | registers.COM2A0) {
	case registers.COM2A1 | registers.COM2A0:
		o.Level = true
	case registers.COM2A1:
		o.Level = false
	case registers.COM2A0:
		o.Level = !o.Level
	}
}
