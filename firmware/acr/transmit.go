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

import "github.com/jetsetilly/acrsim/hardware/registers"

// a frame is a start bit, eight data bits (least significant bit first) and
// two stop bits
const frameBits = 11

type transmitter struct {
	fw *Firmware

	// holding register
	data uint8
	full bool

	// shift register. bit zero is the next bit to be sent
	shift   uint16
	bits    int
	sending bool

	// position in the current half period and in the current bit cell,
	// measured in units
	halfPos int
	halfLen int
	cellPos int
}

func (tx *transmitter) hold(v uint8) {
	tx.data = v
	tx.full = true
}

// the bit currently being sent. the line idles at mark
func (tx *transmitter) bit() bool {
	if !tx.sending {
		return true
	}
	return tx.shift&0x01 == 0x01
}

// called at the end of each bit cell
func (tx *transmitter) advance() {
	if tx.sending {
		tx.shift >>= 1
		tx.bits--
		if tx.bits > 0 {
			return
		}
		tx.sending = false
	}

	if tx.full {
		tx.shift = uint16(tx.data)<<1 | 0x600
		tx.bits = frameBits
		tx.sending = true
		tx.full = false
	}
}

// called on every compare match of Timer2
func (tx *transmitter) tick() {
	f := tx.fw.format
	regs := tx.fw.regs

	tx.halfPos++
	tx.cellPos++

	if tx.halfPos < tx.halfLen {
		regs.TCCR2A &^= registers.COM2A1 | registers.COM2A0
		return
	}

	// toggle on this match
	regs.TCCR2A = regs.TCCR2A&^registers.COM2A1 | registers.COM2A0
	tx.halfPos = 0

	// the remainder of a bit cell that doesn't divide evenly into half
	// periods is carried into the next cell
	for tx.cellPos >= f.Cell {
		tx.cellPos -= f.Cell
		tx.advance()
	}

	if tx.bit() {
		tx.halfLen = f.Mark
	} else {
		tx.halfLen = f.Space
	}
}
