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

import "strings"

// Status is the value of the status register.
type Status uint8

// Status register bits.
const (
	NotReady     Status = 0x01
	Parity       Status = 0x04
	Framing      Status = 0x08
	TransmitBusy Status = 0x80
)

// Ready returns true if a byte is waiting in the data register.
func (s Status) Ready() bool {
	return s&NotReady == 0
}

// FramingError returns true if the most recent byte was received with a
// framing error.
func (s Status) FramingError() bool {
	return s&Framing == Framing
}

// ParityError returns true if the most recent byte was received with a
// parity error.
func (s Status) ParityError() bool {
	return s&Parity == Parity
}

// Busy returns true if the transmitter can't accept another byte.
func (s Status) Busy() bool {
	return s&TransmitBusy == TransmitBusy
}

func (s Status) String() string {
	var f []string
	if s.Ready() {
		f = append(f, "ready")
	}
	if s.FramingError() {
		f = append(f, "framing")
	}
	if s.ParityError() {
		f = append(f, "parity")
	}
	if s.Busy() {
		f = append(f, "busy")
	}
	if len(f) == 0 {
		return "idle"
	}
	return strings.Join(f, " ")
}
