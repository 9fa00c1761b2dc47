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

// Package serial decodes the byte stream produced by the device under test.
// The Decoder polls the status register of the bus and reads the data
// register whenever a byte is ready. Received bytes are optionally written
// as a hex dump, to an output file, to a digest and checked against a
// reference stream with a Comparator.
//
// Errors are returned as curated errors. The caller decides whether to
// continue after an error.
package serial

// Error patterns. Every pattern includes the simulated time of the error.
const (
	FramingError       = "serial: framing error (t=%.6f)"
	ParityError        = "serial: parity error (t=%.6f)"
	ComparisonMismatch = "serial: compare data file difference (t=%.6f): expected %02X, found %02X"
	NoData             = "serial: did not read any data"
)
