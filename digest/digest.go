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

// Package digest produces a cryptographic hash of a byte stream. The hash
// can be used to compare the output of one simulation with the output of a
// subsequent simulation. If the hash differs then something has changed.
//
// The simulator uses it for the bytes decoded from a tape and for the PCM
// samples of a generated WAV file.
package digest

// Digest implementations return a cryptographic hash in response to a Hash()
// request.
type Digest interface {
	Hash() string
	ResetDigest()
}
