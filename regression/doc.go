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

// Package regression facilitates the regression testing of the simulation.
// By adding test results to a database, the tests can be rerun automatically
// and checked for consistency.
//
// Two types of test are supported. The decode test loads a recording (WAV,
// MP3 or CSV) into the ACR firmware and saves the digest of the received
// bytes. The encode test generates the audio for a data file and saves the
// digest of the PCM samples.
//
// When a test is added, the output that the digest was taken from is saved
// alongside the database. If a test later fails the saved output can be
// compared with the output of the current simulation.
package regression
