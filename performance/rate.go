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

package performance

// CalcRate returns the effective clock rate in MHz for the number of ticks
// run in duration seconds. The accuracy value is the rate as a percentage of
// the frequency of the simulated clock.
func CalcRate(frequency uint32, numTicks uint64, duration float64) (mhz float64, accuracy float64) {
	if duration <= 0 || frequency == 0 {
		return 0, 0
	}
	rate := float64(numTicks) / duration
	mhz = rate / 1000000
	accuracy = 100 * rate / float64(frequency)
	return mhz, accuracy
}
