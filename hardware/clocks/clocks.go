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

// Package clocks defines the constant values that define the speed of the
// microcontroller clock.
//
// The simulated clock is the CPU clock divided by a clock scale. With the
// default scale of 8 the simulated clock runs at 1MHz, which is fast enough
// to resolve the timing of the cassette signal and slow enough to simulate
// several minutes of tape in a reasonable time.
package clocks

// CPU is the frequency of the microcontroller's system clock in Hz.
const CPU = 8000000

// DefaultScale is the default divisor applied to the CPU clock.
const DefaultScale = 8

// Frequency returns the simulated clock frequency in Hz for the clock scale.
func Frequency(scale int) uint32 {
	if scale <= 0 {
		scale = DefaultScale
	}
	return uint32(CPU / scale)
}

// Seconds converts a tick count at the clock frequency into seconds.
func Seconds(ticks uint32, frequency uint32) float64 {
	return float64(ticks) / float64(frequency)
}
