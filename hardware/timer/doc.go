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

// Package timer implements the timer/counter peripherals of the simulated
// microcontroller.
//
// A Channel is a prescaled 8 or 16 bit counter with two compare registers and
// an overflow. When a compare register matches the counter, or the counter
// wraps, the corresponding flag in the TIFR register is set. If the
// interrupt for the flag is enabled in the TIMSK register then the handler is
// called and the flag is cleared. Flags for disabled interrupts remain set
// until they are cleared by the device under test.
//
// Timer1 has an input capture unit (see Capture) and channel A of Timer2 has
// a compare output unit (see Output).
package timer
