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

// Package acr is a reference implementation of the cassette interface
// firmware. It is a device.Device and talks to the simulation only through
// the register file, the bus and the timer interrupts.
//
// Transmission uses Timer2 in clear on compare match mode. The compare match
// occurs every 16µs (one unit) and the interrupt handler decides for each
// match whether the compare output should toggle. The length of each half
// period is chosen according to the bit being transmitted.
//
// Reception uses the input capture unit of Timer1, counting at 1MHz. The
// capture edge is swapped after every capture so that every half period of
// the incoming signal is measured. Half periods are classified as mark
// (short) or space (long) and integrated over each bit cell.
//
// Three tape formats are supported: MITS, CUTS and KCS. The format is chosen
// by writing to the control register:
//
//	0x00	MITS
//	0x80	CUTS
//	0xa0	KCS
//
// Legacy mode (PINB bit 2 low) forces the MITS format. Skew compensation
// (PINC bit 5 low) adjusts the receiver's bit timing according to the
// measured frequency of the carrier.
package acr
