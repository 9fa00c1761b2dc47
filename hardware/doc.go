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

// Package hardware is the base package for the microcontroller simulation.
// The MCU type collects the register file, the three timers, the input
// capture and compare output units and the bus, and connects them to the
// device under test.
//
// The simulation is advanced one tick at a time with the Step() function.
// For each tick the timers are stepped in a fixed order (Timer0, Timer1,
// Timer2), interrupts are dispatched as required, the device's Loop()
// function is called and finally the compare output is updated.
//
// The simulation is single threaded and deterministic. Interrupt handlers are
// called synchronously.
package hardware
