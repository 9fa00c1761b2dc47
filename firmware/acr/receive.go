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

type rxState int

const (
	rxNoCarrier rxState = iota
	rxIdle
	rxFrame
)

// the carrier is lost if there is no edge for this many microseconds
const carrierTimeout = 2000

// receiver measures the half periods of the incoming signal. all times are
// in microseconds, which is the rate at which Timer1 counts.
type receiver struct {
	fw *Firmware

	state rxState

	// value of ICR1 at the most recent edge and the time of that edge
	last uint16
	now  uint32

	// consecutive mark half periods seen while waiting for the carrier
	good    int
	goodSum uint32

	// bit timing. adjusted by skew compensation when the carrier is detected
	cell      uint32
	threshold uint32

	// the bit cell being integrated
	cellEnd uint32
	cellIdx int
	mark    uint32
	space   uint32
	data    uint8
}

func (rx *receiver) reset() {
	rx.state = rxNoCarrier
	rx.good = 0
	rx.goodSum = 0

	f := rx.fw.format
	rx.cell = uint32(f.Cell * UnitMicroseconds)
	rx.threshold = uint32(f.Threshold)

	if rx.fw.regs != nil {
		rx.fw.setLED(false)
	}
}

// called from the input capture interrupt
func (rx *receiver) edge(icr uint16) {
	h := uint32(icr - rx.last)
	rx.last = icr

	start := rx.now
	rx.now += h

	short := h < rx.threshold

	switch rx.state {
	case rxNoCarrier:
		if !short {
			rx.good = 0
			rx.goodSum = 0
			return
		}
		rx.good++
		rx.goodSum += h
		if rx.good >= rx.fw.minGoodPulses {
			rx.detect()
		}

	case rxIdle:
		// a space half period is the beginning of the start bit
		if short {
			return
		}
		rx.state = rxFrame
		rx.cellEnd = start + rx.cell
		rx.cellIdx = 0
		rx.mark = 0
		rx.space = 0
		rx.data = 0
		rx.integrate(start, rx.now, short)

	case rxFrame:
		rx.integrate(start, rx.now, short)
	}
}

func (rx *receiver) detect() {
	rx.state = rxIdle
	rx.fw.setLED(true)

	if !rx.fw.skew {
		return
	}

	// scale bit timing by the ratio of the measured mark half period to the
	// nominal mark half period
	f := rx.fw.format
	nominal := uint32(f.Mark*UnitMicroseconds) * uint32(rx.good)
	rx.cell = uint32(uint64(f.Cell*UnitMicroseconds) * uint64(rx.goodSum) / uint64(nominal))
	rx.threshold = uint32(uint64(f.Threshold) * uint64(rx.goodSum) / uint64(nominal))
}

// add the half period between s and e to the bit cells it overlaps
func (rx *receiver) integrate(s uint32, e uint32, short bool) {
	for rx.state == rxFrame && s < e {
		end := e
		if end > rx.cellEnd {
			end = rx.cellEnd
		}
		if short {
			rx.mark += end - s
		} else {
			rx.space += end - s
		}
		s = end
		if s == rx.cellEnd {
			rx.finishCell()
		}
	}
}

func (rx *receiver) finishCell() {
	bit := rx.mark > rx.space
	rx.mark = 0
	rx.space = 0

	switch {
	case rx.cellIdx == 0:
		// false start
		if bit {
			rx.state = rxIdle
			return
		}
	case rx.cellIdx <= 8:
		if bit {
			rx.data |= 1 << (rx.cellIdx - 1)
		}
	default:
		if bit {
			rx.fw.push(rx.data)
		} else {
			rx.fw.framing = true
		}
		rx.state = rxIdle
		return
	}

	rx.cellIdx++
	rx.cellEnd += rx.cell
}

// called once per tick
func (rx *receiver) timeout() {
	if rx.state == rxNoCarrier {
		return
	}
	if rx.fw.regs.TCNT1-rx.last > carrierTimeout {
		rx.state = rxNoCarrier
		rx.good = 0
		rx.goodSum = 0
		rx.fw.setLED(false)
	}
}
