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

import (
	"fmt"
	"io"

	"github.com/jetsetilly/acrsim/curated"
	"github.com/jetsetilly/acrsim/digest"
	"github.com/jetsetilly/acrsim/hardware/bus"
	"github.com/jetsetilly/acrsim/logger"
)

// Host is the view of the simulation required by the Decoder. It is
// satisfied by the hardware.MCU type.
type Host interface {
	Time() float64
}

// Register is the part of the bus required by the Decoder. It is satisfied by
// the bus.Bus type.
type Register interface {
	Read(sel bus.Selector) uint8
}

// Decoder polls the bus for received bytes.
type Decoder struct {
	perm logger.Permission
	host Host
	reg  Register

	dump   *HexDump
	output io.Writer
	dig    *digest.Stream
	cmp    *Comparator

	received int
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
// The permission argument is used when logging, which happens when the end of
// the comparison stream has been reached.
func NewDecoder(perm logger.Permission, host Host, reg Register) *Decoder {
	return &Decoder{
		perm: perm,
		host: host,
		reg:  reg,
	}
}

// SetHexDump writes received bytes to the writer as a hex dump. A nil value
// stops the hex dump.
func (dec *Decoder) SetHexDump(w io.Writer) {
	if w == nil {
		dec.dump = nil
		return
	}
	dec.dump = NewHexDump(w)
}

// SetOutput writes received bytes to the writer. A nil value stops the
// output.
func (dec *Decoder) SetOutput(w io.Writer) {
	dec.output = w
}

// SetDigest adds received bytes to the digest. A nil value stops the digest.
func (dec *Decoder) SetDigest(dig *digest.Stream) {
	dec.dig = dig
}

// SetComparator checks received bytes against the comparator's reference
// stream. A nil value stops the comparison.
func (dec *Decoder) SetComparator(cmp *Comparator) {
	dec.cmp = cmp
}

// Comparator returns the current comparator. Can be nil.
func (dec *Decoder) Comparator() *Comparator {
	return dec.cmp
}

// Received returns the number of bytes received without error.
func (dec *Decoder) Received() int {
	return dec.received
}

// Poll the status register and read the data register if a byte is ready.
// Returns a curated error for framing and parity errors, and if the received
// byte doesn't match the comparison stream.
func (dec *Decoder) Poll() error {
	status := Status(dec.reg.Read(bus.Control))

	if status.FramingError() {
		return curated.Errorf(FramingError, dec.host.Time())
	}
	if status.ParityError() {
		return curated.Errorf(ParityError, dec.host.Time())
	}
	if !status.Ready() {
		return nil
	}

	data := dec.reg.Read(bus.Data)

	if dec.dump != nil {
		if err := dec.dump.WriteByte(data); err != nil {
			return curated.Errorf("serial: %v", err)
		}
	}

	if dec.output != nil {
		if _, err := dec.output.Write([]byte{data}); err != nil {
			return curated.Errorf("serial: %v", err)
		}
	}

	if dec.dig != nil {
		if err := dec.dig.WriteByte(data); err != nil {
			return curated.Errorf("serial: %v", err)
		}
	}

	if dec.cmp != nil && !dec.cmp.Ended() {
		expected, ok := dec.cmp.Compare(data)
		if dec.cmp.Ended() {
			logger.Log(dec.perm, "serial", "compare data file end-of-data")
		} else if !ok {
			return curated.Errorf(ComparisonMismatch, dec.host.Time(), expected, data)
		}
	}

	dec.received++

	return nil
}

// Finish completes any pending output. It should be called once the input has
// been exhausted.
func (dec *Decoder) Finish() error {
	if dec.dump != nil {
		return dec.dump.Finish()
	}
	return nil
}

// Summary writes the result of the comparison. Returns a NoData error if no
// bytes have been read from the comparison stream.
func (dec *Decoder) Summary(w io.Writer) error {
	if dec.cmp == nil {
		return nil
	}

	if _, err := io.WriteString(w, "No differences found!\n"); err != nil {
		return curated.Errorf("serial: %v", err)
	}

	if dec.cmp.Consumed() == 0 && !dec.cmp.Ended() {
		return curated.Errorf(NoData)
	}

	if n := dec.cmp.Remaining(); n > 0 {
		if _, err := fmt.Fprintf(w, "Compare data file has %d bytes of data left.\n", n); err != nil {
			return curated.Errorf("serial: %v", err)
		}
	}

	return nil
}
