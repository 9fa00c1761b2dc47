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

package soundload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/acrsim/curated"
	"github.com/jetsetilly/acrsim/environment"
	"github.com/jetsetilly/acrsim/logger"
)

// CSVUnitsPerSecond is the resolution of the time column in a CSV file.
const CSVUnitsPerSecond = 10000000

// ReadCSV feeds a file of timed level changes into the simulation. Each
// record is a time and a level. The time of the first record is the time
// origin. Numbers can be written in any base accepted by strconv.ParseInt()
// with a base of zero.
func ReadCSV(env *environment.Environment, filename string, m Machine, p Poller) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf(FileOpenError, "CSV", err)
	}
	defer f.Close()

	logger.Logf(env, logTag, "csv: reading %s", filename)

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comment = '#'

	pl := poll{
		env: env,
		p:   p,
	}

	freq := int64(m.Frequency())

	var origin int64
	first := true

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return curated.Errorf(UnsupportedFileFormat, err)
		}

		line, _ := r.FieldPos(0)

		if len(rec) < 2 {
			return curated.Errorf(UnsupportedFileFormat, fmt.Sprintf("csv: line %d: expected two fields", line))
		}

		t, err := strconv.ParseInt(strings.TrimSpace(rec[0]), 0, 64)
		if err != nil {
			return curated.Errorf(UnsupportedFileFormat, fmt.Sprintf("csv: line %d: %v", line, err))
		}
		v, err := strconv.ParseInt(strings.TrimSpace(rec[1]), 0, 64)
		if err != nil {
			return curated.Errorf(UnsupportedFileFormat, fmt.Sprintf("csv: line %d: %v", line, err))
		}

		if first {
			first = false
			origin = t
			m.SetTimeOffset(float64(t) / CSVUnitsPerSecond)
		}

		d := t - origin
		if d < 0 {
			d = 0
		}

		m.RunUntil(uint32(d * freq / CSVUnitsPerSecond))
		m.FeedLevel(v != 0)

		if err := pl.poll(); err != nil {
			return err
		}
	}

	return pl.result()
}
