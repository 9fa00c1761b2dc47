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

package regression

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/jetsetilly/acrsim/curated"
	"github.com/jetsetilly/acrsim/database"
)

// the directory, relative to the database file, in which the output of each
// new regression entry is saved
const dataDir = "data"

// Regressor represents the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. if newRegression
	// is true then the result of the test is stored in the entry and the
	// output is saved to a new file in outputDir
	regress(newRegression bool, outputDir string) (bool, error)

	// the file containing the output saved when the entry was added
	output() string
}

// when starting a database session we need to register what entries we will
// find in the database
func initDBSession(db *database.Session) error {
	if err := db.AddEntryType(decodeEntryID, deserialiseDecodeEntry); err != nil {
		return err
	}
	if err := db.AddEntryType(encodeEntryID, deserialiseEncodeEntry); err != nil {
		return err
	}
	return nil
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer, dbFile string) error {
	if output == nil {
		return curated.Errorf("regression: list: io.Writer should not be nil")
	}

	db, err := database.StartSession(dbFile, database.ActivityReading, initDBSession)
	if err != nil {
		return curated.Errorf("regression: list: %v", err)
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressDelete removes an entry from the regression database. The user is
// asked for confirmation through the confirmation reader unless it is nil.
func RegressDelete(output io.Writer, confirmation io.Reader, dbFile string, key string) error {
	if output == nil {
		return curated.Errorf("regression: delete: io.Writer should not be nil")
	}

	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf("regression: delete: invalid key [%s]", key)
	}

	db, err := database.StartSession(dbFile, database.ActivityModifying, initDBSession)
	if err != nil {
		return curated.Errorf("regression: delete: %v", err)
	}

	ent, err := db.Get(v)
	if err != nil {
		_ = db.EndSession(false)
		return curated.Errorf("regression: delete: %v", err)
	}

	if confirmation != nil {
		fmt.Fprintf(output, "%s\ndelete? (y/n): ", ent)

		confirm := make([]byte, 32)
		n, err := confirmation.Read(confirm)
		if err != nil && err != io.EOF {
			_ = db.EndSession(false)
			return curated.Errorf("regression: delete: %v", err)
		}

		if n == 0 || (confirm[0] != 'y' && confirm[0] != 'Y') {
			return db.EndSession(false)
		}
	}

	if err := db.Delete(v); err != nil {
		_ = db.EndSession(false)
		return curated.Errorf("regression: delete: %v", err)
	}

	fmt.Fprintf(output, "deleted test #%s from regression database\n", key)

	return db.EndSession(true)
}

// RegressAdd runs the regression entry and adds the result to the database.
func RegressAdd(output io.Writer, dbFile string, reg Regressor) error {
	if output == nil {
		return curated.Errorf("regression: add: io.Writer should not be nil")
	}

	db, err := database.StartSession(dbFile, database.ActivityCreating, initDBSession)
	if err != nil {
		return curated.Errorf("regression: add: %v", err)
	}

	outputDir := filepath.Join(filepath.Dir(dbFile), dataDir)
	if err := os.MkdirAll(outputDir, 0o700); err != nil {
		_ = db.EndSession(false)
		return curated.Errorf("regression: add: %v", err)
	}

	ok, err := reg.regress(true, outputDir)
	if !ok || err != nil {
		_ = reg.CleanUp()
		_ = db.EndSession(false)
		return curated.Errorf("regression: add: %v", err)
	}

	key, err := db.Add(reg)
	if err != nil {
		_ = reg.CleanUp()
		_ = db.EndSession(false)
		return curated.Errorf("regression: add: %v", err)
	}

	fmt.Fprintf(output, "added: %03d %s\n", key, reg)

	return db.EndSession(true)
}

// RegressRunTests runs the tests in the regression database. The filterKeys
// list specifies which entries to test. An empty list means that every entry
// should be tested.
//
// If failOnError is true then testing stops at the first entry that cannot
// be run.
func RegressRunTests(output io.Writer, dbFile string, verbose bool, failOnError bool, filterKeys []string) error {
	if output == nil {
		return curated.Errorf("regression: run: io.Writer should not be nil")
	}

	db, err := database.StartSession(dbFile, database.ActivityReading, initDBSession)
	if err != nil {
		return curated.Errorf("regression: run: %v", err)
	}
	defer db.EndSession(false)

	keys := make([]int, 0, len(filterKeys))
	for _, k := range filterKeys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return curated.Errorf("regression: run: invalid key [%s]", k)
		}
		if _, err := db.Get(v); err != nil {
			return curated.Errorf("regression: run: %v", err)
		}
		keys = append(keys, v)
	}
	sort.Ints(keys)

	numSucceed := 0
	numFail := 0
	numError := 0

	onSelect := func(key int, ent database.Entry) (bool, error) {
		reg, ok := ent.(Regressor)
		if !ok {
			return false, curated.Errorf("regression: run: entry %d is not a regression test", key)
		}

		ok, err := reg.regress(false, "")

		if err != nil {
			numError++
			fmt.Fprintf(output, "  ERROR: %03d %s\n", key, reg)
			if verbose {
				fmt.Fprintf(output, "  %v\n", err)
			}
			return !failOnError, nil
		}

		if !ok {
			numFail++
			fmt.Fprintf(output, "failure: %03d %s\n", key, reg)
			if verbose {
				fmt.Fprintf(output, "  expected output saved in %s\n", reg.output())
			}
			return true, nil
		}

		numSucceed++
		fmt.Fprintf(output, "succeed: %03d %s\n", key, reg)

		return true, nil
	}

	if _, err := db.SelectKeys(onSelect, keys...); err != nil {
		return err
	}

	numSkipped := db.NumEntries() - numSucceed - numFail - numError
	fmt.Fprintf(output, "regression tests: %d succeed, %d fail, %d skipped", numSucceed, numFail, numSkipped)
	if numError > 0 {
		fmt.Fprint(output, " [with errors]")
	}
	fmt.Fprint(output, "\n")

	return nil
}
