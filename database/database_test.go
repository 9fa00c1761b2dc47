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

package database_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/acrsim/database"
	"github.com/jetsetilly/acrsim/test"
)

type tape struct {
	name    string
	cleaned *int
}

func (t tape) ID() string {
	return "tape"
}

func (t tape) String() string {
	return t.name
}

func (t tape) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{t.name}, nil
}

func (t tape) CleanUp() error {
	if t.cleaned != nil {
		*t.cleaned++
	}
	return nil
}

func initSession(db *database.Session) error {
	return db.AddEntryType("tape", func(fields database.SerialisedEntry) (database.Entry, error) {
		if len(fields) != 1 {
			return nil, fmt.Errorf("wrong number of fields")
		}
		return tape{name: fields[0]}, nil
	})
}

func TestCreate(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "db")

	// the file must exist unless the database is being created
	_, err := database.StartSession(dbFile, database.ActivityReading, initSession)
	test.ExpectFailure(t, err)

	db, err := database.StartSession(dbFile, database.ActivityCreating, initSession)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, db.NumEntries(), 0)

	key, err := db.Add(tape{name: "hello, world"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, key, 0)
	key, err = db.Add(tape{name: "basic"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, key, 1)
	test.DemandSuccess(t, db.EndSession(true))

	data, err := os.ReadFile(dbFile)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "0,tape,\"hello, world\"\n1,tape,basic\n")

	db, err = database.StartSession(dbFile, database.ActivityReading, initSession)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, db.NumEntries(), 2)

	ent, err := db.Get(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ent.String(), "hello, world")

	_, err = db.Get(2)
	test.ExpectFailure(t, err)

	// reading sessions cannot change the database
	_, err = db.Add(tape{name: "forth"})
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, db.Delete(0))
	test.ExpectSuccess(t, db.EndSession(true))
}

func TestDelete(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "db")

	var cleaned int

	db, err := database.StartSession(dbFile, database.ActivityCreating, initSession)
	test.DemandSuccess(t, err)
	for _, n := range []string{"a", "b", "c"} {
		_, err := db.Add(tape{name: n, cleaned: &cleaned})
		test.DemandSuccess(t, err)
	}

	test.ExpectSuccess(t, db.Delete(1))
	test.ExpectEquality(t, cleaned, 1)
	test.ExpectFailure(t, db.Delete(1))
	test.ExpectEquality(t, fmt.Sprint(db.SortedKeyList()), "[0 2]")

	// the lowest free key is reused
	key, err := db.Add(tape{name: "d"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, key, 1)
	test.DemandSuccess(t, db.EndSession(true))
}

func TestList(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(dbFile, database.ActivityCreating, initSession)
	test.DemandSuccess(t, err)

	w := &test.CompareWriter{}
	test.ExpectSuccess(t, db.List(w))
	test.ExpectSuccess(t, w.Compare("database is empty\n"))

	_, _ = db.Add(tape{name: "a"})
	_, _ = db.Add(tape{name: "b"})

	w.Clear()
	test.ExpectSuccess(t, db.List(w))
	test.ExpectSuccess(t, w.Compare("000 a\n001 b\nTotal: 2\n"))
}

func TestSelect(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(dbFile, database.ActivityCreating, initSession)
	test.DemandSuccess(t, err)
	for _, n := range []string{"a", "b", "c", "d"} {
		_, _ = db.Add(tape{name: n})
	}

	var s strings.Builder
	collect := func(key int, ent database.Entry) (bool, error) {
		s.WriteString(ent.String())
		return true, nil
	}

	_, err = db.SelectAll(collect)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.String(), "abcd")

	// missing keys are ignored
	s.Reset()
	_, err = db.SelectKeys(collect, 1, 3, 10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.String(), "bd")

	// selection stops when the callback returns false
	ent, err := db.SelectAll(func(key int, ent database.Entry) (bool, error) {
		return key < 2, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ent.String(), "c")

	// the entry that caused an error is returned
	ent, err = db.SelectAll(func(key int, ent database.Entry) (bool, error) {
		if key == 1 {
			return false, fmt.Errorf("stop")
		}
		return true, nil
	})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, ent.String(), "b")
}

func TestInvalidFile(t *testing.T) {
	dir := t.TempDir()

	for _, s := range []string{
		"0\n",
		"x,tape,a\n",
		"0,tape,a\n0,tape,b\n",
		"0,video,a\n",
		"0,tape,a,b\n",
	} {
		dbFile := filepath.Join(dir, "db")
		test.DemandSuccess(t, os.WriteFile(dbFile, []byte(s), 0o600))
		_, err := database.StartSession(dbFile, database.ActivityModifying, initSession)
		test.ExpectFailure(t, err)
	}
}

func TestDuplicateEntryType(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "db")
	_, err := database.StartSession(dbFile, database.ActivityCreating, func(db *database.Session) error {
		if err := initSession(db); err != nil {
			return err
		}
		return initSession(db)
	})
	test.ExpectFailure(t, err)
}
