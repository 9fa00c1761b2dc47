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

package database

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/jetsetilly/acrsim/curated"
)

// Activity describes what will happen during a session.
type Activity int

// List of valid Activity values.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

// arbitrary maximum number of entries
const maxEntries = 1000

// the key and the entry ID precede the entry's fields
const numLeaderFields = 2

// Session of a database. Created with StartSession().
type Session struct {
	dbfile   string
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]Deserialiser
}

// StartSession reads the database file and deserialises every entry. The
// init function should register the entry types with AddEntryType().
func StartSession(dbfile string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		dbfile:     dbfile,
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]Deserialiser),
	}

	if init != nil {
		if err := init(db); err != nil {
			return nil, curated.Errorf("database: %v", err)
		}
	}

	f, err := os.Open(dbfile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && activity == ActivityCreating {
			return db, nil
		}
		return nil, curated.Errorf("database: %v", err)
	}
	defer f.Close()

	if err := db.read(f); err != nil {
		return nil, err
	}

	return db, nil
}

func (db *Session) read(r io.Reader) error {
	rd := csv.NewReader(r)
	rd.FieldsPerRecord = -1

	for {
		rec, err := rd.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return curated.Errorf("database: %v", err)
		}

		if len(rec) < numLeaderFields {
			return curated.Errorf("database: invalid entry: %v", rec)
		}

		key, err := strconv.Atoi(rec[0])
		if err != nil {
			return curated.Errorf("database: invalid key: %s", rec[0])
		}
		if _, ok := db.entries[key]; ok {
			return curated.Errorf("database: duplicate key: %d", key)
		}

		des, ok := db.entryTypes[rec[1]]
		if !ok {
			return curated.Errorf("database: unrecognised entry type: %s", rec[1])
		}

		ent, err := des(rec[numLeaderFields:])
		if err != nil {
			return curated.Errorf("database: %v", err)
		}

		db.entries[key] = ent
	}
}

// EndSession closes the session. If commit is true and the session activity
// allows it, the entries are written to the database file.
func (db *Session) EndSession(commit bool) error {
	if !commit || db.activity == ActivityReading {
		return nil
	}

	f, err := os.Create(db.dbfile)
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	wr := csv.NewWriter(f)
	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]

		fields, err := ent.Serialise()
		if err != nil {
			f.Close()
			return curated.Errorf("database: %v", err)
		}

		rec := make([]string, 0, numLeaderFields+len(fields))
		rec = append(rec, strconv.Itoa(key), ent.ID())
		rec = append(rec, fields...)

		if err := wr.Write(rec); err != nil {
			f.Close()
			return curated.Errorf("database: %v", err)
		}
	}

	wr.Flush()
	if err := wr.Error(); err != nil {
		f.Close()
		return curated.Errorf("database: %v", err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf("database: %v", err)
	}

	return nil
}

// AddEntryType registers an entry type and the function that deserialises
// it.
func (db *Session) AddEntryType(id string, des Deserialiser) error {
	if _, ok := db.entryTypes[id]; ok {
		return curated.Errorf("database: duplicate entry type: %s", id)
	}
	db.entryTypes[id] = des
	return nil
}

// NumEntries returns the number of entries in the database.
func (db *Session) NumEntries() int {
	return len(db.entries)
}

// SortedKeyList returns a sorted list of database keys.
func (db *Session) SortedKeyList() []int {
	keyList := make([]int, 0, len(db.entries))
	for k := range db.entries {
		keyList = append(keyList, k)
	}
	sort.Ints(keyList)
	return keyList
}

// List the entries in key order.
func (db *Session) List(output io.Writer) error {
	if db.NumEntries() == 0 {
		_, err := io.WriteString(output, "database is empty\n")
		return err
	}

	for _, key := range db.SortedKeyList() {
		if _, err := fmt.Fprintf(output, "%03d %s\n", key, db.entries[key]); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(output, "Total: %d\n", db.NumEntries())
	return err
}

// Add an entry to the database. The entry is given the lowest unused key,
// which is returned.
func (db *Session) Add(ent Entry) (int, error) {
	if db.activity == ActivityReading {
		return 0, curated.Errorf("database: session is read only")
	}

	var key int
	for key = 0; key < maxEntries; key++ {
		if _, ok := db.entries[key]; !ok {
			break
		}
	}

	if key == maxEntries {
		return 0, curated.Errorf("database: maximum entries exceeded (max %d)", maxEntries)
	}

	db.entries[key] = ent

	return key, nil
}

// Get the entry with the key.
func (db *Session) Get(key int) (Entry, error) {
	ent, ok := db.entries[key]
	if !ok {
		return nil, curated.Errorf("database: key not available (%d)", key)
	}
	return ent, nil
}

// Delete the entry with the key. The entry's CleanUp() function is called.
func (db *Session) Delete(key int) error {
	if db.activity == ActivityReading {
		return curated.Errorf("database: session is read only")
	}

	ent, ok := db.entries[key]
	if !ok {
		return curated.Errorf("database: key not available (%d)", key)
	}

	if err := ent.CleanUp(); err != nil {
		return curated.Errorf("database: %v", err)
	}

	delete(db.entries, key)

	return nil
}
