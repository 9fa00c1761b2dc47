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

// SelectAll entries in the database, in key order. onSelect can be nil.
// Selection stops if onSelect returns false or an error.
//
// Returns the last entry selected. If an error occurred, the entry will be the
// one that caused the error.
func (db *Session) SelectAll(onSelect func(key int, ent Entry) (bool, error)) (Entry, error) {
	return db.SelectKeys(onSelect)
}

// SelectKeys selects entries with the specified keys. If the list of keys is
// empty then all entries are selected. Keys that are not in the database are
// ignored.
func (db *Session) SelectKeys(onSelect func(key int, ent Entry) (bool, error), keys ...int) (Entry, error) {
	if onSelect == nil {
		onSelect = func(_ int, _ Entry) (bool, error) { return true, nil }
	}

	keyList := keys
	if len(keys) == 0 {
		keyList = db.SortedKeyList()
	}

	var entry Entry

	for _, key := range keyList {
		ent, ok := db.entries[key]
		if !ok {
			continue
		}
		entry = ent

		cont, err := onSelect(key, ent)
		if err != nil {
			return entry, err
		}
		if !cont {
			break
		}
	}

	return entry, nil
}
