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

// Package database is a simple way of storing arbitrary entry types in a flat
// file.
//
// Use of a database requires a session. A session is started with
// StartSession() and ended with EndSession(). For example (error handling
// removed for clarity):
//
//	db, _ := database.StartSession(dbPath, database.ActivityCreating, initSession)
//	defer db.EndSession(true)
//
// The activity argument says what will happen during the session. If the
// database file doesn't exist then ActivityCreating will create it. Otherwise
// ActivityCreating is the same as ActivityModifying. A session started with
// ActivityReading cannot be changed.
//
// The initialisation function registers the entry types that the database
// might contain:
//
//	func initSession(db *database.Session) error {
//		return db.AddEntryType("decode", deserialiseDecode)
//	}
//
// When the database is read, the deserialiser registered for an entry's ID
// is called with the fields of that entry. The deserialiser returns a value
// that satisfies the Entry interface.
//
// Each entry is stored on a single line of the file. The line is a CSV
// record of the key, the entry ID and the fields returned by the entry's
// Serialise() function.
package database
