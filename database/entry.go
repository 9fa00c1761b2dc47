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

// SerialisedEntry is the representation of an entry's fields as stored in the
// database file.
type SerialisedEntry []string

// Deserialiser creates a new entry from the fields stored in the database.
type Deserialiser func(fields SerialisedEntry) (Entry, error)

// Entry is implemented by every type that can be stored in the database.
type Entry interface {
	// the string that identifies the entry type in the database
	ID() string

	// human readable summary of the entry
	String() string

	// the machine readable representation of the entry
	Serialise() (SerialisedEntry, error)

	// called when an entry is deleted from the database
	CleanUp() error
}
