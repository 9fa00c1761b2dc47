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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// formatting pattern and placeholder values in the same way as fmt.Errorf().
//
// The pattern is remembered and is what distinguishes one kind of curated
// error from another. Packages that produce errors which the caller is
// expected to act upon export the pattern as a const string. For example,
// the serial package exports:
//
//	const FramingError = "serial: framing error (t=%.6f)"
//
// and the caller checks for it with:
//
//	if curated.Is(err, serial.FramingError) {
//		...
//	}
//
// The Has() function is similar but checks if the pattern occurs anywhere in
// the chain of wrapped curated errors:
//
//	err := curated.Errorf("soundload: %v", decodeErr)
//	if curated.Has(err, serial.ComparisonMismatch) {
//		...
//	}
//
// The Error() implementation normalises the message so that a chain doesn't
// contain duplicate adjacent parts. Parts are separated by the sub-string
// ": ". This means that a function can wrap an error with its own prefix
// without worrying that the error was created with the same prefix.
//
//	soundload: soundload: unsupported format: bad RIFF marker
//
// is printed as:
//
//	soundload: unsupported format: bad RIFF marker
package curated
