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

package clocks_test

import (
	"testing"

	"github.com/jetsetilly/acrsim/hardware/clocks"
	"github.com/jetsetilly/acrsim/test"
)

func TestFrequency(t *testing.T) {
	test.ExpectEquality(t, clocks.Frequency(clocks.DefaultScale), uint32(1000000))
	test.ExpectEquality(t, clocks.Frequency(1), uint32(8000000))
	test.ExpectEquality(t, clocks.Frequency(0), uint32(1000000))
	test.ExpectEquality(t, clocks.Seconds(500000, 1000000), 0.5)
}
