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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/acrsim/performance/limiter"
	"github.com/jetsetilly/acrsim/test"
)

func TestLimiter(t *testing.T) {
	lim := limiter.NewLimiter(50)
	defer lim.Stop()
	test.ExpectEquality(t, lim.Rate(), 50)

	// the first trigger is immediate
	lim.Wait()

	start := time.Now()
	for i := 0; i < 10; i++ {
		lim.Wait()
	}
	elapsed := time.Since(start)

	// ten intervals of 20ms
	test.ExpectSuccess(t, elapsed >= 150*time.Millisecond, elapsed)
	test.ExpectSuccess(t, elapsed < 2*time.Second, elapsed)
}

func TestMinimumRate(t *testing.T) {
	lim := limiter.NewLimiter(0)
	defer lim.Stop()
	test.ExpectEquality(t, lim.Rate(), 1)
}
