// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package timer_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/test"
)

func TestTimer(t *testing.T) {
	tmr := timer.NewTimer("DT")
	test.ExpectEquality(t, tmr.Active(), false)

	// ticking a zero timer has no effect
	test.ExpectEquality(t, tmr.Tick(), false)
	test.ExpectEquality(t, tmr.Value(), uint8(0))

	tmr.Set(3)
	test.ExpectEquality(t, tmr.String(), "DT=03")
	test.ExpectEquality(t, tmr.Tick(), false)
	test.ExpectEquality(t, tmr.Tick(), false)
	test.ExpectEquality(t, tmr.Tick(), true)
	test.ExpectEquality(t, tmr.Value(), uint8(0))

	// floor at zero
	for i := 0; i < 10; i++ {
		tmr.Tick()
	}
	test.ExpectEquality(t, tmr.Value(), uint8(0))

	tmr.Set(255)
	tmr.Reset()
	test.ExpectEquality(t, tmr.Active(), false)
}
