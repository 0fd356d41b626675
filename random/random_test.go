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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/test"
)

func TestZeroSeed(t *testing.T) {
	a := random.NewRandom(100)
	b := random.NewRandom(100)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Uint8(), b.Uint8())
	}
}

func TestReset(t *testing.T) {
	a := random.NewRandom(1)
	a.ZeroSeed = true

	first := make([]uint8, 16)
	for i := range first {
		first[i] = a.Uint8()
	}

	a.Reset()
	for i := range first {
		test.ExpectEquality(t, a.Uint8(), first[i], i)
	}
}

func TestIntn(t *testing.T) {
	a := random.NewRandom(0)
	for i := 0; i < 1000; i++ {
		v := a.Intn(16)
		test.ExpectSuccess(t, v >= 0 && v < 16)
	}
}

func TestNonZeroSeed(t *testing.T) {
	a := random.NewRandom(42)
	b := random.NewRandom(42)
	test.ExpectSuccess(t, a.ZeroSeed)

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Uint8(), b.Uint8(), i)
	}

	// zero seed takes the clock base seed
	z := random.NewRandom(0)
	test.ExpectFailure(t, z.ZeroSeed)
}
