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

// Package random should be used in preference to the math/rand package when a
// random number is required inside the emulation. An instance of Random is
// given to the CPU when the emulation is created and is the only source of
// randomness for the RND instruction.
//
// A non-zero seed given to NewRandom() produces the same sequence of numbers
// every time. A seed of zero means the sequence is determined by a base seed
// taken from the clock when the program starts.
package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = time.Now().UnixNano()
}

// Random is a seeded random number generator. It satisfies the cpu.Random
// interface.
type Random struct {
	// use zero seed rather than the random base seed. the seed given to
	// NewRandom() is still used. set by NewRandom() for non-zero seeds
	ZeroSeed bool

	seed int64
	rnd  *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(seed int64) *Random {
	return &Random{
		ZeroSeed: seed != 0,
		seed:     seed,
	}
}

// the underlying generator is created on first use so that ZeroSeed can be
// set after NewRandom()
func (rnd *Random) rand() *rand.Rand {
	if rnd.rnd == nil {
		s := rnd.seed
		if !rnd.ZeroSeed {
			s += baseSeed
		}
		rnd.rnd = rand.New(rand.NewSource(s))
	}
	return rnd.rnd
}

// Reset restarts the sequence of random numbers.
func (rnd *Random) Reset() {
	rnd.rnd = nil
}

// Uint8 returns a uniformly distributed random byte.
func (rnd *Random) Uint8() uint8 {
	return uint8(rnd.rand().Intn(256))
}

// Intn returns a random number in the range [0, n).
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}
