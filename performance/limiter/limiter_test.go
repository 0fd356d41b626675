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

package limiter_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/test"
)

func TestLimiter(t *testing.T) {
	_, err := limiter.NewFPSLimiter(0)
	test.ExpectFailure(t, err)

	lim, err := limiter.NewFPSLimiter(100)
	test.DemandSuccess(t, err)
	defer lim.Stop()
	test.ExpectEquality(t, lim.String(), "100 fps")

	start := time.Now()
	for i := 0; i < 5; i++ {
		lim.Wait()
	}

	// five frames at 100fps can't be quicker than 40ms. the first tick
	// arrives after 10ms
	test.ExpectSuccess(t, time.Since(start) >= 40*time.Millisecond)
}

func TestWaitContext(t *testing.T) {
	lim, err := limiter.NewFPSLimiter(1)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = lim.WaitContext(ctx)
	test.ExpectSuccess(t, errors.Is(err, context.Canceled))
	test.ExpectEquality(t, lim.HasWaited(), false)
}
