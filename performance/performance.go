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

package performance

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/hardware"
)

// Check the performance of the emulator. The machine should already have a
// program loaded. Emulation runs without any speed limit for the specified
// duration.
func Check(output io.Writer, c *hardware.Chip8, duration time.Duration, profile Profile) error {
	if duration <= 0 {
		return curated.Errorf("performance: duration must be positive (%v)", duration)
	}

	startFrame := c.Frames
	startInstructions := c.Instructions

	var elapsed time.Duration

	runner := func() error {
		timesUp := make(chan bool, 1)
		tmr := time.AfterFunc(duration, func() {
			timesUp <- true
		})
		defer tmr.Stop()

		start := time.Now()
		defer func() {
			elapsed = time.Since(start)
		}()

		return c.RunForFrameCount(math.MaxInt, func(_ int) (govern.State, error) {
			select {
			case <-timesUp:
				return govern.Ending, nil
			default:
			}
			return govern.Running, nil
		})
	}

	if err := RunProfiler(profile, "performance", runner); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := c.Frames - startFrame
	numInstructions := c.Instructions - startInstructions

	fps, accuracy := CalcFPS(numFrames, elapsed.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, elapsed.Seconds(), accuracy)
	fmt.Fprintf(output, "%.0f instructions per second\n", float64(numInstructions)/elapsed.Seconds())

	return nil
}
