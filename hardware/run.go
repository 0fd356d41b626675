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

package hardware

import (
	"context"
	"errors"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/performance/limiter"
)

// FramesPerSecond is the rate at which the timers are ticked.
const FramesPerSecond = 60

// Run sets the emulation running at FramesPerSecond. Each frame executes the
// number of instructions given by the CyclesPerFrame preference and ticks the
// timers once.
//
// The continueCheck function is called at the end of every frame and its
// return value decides what happens during the next frame:
//
//	govern.Running     run the next frame
//	govern.Paused      do nothing
//	govern.Stepping    execute a single instruction
//	govern.Ending      return from Run()
//
// Run() also returns when the context is cancelled, in which case the return
// value is nil, or when an instruction causes an error.
func (c *Chip8) Run(ctx context.Context, continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	lim, err := limiter.NewFPSLimiter(FramesPerSecond)
	if err != nil {
		return curated.Errorf("chip8: %v", err)
	}
	defer lim.Stop()

	state := govern.Running

	for state != govern.Ending {
		if err := lim.WaitContext(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		switch state {
		case govern.Running:
			_, err := c.RunFrame(c.Prefs.CyclesPerFrame.Get().(int))
			if err != nil {
				return err
			}
		case govern.Stepping:
			if err := c.Cycle(); err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf("chip8: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount runs the emulation for the specified number of frames, as
// quickly as possible. Useful for performance measurement and for tests.
//
// The continueCheck function is called after every frame with the number of
// frames executed so far. A return value of govern.Ending stops the run early.
func (c *Chip8) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	cycles := c.Prefs.CyclesPerFrame.Get().(int)

	state := govern.Running
	for frame := 1; frame <= numFrames && state != govern.Ending; frame++ {
		if _, err := c.RunFrame(cycles); err != nil {
			return err
		}

		var err error
		state, err = continueCheck(frame)
		if err != nil {
			return err
		}
	}

	return nil
}
