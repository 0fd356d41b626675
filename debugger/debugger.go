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

package debugger

import (
	"context"
	"errors"
	"sync"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jroimartin/gocui"
)

// DefaultMemvizFile is the file written to by the memviz command.
const DefaultMemvizFile = "gopher8_memviz.dot"

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	c   *hardware.Chip8
	dsm *disassembly.Disassembly

	// crit protects the emulation and the debugger state. the gui goroutine
	// and the emulation goroutine both access the emulation
	crit  sync.Mutex
	state govern.State

	// the most recent error returned by the emulation. reset when the
	// emulation is reset
	lastErr error

	// the file written to by the memviz command
	MemvizFile string

	g *gocui.Gui
}

// NewDebugger creates a new debugger for the CHIP-8. The emulation begins in
// the paused state.
func NewDebugger(c *hardware.Chip8) (*Debugger, error) {
	if c == nil {
		return nil, curated.Errorf("debugger: no emulation")
	}

	dbg := &Debugger{
		c:          c,
		state:      govern.Paused,
		MemvizFile: DefaultMemvizFile,
	}

	if err := dbg.disassemble(); err != nil {
		return nil, err
	}

	return dbg, nil
}

// AllowLogging implements the logger.Permission interface.
func (dbg *Debugger) AllowLogging() bool {
	return dbg.c.AllowLogging()
}

// State returns the current state of the emulation.
func (dbg *Debugger) State() govern.State {
	dbg.crit.Lock()
	defer dbg.crit.Unlock()
	return dbg.state
}

// disassemble the program currently in memory
func (dbg *Debugger) disassemble() error {
	n := dbg.c.Mem.ProgramSize()
	if n == 0 {
		dbg.dsm = nil
		return nil
	}

	dsm, err := disassembly.FromMemory(dbg.c.Mem, memory.ProgramOrigin, n)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	dbg.dsm = dsm

	return nil
}

// Start the debugger. Returns when the user quits or when the context is
// cancelled.
func (dbg *Debugger) Start(ctx context.Context) error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer g.Close()

	dbg.g = g
	g.SetManagerFunc(dbg.layout)

	if err := dbg.bindKeys(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := dbg.emulate(ctx); err != nil {
			logger.Log(dbg, "debugger", err.Error())
		}

		// make sure the gui quits if the context was cancelled by the caller
		g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
	}()

	err = g.MainLoop()
	cancel()
	wg.Wait()

	if err != nil && !errors.Is(err, gocui.ErrQuit) {
		return curated.Errorf("debugger: %v", err)
	}

	return nil
}

// emulate runs frames at the normal frame rate while the debugger is in the
// running state
func (dbg *Debugger) emulate(ctx context.Context) error {
	lim, err := limiter.NewFPSLimiter(hardware.FramesPerSecond)
	if err != nil {
		return err
	}
	defer lim.Stop()

	for {
		if err := lim.WaitContext(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		dbg.crit.Lock()
		running := dbg.state == govern.Running
		if running {
			dbg.runFrame()
		}
		dbg.crit.Unlock()

		if running {
			dbg.g.Update(func(*gocui.Gui) error { return nil })
		}
	}
}
