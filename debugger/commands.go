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
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jroimartin/gocui"
)

// Command is a single debugger command.
type Command int

// List of valid Command values.
const (
	CmdStep Command = iota
	CmdFrame
	CmdRun
	CmdTick
	CmdReset
	CmdMemviz
)

func (cmd Command) String() string {
	switch cmd {
	case CmdStep:
		return "step"
	case CmdFrame:
		return "frame"
	case CmdRun:
		return "run"
	case CmdTick:
		return "tick"
	case CmdReset:
		return "reset"
	case CmdMemviz:
		return "memviz"
	}
	return "unknown command"
}

// Execute a debugger command. Errors caused by the emulation are not
// returned. They pause the emulation and are shown in the registers view.
func (dbg *Debugger) Execute(cmd Command) error {
	dbg.crit.Lock()
	defer dbg.crit.Unlock()

	switch cmd {
	case CmdStep:
		dbg.state = govern.Paused
		dbg.step()
	case CmdFrame:
		dbg.state = govern.Paused
		dbg.runFrame()
	case CmdRun:
		if dbg.state == govern.Running {
			dbg.state = govern.Paused
		} else if !dbg.c.CPU.Killed {
			dbg.state = govern.Running
		}
	case CmdTick:
		dbg.c.Beep = dbg.c.TickTimers()
	case CmdReset:
		return dbg.reset()
	case CmdMemviz:
		return dbg.memviz()
	default:
		return curated.Errorf("debugger: unknown command (%d)", cmd)
	}

	return nil
}

// ToggleKey changes the pressed state of a keypad key.
func (dbg *Debugger) ToggleKey(key int) error {
	dbg.crit.Lock()
	defer dbg.crit.Unlock()

	pressed, err := dbg.c.CPU.Keys.Pressed(key)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	return dbg.c.SetKeyPress(key, !pressed)
}

// fault pauses the emulation and records the error. crit must be held
func (dbg *Debugger) fault(err error) {
	dbg.lastErr = err
	dbg.state = govern.Paused
}

// step a single instruction. crit must be held
func (dbg *Debugger) step() {
	if dbg.c.CPU.Killed {
		return
	}

	err := dbg.c.Cycle()
	if dbg.dsm != nil {
		dbg.dsm.UpdateEntry(dbg.c.CPU.LastResult)
	}
	if err != nil {
		dbg.fault(err)
	}
}

// runFrame is equivalent to hardware.RunFrame() except that the disassembly
// is updated after every instruction. crit must be held
func (dbg *Debugger) runFrame() {
	if dbg.c.CPU.Killed {
		dbg.state = govern.Paused
		return
	}

	cycles := dbg.c.Prefs.CyclesPerFrame.Get().(int)
	for i := 0; i < cycles; i++ {
		dbg.step()
		if dbg.c.CPU.Killed {
			return
		}
	}

	dbg.c.Beep = dbg.c.TickTimers()
	dbg.c.Frames++
}

// reset the emulation and reload the program. crit must be held
func (dbg *Debugger) reset() error {
	dbg.state = govern.Paused
	dbg.lastErr = nil

	if err := dbg.c.Restart(); err != nil {
		if !curated.Is(err, hardware.NoROM) {
			return curated.Errorf("debugger: %v", err)
		}
		dbg.c.Reset()
	}

	return dbg.disassemble()
}

// memviz writes a graph of the emulation to MemvizFile. crit must be held
func (dbg *Debugger) memviz() error {
	f, err := os.Create(dbg.MemvizFile)
	if err != nil {
		return curated.Errorf("debugger: memviz: %v", err)
	}
	defer f.Close()

	memviz.Map(f, dbg.c)
	logger.Logf(dbg, "debugger", "memviz written to %s", dbg.MemvizFile)

	return nil
}

// bindKeys associates keypresses with debugger commands
func (dbg *Debugger) bindKeys() error {
	commands := map[rune]Command{
		's': CmdStep,
		'f': CmdFrame,
		'r': CmdRun,
		't': CmdTick,
		'R': CmdReset,
		'm': CmdMemviz,
	}

	for k, cmd := range commands {
		cmd := cmd
		err := dbg.g.SetKeybinding("", k, gocui.ModNone, func(_ *gocui.Gui, _ *gocui.View) error {
			if err := dbg.Execute(cmd); err != nil {
				logger.Log(dbg, "debugger", err.Error())
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	// keypad keys use uppercase letters so as not to clash with the
	// commands above
	for i := 0; i < keypad.NumKeys; i++ {
		key := i
		k := rune(fmt.Sprintf("%X", key)[0])
		err := dbg.g.SetKeybinding("", k, gocui.ModNone, func(_ *gocui.Gui, _ *gocui.View) error {
			if err := dbg.ToggleKey(key); err != nil {
				logger.Log(dbg, "debugger", err.Error())
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	quit := func(_ *gocui.Gui, _ *gocui.View) error {
		dbg.crit.Lock()
		dbg.state = govern.Ending
		dbg.crit.Unlock()
		return gocui.ErrQuit
	}

	if err := dbg.g.SetKeybinding("", 'q', gocui.ModNone, quit); err != nil {
		return err
	}

	return dbg.g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit)
}
