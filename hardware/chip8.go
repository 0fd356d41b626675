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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/romloader"
)

// Sentinal error patterns.
const (
	NoROM = "chip8: no ROM has been loaded"
)

// Chip8 is the main container for the emulated components of the CHIP-8.
type Chip8 struct {
	Prefs *preferences.Preferences

	CPU     *cpu.CPU
	Mem     *memory.Memory
	Display *display.Display

	rnd cpu.Random

	// the most recently loaded program. used by Restart()
	rom    []uint8
	loader romloader.Loader

	// number of frames and instructions executed since the last reset
	Frames       int
	Instructions int

	// whether the most recent frame ended with the sound timer reaching zero
	Beep bool
}

// NewChip8 creates a new CHIP-8 and everything associated with the hardware.
// It is used for all aspects of emulation: debugging sessions and regular
// play.
//
// The prefs argument can be nil, in which case the default preferences are
// used. If rnd is nil then a new random.Random is created using the RandSeed
// preference.
func NewChip8(prefs *preferences.Preferences, rnd cpu.Random) *Chip8 {
	if prefs == nil {
		prefs = preferences.NewDefaultPreferences()
	}

	if rnd == nil {
		rnd = random.NewRandom(int64(prefs.RandSeed.Get().(int)))
	}

	c := &Chip8{
		Prefs:   prefs,
		Mem:     memory.NewMemory(),
		Display: display.NewDisplay(),
		rnd:     rnd,
	}
	c.CPU = cpu.NewCPU(prefs, c.Mem, c.Display, rnd)

	return c
}

// AllowLogging implements the logger.Permission interface.
func (c *Chip8) AllowLogging() bool {
	return c.Prefs.Logging.Get().(bool)
}

func (c *Chip8) String() string {
	return c.CPU.String()
}

// LoadROM copies the program into memory at the program origin. The CPU is
// not reset. Use Reset() or Restart() as appropriate.
func (c *Chip8) LoadROM(rom []uint8) error {
	if err := c.Mem.Load(rom); err != nil {
		logger.Log(c, "chip8", err.Error())
		return err
	}

	c.rom = make([]uint8, len(rom))
	copy(c.rom, rom)

	logger.Logf(c, "chip8", "loaded %d byte program", len(rom))

	return nil
}

// AttachROM loads the program specified by the loader and resets the
// machine. The loader is remembered and is available through the Loader()
// function.
func (c *Chip8) AttachROM(ld romloader.Loader) error {
	if err := ld.Load(); err != nil {
		return curated.Errorf("chip8: %v", err)
	}

	c.Reset()
	if err := c.LoadROM(ld.Data); err != nil {
		return curated.Errorf("chip8: %v", err)
	}
	c.loader = ld

	logger.Logf(c, "chip8", "attached %s [%s]", ld.ShortName(), ld.Hash)

	return nil
}

// Loader returns the loader most recently used by AttachROM().
func (c *Chip8) Loader() romloader.Loader {
	return c.loader
}

// Reset the machine to its construction state. The program is forgotten by
// the memory but is remembered for a subsequent call to Restart().
func (c *Chip8) Reset() {
	c.CPU.Reset()
	c.Mem.Reset()
	c.Display.Clear()

	if r, ok := c.rnd.(*random.Random); ok {
		r.Reset()
	}

	c.Frames = 0
	c.Instructions = 0
	c.Beep = false

	logger.Log(c, "chip8", "reset")
}

// Restart resets the machine and reloads the most recently loaded program.
func (c *Chip8) Restart() error {
	if c.rom == nil {
		return curated.Errorf(NoROM)
	}
	rom := c.rom
	c.Reset()
	return c.LoadROM(rom)
}

// Cycle advances the emulation by one instruction.
func (c *Chip8) Cycle() error {
	killed := c.CPU.Killed
	if err := c.CPU.Cycle(); err != nil {
		// only log the fault the first time it is seen
		if !killed {
			logger.Log(c, "chip8", err.Error())
		}
		return err
	}
	c.Instructions++
	return nil
}

// TickTimers advances the 60Hz timers. Returns true if the sound timer was
// exactly one before the tick.
func (c *Chip8) TickTimers() bool {
	return c.CPU.TickTimers()
}

// SoundActive returns true if the sound timer is non-zero.
func (c *Chip8) SoundActive() bool {
	return c.CPU.SoundActive()
}

// SetKeyPress sets the pressed state of a key. The index must be between 0
// and 15 inclusive.
func (c *Chip8) SetKeyPress(index int, pressed bool) error {
	return c.CPU.SetKey(index, pressed)
}

// GetDisplay returns a copy of the display, in row-major order.
func (c *Chip8) GetDisplay() []bool {
	return c.Display.Snapshot()
}

// RunFrame executes the number of instructions and then ticks the timers
// once. Returns true if the tick should cause a beep.
//
// Execution stops early if an instruction causes an error. In that case the
// timers are not ticked.
func (c *Chip8) RunFrame(cycles int) (bool, error) {
	for i := 0; i < cycles; i++ {
		if err := c.Cycle(); err != nil {
			return false, err
		}
	}
	c.Beep = c.TickTimers()
	c.Frames++
	return c.Beep, nil
}
