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

// Package preferences collates the preference values that affect the
// emulated machine.
package preferences

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/resources"
)

// DefaultCyclesPerFrame is the number of instructions executed for every
// tick of the timers. At 60Hz this is six hundred instructions per second.
const DefaultCyclesPerFrame = 10

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// shift instructions (8XY6 and 8XYE) take the value to shift from VY
	// rather than from VX. the result is always stored in VX
	ShiftUsesVY prefs.Bool

	// the register load and store instructions (FX55 and FX65) leave the I
	// register pointing to the address after the last byte transferred
	LoadStoreIncrementsI prefs.Bool

	// the number of instructions executed per frame (one timer tick). must
	// be one or more
	CyclesPerFrame prefs.Int

	// seed for the random number generator used by the RND instruction. a
	// value of zero means that the seed is taken from the clock
	RandSeed prefs.Int

	// whether the emulation writes to the central log
	Logging prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return fmt.Sprintf("shiftvy=%v loadstorei=%v cycles=%v seed=%v logging=%v",
			p.ShiftUsesVY.Get(), p.LoadStoreIncrementsI.Get(), p.CyclesPerFrame.Get(),
			p.RandSeed.Get(), p.Logging.Get())
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file in the
// resources directory.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is the same as NewPreferences() except that the
// preferences file is specified explicitly.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := newPreferences()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	if err := p.dsk.Add("chip8.quirks.shiftvy", &p.ShiftUsesVY); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	if err := p.dsk.Add("chip8.quirks.loadstorei", &p.LoadStoreIncrementsI); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	if err := p.dsk.Add("chip8.cyclesperframe", &p.CyclesPerFrame); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	if err := p.dsk.Add("chip8.randseed", &p.RandSeed); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	if err := p.dsk.Add("chip8.logging", &p.Logging); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	if err := p.dsk.Load(); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	return p, nil
}

// NewDefaultPreferences returns a Preferences instance with default values
// that is not associated with a preferences file. Load() and Save() have no
// effect.
func NewDefaultPreferences() *Preferences {
	return newPreferences()
}

func newPreferences() *Preferences {
	p := &Preferences{}
	p.CyclesPerFrame.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf("preferences: cycles per frame must be one or more (%d)", v)
		}
		return nil
	})
	p.SetDefaults()
	return p
}

// SetDefaults reverts all hardware preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.ShiftUsesVY.Set(false)
	_ = p.LoadStoreIncrementsI.Set(false)
	_ = p.CyclesPerFrame.Set(DefaultCyclesPerFrame)
	_ = p.RandSeed.Set(0)
	_ = p.Logging.Set(true)
}

// Load hardware preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
