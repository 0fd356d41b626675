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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/test"
)

func TestDefaults(t *testing.T) {
	p := preferences.NewDefaultPreferences()
	test.ExpectEquality(t, p.ShiftUsesVY.Get().(bool), false)
	test.ExpectEquality(t, p.LoadStoreIncrementsI.Get().(bool), false)
	test.ExpectEquality(t, p.CyclesPerFrame.Get().(int), preferences.DefaultCyclesPerFrame)
	test.ExpectEquality(t, p.Logging.Get().(bool), true)

	// cycles per frame can't be less than one
	test.ExpectFailure(t, p.CyclesPerFrame.Set(0))
	test.ExpectEquality(t, p.CyclesPerFrame.Get().(int), preferences.DefaultCyclesPerFrame)

	// no disk so these are no-ops
	test.ExpectSuccess(t, p.Save())
	test.ExpectSuccess(t, p.Load())
}

func TestDisk(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.ShiftUsesVY.Set(true))
	test.ExpectSuccess(t, p.CyclesPerFrame.Set(20))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.ShiftUsesVY.Get().(bool), true)
	test.ExpectEquality(t, q.CyclesPerFrame.Get().(int), 20)
	test.ExpectEquality(t, q.LoadStoreIncrementsI.Get().(bool), false)

	// command line values take priority over the values on disk
	prefs.PushCommandLineStack("chip8.cyclesperframe::5")
	r, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.CyclesPerFrame.Get().(int), 5)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
