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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/test"
)

func TestHelp(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-help"}, w), exitOK)
	test.ExpectSuccess(t, w.Contains("available sub-modes: RUN, TERM, DEBUG, DISASM, PERFORMANCE"))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"DISASM", "-help"}, w), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "Usage for DISASM mode:\n"))
	test.ExpectSuccess(t, w.Contains("-bytecode"))
}

func TestBadArguments(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, w), exitParseError)

	w.Clear()
	test.ExpectEquality(t, launch([]string{"DISASM"}, w), exitModeError)
	test.ExpectSuccess(t, w.Contains("a ROM file is required"))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"DISASM", "a", "b"}, w), exitModeError)
	test.ExpectSuccess(t, w.Contains("too many arguments for DISASM mode"))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"PERFORMANCE", "-profile", "foo", "rom"}, w), exitModeError)
}

func TestDisasm(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.ch8")
	rom := []uint8{
		0x00, 0xe0, // CLS
		0x12, 0x02, // JP $202
		0xff, 0xff, // data
	}
	test.DemandSuccess(t, os.WriteFile(fn, rom, 0600))

	w := &test.CompareWriter{}
	test.DemandEquality(t, launch([]string{"DISASM", "-bytecode", fn}, w), exitOK)
	test.ExpectSuccess(t, w.Contains("CLS"))
	test.ExpectSuccess(t, w.Contains("L202:"))
	test.ExpectFailure(t, w.Contains("DW"))

	w.Clear()
	test.DemandEquality(t, launch([]string{"disasm", "-all", fn}, w), exitOK)
	test.ExpectSuccess(t, w.Contains("DW"))
}
