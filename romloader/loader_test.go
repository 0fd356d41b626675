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

package romloader_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

func writeROM(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0600))
	return fn
}

func TestLoad(t *testing.T) {
	fn := writeROM(t, "pong.ch8", []byte{0x00, 0xe0, 0x12, 0x00})

	ld := romloader.NewLoader(fn)
	test.ExpectEquality(t, ld.ShortName(), "pong")
	test.ExpectEquality(t, ld.HasRecognisedExtension(), true)
	test.ExpectEquality(t, ld.HasLoaded(), false)

	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.HasLoaded(), true)
	test.ExpectEquality(t, len(ld.Data), 4)
	test.ExpectEquality(t, ld.Hash, "2cdd5bd3f4e30a4d56d9a8841ffcd5fbc2d0f735")
	test.ExpectEquality(t, ld.String(), "pong (4 bytes)")

	// the hash of a loader created from data is the same
	ld2 := romloader.NewLoaderFromData("pong", ld.Data)
	test.ExpectEquality(t, ld2.Hash, ld.Hash)
}

func TestHashMismatch(t *testing.T) {
	fn := writeROM(t, "test.ch8", []byte{0x00, 0xe0})

	ld := romloader.NewLoader(fn)
	ld.Hash = "0000000000000000000000000000000000000000"
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.UnexpectedHash))
	test.ExpectEquality(t, ld.HasLoaded(), false)
}

func TestBadFiles(t *testing.T) {
	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "missing.ch8"))
	err := ld.Load()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))

	ld = romloader.NewLoader(writeROM(t, "empty.ch8", []byte{}))
	test.ExpectSuccess(t, curated.Is(ld.Load(), romloader.EmptyFile))

	ld = romloader.NewLoader(writeROM(t, "large.ch8", make([]byte, memory.MaxProgramSize+1)))
	test.ExpectSuccess(t, curated.Has(ld.Load(), memory.ProgramTooLarge))

	ld = romloader.NewLoader("program.txt")
	test.ExpectEquality(t, ld.HasRecognisedExtension(), false)
}
