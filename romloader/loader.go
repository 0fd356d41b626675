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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// Sentinal error patterns.
const (
	UnexpectedHash = "romloader: unexpected hash value (%s)"
	EmptyFile      = "romloader: file is empty (%s)"
)

// FileExtensions is the list of file extensions commonly used for CHIP-8
// programs. The list is informational. Files with other extensions can still
// be loaded.
var FileExtensions = [...]string{".CH8", ".C8", ".ROM", ".BIN"}

// Loader is used to specify the program to use when attaching to the
// emulation.
type Loader struct {
	// filename of the program to load
	Filename string

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() do not reload the
	// file
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// NewLoaderFromData creates a Loader for data that is already in memory. The
// name argument is used as the Filename.
func NewLoaderFromData(name string, data []byte) Loader {
	ld := Loader{
		Filename: name,
		Data:     make([]byte, len(data)),
	}
	copy(ld.Data, data)
	ld.Hash = fmt.Sprintf("%x", sha1.Sum(ld.Data))
	return ld
}

func (ld Loader) String() string {
	return fmt.Sprintf("%s (%d bytes)", ld.ShortName(), len(ld.Data))
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	n := filepath.Base(ld.Filename)
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// HasRecognisedExtension returns true if the Filename has one of the
// extensions in the FileExtensions list. The comparison is case insensitive.
func (ld Loader) HasRecognisedExtension() bool {
	ext := strings.ToUpper(filepath.Ext(ld.Filename))
	for _, e := range FileExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Load the program data from the file. The data is checked for size and the
// hash is compared with any expected value.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	data, err := os.ReadFile(ld.Filename)
	if err != nil {
		return curated.Errorf("romloader: %v", err)
	}

	if len(data) == 0 {
		return curated.Errorf(EmptyFile, ld.Filename)
	}

	if len(data) > memory.MaxProgramSize {
		return curated.Errorf("romloader: %v", curated.Errorf(memory.ProgramTooLarge, len(data), memory.MaxProgramSize))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}
