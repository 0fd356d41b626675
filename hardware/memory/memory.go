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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Size of the address space in bytes.
const Size = 4096

// Memtop is the highest valid address.
const Memtop = Size - 1

// ProgramOrigin is the address at which programs are loaded. The addresses
// below the origin are reserved for the font and are never written by a
// program load.
const ProgramOrigin = 0x200

// MaxProgramSize is the largest program that can be loaded.
const MaxProgramSize = Size - ProgramOrigin

// Sentinal error patterns.
const (
	AddressOutOfRange = "memory: address out of range (%#04x)"
	ProgramTooLarge   = "memory: program too large (%d bytes, %d available)"
)

// Memory is the CHIP-8 address space.
type Memory struct {
	data [Size]uint8

	// number of bytes in the most recently loaded program
	programSize int
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The font is loaded and the program area is empty.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

func (mem *Memory) String() string {
	return fmt.Sprintf("memory: %d bytes, program: %d bytes", Size, mem.programSize)
}

// Reset the address space to its initial state. All bytes are cleared and
// the font is reloaded. Any program is forgotten.
func (mem *Memory) Reset() {
	for i := range mem.data {
		mem.data[i] = 0
	}
	copy(mem.data[FontOrigin:], font[:])
	mem.programSize = 0
}

// Load copies the program into the address space starting at ProgramOrigin.
// Each load replaces the program area entirely. The font area is unaffected.
func (mem *Memory) Load(rom []uint8) error {
	if len(rom) > MaxProgramSize {
		return curated.Errorf(ProgramTooLarge, len(rom), MaxProgramSize)
	}

	for i := ProgramOrigin; i < Size; i++ {
		mem.data[i] = 0
	}
	copy(mem.data[ProgramOrigin:], rom)
	mem.programSize = len(rom)

	return nil
}

// ProgramSize returns the size of the most recently loaded program.
func (mem *Memory) ProgramSize() int {
	return mem.programSize
}

// Read the byte at address.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if address > Memtop {
		return 0, curated.Errorf(AddressOutOfRange, address)
	}
	return mem.data[address], nil
}

// Write data to address.
func (mem *Memory) Write(address uint16, data uint8) error {
	if address > Memtop {
		return curated.Errorf(AddressOutOfRange, address)
	}
	mem.data[address] = data
	return nil
}

// Fetch the instruction word at address. CHIP-8 is big-endian so the byte at
// address is the most significant byte of the word.
func (mem *Memory) Fetch(address uint16) (uint16, error) {
	if uint32(address)+1 > Memtop {
		return 0, curated.Errorf(AddressOutOfRange, uint32(address)+1)
	}
	return uint16(mem.data[address])<<8 | uint16(mem.data[address+1]), nil
}

// Peek returns a copy of length bytes starting at origin. The range must lie
// entirely within the address space.
func (mem *Memory) Peek(origin uint16, length int) ([]uint8, error) {
	if length < 0 {
		return nil, curated.Errorf("memory: negative peek length (%d)", length)
	}
	end := int(origin) + length
	if end > Size {
		return nil, curated.Errorf(AddressOutOfRange, end-1)
	}
	d := make([]uint8, length)
	copy(d, mem.data[origin:end])
	return d, nil
}

// Poke is the debugging equivalent of Write().
func (mem *Memory) Poke(address uint16, data uint8) error {
	return mem.Write(address, data)
}

// Dump writes length bytes starting at origin as rows of hexadecimal.
func (mem *Memory) Dump(origin uint16, length int) (string, error) {
	d, err := mem.Peek(origin, length)
	if err != nil {
		return "", err
	}

	s := strings.Builder{}
	for i := 0; i < len(d); i += 16 {
		s.WriteString(fmt.Sprintf("%03x ", int(origin)+i))
		for j := i; j < i+16 && j < len(d); j++ {
			s.WriteString(fmt.Sprintf(" %02x", d[j]))
		}
		s.WriteString("\n")
	}

	return s.String(), nil
}
