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

package disassembly

import (
	"sort"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/romloader"
)

// Peeker defines the memory operation required by the disassembly.
type Peeker interface {
	Peek(origin uint16, length int) ([]uint8, error)
}

// Disassembly represents the annotated disassembly of a CHIP-8 program.
type Disassembly struct {
	origin uint16
	data   []uint8

	entries map[uint16]*Entry
}

// FromLoader disassembles the program referenced by the loader. The program
// is assumed to be loaded at memory.ProgramOrigin.
func FromLoader(ld romloader.Loader) (*Disassembly, error) {
	if err := ld.Load(); err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}

	mem := memory.NewMemory()
	if err := mem.Load(ld.Data); err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}

	return FromMemory(mem, memory.ProgramOrigin, len(ld.Data))
}

// FromMemory disassembles length bytes of memory beginning at origin. The
// flow of the program is followed from the origin.
func FromMemory(mem Peeker, origin uint16, length int) (*Disassembly, error) {
	data, err := mem.Peek(origin, length)
	if err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}

	dsm := &Disassembly{
		origin:  origin,
		data:    data,
		entries: make(map[uint16]*Entry),
	}

	// linear decode of every word
	for a := int(origin); a+1 < int(origin)+len(data); a += 2 {
		dsm.entries[uint16(a)] = decodeWord(uint16(a), dsm.word(uint16(a)))
	}

	dsm.bless(origin)

	return dsm, nil
}

// the word at address. the address must be in range
func (dsm *Disassembly) word(address uint16) uint16 {
	i := int(address - dsm.origin)
	return uint16(dsm.data[i])<<8 | uint16(dsm.data[i+1])
}

// inRange returns true if there is a complete word at the address.
func (dsm *Disassembly) inRange(address uint16) bool {
	return address >= dsm.origin && int(address)+1 < int(dsm.origin)+len(dsm.data)
}

// entry returns the entry at the address, decoding it first if necessary.
// the address must be in range
func (dsm *Disassembly) entry(address uint16) *Entry {
	e, ok := dsm.entries[address]
	if !ok {
		e = decodeWord(address, dsm.word(address))
		dsm.entries[address] = e
	}
	return e
}

// bless follows the flow of the program from the start address. each entry
// reached is raised to the blessed level
func (dsm *Disassembly) bless(start uint16) {
	pending := []uint16{start}

	for len(pending) > 0 {
		a := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		for dsm.inRange(a) {
			e := dsm.entry(a)
			if e.Level >= EntryLevelBlessed {
				break
			}
			e.Level = EntryLevelBlessed

			if !e.IsInstruction() {
				break
			}

			ins := e.Instruction
			if ins.Operator == instructions.Jump || ins.Operator == instructions.Call {
				if dsm.inRange(ins.NNN) {
					dsm.entry(ins.NNN).Label = labelName(ins.NNN)
					pending = append(pending, ins.NNN)
				}
			}

			// flow does not continue after unconditional changes to the
			// program counter
			if ins.Operator == instructions.Jump || ins.Operator == instructions.Return || ins.Operator == instructions.JumpOffset {
				break
			}

			if ins.Definition().Category == instructions.Skip {
				pending = append(pending, a+4)
			}

			a += 2
		}
	}
}

// Origin returns the address of the first byte of the disassembly.
func (dsm *Disassembly) Origin() uint16 {
	return dsm.origin
}

// Len returns the number of entries in the disassembly.
func (dsm *Disassembly) Len() int {
	return len(dsm.entries)
}

// GetEntryByAddress returns a copy of the entry at address.
func (dsm *Disassembly) GetEntryByAddress(address uint16) (Entry, bool) {
	e, ok := dsm.entries[address]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Entries returns copies of all entries at or above the level, in address
// order.
func (dsm *Disassembly) Entries(minLevel EntryLevel) []Entry {
	addresses := make([]int, 0, len(dsm.entries))
	for a, e := range dsm.entries {
		if e.Level >= minLevel {
			addresses = append(addresses, int(a))
		}
	}
	sort.Ints(addresses)

	entries := make([]Entry, 0, len(addresses))
	for _, a := range addresses {
		entries = append(entries, *dsm.entries[uint16(a)])
	}
	return entries
}

// UpdateEntry raises the entry for the executed instruction to the
// EntryLevelExecuted level. Results for addresses outside the disassembly
// and results that don't match the disassembled word (self-modifying code)
// are ignored.
func (dsm *Disassembly) UpdateEntry(result cpu.Result) {
	if !dsm.inRange(result.Address) {
		return
	}

	e := dsm.entry(result.Address)
	if e.Instruction.Opcode != result.Instruction.Opcode {
		return
	}

	e.Level = EntryLevelExecuted
}

// Window decodes instructions from live memory around the address. The
// window contains up to before entries before the address and up to after
// entries after the address, in addition to the entry at the address itself.
// Entries are two bytes apart.
func Window(mem Peeker, address uint16, before int, after int) []Entry {
	start := int(address) - before*2
	for start < 0 {
		start += 2
	}

	entries := make([]Entry, 0, before+after+1)
	for a := start; a <= int(address)+after*2; a += 2 {
		d, err := mem.Peek(uint16(a), 2)
		if err != nil {
			break
		}
		entries = append(entries, *decodeWord(uint16(a), uint16(d[0])<<8|uint16(d[1])))
	}

	return entries
}
