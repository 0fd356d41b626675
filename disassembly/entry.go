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
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded as though every word in the program is a
// valid instruction. Blessed entries have been reached by following the flow
// of the program from the origin.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelBlessed
	EntryLevelExecuted
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelBlessed:
		return "blessed"
	case EntryLevelExecuted:
		return "executed"
	}
	return "unknown level"
}

// Entry is a disassembled word.
type Entry struct {
	Level EntryLevel

	Address uint16

	// the Operator field will not be valid if the word is data
	Instruction instructions.Instruction

	// non-empty if the entry is the target of a jump or call
	Label string
}

// IsInstruction returns true if the entry was decoded as an instruction
// rather than as data.
func (e Entry) IsInstruction() bool {
	return e.Instruction.Operator.Valid()
}

// Bytecode returns the word as a hexadecimal string.
func (e Entry) Bytecode() string {
	return fmt.Sprintf("%04X", e.Instruction.Opcode)
}

// Mnemonic returns the assembler mnemonic of the entry.
func (e Entry) Mnemonic() string {
	if !e.IsInstruction() {
		return "DW"
	}
	return e.Instruction.Operator.String()
}

// Operands returns the operands of the entry in assembler notation.
func (e Entry) Operands() string {
	if !e.IsInstruction() {
		return fmt.Sprintf("$%04X", e.Instruction.Opcode)
	}
	return e.Instruction.Operands()
}

func (e Entry) String() string {
	o := e.Operands()
	if o == "" {
		return fmt.Sprintf("%04x %s %s", e.Address, e.Bytecode(), e.Mnemonic())
	}
	return fmt.Sprintf("%04x %s %s %s", e.Address, e.Bytecode(), e.Mnemonic(), o)
}

// labelName is the name for a label at address.
func labelName(address uint16) string {
	return fmt.Sprintf("L%03X", address)
}

// decodeWord creates an Entry for the word at address.
func decodeWord(address uint16, word uint16) *Entry {
	// an error from Decode() means the word is data. the Instruction returned
	// with the error is still usable
	ins, _ := instructions.Decode(word)
	return &Entry{
		Level:       EntryLevelDecoded,
		Address:     address,
		Instruction: ins,
	}
}
