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

package instructions

// Category groups operators by the effect they have on the machine.
type Category int

// List of operator categories.
const (
	// the operator changes registers only
	Register Category = iota

	// the operator unconditionally changes the program counter
	Flow

	// the operator pushes to or pops from the call stack
	Subroutine

	// the operator conditionally skips the next instruction
	Skip

	// the operator reads from or writes to memory
	Memory

	// the operator changes the display
	Video

	// the operator reads or writes the timers
	Timing

	// the operator reads the keypad
	Input
)

func (c Category) String() string {
	switch c {
	case Register:
		return "register"
	case Flow:
		return "flow"
	case Subroutine:
		return "subroutine"
	case Skip:
		return "skip"
	case Memory:
		return "memory"
	case Video:
		return "video"
	case Timing:
		return "timing"
	case Input:
		return "input"
	}
	return "unknown category"
}

// Definition describes one member of the instruction set.
type Definition struct {
	Operator Operator

	// the opcode shape as it is commonly written. for example "8XY4"
	Shape string

	// the assembler mnemonic
	Mnemonic string

	Category Category
}

// Definitions of the instruction set, indexed by Operator.
var Definitions = [NumOperators]Definition{
	Nop:               {Nop, "0000", "NOP", Register},
	ClearScreen:       {ClearScreen, "00E0", "CLS", Video},
	Return:            {Return, "00EE", "RET", Subroutine},
	Jump:              {Jump, "1NNN", "JP", Flow},
	Call:              {Call, "2NNN", "CALL", Subroutine},
	SkipEqualImm:      {SkipEqualImm, "3XNN", "SE", Skip},
	SkipNotEqualImm:   {SkipNotEqualImm, "4XNN", "SNE", Skip},
	SkipEqualReg:      {SkipEqualReg, "5XY0", "SE", Skip},
	LoadImm:           {LoadImm, "6XNN", "LD", Register},
	AddImm:            {AddImm, "7XNN", "ADD", Register},
	Move:              {Move, "8XY0", "LD", Register},
	Or:                {Or, "8XY1", "OR", Register},
	And:               {And, "8XY2", "AND", Register},
	Xor:               {Xor, "8XY3", "XOR", Register},
	Add:               {Add, "8XY4", "ADD", Register},
	Sub:               {Sub, "8XY5", "SUB", Register},
	ShiftRight:        {ShiftRight, "8XY6", "SHR", Register},
	SubReverse:        {SubReverse, "8XY7", "SUBN", Register},
	ShiftLeft:         {ShiftLeft, "8XYE", "SHL", Register},
	SkipNotEqualReg:   {SkipNotEqualReg, "9XY0", "SNE", Skip},
	LoadIndex:         {LoadIndex, "ANNN", "LD", Register},
	JumpOffset:        {JumpOffset, "BNNN", "JP", Flow},
	Random:            {Random, "CXNN", "RND", Register},
	Draw:              {Draw, "DXYN", "DRW", Video},
	SkipKeyPressed:    {SkipKeyPressed, "EX9E", "SKP", Input},
	SkipKeyNotPressed: {SkipKeyNotPressed, "EXA1", "SKNP", Input},
	LoadDelay:         {LoadDelay, "FX07", "LD", Timing},
	WaitKey:           {WaitKey, "FX0A", "LD", Input},
	SetDelay:          {SetDelay, "FX15", "LD", Timing},
	SetSound:          {SetSound, "FX18", "LD", Timing},
	AddIndex:          {AddIndex, "FX1E", "ADD", Register},
	LoadFont:          {LoadFont, "FX29", "LD", Register},
	StoreBCD:          {StoreBCD, "FX33", "LD", Memory},
	StoreRegisters:    {StoreRegisters, "FX55", "LD", Memory},
	LoadRegisters:     {LoadRegisters, "FX65", "LD", Memory},
}
