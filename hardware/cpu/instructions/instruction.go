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

import (
	"fmt"
)

// Instruction is a decoded opcode. All operand fields are filled in by
// Decode() regardless of whether the Operator uses them.
type Instruction struct {
	Operator Operator

	// second and third nibbles of the opcode
	X uint8
	Y uint8

	// the last nibble
	N uint8

	// the last byte
	NN uint8

	// the last twelve bits
	NNN uint16

	// the opcode the instruction was decoded from
	Opcode uint16
}

// Definition returns the Definition of the instruction's operator.
func (ins Instruction) Definition() Definition {
	return Definitions[ins.Operator]
}

// Operands returns the operands of the instruction in assembler notation.
// Operators that take no operands return the empty string.
func (ins Instruction) Operands() string {
	switch ins.Operator {
	case Nop, ClearScreen, Return:
		return ""
	case Jump, Call:
		return fmt.Sprintf("$%03X", ins.NNN)
	case SkipEqualImm, SkipNotEqualImm, LoadImm, AddImm:
		return fmt.Sprintf("V%X, $%02X", ins.X, ins.NN)
	case SkipEqualReg, Move, Or, And, Xor, Add, Sub, SubReverse, SkipNotEqualReg:
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)
	case ShiftRight, ShiftLeft:
		return fmt.Sprintf("V%X {, V%X}", ins.X, ins.Y)
	case LoadIndex:
		return fmt.Sprintf("I, $%03X", ins.NNN)
	case JumpOffset:
		return fmt.Sprintf("V0, $%03X", ins.NNN)
	case Random:
		return fmt.Sprintf("V%X, $%02X", ins.X, ins.NN)
	case Draw:
		return fmt.Sprintf("V%X, V%X, %d", ins.X, ins.Y, ins.N)
	case SkipKeyPressed, SkipKeyNotPressed:
		return fmt.Sprintf("V%X", ins.X)
	case LoadDelay:
		return fmt.Sprintf("V%X, DT", ins.X)
	case WaitKey:
		return fmt.Sprintf("V%X, K", ins.X)
	case SetDelay:
		return fmt.Sprintf("DT, V%X", ins.X)
	case SetSound:
		return fmt.Sprintf("ST, V%X", ins.X)
	case AddIndex:
		return fmt.Sprintf("I, V%X", ins.X)
	case LoadFont:
		return fmt.Sprintf("F, V%X", ins.X)
	case StoreBCD:
		return fmt.Sprintf("B, V%X", ins.X)
	case StoreRegisters:
		return fmt.Sprintf("[I], V%X", ins.X)
	case LoadRegisters:
		return fmt.Sprintf("V%X, [I]", ins.X)
	}
	return ""
}

// String returns the instruction in assembler notation.
func (ins Instruction) String() string {
	if !ins.Operator.Valid() {
		return fmt.Sprintf("DW $%04X", ins.Opcode)
	}
	o := ins.Operands()
	if o == "" {
		return ins.Operator.String()
	}
	return fmt.Sprintf("%s %s", ins.Operator, o)
}
