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

import "github.com/jetsetilly/gopher8/curated"

// Sentinal error patterns.
const (
	UnknownOpcode = "instructions: unknown opcode (%04x)"
)

// Decode an opcode into an Instruction. The Operator field of the returned
// Instruction is only meaningful if the error is nil.
func Decode(opcode uint16) (Instruction, error) {
	ins := Instruction{
		Opcode: opcode,
		X:      uint8(opcode>>8) & 0x0f,
		Y:      uint8(opcode>>4) & 0x0f,
		N:      uint8(opcode) & 0x0f,
		NN:     uint8(opcode),
		NNN:    opcode & 0x0fff,
	}

	op, ok := operator(opcode, ins.N, ins.NN)
	if !ok {
		return Instruction{Operator: NumOperators, Opcode: opcode}, curated.Errorf(UnknownOpcode, opcode)
	}
	ins.Operator = op

	return ins, nil
}

// operator selects the operator for the opcode. the first nibble selects the
// family and the remaining fields disambiguate within the family.
func operator(opcode uint16, n uint8, nn uint8) (Operator, bool) {
	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x0000:
			return Nop, true
		case 0x00e0:
			return ClearScreen, true
		case 0x00ee:
			return Return, true
		}
	case 0x1:
		return Jump, true
	case 0x2:
		return Call, true
	case 0x3:
		return SkipEqualImm, true
	case 0x4:
		return SkipNotEqualImm, true
	case 0x5:
		if n == 0x0 {
			return SkipEqualReg, true
		}
	case 0x6:
		return LoadImm, true
	case 0x7:
		return AddImm, true
	case 0x8:
		switch n {
		case 0x0:
			return Move, true
		case 0x1:
			return Or, true
		case 0x2:
			return And, true
		case 0x3:
			return Xor, true
		case 0x4:
			return Add, true
		case 0x5:
			return Sub, true
		case 0x6:
			return ShiftRight, true
		case 0x7:
			return SubReverse, true
		case 0xe:
			return ShiftLeft, true
		}
	case 0x9:
		if n == 0x0 {
			return SkipNotEqualReg, true
		}
	case 0xa:
		return LoadIndex, true
	case 0xb:
		return JumpOffset, true
	case 0xc:
		return Random, true
	case 0xd:
		return Draw, true
	case 0xe:
		switch nn {
		case 0x9e:
			return SkipKeyPressed, true
		case 0xa1:
			return SkipKeyNotPressed, true
		}
	case 0xf:
		switch nn {
		case 0x07:
			return LoadDelay, true
		case 0x0a:
			return WaitKey, true
		case 0x15:
			return SetDelay, true
		case 0x18:
			return SetSound, true
		case 0x1e:
			return AddIndex, true
		case 0x29:
			return LoadFont, true
		case 0x33:
			return StoreBCD, true
		case 0x55:
			return StoreRegisters, true
		case 0x65:
			return LoadRegisters, true
		}
	}

	return NumOperators, false
}
