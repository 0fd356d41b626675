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

// Package instructions defines the CHIP-8 instruction set and the decode
// step that turns a 16-bit opcode into an Instruction.
//
// The instruction set is closed. Every opcode that decodes successfully is
// one of the NumOperators values of the Operator type, and the Instruction
// returned by Decode() carries every operand field of the opcode, whether or
// not the operator makes use of it. Opcodes that don't match any of the
// recognised shapes cause Decode() to return an error with the UnknownOpcode
// pattern.
//
// Execution of the instruction is the responsibility of the cpu package.
package instructions
