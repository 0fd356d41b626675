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

// Operator identifies one of the recognised opcode shapes.
type Operator int

// List of valid Operator values. The comment for each value is the opcode
// shape of the operator.
const (
	Nop               Operator = iota // 0000
	ClearScreen                       // 00E0
	Return                            // 00EE
	Jump                              // 1NNN
	Call                              // 2NNN
	SkipEqualImm                      // 3XNN
	SkipNotEqualImm                   // 4XNN
	SkipEqualReg                      // 5XY0
	LoadImm                           // 6XNN
	AddImm                            // 7XNN
	Move                              // 8XY0
	Or                                // 8XY1
	And                               // 8XY2
	Xor                               // 8XY3
	Add                               // 8XY4
	Sub                               // 8XY5
	ShiftRight                        // 8XY6
	SubReverse                        // 8XY7
	ShiftLeft                         // 8XYE
	SkipNotEqualReg                   // 9XY0
	LoadIndex                         // ANNN
	JumpOffset                        // BNNN
	Random                            // CXNN
	Draw                              // DXYN
	SkipKeyPressed                    // EX9E
	SkipKeyNotPressed                 // EXA1
	LoadDelay                         // FX07
	WaitKey                           // FX0A
	SetDelay                          // FX15
	SetSound                          // FX18
	AddIndex                          // FX1E
	LoadFont                          // FX29
	StoreBCD                          // FX33
	StoreRegisters                    // FX55
	LoadRegisters                     // FX65

	// NumOperators is the number of operators in the instruction set. It is
	// not itself a valid operator.
	NumOperators
)

func (op Operator) String() string {
	if op < 0 || op >= NumOperators {
		return "unknown operator"
	}
	return Definitions[op].Mnemonic
}

// Valid returns true if the Operator value is a member of the instruction
// set.
func (op Operator) Valid() bool {
	return op >= 0 && op < NumOperators
}
