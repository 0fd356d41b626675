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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Result records information about the most recent call to Cycle().
type Result struct {
	// the address of the instruction
	Address uint16

	// the decoded instruction. if the opcode could not be decoded then
	// Instruction.Operator is not valid but Instruction.Opcode is still set
	Instruction instructions.Instruction

	// the instruction completed. false if the instruction faulted or if the
	// instruction is waiting for a key press
	Final bool

	// the CPU was in the AwaitingKey state at the end of the cycle
	Waiting bool
}

// Reset the Result to its zero state.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	s := fmt.Sprintf("%04x %04x %s", r.Address, r.Instruction.Opcode, r.Instruction)
	if r.Waiting {
		s = fmt.Sprintf("%s (waiting)", s)
	}
	return s
}
