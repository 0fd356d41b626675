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
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// StackDepth is the maximum number of return addresses that can be stored on
// the call stack.
const StackDepth = 16

// Stack is the CHIP-8 call stack.
type Stack struct {
	entries [StackDepth]uint16

	// the number of entries currently on the stack
	ptr int
}

func (stk *Stack) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("SP=%d", stk.ptr))
	for i := stk.ptr - 1; i >= 0; i-- {
		s.WriteString(fmt.Sprintf(" %04x", stk.entries[i]))
	}
	return s.String()
}

// Reset empties the stack.
func (stk *Stack) Reset() {
	for i := range stk.entries {
		stk.entries[i] = 0
	}
	stk.ptr = 0
}

// Push a return address on to the stack.
func (stk *Stack) Push(address uint16) error {
	if stk.ptr >= StackDepth {
		return curated.Errorf(StackOverflow, StackDepth)
	}
	stk.entries[stk.ptr] = address
	stk.ptr++
	return nil
}

// Pop the most recently pushed return address.
func (stk *Stack) Pop() (uint16, error) {
	if stk.ptr <= 0 {
		return 0, curated.Errorf(StackUnderflow)
	}
	stk.ptr--
	return stk.entries[stk.ptr], nil
}

// Pointer returns the number of entries on the stack.
func (stk *Stack) Pointer() int {
	return stk.ptr
}

// Entries returns a copy of the entries on the stack. The most recently
// pushed entry is last.
func (stk *Stack) Entries() []uint16 {
	e := make([]uint16, stk.ptr)
	copy(e, stk.entries[:stk.ptr])
	return e
}
