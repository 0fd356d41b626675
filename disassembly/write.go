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
	"io"
	"text/tabwriter"
)

// WriteAttr controls what is printed by the Write() function.
type WriteAttr struct {
	ByteCode bool

	// the minimum level of entry to write
	MinLevel EntryLevel
}

// Write the disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	w := tabwriter.NewWriter(output, 0, 8, 1, ' ', 0)

	for _, e := range dsm.Entries(attr.MinLevel) {
		if e.Label != "" {
			fmt.Fprintf(w, "%s:\n", e.Label)
		}
		if attr.ByteCode {
			fmt.Fprintf(w, "%04x\t%s\t%s\t%s\n", e.Address, e.Bytecode(), e.Mnemonic(), e.Operands())
		} else {
			fmt.Fprintf(w, "%04x\t%s\t%s\n", e.Address, e.Mnemonic(), e.Operands())
		}
	}

	return w.Flush()
}
