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

package debugger

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jroimartin/gocui"
)

// minimum terminal size required by the layout.
const (
	minWidth  = 100
	minHeight = 36
)

// width of the left hand column. enough for the display and a border.
const leftWidth = 66

type pane struct {
	name           string
	title          string
	x0, y0, x1, y1 int
	draw           func(io.Writer)
}

func (dbg *Debugger) panes(maxX, maxY int) []pane {
	return []pane{
		{
			name: "display", title: "Display",
			x0: 0, y0: 0, x1: leftWidth - 1, y1: 17,
			draw: func(w io.Writer) { writeDisplay(w, dbg.c.GetDisplay()) },
		},
		{
			name: "disassembly", title: "Disassembly",
			x0: 0, y0: 18, x1: leftWidth - 1, y1: maxY - 9,
			draw: func(w io.Writer) {
				n := maxY - 29
				writeDisassembly(w, dbg.dsm, dbg.c.Mem, dbg.c.CPU.PC, n/3, n-n/3)
			},
		},
		{
			name: "registers", title: "Registers",
			x0: leftWidth, y0: 0, x1: maxX - 1, y1: 11,
			draw: func(w io.Writer) { writeRegisters(w, dbg.c.CPU, dbg.state, dbg.lastErr) },
		},
		{
			name: "stack", title: "Stack",
			x0: leftWidth, y0: 12, x1: maxX - 1, y1: maxY - 9,
			draw: func(w io.Writer) { writeStack(w, dbg.c.CPU.Stack.Entries()) },
		},
		{
			name: "log", title: "Log",
			x0: 0, y0: maxY - 8, x1: maxX - 1, y1: maxY - 1,
			draw: func(w io.Writer) { logger.Tail(w, 6) },
		},
	}
}

// layout is the gocui manager function. it is called by gocui after every
// event
func (dbg *Debugger) layout(g *gocui.Gui) error {
	dbg.crit.Lock()
	defer dbg.crit.Unlock()

	maxX, maxY := g.Size()

	if maxX < minWidth || maxY < minHeight {
		v, err := g.SetView("small", 0, 0, maxX-1, maxY-1)
		if err != nil && !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Clear()
		fmt.Fprintf(v, "terminal too small (need %dx%d)", minWidth, minHeight)
		return nil
	}

	if err := g.DeleteView("small"); err != nil && !errors.Is(err, gocui.ErrUnknownView) {
		return err
	}

	for _, p := range dbg.panes(maxX, maxY) {
		v, err := g.SetView(p.name, p.x0, p.y0, p.x1, p.y1)
		if err != nil {
			if !errors.Is(err, gocui.ErrUnknownView) {
				return err
			}
			v.Title = p.title
		}
		v.Clear()
		p.draw(v)
	}

	return nil
}

func writeDisplay(w io.Writer, pixels []bool) {
	io.WriteString(w, strings.Join(gui.HalfBlockLines(pixels), "\n"))
}

func writeRegisters(w io.Writer, mc *cpu.CPU, state govern.State, lastErr error) {
	fmt.Fprintf(w, "PC=%04x I=%04x SP=%d\n", mc.PC, mc.I, mc.Stack.Pointer())
	for i, v := range mc.V {
		fmt.Fprintf(w, "V%X=%02x", i, v)
		if i%4 == 3 {
			io.WriteString(w, "\n")
		} else {
			io.WriteString(w, " ")
		}
	}
	fmt.Fprintf(w, "%s %s\n", mc.DT, mc.ST)
	fmt.Fprintf(w, "keys %s\n", &mc.Keys)
	fmt.Fprintf(w, "cpu %s\n", mc.State)
	fmt.Fprintf(w, "emulation %s\n", state)
	if lastErr != nil {
		fmt.Fprintf(w, "%v\n", lastErr)
	}
}

// the most recently pushed entry is written first
func writeStack(w io.Writer, entries []uint16) {
	if len(entries) == 0 {
		io.WriteString(w, "empty\n")
		return
	}
	for i := len(entries) - 1; i >= 0; i-- {
		fmt.Fprintf(w, "%2d %04x\n", i, entries[i])
	}
}

// level markers used by writeDisassembly
var levelMarker = map[disassembly.EntryLevel]string{
	disassembly.EntryLevelDecoded:  " ",
	disassembly.EntryLevelBlessed:  "+",
	disassembly.EntryLevelExecuted: "*",
}

// writeDisassembly writes the entries around the program counter. the dsm
// argument can be nil, in which case the entries are neither labelled nor
// annotated with their level
func writeDisassembly(w io.Writer, dsm *disassembly.Disassembly, mem disassembly.Peeker, pc uint16, before int, after int) {
	for _, e := range disassembly.Window(mem, pc, before, after) {
		if dsm != nil {
			if de, ok := dsm.GetEntryByAddress(e.Address); ok {
				e.Level = de.Level
				e.Label = de.Label
			}
		}

		cursor := " "
		if e.Address == pc {
			cursor = ">"
		}

		label := ""
		if e.Label != "" {
			label = e.Label + ":"
		}

		fmt.Fprintf(w, "%s%s %-5s %s\n", cursor, levelMarker[e.Level], label, e)
	}
}
