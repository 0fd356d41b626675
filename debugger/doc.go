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

// Package debugger implements a terminal based debugger for the CHIP-8
// emulation. The screen is divided into views showing the display, the CPU
// registers, the call stack, the disassembly around the program counter and
// the most recent log entries.
//
// Initialisation of the debugger is done with the NewDebugger() function.
// The debugger can be started with or without a ROM attached to the CHIP-8.
//
//	dbg, _ := debugger.NewDebugger(c)
//	err := dbg.Start(ctx)
//
// The debugger begins in the paused state. Interaction is through single
// keypresses:
//
//	s       step a single instruction
//	f       run a single frame
//	r       toggle between running and paused
//	t       tick the timers
//	R       reset and reload the program
//	m       dump the machine graph to a Graphviz dot file
//	0-9 A-F toggle keypad key
//	q       quit
//
// The emulation runs in its own goroutine, at the normal frame rate, while
// in the running state. The govern package is used to describe the current
// state.
package debugger
