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

// Package disassembly coordinates the disassembly of CHIP-8 programs.
//
// A disassembly is created with FromMemory() or FromLoader(). Every word in the
// program is decoded, which results in entries at the EntryLevelDecoded level.
// The flow of the program is then followed from the program origin and every
// entry that can be reached is raised to the EntryLevelBlessed level. Entries
// that are reached by the flow at odd addresses are also decoded and blessed.
//
// Words that do not decode to a valid instruction are treated as data.
//
// The UpdateEntry() function raises an entry to the EntryLevelExecuted level.
// It is intended to be called by a debugger with the cpu.Result of each
// instruction executed by the emulation.
package disassembly
