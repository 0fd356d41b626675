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

// Package memory implements the 4096 byte address space of the CHIP-8. The
// first 80 bytes of the address space hold the built-in font. Programs are
// loaded at ProgramOrigin.
//
// Every access is bounds checked. An access outside of the address space
// returns a curated error with the AddressOutOfRange pattern. Addresses are
// never wrapped.
//
// Read(), Write() and Fetch() are the operations used by the CPU. Peek() and
// Poke() are debugging operations that are also bounds checked but which a
// debugger can use without affecting the state of the emulation in any other
// way.
package memory
