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

// Package hardware is the base package for the CHIP-8 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Chip8 type is the root of the emulation and contains references to the
// CPU, memory and display. It is the only type that a host needs to drive the
// emulation.
//
// There are two clocks in the machine. The instruction clock is advanced with
// Cycle() and the 60Hz timer clock is advanced with TickTimers(). The two
// clocks are independent but RunFrame() is a convenient way of advancing both
// clocks in the correct proportion. Run() calls RunFrame() sixty times a
// second until it is told to stop.
package hardware
