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

// Package cpu emulates the CHIP-8 interpreter. The CPU owns the registers,
// the call stack, the two timers and the keypad. Memory and the display are
// external to the CPU and are accessed through the Memory and Display
// interfaces.
//
// The bread-and-butter of the CPU type is the Cycle() function. Each call to
// Cycle() fetches, decodes and executes exactly one instruction. The timers
// are not ticked by Cycle(). They must be ticked separately by the host with
// TickTimers(), canonically at 60Hz.
//
// Let's assume mem and dsp are implementations of the Memory and Display
// interfaces, and that mem contains a program at memory.ProgramOrigin.
//
//	mc := cpu.NewCPU(nil, mem, dsp, random.NewRandom(0))
//
//	for {
//		for i := 0; i < 10; i++ {
//			if err := mc.Cycle(); err != nil {
//				return err
//			}
//		}
//		mc.TickTimers()
//	}
//
// The FX0A instruction waits for a key to be pressed. If no key is pressed
// when the instruction is executed the CPU enters the AwaitingKey state. In
// that state the PC continues to point at the FX0A instruction and each call
// to Cycle() scans the keypad without fetching. When a key is pressed the key
// value is stored in the register named by the instruction, the PC advances
// to the next instruction and the CPU returns to the Running state.
//
// Any error returned by Cycle() is fatal. The error is wrapped with the Fault
// pattern and the Killed flag is set. Further calls to Cycle() return the
// same error until Reset() is called. The curated.Has() function can be used
// to identify the specific fault.
//
// The LastResult field can be probed for information about the last
// instruction executed. Very useful for debuggers.
package cpu
