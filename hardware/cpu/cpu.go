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
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/hardware/timer"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// the flag register
const vf = 0xf

// Sentinal error patterns.
const (
	// the first placeholder is the address of the faulting instruction. the
	// second placeholder is the underlying error
	Fault = "cpu: fault at %04x: %v"

	StackOverflow  = "cpu: stack overflow (depth %d)"
	StackUnderflow = "cpu: stack underflow"
)

// CPU implements the CHIP-8 interpreter.
type CPU struct {
	prefs *preferences.Preferences

	mem Memory
	dsp Display
	rnd Random

	// program counter
	PC uint16

	// general purpose registers V0 to VF. VF is also used as a flag by some
	// instructions
	V [NumRegisters]uint8

	// index register
	I uint16

	Stack Stack

	DT *timer.Timer
	ST *timer.Timer

	Keys keypad.Keypad

	State State

	// the register that will receive the key value when the CPU leaves the
	// AwaitingKey state
	awaitReg uint8

	// information about the most recent call to Cycle()
	LastResult Result

	// the CPU has encountered a fault. requires a Reset()
	Killed bool
	fault  error
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// prefs argument can be nil, in which case the default preferences are used.
func NewCPU(prefs *preferences.Preferences, mem Memory, dsp Display, rnd Random) *CPU {
	if prefs == nil {
		prefs = preferences.NewDefaultPreferences()
	}
	mc := &CPU{
		prefs: prefs,
		mem:   mem,
		dsp:   dsp,
		rnd:   rnd,
		DT:    timer.NewTimer("DT"),
		ST:    timer.NewTimer("ST"),
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%04x I=%04x %s %s SP=%d", mc.PC, mc.I, mc.DT, mc.ST, mc.Stack.Pointer()))
	for i, v := range mc.V {
		s.WriteString(fmt.Sprintf(" V%X=%02x", i, v))
	}
	return s.String()
}

// Reset reinitialises the CPU to its construction state. Memory and display
// are not affected.
func (mc *CPU) Reset() {
	mc.PC = memory.ProgramOrigin
	mc.I = 0
	for i := range mc.V {
		mc.V[i] = 0
	}
	mc.Stack.Reset()
	mc.DT.Reset()
	mc.ST.Reset()
	mc.Keys.Reset()
	mc.State = Running
	mc.awaitReg = 0
	mc.LastResult.Reset()
	mc.Killed = false
	mc.fault = nil
}

// Fault returns the error that killed the CPU. Returns nil if the CPU has not
// been killed.
func (mc *CPU) Fault() error {
	return mc.fault
}

// AwaitingRegister returns the register that will receive the next key press.
// The second return value is false if the CPU is not in the AwaitingKey
// state.
func (mc *CPU) AwaitingRegister() (uint8, bool) {
	return mc.awaitReg, mc.State == AwaitingKey
}

// SetKey sets the pressed state of a key on the keypad.
func (mc *CPU) SetKey(key int, pressed bool) error {
	return mc.Keys.Set(key, pressed)
}

// TickTimers decreases the delay and sound timers by one, if they are not
// already zero. Returns true if the sound timer was exactly one before the
// tick. This is the point at which the host should sound the beep.
func (mc *CPU) TickTimers() bool {
	mc.DT.Tick()
	return mc.ST.Tick()
}

// SoundActive returns true if the sound timer is non-zero.
func (mc *CPU) SoundActive() bool {
	return mc.ST.Active()
}

// kill the CPU with the error. the error is wrapped with the address of the
// instruction that caused it
func (mc *CPU) kill(err error) error {
	mc.Killed = true
	mc.fault = curated.Errorf(Fault, mc.LastResult.Address, err)
	return mc.fault
}

// Cycle fetches, decodes and executes one instruction. If the CPU is in the
// AwaitingKey state then the keypad is scanned instead.
func (mc *CPU) Cycle() error {
	if mc.Killed {
		return mc.fault
	}

	if mc.State == AwaitingKey {
		mc.scanKeys()
		return nil
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC

	opcode, err := mc.mem.Fetch(mc.PC)
	if err != nil {
		return mc.kill(err)
	}
	mc.PC += 2

	ins, err := instructions.Decode(opcode)
	mc.LastResult.Instruction = ins
	if err != nil {
		return mc.kill(err)
	}

	err = mc.execute(ins)
	if err != nil {
		return mc.kill(err)
	}

	mc.LastResult.Waiting = mc.State == AwaitingKey
	mc.LastResult.Final = !mc.LastResult.Waiting

	return nil
}

// scanKeys is the AwaitingKey equivalent of the fetch/decode/execute cycle.
// LastResult continues to refer to the FX0A instruction
func (mc *CPU) scanKeys() {
	k, ok := mc.Keys.Lowest()
	if !ok {
		return
	}
	mc.V[mc.awaitReg] = k
	mc.PC += 2
	mc.State = Running
	mc.LastResult.Waiting = false
	mc.LastResult.Final = true
}

// index returns the address I+offset. the address must fit in sixteen bits
func (mc *CPU) index(offset int) (uint16, error) {
	a := int(mc.I) + offset
	if a > 0xffff {
		return 0, curated.Errorf(memory.AddressOutOfRange, a)
	}
	return uint16(a), nil
}
