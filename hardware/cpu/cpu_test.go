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

package cpu_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/test"
)

// mockRandom returns the same value every time
type mockRandom uint8

func (rnd mockRandom) Uint8() uint8 {
	return uint8(rnd)
}

type machine struct {
	mc  *cpu.CPU
	mem *memory.Memory
	dsp *display.Display
}

// newMachine creates a CPU with the program loaded at the program origin.
// the program is a list of opcodes
func newMachine(t *testing.T, prefs *preferences.Preferences, program ...uint16) machine {
	t.Helper()

	m := machine{
		mem: memory.NewMemory(),
		dsp: display.NewDisplay(),
	}
	m.mc = cpu.NewCPU(prefs, m.mem, m.dsp, mockRandom(0xff))

	rom := make([]uint8, 0, len(program)*2)
	for _, op := range program {
		rom = append(rom, uint8(op>>8), uint8(op))
	}
	test.DemandSuccess(t, m.mem.Load(rom))

	return m
}

// step the CPU forward one instruction. a failure is fatal
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	if err := mc.Cycle(); err != nil {
		t.Fatal(err)
	}
}

// steps calls step() n times
func steps(t *testing.T, mc *cpu.CPU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		step(t, mc)
	}
}

func TestInitialState(t *testing.T) {
	m := newMachine(t, nil)
	test.ExpectEquality(t, m.mc.PC, uint16(memory.ProgramOrigin))
	test.ExpectEquality(t, m.mc.I, uint16(0))
	test.ExpectEquality(t, m.mc.Stack.Pointer(), 0)
	test.ExpectEquality(t, m.mc.State, cpu.Running)
	test.ExpectEquality(t, m.mc.Killed, false)
}

func TestFetch(t *testing.T) {
	m := newMachine(t, nil, 0x6a12)
	step(t, m.mc)
	test.ExpectEquality(t, m.mc.PC, uint16(0x202))
	test.ExpectEquality(t, m.mc.V[0xa], uint8(0x12))
	test.ExpectEquality(t, m.mc.LastResult.Address, uint16(0x200))
	test.ExpectEquality(t, m.mc.LastResult.Instruction.Opcode, uint16(0x6a12))
	test.ExpectEquality(t, m.mc.LastResult.Instruction.Operator, instructions.LoadImm)
	test.ExpectEquality(t, m.mc.LastResult.Final, true)
	test.ExpectEquality(t, m.mc.LastResult.String(), "0200 6a12 LD VA, $12")
}

func TestNop(t *testing.T) {
	m := newMachine(t, nil, 0x0000, 0x0000)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.PC, uint16(0x204))
}

func TestJumpAndCall(t *testing.T) {
	// 200: CALL 206
	// 202: JP 20a
	// 204: NOP
	// 206: LD V1, 01
	// 208: RET
	// 20a: NOP
	m := newMachine(t, nil, 0x2206, 0x120a, 0x0000, 0x6101, 0x00ee, 0x0000)

	step(t, m.mc)
	test.ExpectEquality(t, m.mc.PC, uint16(0x206))
	test.ExpectEquality(t, m.mc.Stack.Pointer(), 1)
	if diff := cmp.Diff([]uint16{0x202}, m.mc.Stack.Entries()); diff != "" {
		t.Errorf("stack mismatch (-want +got):\n%s", diff)
	}

	step(t, m.mc)
	test.ExpectEquality(t, m.mc.V[1], uint8(1))

	step(t, m.mc)
	test.ExpectEquality(t, m.mc.PC, uint16(0x202))
	test.ExpectEquality(t, m.mc.Stack.Pointer(), 0)

	step(t, m.mc)
	test.ExpectEquality(t, m.mc.PC, uint16(0x20a))
}

func TestJumpOffset(t *testing.T) {
	m := newMachine(t, nil, 0x6010, 0xb300)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.PC, uint16(0x310))
}

func TestStackOverflow(t *testing.T) {
	// recursive call to self
	m := newMachine(t, nil, 0x2200)
	steps(t, m.mc, cpu.StackDepth)
	test.ExpectEquality(t, m.mc.Stack.Pointer(), cpu.StackDepth)

	err := m.mc.Cycle()
	test.ExpectSuccess(t, curated.Is(err, cpu.Fault))
	test.ExpectSuccess(t, curated.Has(err, cpu.StackOverflow))
	test.ExpectEquality(t, m.mc.Killed, true)
}

func TestStackUnderflow(t *testing.T) {
	m := newMachine(t, nil, 0x00ee)
	err := m.mc.Cycle()
	test.ExpectSuccess(t, curated.Has(err, cpu.StackUnderflow))
	test.ExpectEquality(t, err.Error(), "cpu: fault at 0200: cpu: stack underflow")
}

func TestSkips(t *testing.T) {
	skips := []struct {
		program []uint16
		skip    bool
	}{
		{[]uint16{0x6105, 0x3105}, true},
		{[]uint16{0x6105, 0x3106}, false},
		{[]uint16{0x6105, 0x4106}, true},
		{[]uint16{0x6105, 0x4105}, false},
		{[]uint16{0x6105, 0x6205, 0x0000, 0x5120}, true},
		{[]uint16{0x6105, 0x6206, 0x0000, 0x5120}, false},
		{[]uint16{0x6105, 0x6206, 0x0000, 0x9120}, true},
		{[]uint16{0x6105, 0x6205, 0x0000, 0x9120}, false},
	}

	for i, s := range skips {
		m := newMachine(t, nil, s.program...)
		steps(t, m.mc, len(s.program))

		// the address after the last instruction of the program
		next := uint16(0x200 + len(s.program)*2)
		if s.skip {
			next += 2
		}
		test.ExpectEquality(t, m.mc.PC, next, i)
	}
}

func TestAddImmediate(t *testing.T) {
	// VX=250, add 10. the result wraps and VF is not changed
	m := newMachine(t, nil, 0x6ffa, 0x61fa, 0x710a, 0x7f0a)
	steps(t, m.mc, 3)
	test.ExpectEquality(t, m.mc.V[1], uint8(4))
	test.ExpectEquality(t, m.mc.V[0xf], uint8(0xfa))

	// add to VF itself
	step(t, m.mc)
	test.ExpectEquality(t, m.mc.V[0xf], uint8(4))
}

func TestLogical(t *testing.T) {
	m := newMachine(t, nil, 0x61f0, 0x623c, 0x8120, 0x61f0, 0x8121, 0x61f0, 0x8122, 0x61f0, 0x8123)
	steps(t, m.mc, 3)
	test.ExpectEquality(t, m.mc.V[1], uint8(0x3c))
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.V[1], uint8(0xfc))
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.V[1], uint8(0x30))
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.V[1], uint8(0xcc))
}

func TestAdd(t *testing.T) {
	m := newMachine(t, nil, 0x61c8, 0x6264, 0x8124)
	steps(t, m.mc, 3)
	test.ExpectEquality(t, m.mc.V[1], uint8(44))
	test.ExpectEquality(t, m.mc.V[0xf], uint8(1))

	m = newMachine(t, nil, 0x610a, 0x6214, 0x8124)
	steps(t, m.mc, 3)
	test.ExpectEquality(t, m.mc.V[1], uint8(30))
	test.ExpectEquality(t, m.mc.V[0xf], uint8(0))

	// the flag is written after the result
	m = newMachine(t, nil, 0x6fc8, 0x6264, 0x8f24)
	steps(t, m.mc, 3)
	test.ExpectEquality(t, m.mc.V[0xf], uint8(1))
}

func TestSub(t *testing.T) {
	subs := []struct {
		opcode uint16
		x, y   uint8
		result uint8
		flag   uint8
	}{
		// VX - VY
		{0x8125, 5, 3, 2, 1},
		{0x8125, 3, 5, 254, 0},
		{0x8125, 5, 5, 0, 1},

		// VY - VX
		{0x8127, 3, 5, 2, 1},
		{0x8127, 5, 3, 254, 0},
		{0x8127, 5, 5, 0, 1},
	}

	for i, s := range subs {
		m := newMachine(t, nil, 0x6100|uint16(s.x), 0x6200|uint16(s.y), s.opcode)
		steps(t, m.mc, 3)
		test.ExpectEquality(t, m.mc.V[1], s.result, i)
		test.ExpectEquality(t, m.mc.V[0xf], s.flag, i)
	}
}

func TestShift(t *testing.T) {
	// shift right. VY is ignored
	m := newMachine(t, nil, 0x6105, 0x62f0, 0x8126)
	steps(t, m.mc, 3)
	test.ExpectEquality(t, m.mc.V[1], uint8(0x02))
	test.ExpectEquality(t, m.mc.V[2], uint8(0xf0))
	test.ExpectEquality(t, m.mc.V[0xf], uint8(1))

	// shift left
	m = newMachine(t, nil, 0x6181, 0x812e)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.V[1], uint8(0x02))
	test.ExpectEquality(t, m.mc.V[0xf], uint8(1))

	m = newMachine(t, nil, 0x6141, 0x812e)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.V[1], uint8(0x82))
	test.ExpectEquality(t, m.mc.V[0xf], uint8(0))

	// shifting VF. the flag is written before the result
	m = newMachine(t, nil, 0x6f04, 0x8f06)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.V[0xf], uint8(0x02))
}

func TestShiftUsesVY(t *testing.T) {
	prefs := preferences.NewDefaultPreferences()
	test.DemandSuccess(t, prefs.ShiftUsesVY.Set(true))

	m := newMachine(t, prefs, 0x6105, 0x62f1, 0x8126)
	steps(t, m.mc, 3)
	test.ExpectEquality(t, m.mc.V[1], uint8(0x78))
	test.ExpectEquality(t, m.mc.V[2], uint8(0xf1))
	test.ExpectEquality(t, m.mc.V[0xf], uint8(1))

	m = newMachine(t, prefs, 0x6105, 0x62f1, 0x812e)
	steps(t, m.mc, 3)
	test.ExpectEquality(t, m.mc.V[1], uint8(0xe2))
	test.ExpectEquality(t, m.mc.V[0xf], uint8(1))
}

func TestIndex(t *testing.T) {
	m := newMachine(t, nil, 0xa123, 0x6110, 0xf11e)
	step(t, m.mc)
	test.ExpectEquality(t, m.mc.I, uint16(0x123))
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.I, uint16(0x133))

	// I wraps at sixteen bits and VF is unaffected
	m = newMachine(t, nil, 0x6102, 0xf11e)
	m.mc.I = 0xffff
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.I, uint16(0x0001))
	test.ExpectEquality(t, m.mc.V[0xf], uint8(0))
}

func TestRandom(t *testing.T) {
	m := newMachine(t, nil, 0xc50f)
	step(t, m.mc)
	test.ExpectEquality(t, m.mc.V[5], uint8(0x0f))
}

func TestFont(t *testing.T) {
	m := newMachine(t, nil, 0x610a, 0xf129)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.I, uint16(50))

	// the font address is not masked to the lower nibble of VX
	m = newMachine(t, nil, 0x6120, 0xf129)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.I, uint16(160))
}

func TestBCD(t *testing.T) {
	m := newMachine(t, nil, 0x617b, 0xa300, 0xf133)
	steps(t, m.mc, 3)

	d, err := m.mem.Peek(0x300, 3)
	test.DemandSuccess(t, err)
	if diff := cmp.Diff([]uint8{1, 2, 3}, d); diff != "" {
		t.Errorf("BCD mismatch (-want +got):\n%s", diff)
	}
	test.ExpectEquality(t, m.mc.I, uint16(0x300))
}

func TestStoreLoadRegisters(t *testing.T) {
	// store V0 to V3 at 0x300, clear the registers and load them back
	m := newMachine(t, nil,
		0x6011, 0x6122, 0x6233, 0x6344, 0x6455,
		0xa300, 0xf355,
		0x6000, 0x6100, 0x6200, 0x6300,
		0xf365,
	)

	steps(t, m.mc, 7)
	d, err := m.mem.Peek(0x300, 5)
	test.DemandSuccess(t, err)
	if diff := cmp.Diff([]uint8{0x11, 0x22, 0x33, 0x44, 0x00}, d); diff != "" {
		t.Errorf("store mismatch (-want +got):\n%s", diff)
	}
	test.ExpectEquality(t, m.mc.I, uint16(0x300))

	steps(t, m.mc, 5)
	if diff := cmp.Diff([]uint8{0x11, 0x22, 0x33, 0x44, 0x55}, m.mc.V[:5]); diff != "" {
		t.Errorf("load mismatch (-want +got):\n%s", diff)
	}
	test.ExpectEquality(t, m.mc.I, uint16(0x300))
}

func TestLoadStoreIncrementsI(t *testing.T) {
	prefs := preferences.NewDefaultPreferences()
	test.DemandSuccess(t, prefs.LoadStoreIncrementsI.Set(true))

	m := newMachine(t, prefs, 0xa300, 0xf355, 0xf165)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.I, uint16(0x304))
	step(t, m.mc)
	test.ExpectEquality(t, m.mc.I, uint16(0x306))
}

func TestMemoryFault(t *testing.T) {
	// storing beyond the end of memory
	m := newMachine(t, nil, 0xafff, 0xf155)
	step(t, m.mc)
	err := m.mc.Cycle()
	test.ExpectSuccess(t, curated.Has(err, memory.AddressOutOfRange))

	// the index can't exceed sixteen bits either
	m = newMachine(t, nil, 0xf133)
	m.mc.I = 0xffff
	err = m.mc.Cycle()
	test.ExpectSuccess(t, curated.Has(err, memory.AddressOutOfRange))

	// execution beyond the end of memory
	m = newMachine(t, nil, 0x1fff)
	step(t, m.mc)
	err = m.mc.Cycle()
	test.ExpectSuccess(t, curated.Has(err, memory.AddressOutOfRange))
	test.ExpectEquality(t, m.mc.LastResult.Address, uint16(0xfff))
}

func TestUnknownOpcode(t *testing.T) {
	m := newMachine(t, nil, 0x5121, 0x0000)

	err := m.mc.Cycle()
	test.ExpectSuccess(t, curated.Is(err, cpu.Fault))
	test.ExpectSuccess(t, curated.Has(err, instructions.UnknownOpcode))
	test.ExpectEquality(t, m.mc.Killed, true)
	test.ExpectEquality(t, m.mc.LastResult.Final, false)
	test.ExpectEquality(t, m.mc.LastResult.Instruction.Opcode, uint16(0x5121))

	// the CPU stays killed and returns the same error
	pc := m.mc.PC
	err2 := m.mc.Cycle()
	test.ExpectEquality(t, err2.Error(), err.Error())
	test.ExpectEquality(t, m.mc.Fault().Error(), err.Error())
	test.ExpectEquality(t, m.mc.PC, pc)

	// reset clears the fault
	m.mc.Reset()
	test.ExpectEquality(t, m.mc.Killed, false)
	test.ExpectSuccess(t, m.mc.Fault())
}

func TestDraw(t *testing.T) {
	// draw the sprite for digit 0 at (1,2) twice
	m := newMachine(t, nil, 0x6001, 0x6102, 0xa000, 0xd015, 0xd015)
	steps(t, m.mc, 4)
	test.ExpectEquality(t, m.mc.V[0xf], uint8(0))

	// top row of the zero digit is 0xf0
	for x := 0; x < 8; x++ {
		v, err := m.dsp.Get(display.Index(1+x, 2))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, x < 4, x)
	}

	// the second draw erases the first and sets the collision flag
	step(t, m.mc)
	test.ExpectEquality(t, m.mc.V[0xf], uint8(1))
	if diff := cmp.Diff(make([]bool, display.NumPixels), m.dsp.Snapshot()); diff != "" {
		t.Errorf("display not clear (-want +got):\n%s", diff)
	}
}

func TestDrawWrap(t *testing.T) {
	// a single row sprite of 0xff drawn at (60, 31) wraps horizontally
	m := newMachine(t, nil, 0x603c, 0x611f, 0xa300, 0xd011)
	test.DemandSuccess(t, m.mem.Write(0x300, 0xff))
	steps(t, m.mc, 4)

	for x := 0; x < display.Width; x++ {
		v, _ := m.dsp.Get(display.Index(x, 31))
		test.ExpectEquality(t, v, x >= 60 || x < 4, x)
	}

	// vertical wrap. two row sprite at row 31
	m = newMachine(t, nil, 0x6000, 0x611f, 0xa300, 0xd012)
	test.DemandSuccess(t, m.mem.Write(0x300, 0x80))
	test.DemandSuccess(t, m.mem.Write(0x301, 0x80))
	steps(t, m.mc, 4)
	v, _ := m.dsp.Get(display.Index(0, 31))
	test.ExpectEquality(t, v, true)
	v, _ = m.dsp.Get(display.Index(0, 0))
	test.ExpectEquality(t, v, true)

	// the origin is wrapped too
	m = newMachine(t, nil, 0x6041, 0x6121, 0xa300, 0xd011)
	test.DemandSuccess(t, m.mem.Write(0x300, 0x80))
	steps(t, m.mc, 4)
	v, _ = m.dsp.Get(display.Index(1, 1))
	test.ExpectEquality(t, v, true)
}

func TestDrawCollisionAccumulates(t *testing.T) {
	// light one pixel at (0,0) then draw a two row sprite whose first row
	// collides and whose second row doesn't
	m := newMachine(t, nil, 0x6000, 0xa300, 0xd001, 0xa301, 0xd002)
	test.DemandSuccess(t, m.mem.Write(0x300, 0x80))
	test.DemandSuccess(t, m.mem.Write(0x301, 0x80))
	test.DemandSuccess(t, m.mem.Write(0x302, 0x40))
	steps(t, m.mc, 5)
	test.ExpectEquality(t, m.mc.V[0xf], uint8(1))
}

func TestDrawFault(t *testing.T) {
	// sprite data runs off the end of memory. the display must be unchanged
	m := newMachine(t, nil, 0x6f07, 0xaffe, 0xd005)
	steps(t, m.mc, 2)
	gen := m.dsp.Generation()

	err := m.mc.Cycle()
	test.ExpectSuccess(t, curated.Has(err, memory.AddressOutOfRange))
	test.ExpectEquality(t, m.dsp.Generation(), gen)
	test.ExpectEquality(t, m.mc.V[0xf], uint8(7))
}

func TestClearScreen(t *testing.T) {
	m := newMachine(t, nil, 0xa000, 0xd005, 0x00e0)
	steps(t, m.mc, 3)
	if diff := cmp.Diff(make([]bool, display.NumPixels), m.dsp.Snapshot()); diff != "" {
		t.Errorf("display not clear (-want +got):\n%s", diff)
	}
}

func TestKeySkips(t *testing.T) {
	m := newMachine(t, nil, 0x6105, 0xe19e, 0x0000, 0xe1a1, 0x0000)
	test.DemandSuccess(t, m.mc.SetKey(5, true))
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.PC, uint16(0x206))
	step(t, m.mc)
	test.ExpectEquality(t, m.mc.PC, uint16(0x208))

	// key value out of range
	m = newMachine(t, nil, 0x6110, 0xe19e)
	step(t, m.mc)
	err := m.mc.Cycle()
	test.ExpectSuccess(t, curated.Has(err, keypad.KeyOutOfRange))

	test.ExpectSuccess(t, curated.Is(m.mc.SetKey(16, true), keypad.KeyOutOfRange))
}

func TestWaitKey(t *testing.T) {
	m := newMachine(t, nil, 0x6a99, 0xfa0a, 0x0000)
	step(t, m.mc)

	// no key is pressed so the CPU waits. the PC still points at the FX0A
	// instruction and VA is unchanged
	for i := 0; i < 5; i++ {
		step(t, m.mc)
		test.ExpectEquality(t, m.mc.PC, uint16(0x202), i)
		test.ExpectEquality(t, m.mc.V[0xa], uint8(0x99), i)
		test.ExpectEquality(t, m.mc.State, cpu.AwaitingKey, i)
		test.ExpectEquality(t, m.mc.LastResult.Waiting, true, i)
		test.ExpectEquality(t, m.mc.LastResult.Address, uint16(0x202), i)
	}

	reg, ok := m.mc.AwaitingRegister()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, reg, uint8(0xa))

	// timers continue to run while waiting
	m.mc.DT.Set(2)
	m.mc.TickTimers()
	test.ExpectEquality(t, m.mc.DT.Value(), uint8(1))

	// press two keys. the lowest is stored
	test.DemandSuccess(t, m.mc.SetKey(0xc, true))
	test.DemandSuccess(t, m.mc.SetKey(0x7, true))
	step(t, m.mc)
	test.ExpectEquality(t, m.mc.V[0xa], uint8(0x7))
	test.ExpectEquality(t, m.mc.PC, uint16(0x204))
	test.ExpectEquality(t, m.mc.State, cpu.Running)
	test.ExpectEquality(t, m.mc.LastResult.Final, true)

	_, ok = m.mc.AwaitingRegister()
	test.ExpectEquality(t, ok, false)
}

func TestWaitKeyPressed(t *testing.T) {
	// a key already pressed completes the instruction immediately
	m := newMachine(t, nil, 0xf30a)
	test.DemandSuccess(t, m.mc.SetKey(0xe, true))
	step(t, m.mc)
	test.ExpectEquality(t, m.mc.V[3], uint8(0xe))
	test.ExpectEquality(t, m.mc.PC, uint16(0x202))
	test.ExpectEquality(t, m.mc.State, cpu.Running)
}

func TestTimers(t *testing.T) {
	m := newMachine(t, nil, 0x6103, 0xf115, 0xf118, 0xf207)
	steps(t, m.mc, 3)
	test.ExpectEquality(t, m.mc.DT.Value(), uint8(3))
	test.ExpectEquality(t, m.mc.ST.Value(), uint8(3))
	test.ExpectEquality(t, m.mc.SoundActive(), true)

	// execution doesn't change the timers
	step(t, m.mc)
	test.ExpectEquality(t, m.mc.V[2], uint8(3))
	test.ExpectEquality(t, m.mc.DT.Value(), uint8(3))

	test.ExpectEquality(t, m.mc.TickTimers(), false)
	test.ExpectEquality(t, m.mc.TickTimers(), false)

	// sound timer is exactly one before this tick
	test.ExpectEquality(t, m.mc.TickTimers(), true)
	test.ExpectEquality(t, m.mc.SoundActive(), false)

	// floor at zero
	for i := 0; i < 300; i++ {
		test.ExpectEquality(t, m.mc.TickTimers(), false)
	}
	test.ExpectEquality(t, m.mc.DT.Value(), uint8(0))
	test.ExpectEquality(t, m.mc.ST.Value(), uint8(0))
}

func TestReset(t *testing.T) {
	m := newMachine(t, nil, 0x6155, 0xa123, 0x2300)
	test.DemandSuccess(t, m.mc.SetKey(1, true))
	m.mc.DT.Set(10)
	steps(t, m.mc, 3)

	m.mc.Reset()
	test.ExpectEquality(t, m.mc.PC, uint16(memory.ProgramOrigin))
	test.ExpectEquality(t, m.mc.V[1], uint8(0))
	test.ExpectEquality(t, m.mc.I, uint16(0))
	test.ExpectEquality(t, m.mc.Stack.Pointer(), 0)
	test.ExpectEquality(t, m.mc.DT.Value(), uint8(0))
	_, ok := m.mc.Keys.Lowest()
	test.ExpectEquality(t, ok, false)
}

func TestString(t *testing.T) {
	m := newMachine(t, nil, 0x6a12)
	step(t, m.mc)
	test.ExpectEquality(t, m.mc.String(),
		"PC=0202 I=0000 DT=00 ST=00 SP=0 V0=00 V1=00 V2=00 V3=00 V4=00 V5=00 V6=00 V7=00 V8=00 V9=00 VA=12 VB=00 VC=00 VD=00 VE=00 VF=00")
}
