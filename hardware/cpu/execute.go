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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/display"
)

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// execute a decoded instruction. the PC has already been advanced past the
// instruction
func (mc *CPU) execute(ins instructions.Instruction) error {
	switch ins.Operator {
	case instructions.Nop:

	case instructions.ClearScreen:
		mc.dsp.Clear()

	case instructions.Return:
		address, err := mc.Stack.Pop()
		if err != nil {
			return err
		}
		mc.PC = address

	case instructions.Jump:
		mc.PC = ins.NNN

	case instructions.Call:
		if err := mc.Stack.Push(mc.PC); err != nil {
			return err
		}
		mc.PC = ins.NNN

	case instructions.SkipEqualImm:
		if mc.V[ins.X] == ins.NN {
			mc.PC += 2
		}

	case instructions.SkipNotEqualImm:
		if mc.V[ins.X] != ins.NN {
			mc.PC += 2
		}

	case instructions.SkipEqualReg:
		if mc.V[ins.X] == mc.V[ins.Y] {
			mc.PC += 2
		}

	case instructions.LoadImm:
		mc.V[ins.X] = ins.NN

	case instructions.AddImm:
		mc.V[ins.X] += ins.NN

	case instructions.Move:
		mc.V[ins.X] = mc.V[ins.Y]

	case instructions.Or:
		mc.V[ins.X] |= mc.V[ins.Y]

	case instructions.And:
		mc.V[ins.X] &= mc.V[ins.Y]

	case instructions.Xor:
		mc.V[ins.X] ^= mc.V[ins.Y]

	// for the arithmetic instructions the flag is written after the result so
	// that the flag survives when X is the flag register
	case instructions.Add:
		sum := uint16(mc.V[ins.X]) + uint16(mc.V[ins.Y])
		mc.V[ins.X] = uint8(sum)
		mc.V[vf] = boolToFlag(sum > 0xff)

	case instructions.Sub:
		noBorrow := mc.V[ins.X] >= mc.V[ins.Y]
		mc.V[ins.X] -= mc.V[ins.Y]
		mc.V[vf] = boolToFlag(noBorrow)

	case instructions.SubReverse:
		noBorrow := mc.V[ins.Y] >= mc.V[ins.X]
		mc.V[ins.X] = mc.V[ins.Y] - mc.V[ins.X]
		mc.V[vf] = boolToFlag(noBorrow)

	// for the shift instructions the flag is written before the result
	case instructions.ShiftRight:
		v := mc.shiftSource(ins)
		mc.V[vf] = v & 0x01
		mc.V[ins.X] = v >> 1

	case instructions.ShiftLeft:
		v := mc.shiftSource(ins)
		mc.V[vf] = v >> 7
		mc.V[ins.X] = v << 1

	case instructions.SkipNotEqualReg:
		if mc.V[ins.X] != mc.V[ins.Y] {
			mc.PC += 2
		}

	case instructions.LoadIndex:
		mc.I = ins.NNN

	case instructions.JumpOffset:
		mc.PC = ins.NNN + uint16(mc.V[0])

	case instructions.Random:
		mc.V[ins.X] = mc.rnd.Uint8() & ins.NN

	case instructions.Draw:
		return mc.draw(ins)

	case instructions.SkipKeyPressed:
		p, err := mc.Keys.Pressed(int(mc.V[ins.X]))
		if err != nil {
			return err
		}
		if p {
			mc.PC += 2
		}

	case instructions.SkipKeyNotPressed:
		p, err := mc.Keys.Pressed(int(mc.V[ins.X]))
		if err != nil {
			return err
		}
		if !p {
			mc.PC += 2
		}

	case instructions.LoadDelay:
		mc.V[ins.X] = mc.DT.Value()

	case instructions.WaitKey:
		if k, ok := mc.Keys.Lowest(); ok {
			mc.V[ins.X] = k
			break
		}

		// leave the PC pointing at this instruction until a key is pressed
		mc.PC -= 2
		mc.State = AwaitingKey
		mc.awaitReg = ins.X

	case instructions.SetDelay:
		mc.DT.Set(mc.V[ins.X])

	case instructions.SetSound:
		mc.ST.Set(mc.V[ins.X])

	case instructions.AddIndex:
		mc.I += uint16(mc.V[ins.X])

	case instructions.LoadFont:
		mc.I = uint16(mc.V[ins.X]) * 5

	case instructions.StoreBCD:
		v := mc.V[ins.X]
		digits := [3]uint8{v / 100, (v / 10) % 10, v % 10}
		for i, d := range digits {
			address, err := mc.index(i)
			if err != nil {
				return err
			}
			if err := mc.mem.Write(address, d); err != nil {
				return err
			}
		}

	case instructions.StoreRegisters:
		for i := 0; i <= int(ins.X); i++ {
			address, err := mc.index(i)
			if err != nil {
				return err
			}
			if err := mc.mem.Write(address, mc.V[i]); err != nil {
				return err
			}
		}
		if mc.prefs.LoadStoreIncrementsI.Get().(bool) {
			mc.I += uint16(ins.X) + 1
		}

	case instructions.LoadRegisters:
		for i := 0; i <= int(ins.X); i++ {
			address, err := mc.index(i)
			if err != nil {
				return err
			}
			v, err := mc.mem.Read(address)
			if err != nil {
				return err
			}
			mc.V[i] = v
		}
		if mc.prefs.LoadStoreIncrementsI.Get().(bool) {
			mc.I += uint16(ins.X) + 1
		}

	default:
		return curated.Errorf(instructions.UnknownOpcode, ins.Opcode)
	}

	return nil
}

func (mc *CPU) shiftSource(ins instructions.Instruction) uint8 {
	if mc.prefs.ShiftUsesVY.Get().(bool) {
		return mc.V[ins.Y]
	}
	return mc.V[ins.X]
}

// draw the N byte sprite at address I to the display at coordinates VX, VY.
// all sprite data is read before the display is changed
func (mc *CPU) draw(ins instructions.Instruction) error {
	sprite := make([]uint8, ins.N)
	for i := range sprite {
		address, err := mc.index(i)
		if err != nil {
			return err
		}
		sprite[i], err = mc.mem.Read(address)
		if err != nil {
			return err
		}
	}

	x := int(mc.V[ins.X])
	y := int(mc.V[ins.Y])

	var collision bool
	for row, b := range sprite {
		for col := 0; col < 8; col++ {
			if b&(0x80>>col) == 0 {
				continue
			}
			prev, err := mc.dsp.XorPixel(display.Index(x+col, y+row))
			if err != nil {
				return err
			}
			collision = collision || prev
		}
	}

	mc.V[vf] = boolToFlag(collision)

	return nil
}
