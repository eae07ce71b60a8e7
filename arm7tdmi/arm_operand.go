// This file is part of arm7tdmi.
//
// arm7tdmi is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// arm7tdmi is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with arm7tdmi.  If not, see <https://www.gnu.org/licenses/>.

package arm7tdmi

import "math/bits"

// readRegForShift reads register r the way the barrel shifter's operand
// sees it: the pipeline already keeps R15 at PC+8 for every ordinary
// register read during ARM execution (cpu.regs.Read(rPC) == executingPC+8,
// by construction of Step), but spec.md 4.3 requires PC+12 specifically
// when the shift amount itself comes from a register. regSpecified is
// true for that case only.
func (cpu *CPU) readRegForShift(r int, regSpecified bool) uint32 {
	v := cpu.regs.Read(r)
	if r == rPC && regSpecified {
		v += 4
	}
	return v
}

// operand2Immediate resolves the 12 bit immediate operand2 of a data
// processing instruction: an 8 bit immediate rotated right by twice the
// 4 bit rotate field. Per spec.md 4.3, the shifter carry-out equals the
// current carry flag when the rotate is zero, otherwise bit 31 of the
// rotated result.
func (cpu *CPU) operand2Immediate(opcode uint32) (val uint32, carryOut bool) {
	imm := opcode & 0xff
	rotate := ((opcode >> 8) & 0xf) * 2
	if rotate == 0 {
		return imm, cpu.regs.C()
	}
	val = bits.RotateLeft32(imm, -int(rotate))
	return val, val&0x80000000 != 0
}

// operand2Register resolves the register-form operand2 of a data
// processing or single-data-transfer instruction, including the shift
// amount's register-vs-immediate distinction and the PC+12/PC+8 reading
// rule spec.md 4.3 describes.
func (cpu *CPU) operand2Register(opcode uint32) (val uint32, carryOut bool) {
	rm := int(opcode & 0xf)
	kind := ShiftType((opcode >> 5) & 0x3)

	if opcode&0x10 != 0 {
		rs := int((opcode >> 8) & 0xf)
		amount := cpu.regs.Read(rs) & 0xff
		v := cpu.readRegForShift(rm, true)
		return shiftRegister(kind, v, amount, cpu.regs.C())
	}

	amount := (opcode >> 7) & 0x1f
	v := cpu.readRegForShift(rm, false)
	return shiftImmediate(kind, v, amount, cpu.regs.C())
}

// resolveOperand2 dispatches to the immediate or register form per the I
// bit (bit 25).
func (cpu *CPU) resolveOperand2(opcode uint32) (val uint32, carryOut bool) {
	if opcode&(1<<25) != 0 {
		return cpu.operand2Immediate(opcode)
	}
	return cpu.operand2Register(opcode)
}

// storeValueOf returns the value a store instruction writes for register
// r, applying the ARM quirk that a stored R15 reads as PC+12 rather than
// the PC+8 every other read of R15 observes.
func (cpu *CPU) storeValueOf(r int) uint32 {
	v := cpu.regs.Read(r)
	if r == rPC {
		v += 4
	}
	return v
}
