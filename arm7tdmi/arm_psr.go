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

// executeMRS implements "MRS Rd, CPSR|SPSR" (spec.md 4.5's "PSR transfer"
// category).
func executeMRS(cpu *CPU, mem SharedMemory, opcode uint32) int {
	rd := int((opcode >> 12) & 0xf)
	fromSPSR := opcode&(1<<22) != 0

	if fromSPSR {
		cpu.regs.Write(rd, cpu.regs.ReadSPSR())
	} else {
		cpu.regs.Write(rd, cpu.regs.ReadCPSR())
	}
	return 0
}

// msrFieldMask resolves the four field-mask bits (19,18,17,16) of an MSR
// instruction into a byte mask.
func msrFieldMask(opcode uint32) uint32 {
	mask := uint32(0)
	if opcode&(1<<19) != 0 {
		mask |= 0xff000000
	}
	if opcode&(1<<18) != 0 {
		mask |= 0x00ff0000
	}
	if opcode&(1<<17) != 0 {
		mask |= 0x0000ff00
	}
	if opcode&(1<<16) != 0 {
		mask |= 0x000000ff
	}
	return mask
}

// msrWrite applies val to CPSR or SPSR honoring the field mask, with Mode
// field writes ignored outside of privileged modes (spec.md 4.5). The
// common core of both the register and immediate MSR encodings.
func (cpu *CPU) msrWrite(opcode, val uint32) int {
	toSPSR := opcode&(1<<22) != 0
	mask := msrFieldMask(opcode)

	if toSPSR {
		cur := cpu.regs.ReadSPSR()
		cpu.regs.WriteSPSR((cur &^ mask) | (val & mask))
		return 0
	}

	if cpu.regs.ReadMode() == ModeUser {
		// User mode may only update the flags byte; the mode/control byte
		// (which would otherwise let user code escalate privilege) is
		// silently left alone.
		mask &= 0xff000000
	}

	cur := cpu.regs.ReadCPSR()
	cpu.regs.WriteCPSR((cur &^ mask) | (val & mask))
	return 0
}

// executeMSRRegister implements the register-operand form of MSR.
func executeMSRRegister(cpu *CPU, mem SharedMemory, opcode uint32) int {
	rm := int(opcode & 0xf)
	return cpu.msrWrite(opcode, cpu.regs.Read(rm))
}

// executeMSRImmediate implements the rotated-immediate-operand form of
// MSR (used almost exclusively for "MSR CPSR_flg, #imm").
func executeMSRImmediate(cpu *CPU, mem SharedMemory, opcode uint32) int {
	val, _ := cpu.operand2Immediate(opcode)
	return cpu.msrWrite(opcode, val)
}
