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

// executeThumbMoveShifted implements THUMB format 1 (LSL/LSR/ASR Rd,Rs,#imm5):
// the same immediate barrel shifter as ARM data processing, always setting
// N, Z and C.
func executeThumbMoveShifted(cpu *CPU, mem SharedMemory, opcode uint16) int {
	rd := int(opcode & 0x7)
	rs := int((opcode >> 3) & 0x7)
	amount := uint32((opcode >> 6) & 0x1f)
	kind := ShiftType((opcode >> 11) & 0x3)

	result, carry := shiftImmediate(kind, cpu.regs.Read(rs), amount, cpu.regs.C())
	cpu.regs.Write(rd, result)
	cpu.regs.isNegative(result)
	cpu.regs.isZero(result)
	cpu.regs.SetC(carry)
	return 0
}

// executeThumbAddSubtract implements THUMB format 2 (ADD/SUB Rd,Rs,Rn or
// #imm3), sharing the ARM ADD/SUB flag semantics from dataProcessing.
func executeThumbAddSubtract(cpu *CPU, mem SharedMemory, opcode uint16) int {
	rd := int(opcode & 0x7)
	rs := int((opcode >> 3) & 0x7)
	immField := uint32((opcode >> 6) & 0x7)

	var operand2 uint32
	if opcode&(1<<10) != 0 {
		operand2 = immField
	} else {
		operand2 = cpu.regs.Read(int(immField))
	}

	op := OpADD
	if opcode&(1<<9) != 0 {
		op = OpSUB
	}

	result := cpu.regs.dataProcessing(op, cpu.regs.Read(rs), operand2, false, true)
	cpu.regs.Write(rd, result)
	return 0
}

// executeThumbImmediate implements THUMB format 3 (MOV/CMP/ADD/SUB Rd,#imm8).
func executeThumbImmediate(cpu *CPU, mem SharedMemory, opcode uint16) int {
	rd := int((opcode >> 8) & 0x7)
	imm := uint32(opcode & 0xff)
	rdVal := cpu.regs.Read(rd)

	switch (opcode >> 11) & 0x3 {
	case 0b00: // MOV
		result := cpu.regs.dataProcessing(OpMOV, 0, imm, false, true)
		cpu.regs.Write(rd, result)
	case 0b01: // CMP
		cpu.regs.dataProcessing(OpCMP, rdVal, imm, false, true)
	case 0b10: // ADD
		result := cpu.regs.dataProcessing(OpADD, rdVal, imm, false, true)
		cpu.regs.Write(rd, result)
	case 0b11: // SUB
		result := cpu.regs.dataProcessing(OpSUB, rdVal, imm, false, true)
		cpu.regs.Write(rd, result)
	}
	return 0
}

// executeThumbALU implements THUMB format 4, the sixteen two-operand ALU
// operations (AND..MVN). Shift operations take a register-specified amount
// (one internal cycle, per spec.md 4.4) and MUL charges the same internal
// cycle staircase as the ARM multiply.
func executeThumbALU(cpu *CPU, mem SharedMemory, opcode uint16) int {
	rd := int(opcode & 0x7)
	rs := int((opcode >> 3) & 0x7)
	rdVal := cpu.regs.Read(rd)
	rsVal := cpu.regs.Read(rs)

	write := func(op DPOpcode) {
		result := cpu.regs.dataProcessing(op, rdVal, rsVal, cpu.regs.C(), true)
		cpu.regs.Write(rd, result)
	}
	test := func(op DPOpcode) {
		cpu.regs.dataProcessing(op, rdVal, rsVal, cpu.regs.C(), true)
	}
	shift := func(kind ShiftType) int {
		result, carry := shiftRegister(kind, rdVal, rsVal&0xff, cpu.regs.C())
		cpu.regs.Write(rd, result)
		cpu.regs.isNegative(result)
		cpu.regs.isZero(result)
		cpu.regs.SetC(carry)
		mem.Stall(1)
		return 1
	}

	switch (opcode >> 6) & 0xf {
	case 0x0: // AND
		write(OpAND)
	case 0x1: // EOR
		write(OpEOR)
	case 0x2: // LSL
		return shift(ShiftLSL)
	case 0x3: // LSR
		return shift(ShiftLSR)
	case 0x4: // ASR
		return shift(ShiftASR)
	case 0x5: // ADC
		write(OpADC)
	case 0x6: // SBC
		write(OpSBC)
	case 0x7: // ROR
		return shift(ShiftROR)
	case 0x8: // TST
		test(OpTST)
	case 0x9: // NEG: Rd = 0 - Rs
		result := cpu.regs.dataProcessing(OpRSB, rsVal, 0, false, true)
		cpu.regs.Write(rd, result)
	case 0xa: // CMP
		test(OpCMP)
	case 0xb: // CMN
		test(OpCMN)
	case 0xc: // ORR
		write(OpORR)
	case 0xd: // MUL
		cycles := multiplyInternalCycles(rsVal)
		for i := 0; i < cycles; i++ {
			mem.Stall(1)
		}
		result := rdVal * rsVal
		cpu.regs.Write(rd, result)
		cpu.regs.isNegative(result)
		cpu.regs.isZero(result)
		return cycles
	case 0xe: // BIC
		write(OpBIC)
	case 0xf: // MVN
		result := cpu.regs.dataProcessing(OpMVN, 0, rsVal, cpu.regs.C(), true)
		cpu.regs.Write(rd, result)
	}
	return 0
}
