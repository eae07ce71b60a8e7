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

// executeDataProcessing implements AND..MVN (spec.md 4.5's "Data
// processing (ARM)" category). The one prefetch cycle every instruction
// gets is charged by Step; this handler only charges the extra internal
// cycle a register-specified shift amount costs, plus the extra fetches
// a PC-writing instruction needs to reseed the pipeline.
func executeDataProcessing(cpu *CPU, mem SharedMemory, opcode uint32) int {
	op := DPOpcode((opcode >> 21) & 0xf)
	setFlags := opcode&(1<<20) != 0
	rn := int((opcode >> 16) & 0xf)
	rd := int((opcode >> 12) & 0xf)

	operand2, shifterCarry := cpu.resolveOperand2(opcode)

	cycles := 0
	if opcode&(1<<25) == 0 && opcode&0x10 != 0 {
		mem.Stall(1)
		cycles++
	}

	rnVal := cpu.regs.Read(rn)

	// writing Rd with S set while Rd is R15 reloads CPSR from SPSR
	// atomically with the PC write -- the mechanism for returning from
	// exceptions (spec.md 4.5).
	restoreCPSR := setFlags && rd == rPC && op.writesResult()

	result := cpu.regs.dataProcessing(op, rnVal, operand2, shifterCarry, setFlags && !restoreCPSR)

	if !op.writesResult() {
		return cycles
	}

	if restoreCPSR {
		cpu.regs.WriteCPSR(cpu.regs.ReadSPSR())
	}

	if rd == rPC {
		cycles += cpu.branch(mem, result)
		return cycles
	}

	cpu.regs.Write(rd, result)
	return cycles
}
