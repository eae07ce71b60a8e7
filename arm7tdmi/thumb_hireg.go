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

// executeThumbHiRegisterOrBX implements THUMB format 5: ADD/CMP/MOV able to
// address the high registers (R8-R15) via the H1/H2 bits, plus BX. Writing
// R15 via ADD or MOV always branches, the same "writing R15 reseeds the
// pipeline" rule as every other register write of R15 in this package.
func executeThumbHiRegisterOrBX(cpu *CPU, mem SharedMemory, opcode uint16) int {
	rd := int(opcode & 0x7)
	if opcode&(1<<7) != 0 {
		rd += 8
	}
	rs := int((opcode >> 3) & 0x7)
	if opcode&(1<<6) != 0 {
		rs += 8
	}

	switch (opcode >> 8) & 0x3 {
	case 0b00: // ADD
		result := cpu.regs.Read(rd) + cpu.regs.Read(rs)
		if rd == rPC {
			return cpu.branch(mem, result)
		}
		cpu.regs.Write(rd, result)
	case 0b01: // CMP
		cpu.regs.dataProcessing(OpCMP, cpu.regs.Read(rd), cpu.regs.Read(rs), false, true)
	case 0b10: // MOV
		result := cpu.regs.Read(rs)
		if rd == rPC {
			return cpu.branch(mem, result)
		}
		cpu.regs.Write(rd, result)
	case 0b11: // BX
		return cpu.branchExchange(mem, cpu.regs.Read(rs))
	}
	return 0
}
