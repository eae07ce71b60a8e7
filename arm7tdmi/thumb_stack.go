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

// executeThumbLoadAddress implements THUMB format 12 (ADD Rd,PC/SP,#imm):
// PC is read with bits 1:0 cleared, matching the PC-relative load rule.
func executeThumbLoadAddress(cpu *CPU, mem SharedMemory, opcode uint16) int {
	rd := int((opcode >> 8) & 0x7)
	offset := uint32(opcode&0xff) * 4

	var base uint32
	if opcode&(1<<11) != 0 {
		base = cpu.regs.Read(rSP)
	} else {
		base = cpu.regs.Read(rPC) &^ 0x3
	}
	cpu.regs.Write(rd, base+offset)
	return 0
}

// executeThumbAddOffsetToSP implements THUMB format 13 (ADD SP,#+/-imm7).
func executeThumbAddOffsetToSP(cpu *CPU, mem SharedMemory, opcode uint16) int {
	offset := uint32(opcode&0x7f) * 4
	if opcode&(1<<7) != 0 {
		cpu.regs.Write(rSP, cpu.regs.Read(rSP)-offset)
	} else {
		cpu.regs.Write(rSP, cpu.regs.Read(rSP)+offset)
	}
	return 0
}

// executeThumbPushPop implements THUMB format 14 (PUSH/POP {Rlist}[,LR/PC]):
// a full-descending stack transfer, equivalent to STMDB/LDMIA sp! with LR
// (push) or PC (pop) folded into the register list.
func executeThumbPushPop(cpu *CPU, mem SharedMemory, opcode uint16) int {
	load := opcode&(1<<11) != 0
	includeExtra := opcode&(1<<8) != 0

	list := uint16(opcode & 0xff)
	if includeExtra {
		if load {
			list |= 1 << rPC
		} else {
			list |= 1 << rLR
		}
	}

	count := uint32(bits.OnesCount16(list))
	if count == 0 {
		count = 1
	}

	base := cpu.regs.Read(rSP)
	// pop behaves like LDMIA (P=0,U=1); push behaves like STMDB (P=1,U=0).
	start, writebackVal := blockTransferAddresses(base, count, !load, load)

	cycles := 0
	addr := start
	access := NonSeq

	if load {
		cpu.regs.Write(rSP, writebackVal)
	}

	for r := 0; r < 16; r++ {
		if list&(1<<uint(r)) == 0 {
			continue
		}
		if load {
			val, ws := mem.Load32(addr, access)
			val = rotateUnalignedWord(val, addr)
			cycles += 1 + ws
			if r == rPC {
				cycles += cpu.branch(mem, val)
			} else {
				cpu.regs.Write(r, val)
			}
		} else {
			ws := mem.Store32(addr, cpu.storeValueOf(r), access)
			cycles += 1 + ws
		}
		addr += 4
		access = Seq
	}

	if !load {
		cpu.regs.Write(rSP, writebackVal)
	}
	if load {
		mem.Stall(1)
		cycles++
	}
	return cycles
}
