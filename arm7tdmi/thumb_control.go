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

import (
	"math/bits"

	"github.com/retrogba/arm7tdmi/logger"
)

// executeThumbMultipleLoadStore implements THUMB format 15
// (LDMIA/STMIA Rb!,{Rlist}), restricted to R0-R7 and always IA-with-
// writeback. If Rb appears in the list of a load, the loaded value wins
// over the writeback, the same rule ARM block transfer uses.
func executeThumbMultipleLoadStore(cpu *CPU, mem SharedMemory, opcode uint16) int {
	load := opcode&(1<<11) != 0
	rb := int((opcode >> 8) & 0x7)
	list := uint16(opcode & 0xff)

	count := uint32(bits.OnesCount16(list))
	if count == 0 {
		count = 1
	}

	base := cpu.regs.Read(rb)
	start, writebackVal := blockTransferAddresses(base, count, false, true)
	firstReg := bits.TrailingZeros16(list)

	cycles := 0
	addr := start
	access := NonSeq

	if load {
		cpu.regs.Write(rb, writebackVal)
	}

	for r := 0; r < 8; r++ {
		if list&(1<<uint(r)) == 0 {
			continue
		}
		if load {
			val, ws := mem.Load32(addr, access)
			val = rotateUnalignedWord(val, addr)
			cycles += 1 + ws
			cpu.regs.Write(r, val)
		} else {
			var val uint32
			switch {
			case r == rb && r != firstReg:
				val = writebackVal
			case r == rb:
				val = base
			default:
				val = cpu.regs.Read(r)
			}
			ws := mem.Store32(addr, val, access)
			cycles += 1 + ws
		}
		addr += 4
		access = Seq
	}

	if !load {
		cpu.regs.Write(rb, writebackVal)
	}
	if load {
		mem.Stall(1)
		cycles++
	}
	return cycles
}

// executeThumbConditionalBranch implements THUMB format 16 (Bcc label):
// a signed 8 bit halfword offset, taken only if the embedded condition
// passes -- THUMB has no separate condition field on every opcode the way
// ARM does, so this is the one format that tests one itself.
func executeThumbConditionalBranch(cpu *CPU, mem SharedMemory, opcode uint16) int {
	cond := Condition((opcode >> 8) & 0xf)
	if !cond.Test(cpu.regs.N(), cpu.regs.Z(), cpu.regs.C(), cpu.regs.V()) {
		return 0
	}

	offset := int32(int8(uint8(opcode & 0xff)))
	target := uint32(int32(cpu.regs.Read(rPC)) + offset*2)
	return cpu.branch(mem, target)
}

// executeThumbSoftwareInterrupt implements THUMB format 17 (SWI #imm8):
// always raises SoftwareInterrupt, mirroring the ARM SWI handler.
func executeThumbSoftwareInterrupt(cpu *CPU, mem SharedMemory, opcode uint16) int {
	return cpu.raiseInternal(mem, ExceptionSoftwareInterrupt)
}

// executeThumbUnconditionalBranch implements THUMB format 18 (B label): an
// 11 bit signed halfword offset.
func executeThumbUnconditionalBranch(cpu *CPU, mem SharedMemory, opcode uint16) int {
	offset := int32(int16(opcode<<5)) >> 5
	target := uint32(int32(cpu.regs.Read(rPC)) + offset*2)
	return cpu.branch(mem, target)
}

// executeThumbLongBranchSetup implements the first half of THUMB format 19
// (BL label): stashes PC + sign_extend(offset11<<12) in LR, ready for the
// second half to add the low 11 bits and branch.
func executeThumbLongBranchSetup(cpu *CPU, mem SharedMemory, opcode uint16) int {
	high := int32(int16(opcode<<5)) >> 5
	lr := uint32(int32(cpu.regs.Read(rPC)) + (high << 12))
	cpu.regs.Write(rLR, lr)
	return 0
}

// executeThumbLongBranchOffset implements the second half of THUMB format
// 19: adds the low 11 bits of the target (as a halfword offset) to LR,
// sets the new LR to the return address with bit 0 set (the standard
// BL-return-to-THUMB convention), and branches.
func executeThumbLongBranchOffset(cpu *CPU, mem SharedMemory, opcode uint16) int {
	low := uint32(opcode&0x7ff) << 1
	target := cpu.regs.Read(rLR) + low
	cpu.regs.Write(rLR, cpu.NextExecPC()|1)
	return cpu.branch(mem, target)
}

// executeThumbUndefined handles any THUMB opcode that doesn't decode to a
// known format.
func executeThumbUndefined(cpu *CPU, mem SharedMemory, opcode uint16) int {
	cpu.log.Logf(logger.Allow, "arm7tdmi", "undefined THUMB opcode %04x at %08x", opcode, cpu.NextExecPC()-2)
	return cpu.raiseInternal(mem, ExceptionUndefined)
}
