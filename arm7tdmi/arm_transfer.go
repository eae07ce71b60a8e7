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

// singleTransferOffset resolves the 12 bit offset field of a single data
// transfer instruction: an immediate when I (bit25) is clear, a shifted
// register when it is set -- note this is the opposite sense of the I bit
// from data processing, an ARM encoding quirk spec.md 4.5 inherits as-is.
func (cpu *CPU) singleTransferOffset(opcode uint32) uint32 {
	if opcode&(1<<25) == 0 {
		return opcode & 0xfff
	}
	v, _ := cpu.operand2Register(opcode)
	return v
}

// executeSingleDataTransfer implements LDR/STR (spec.md 4.5's "Single
// data transfer" category): pre/post indexed, up/down, word/byte,
// writeback, with the unaligned-LDR rotation from spec.md 4.2 and the
// Rd=R15 branch-on-load behaviour. W on a post-indexed transfer is always
// treated as plain base writeback; this does not distinguish LDRT/STRT's
// force-user-mode-translation meaning, which has no effect on a core with
// no MMU/privilege-checked address space.

func executeSingleDataTransfer(cpu *CPU, mem SharedMemory, opcode uint32) int {
	pre := opcode&(1<<24) != 0
	up := opcode&(1<<23) != 0
	byteAccess := opcode&(1<<22) != 0
	writeback := opcode&(1<<21) != 0
	load := opcode&(1<<20) != 0

	rn := int((opcode >> 16) & 0xf)
	rd := int((opcode >> 12) & 0xf)

	offset := cpu.singleTransferOffset(opcode)
	base := cpu.regs.Read(rn)

	effective := base
	if up {
		effective = base + offset
	} else {
		effective = base - offset
	}

	addr := base
	if pre {
		addr = effective
	}

	cycles := 0

	if load {
		var val uint32
		var ws int
		if byteAccess {
			var b uint8
			b, ws = mem.Load8(addr, NonSeq)
			val = uint32(b)
		} else {
			val, ws = mem.Load32(addr, NonSeq)
			val = rotateUnalignedWord(val, addr)
		}
		cycles += ws
		mem.Stall(1)
		cycles++

		if !pre || writeback {
			cpu.regs.Write(rn, effective)
		}

		if rd == rPC {
			cycles += cpu.branch(mem, val)
		} else {
			cpu.regs.Write(rd, val)
		}
		return cycles
	}

	val := cpu.storeValueOf(rd)
	var ws int
	if byteAccess {
		ws = mem.Store8(addr, uint8(val), NonSeq)
	} else {
		ws = mem.Store32(addr&^0x3, val, NonSeq)
	}
	cycles += ws

	if !pre || writeback {
		cpu.regs.Write(rn, effective)
	}
	return cycles
}
