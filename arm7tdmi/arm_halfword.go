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

// executeHalfwordTransfer implements LDRH/LDRSH/LDRSB/STRH (spec.md 4.5's
// "Halfword/signed transfer" category) with immediate or register offset
// and the usual pre/post/up/down/writeback orthogonality.
//
// Rd=R15 on a halfword load with writeback is DESIGN.md's Open Question
// (c): the base writeback (never targeting R15 itself, since R15 can't be
// the base of a valid encoding) and the PC load both apply, with the load
// triggering branch() after the writeback is applied.
func executeHalfwordTransfer(cpu *CPU, mem SharedMemory, opcode uint32) int {
	pre := opcode&(1<<24) != 0
	up := opcode&(1<<23) != 0
	immediateOffset := opcode&(1<<22) != 0
	writeback := opcode&(1<<21) != 0
	load := opcode&(1<<20) != 0
	sh := (opcode >> 5) & 0x3

	rn := int((opcode >> 16) & 0xf)
	rd := int((opcode >> 12) & 0xf)

	var offset uint32
	if immediateOffset {
		offset = ((opcode >> 4) & 0xf0) | (opcode & 0xf)
	} else {
		offset = cpu.regs.Read(int(opcode & 0xf))
	}

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
		switch sh {
		case 0b01: // unsigned halfword
			var h uint16
			h, ws = mem.Load16(addr, NonSeq)
			val = uint32(h)
		case 0b10: // signed byte
			var b uint8
			b, ws = mem.Load8(addr, NonSeq)
			val = uint32(int32(int8(b)))
		case 0b11: // signed halfword
			var h uint16
			h, ws = mem.Load16(addr, NonSeq)
			val = uint32(int32(int16(h)))
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

	val := uint16(cpu.storeValueOf(rd))
	ws := mem.Store16(addr, val, NonSeq)
	cycles += ws

	if !pre || writeback {
		cpu.regs.Write(rn, effective)
	}
	return cycles
}
