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

// executeThumbPCRelativeLoad implements THUMB format 6 (LDR Rd,[PC,#imm]):
// the base is PC with bits 1:0 cleared, per spec.md 4.4.
func executeThumbPCRelativeLoad(cpu *CPU, mem SharedMemory, opcode uint16) int {
	rd := int((opcode >> 8) & 0x7)
	offset := uint32(opcode&0xff) * 4

	base := (cpu.regs.Read(rPC) &^ 0x3) + offset
	val, ws := mem.Load32(base, NonSeq)
	mem.Stall(1)
	cpu.regs.Write(rd, val)
	return 1 + ws
}

// executeThumbLoadStoreRegisterOffset implements THUMB format 7
// (LDR/STR/LDRB/STRB Rd,[Rb,Ro]).
func executeThumbLoadStoreRegisterOffset(cpu *CPU, mem SharedMemory, opcode uint16) int {
	load := opcode&(1<<11) != 0
	byteAccess := opcode&(1<<10) != 0
	ro := int((opcode >> 6) & 0x7)
	rb := int((opcode >> 3) & 0x7)
	rd := int(opcode & 0x7)

	addr := cpu.regs.Read(rb) + cpu.regs.Read(ro)

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
		mem.Stall(1)
		cpu.regs.Write(rd, val)
		return 1 + ws
	}

	if byteAccess {
		return mem.Store8(addr, uint8(cpu.regs.Read(rd)), NonSeq)
	}
	return mem.Store32(addr, cpu.regs.Read(rd), NonSeq)
}

// executeThumbLoadStoreSignExtended implements THUMB format 8
// (STRH/LDRH/LDSB/LDSH Rd,[Rb,Ro]).
func executeThumbLoadStoreSignExtended(cpu *CPU, mem SharedMemory, opcode uint16) int {
	hBit := opcode&(1<<11) != 0
	sBit := opcode&(1<<10) != 0
	ro := int((opcode >> 6) & 0x7)
	rb := int((opcode >> 3) & 0x7)
	rd := int(opcode & 0x7)

	addr := cpu.regs.Read(rb) + cpu.regs.Read(ro)

	switch {
	case !sBit && !hBit: // STRH
		return mem.Store16(addr, uint16(cpu.regs.Read(rd)), NonSeq)

	case !sBit && hBit: // LDRH
		v, ws := mem.Load16(addr, NonSeq)
		mem.Stall(1)
		cpu.regs.Write(rd, uint32(v))
		return 1 + ws

	case sBit && !hBit: // LDSB
		b, ws := mem.Load8(addr, NonSeq)
		mem.Stall(1)
		cpu.regs.Write(rd, uint32(int32(int8(b))))
		return 1 + ws

	default: // sBit && hBit: LDSH
		v, ws := mem.Load16(addr, NonSeq)
		mem.Stall(1)
		cpu.regs.Write(rd, uint32(int32(int16(v))))
		return 1 + ws
	}
}

// executeThumbLoadStoreImmediate implements THUMB format 9
// (LDR/STR/LDRB/STRB Rd,[Rb,#imm]); the immediate is a byte count when B is
// set, a word count (so scaled by 4) otherwise.
func executeThumbLoadStoreImmediate(cpu *CPU, mem SharedMemory, opcode uint16) int {
	byteAccess := opcode&(1<<12) != 0
	load := opcode&(1<<11) != 0
	offset5 := uint32((opcode >> 6) & 0x1f)
	rb := int((opcode >> 3) & 0x7)
	rd := int(opcode & 0x7)

	var offset uint32
	if byteAccess {
		offset = offset5
	} else {
		offset = offset5 * 4
	}
	addr := cpu.regs.Read(rb) + offset

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
		mem.Stall(1)
		cpu.regs.Write(rd, val)
		return 1 + ws
	}

	if byteAccess {
		return mem.Store8(addr, uint8(cpu.regs.Read(rd)), NonSeq)
	}
	return mem.Store32(addr, cpu.regs.Read(rd), NonSeq)
}

// executeThumbLoadStoreHalfword implements THUMB format 10
// (LDRH/STRH Rd,[Rb,#imm]); the immediate is a halfword count, so scaled by
// 2.
func executeThumbLoadStoreHalfword(cpu *CPU, mem SharedMemory, opcode uint16) int {
	load := opcode&(1<<11) != 0
	offset := uint32((opcode>>6)&0x1f) * 2
	rb := int((opcode >> 3) & 0x7)
	rd := int(opcode & 0x7)

	addr := cpu.regs.Read(rb) + offset

	if load {
		v, ws := mem.Load16(addr, NonSeq)
		mem.Stall(1)
		cpu.regs.Write(rd, uint32(v))
		return 1 + ws
	}
	return mem.Store16(addr, uint16(cpu.regs.Read(rd)), NonSeq)
}

// executeThumbSPRelativeLoadStore implements THUMB format 11
// (LDR/STR Rd,[SP,#imm]).
func executeThumbSPRelativeLoadStore(cpu *CPU, mem SharedMemory, opcode uint16) int {
	load := opcode&(1<<11) != 0
	rd := int((opcode >> 8) & 0x7)
	offset := uint32(opcode&0xff) * 4

	addr := cpu.regs.Read(rSP) + offset

	if load {
		val, ws := mem.Load32(addr, NonSeq)
		val = rotateUnalignedWord(val, addr)
		mem.Stall(1)
		cpu.regs.Write(rd, val)
		return 1 + ws
	}
	return mem.Store32(addr, cpu.regs.Read(rd), NonSeq)
}
