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

// executeMultiply implements MUL and MLA (spec.md 4.5's "Multiply"
// category, 32 bit forms). Cycle cost is purely internal -- multiplyInternalCycles
// plus one more for the accumulate, per spec.md 4.3.
func executeMultiply(cpu *CPU, mem SharedMemory, opcode uint32) int {
	accumulate := opcode&(1<<21) != 0
	setFlags := opcode&(1<<20) != 0

	rd := int((opcode >> 16) & 0xf)
	rn := int((opcode >> 12) & 0xf)
	rs := int((opcode >> 8) & 0xf)
	rm := int(opcode & 0xf)

	multiplier := cpu.regs.Read(rs)
	result := cpu.regs.Read(rm) * multiplier
	cycles := multiplyInternalCycles(multiplier)

	if accumulate {
		result += cpu.regs.Read(rn)
		cycles++
	}

	cpu.regs.Write(rd, result)

	if setFlags {
		cpu.regs.isNegative(result)
		cpu.regs.isZero(result)
	}

	for i := 0; i < cycles; i++ {
		mem.Stall(1)
	}
	return cycles
}

// executeMultiplyLong implements SMULL/UMULL/SMLAL/UMLAL (spec.md 4.5's
// 64 bit multiply forms), which take one extra internal cycle over the
// 32 bit forms.
func executeMultiplyLong(cpu *CPU, mem SharedMemory, opcode uint32) int {
	signed := opcode&(1<<22) != 0
	accumulate := opcode&(1<<21) != 0
	setFlags := opcode&(1<<20) != 0

	rdHi := int((opcode >> 16) & 0xf)
	rdLo := int((opcode >> 12) & 0xf)
	rs := int((opcode >> 8) & 0xf)
	rm := int(opcode & 0xf)

	multiplier := cpu.regs.Read(rs)
	cycles := multiplyInternalCycles(multiplier) + 1

	var result uint64
	if signed {
		result = uint64(int64(int32(cpu.regs.Read(rm))) * int64(int32(multiplier)))
	} else {
		result = uint64(cpu.regs.Read(rm)) * uint64(multiplier)
	}

	if accumulate {
		acc := uint64(cpu.regs.Read(rdHi))<<32 | uint64(cpu.regs.Read(rdLo))
		result += acc
		cycles++
	}

	hi := uint32(result >> 32)
	lo := uint32(result)
	cpu.regs.Write(rdHi, hi)
	cpu.regs.Write(rdLo, lo)

	if setFlags {
		cpu.regs.SetN(hi&0x80000000 != 0)
		cpu.regs.SetZ(result == 0)
	}

	for i := 0; i < cycles; i++ {
		mem.Stall(1)
	}
	return cycles
}

// executeSwap implements SWP/SWPB: an atomic load followed by a store of
// a register to the same address. Not named in spec.md 4.5's instruction
// list, but real ARMv4T silicon and an unmasked-opcode decode both
// require it; supplemented from the fuller ARMv4T coverage SPEC_FULL.md
// calls for.
func executeSwap(cpu *CPU, mem SharedMemory, opcode uint32) int {
	byteSwap := opcode&(1<<22) != 0
	rn := int((opcode >> 16) & 0xf)
	rd := int((opcode >> 12) & 0xf)
	rm := int(opcode & 0xf)

	addr := cpu.regs.Read(rn)
	newVal := cpu.regs.Read(rm)

	if byteSwap {
		old, ws1 := mem.Load8(addr, NonSeq)
		ws2 := mem.Store8(addr, uint8(newVal), Seq)
		mem.Stall(1)
		cpu.regs.Write(rd, uint32(old))
		return 1 + ws1 + ws2
	}

	old, ws1 := mem.Load32(addr, NonSeq)
	old = rotateUnalignedWord(old, addr)
	ws2 := mem.Store32(addr, newVal, Seq)
	mem.Stall(1)
	cpu.regs.Write(rd, old)
	return 1 + ws1 + ws2
}
