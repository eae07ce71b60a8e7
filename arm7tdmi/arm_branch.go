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

// executeBranch implements B and BL (spec.md 4.5): a PC-relative 24 bit
// signed word offset, computed against the PC+8 value R15 already
// presents during execution. BL stores the return address (PC+4, i.e.
// next_exec_pc() at entry) in LR before branching.
func executeBranch(cpu *CPU, mem SharedMemory, opcode uint32) int {
	link := opcode&(1<<24) != 0

	offset := opcode & 0xffffff
	if offset&0x800000 != 0 {
		offset |= 0xff000000
	}
	offset <<= 2

	target := cpu.regs.Read(rPC) + offset

	if link {
		cpu.regs.Write(rLR, cpu.NextExecPC())
	}

	return cpu.branch(mem, target)
}

// executeBranchExchange implements BX: switches to THUMB state if the
// target's bit 0 is set (masking it from the PC), otherwise stays in ARM
// state and masks bits 1:0.
func executeBranchExchange(cpu *CPU, mem SharedMemory, opcode uint32) int {
	rm := int(opcode & 0xf)
	return cpu.branchExchange(mem, cpu.regs.Read(rm))
}

// branchExchange is the state-switching core of BX, shared with THUMB
// format 5's BX encoding.
func (cpu *CPU) branchExchange(mem SharedMemory, target uint32) int {
	toThumb := target&0x1 != 0
	cpu.regs.SetT(toThumb)

	if toThumb {
		target &^= 0x1
	} else {
		target &^= 0x3
	}

	return cpu.branch(mem, target)
}
