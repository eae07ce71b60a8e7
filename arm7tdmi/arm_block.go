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

// blockTransferAddresses resolves the IA/IB/DA/DB addressing mode into
// the first transfer address and the final writeback value. Ordering is
// always lowest register to lowest address regardless of direction, per
// spec.md 4.5.
func blockTransferAddresses(base uint32, count uint32, pre, up bool) (start, writebackVal uint32) {
	if up {
		start = base
		if pre {
			start += 4
		}
		writebackVal = base + 4*count
		return
	}
	start = base - 4*count
	if !pre {
		start += 4
	}
	writebackVal = base - 4*count
	return
}

// executeBlockDataTransfer implements LDM/STM (spec.md 4.5's "Block data
// transfer" category): a 16 bit register list, the four addressing
// modes, writeback and the S-bit user-mode/CPSR-restore behaviour.
func executeBlockDataTransfer(cpu *CPU, mem SharedMemory, opcode uint32) int {
	pre := opcode&(1<<24) != 0
	up := opcode&(1<<23) != 0
	sBit := opcode&(1<<22) != 0
	writeback := opcode&(1<<21) != 0
	load := opcode&(1<<20) != 0
	rn := int((opcode >> 16) & 0xf)
	list := uint16(opcode & 0xffff)

	count := uint32(bits.OnesCount16(list))
	if count == 0 {
		// an empty register list is architecturally unpredictable; the
		// addresses and writeback are computed as for a one-register list,
		// but no register is transferred.
		count = 1
	}

	base := cpu.regs.Read(rn)
	start, writebackVal := blockTransferAddresses(base, count, pre, up)

	rlistHasPC := list&(1<<rPC) != 0
	useUserBank := sBit && (!load || !rlistHasPC)

	originalMode := cpu.regs.ReadMode()
	if useUserBank {
		cpu.regs.WriteMode(ModeUser)
	}

	firstReg := bits.TrailingZeros16(list)

	cycles := 0
	addr := start
	access := NonSeq

	if load && writeback {
		cpu.regs.Write(rn, writebackVal)
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
				if useUserBank {
					cpu.regs.WriteMode(originalMode)
					useUserBank = false
				}
				cycles += cpu.branch(mem, val)
			} else {
				cpu.regs.Write(r, val)
			}
		} else {
			var val uint32
			if r == rn && r != firstReg {
				val = writebackVal
			} else if r == rn {
				val = base
			} else {
				val = cpu.storeValueOf(r)
			}
			ws := mem.Store32(addr, val, access)
			cycles += 1 + ws
		}

		addr += 4
		access = Seq
	}

	if !load && writeback {
		cpu.regs.Write(rn, writebackVal)
	}

	if useUserBank {
		cpu.regs.WriteMode(originalMode)
	}

	if load {
		mem.Stall(1)
		cycles++

		if sBit && rlistHasPC {
			cpu.regs.WriteCPSR(cpu.regs.ReadSPSR())
		}
	}

	return cycles
}
