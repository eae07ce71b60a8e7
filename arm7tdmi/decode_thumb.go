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

// thumbIndex computes the 256 entry table index spec.md 4.4 specifies:
// bits 15:8 of the THUMB opcode.
func thumbIndex(opcode uint16) uint32 {
	return uint32(opcode >> 8)
}

// classifyThumb maps one bits15:8 byte to its format handler. Because the
// THUMB table index already *is* the full discriminating byte (unlike
// ARM's two-part index), classification here can match on hi8 directly
// instead of reconstructing synthetic opcodes -- generalised from the
// format cascade in the teacher's arm7tdmi/arm7.go Run(), which performs
// the same masked-comparison classification inline rather than via a
// table.
func classifyThumb(hi8 uint32) thumbHandler {
	switch {
	case hi8>>5 == 0b000:
		if (hi8>>3)&0x3 == 0b11 {
			return executeThumbAddSubtract // format 2
		}
		return executeThumbMoveShifted // format 1

	case hi8>>5 == 0b001:
		return executeThumbImmediate // format 3: MOV/CMP/ADD/SUB #imm8

	case hi8>>2 == 0b010000:
		return executeThumbALU // format 4

	case hi8>>2 == 0b010001:
		return executeThumbHiRegisterOrBX // format 5

	case hi8>>3 == 0b01001:
		return executeThumbPCRelativeLoad // format 6

	case hi8>>4 == 0b0101:
		if hi8&0x2 == 0 {
			return executeThumbLoadStoreRegisterOffset // format 7
		}
		return executeThumbLoadStoreSignExtended // format 8

	case hi8>>5 == 0b011:
		return executeThumbLoadStoreImmediate // format 9

	case hi8>>4 == 0b1000:
		return executeThumbLoadStoreHalfword // format 10

	case hi8>>4 == 0b1001:
		return executeThumbSPRelativeLoadStore // format 11

	case hi8>>4 == 0b1010:
		return executeThumbLoadAddress // format 12

	case hi8 == 0xb0:
		return executeThumbAddOffsetToSP // format 13

	case hi8&0xf6 == 0xb4:
		return executeThumbPushPop // format 14

	case hi8>>4 == 0b1100:
		return executeThumbMultipleLoadStore // format 15

	case hi8 == 0xdf:
		return executeThumbSoftwareInterrupt // format 17

	case hi8>>4 == 0b1101:
		return executeThumbConditionalBranch // format 16

	case hi8>>3 == 0b11100:
		return executeThumbUnconditionalBranch // format 18

	case hi8>>3 == 0b11110:
		return executeThumbLongBranchSetup // format 19, first instruction

	case hi8>>3 == 0b11111:
		return executeThumbLongBranchOffset // format 19, second instruction

	default:
		return executeThumbUndefined
	}
}

// buildThumbTable materialises the 256 entry THUMB dispatch table once,
// at CPU construction.
func buildThumbTable() [256]thumbHandler {
	var table [256]thumbHandler
	for hi8 := uint32(0); hi8 < 256; hi8++ {
		table[hi8] = classifyThumb(hi8)
	}
	return table
}
