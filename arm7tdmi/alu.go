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

// multiplyInternalCycles counts the internal (I) cycles a multiply takes
// based on the multiplier operand, per spec.md 4.3: one group of leading
// 1s-or-0s per successive byte boundary. Lifted from the teacher's
// executeALUoperations multiply branch, which implements the same
// staircase described in "7.2 Instruction Cycle Count Summary" of the
// ARM7TDMI-S Technical Reference Manual.
func multiplyInternalCycles(multiplier uint32) int {
	if p := bits.OnesCount32(multiplier & 0xffffff00); p == 0 || p == 24 {
		return 1
	}
	if p := bits.OnesCount32(multiplier & 0xffff0000); p == 0 || p == 16 {
		return 2
	}
	if p := bits.OnesCount32(multiplier & 0xff000000); p == 0 || p == 8 {
		return 3
	}
	return 4
}

// DPOpcode is one of the sixteen ARM data processing operations, in the
// order the 4 bit opcode field (bits 24:21) encodes them.
type DPOpcode uint32

const (
	OpAND DPOpcode = iota
	OpEOR
	OpSUB
	OpRSB
	OpADD
	OpADC
	OpSBC
	OpRSC
	OpTST
	OpTEQ
	OpCMP
	OpCMN
	OpORR
	OpMOV
	OpBIC
	OpMVN
)

// writesResult reports whether op writes Rd. TST/TEQ/CMP/CMN only affect
// flags.
func (op DPOpcode) writesResult() bool {
	switch op {
	case OpTST, OpTEQ, OpCMP, OpCMN:
		return false
	default:
		return true
	}
}

// logical reports whether op is one of the logical operations, which take
// their carry-out from the shifter rather than computing one.
func (op DPOpcode) logical() bool {
	switch op {
	case OpAND, OpEOR, OpTST, OpTEQ, OpORR, OpMOV, OpBIC, OpMVN:
		return true
	default:
		return false
	}
}

// dataProcessing evaluates one of the sixteen ALU operations given Rn and
// a resolved operand2 (the already-shifted second operand). shifterCarry
// is the carry-out the barrel shifter produced while resolving operand2;
// it's only consulted for logical operations. When setFlags is true, NZCV
// are updated per the canonical ARMv4T rules: logical ops set N,Z from
// the result and C from the shifter carry-out (leaving V alone);
// additive ops set N,Z,C,V from the arithmetic itself.
func (regs *Registers) dataProcessing(op DPOpcode, rn, operand2 uint32, shifterCarry, setFlags bool) uint32 {
	var result uint32

	switch op {
	case OpAND, OpTST:
		result = rn & operand2
	case OpEOR, OpTEQ:
		result = rn ^ operand2
	case OpSUB, OpCMP:
		result = rn - operand2
	case OpRSB:
		result = operand2 - rn
	case OpADD, OpCMN:
		result = rn + operand2
	case OpADC:
		carry := uint32(0)
		if regs.C() {
			carry = 1
		}
		result = rn + operand2 + carry
	case OpSBC:
		borrow := uint32(1)
		if regs.C() {
			borrow = 0
		}
		result = rn - operand2 - borrow
	case OpRSC:
		borrow := uint32(1)
		if regs.C() {
			borrow = 0
		}
		result = operand2 - rn - borrow
	case OpORR:
		result = rn | operand2
	case OpMOV:
		result = operand2
	case OpBIC:
		result = rn &^ operand2
	case OpMVN:
		result = ^operand2
	}

	if setFlags {
		regs.isNegative(result)
		regs.isZero(result)

		if op.logical() {
			regs.SetC(shifterCarry)
		} else {
			switch op {
			case OpSUB, OpCMP:
				regs.setCarryAdd(rn, ^operand2, 1)
				regs.setOverflowAdd(rn, ^operand2, 1)
			case OpRSB:
				regs.setCarryAdd(operand2, ^rn, 1)
				regs.setOverflowAdd(operand2, ^rn, 1)
			case OpADD, OpCMN:
				regs.setCarryAdd(rn, operand2, 0)
				regs.setOverflowAdd(rn, operand2, 0)
			case OpADC:
				carry := uint32(0)
				if regs.C() {
					carry = 1
				}
				regs.setCarryAdd(rn, operand2, carry)
				regs.setOverflowAdd(rn, operand2, carry)
			case OpSBC:
				carry := uint32(0)
				if regs.C() {
					carry = 1
				}
				regs.setCarryAdd(rn, ^operand2, carry)
				regs.setOverflowAdd(rn, ^operand2, carry)
			case OpRSC:
				carry := uint32(0)
				if regs.C() {
					carry = 1
				}
				regs.setCarryAdd(operand2, ^rn, carry)
				regs.setOverflowAdd(operand2, ^rn, carry)
			}
		}
	}

	return result
}
