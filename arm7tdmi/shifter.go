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

// ShiftType is one of the four ARM barrel shifter operations.
type ShiftType int

const (
	ShiftLSL ShiftType = iota
	ShiftLSR
	ShiftASR
	ShiftROR
)

// shiftImmediate applies one of the four shift types with an immediate
// amount (0-31, as found in the 5 bit immediate field of a data
// processing or single data transfer instruction). amount==0 is not a
// literal no-op for every shift type: the encoding overloads it to mean
// "shift by 32" for LSR/ASR and "rotate right through carry" (RRX) for
// ROR, exactly as spec.md 4.3 requires.
func shiftImmediate(kind ShiftType, val, amount uint32, carryIn bool) (result uint32, carryOut bool) {
	switch kind {
	case ShiftLSL:
		if amount == 0 {
			return val, carryIn
		}
		return val << amount, val&(1<<(32-amount)) != 0

	case ShiftLSR:
		if amount == 0 {
			// LSR #0 encodes LSR #32
			return 0, val&0x80000000 != 0
		}
		return val >> amount, val&(1<<(amount-1)) != 0

	case ShiftASR:
		if amount == 0 {
			// ASR #0 encodes ASR #32
			if val&0x80000000 != 0 {
				return 0xffffffff, true
			}
			return 0, false
		}
		return arithmeticShiftRight(val, amount), val&(1<<(amount-1)) != 0

	case ShiftROR:
		if amount == 0 {
			// ROR #0 encodes RRX: a one bit rotate through the carry flag
			result = val >> 1
			if carryIn {
				result |= 0x80000000
			}
			return result, val&0x01 != 0
		}
		return bits.RotateLeft32(val, -int(amount)), val&(1<<(amount-1)) != 0
	}
	panic("unreachable shift type")
}

// shiftRegister applies one of the four shift types with a register-
// specified amount. Only the low byte of amount is significant; an
// amount of zero leaves both the value and the carry flag unchanged
// regardless of shift type, and amounts of 32 or more saturate per the
// documented rules rather than wrapping.
func shiftRegister(kind ShiftType, val uint32, amount uint32, carryIn bool) (result uint32, carryOut bool) {
	amount &= 0xff

	if amount == 0 {
		return val, carryIn
	}

	switch kind {
	case ShiftLSL:
		switch {
		case amount < 32:
			return val << amount, val&(1<<(32-amount)) != 0
		case amount == 32:
			return 0, val&0x01 != 0
		default:
			return 0, false
		}

	case ShiftLSR:
		switch {
		case amount < 32:
			return val >> amount, val&(1<<(amount-1)) != 0
		case amount == 32:
			return 0, val&0x80000000 != 0
		default:
			return 0, false
		}

	case ShiftASR:
		if amount < 32 {
			return arithmeticShiftRight(val, amount), val&(1<<(amount-1)) != 0
		}
		if val&0x80000000 != 0 {
			return 0xffffffff, true
		}
		return 0, false

	case ShiftROR:
		if amount&0x1f == 0 {
			// a multiple of 32: value unaffected, carry is bit 31
			return val, val&0x80000000 != 0
		}
		rot := amount & 0x1f
		return bits.RotateLeft32(val, -int(rot)), val&(1<<(rot-1)) != 0
	}
	panic("unreachable shift type")
}

// arithmeticShiftRight shifts val right by amount (1-31), filling with
// copies of the sign bit.
func arithmeticShiftRight(val, amount uint32) uint32 {
	result := val >> amount
	if val&0x80000000 != 0 {
		result |= 0xffffffff << (32 - amount)
	}
	return result
}
