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
	"testing"

	"github.com/retrogba/arm7tdmi/test"
)

func TestShiftImmediateLSL(t *testing.T) {
	v, c := shiftImmediate(ShiftLSL, 1, 0, true)
	test.ExpectEquality(t, uint32(1), v)
	test.ExpectEquality(t, true, c)

	v, c = shiftImmediate(ShiftLSL, 0x80000000, 1, false)
	test.ExpectEquality(t, uint32(0), v)
	test.ExpectEquality(t, true, c)
}

func TestShiftImmediateLSRZeroIsLSR32(t *testing.T) {
	v, c := shiftImmediate(ShiftLSR, 0x80000000, 0, false)
	test.ExpectEquality(t, uint32(0), v)
	test.ExpectEquality(t, true, c)

	v, c = shiftImmediate(ShiftLSR, 0x7fffffff, 0, false)
	test.ExpectEquality(t, uint32(0), v)
	test.ExpectEquality(t, false, c)
}

func TestShiftImmediateASRZeroIsASR32(t *testing.T) {
	v, c := shiftImmediate(ShiftASR, 0x80000000, 0, false)
	test.ExpectEquality(t, uint32(0xffffffff), v)
	test.ExpectEquality(t, true, c)

	v, c = shiftImmediate(ShiftASR, 0x7fffffff, 0, false)
	test.ExpectEquality(t, uint32(0), v)
	test.ExpectEquality(t, false, c)
}

func TestShiftImmediateRORZeroIsRRX(t *testing.T) {
	v, c := shiftImmediate(ShiftROR, 0x2, 0, true)
	test.ExpectEquality(t, uint32(0x80000001), v)
	test.ExpectEquality(t, false, c)

	v, c = shiftImmediate(ShiftROR, 0x1, 0, false)
	test.ExpectEquality(t, uint32(0), v)
	test.ExpectEquality(t, true, c)
}

func TestShiftImmediateROR(t *testing.T) {
	v, c := shiftImmediate(ShiftROR, 0x1, 1, false)
	test.ExpectEquality(t, uint32(0x80000000), v)
	test.ExpectEquality(t, true, c)
}

func TestShiftRegisterSaturation(t *testing.T) {
	v, c := shiftRegister(ShiftLSL, 0xffffffff, 32, false)
	test.ExpectEquality(t, uint32(0), v)
	test.ExpectEquality(t, true, c)

	v, c = shiftRegister(ShiftLSL, 0xffffffff, 33, false)
	test.ExpectEquality(t, uint32(0), v)
	test.ExpectEquality(t, false, c)

	v, c = shiftRegister(ShiftLSR, 0x80000000, 32, false)
	test.ExpectEquality(t, uint32(0), v)
	test.ExpectEquality(t, true, c)

	v, c = shiftRegister(ShiftASR, 0x80000000, 40, false)
	test.ExpectEquality(t, uint32(0xffffffff), v)
	test.ExpectEquality(t, true, c)
}

func TestShiftRegisterZeroAmountLeavesCarryUnchanged(t *testing.T) {
	v, c := shiftRegister(ShiftROR, 0x55, 0, true)
	test.ExpectEquality(t, uint32(0x55), v)
	test.ExpectEquality(t, true, c)
}

func TestMultiplyInternalCycles(t *testing.T) {
	test.ExpectEquality(t, 1, multiplyInternalCycles(0))
	test.ExpectEquality(t, 1, multiplyInternalCycles(0xff))
	test.ExpectEquality(t, 2, multiplyInternalCycles(0xff00))
	test.ExpectEquality(t, 3, multiplyInternalCycles(0xff0000))
	test.ExpectEquality(t, 4, multiplyInternalCycles(0x10000000))
}
