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

func TestNewRegistersResetState(t *testing.T) {
	regs := NewRegisters()
	test.ExpectEquality(t, ModeSupervisor, regs.ReadMode())
	test.ExpectEquality(t, true, regs.I())
	test.ExpectEquality(t, true, regs.F())
	test.ExpectEquality(t, false, regs.T())
}

func TestBankedR13R14(t *testing.T) {
	regs := NewRegisters()
	regs.Write(rSP, 0x1000)
	regs.Write(rLR, 0x2000)

	regs.WriteMode(ModeIRQ)
	regs.Write(rSP, 0x3000)
	regs.Write(rLR, 0x4000)

	regs.WriteMode(ModeSupervisor)
	test.ExpectEquality(t, uint32(0x1000), regs.Read(rSP))
	test.ExpectEquality(t, uint32(0x2000), regs.Read(rLR))

	regs.WriteMode(ModeIRQ)
	test.ExpectEquality(t, uint32(0x3000), regs.Read(rSP))
	test.ExpectEquality(t, uint32(0x4000), regs.Read(rLR))
}

func TestUserAndSystemShareBank(t *testing.T) {
	regs := NewRegisters()
	regs.WriteMode(ModeUser)
	regs.Write(rSP, 0x111)
	regs.WriteMode(ModeSystem)
	test.ExpectEquality(t, uint32(0x111), regs.Read(rSP))
}

func TestFIQBanksR8ThroughR12(t *testing.T) {
	regs := NewRegisters()
	regs.WriteMode(ModeUser)
	for r := 8; r <= 12; r++ {
		regs.Write(r, uint32(r))
	}

	regs.WriteMode(ModeFIQ)
	for r := 8; r <= 12; r++ {
		regs.Write(r, uint32(100+r))
	}

	regs.WriteMode(ModeUser)
	for r := 8; r <= 12; r++ {
		test.ExpectEquality(t, uint32(r), regs.Read(r))
	}

	regs.WriteMode(ModeFIQ)
	for r := 8; r <= 12; r++ {
		test.ExpectEquality(t, uint32(100+r), regs.Read(r))
	}
}

func TestSPSRPerMode(t *testing.T) {
	regs := NewRegisters()
	regs.WriteMode(ModeIRQ)
	regs.WriteSPSR(0xaaaaaaaa)

	regs.WriteMode(ModeAbort)
	regs.WriteSPSR(0xbbbbbbbb)

	regs.WriteMode(ModeIRQ)
	test.ExpectEquality(t, uint32(0xaaaaaaaa), regs.ReadSPSR())

	regs.WriteMode(ModeAbort)
	test.ExpectEquality(t, uint32(0xbbbbbbbb), regs.ReadSPSR())
}

func TestSPSRUndefinedInUserMode(t *testing.T) {
	regs := NewRegisters()
	regs.WriteMode(ModeUser)
	regs.WriteSPSR(0xdeadbeef)
	test.ExpectEquality(t, uint32(0), regs.ReadSPSR())
}

func TestWriteCPSRRemapsBankOnModeChange(t *testing.T) {
	regs := NewRegisters()
	regs.Write(rSP, 0x1234)

	cpsr := regs.ReadCPSR()
	cpsr = (cpsr &^ cpsrModeMask) | uint32(ModeFIQ)
	regs.WriteCPSR(cpsr)

	test.ExpectEquality(t, ModeFIQ, regs.ReadMode())
	regs.Write(rSP, 0x5678)

	regs.WriteMode(ModeSupervisor)
	test.ExpectEquality(t, uint32(0x1234), regs.Read(rSP))
}

func TestFlagAccessors(t *testing.T) {
	regs := NewRegisters()
	regs.SetN(true)
	regs.SetZ(true)
	regs.SetC(true)
	regs.SetV(true)
	test.ExpectEquality(t, true, regs.N())
	test.ExpectEquality(t, true, regs.Z())
	test.ExpectEquality(t, true, regs.C())
	test.ExpectEquality(t, true, regs.V())

	regs.SetN(false)
	test.ExpectEquality(t, false, regs.N())
}

func TestDataProcessingADDFlags(t *testing.T) {
	regs := NewRegisters()
	result := regs.dataProcessing(OpADD, 0xffffffff, 1, false, true)
	test.ExpectEquality(t, uint32(0), result)
	test.ExpectEquality(t, true, regs.Z())
	test.ExpectEquality(t, true, regs.C())
	test.ExpectEquality(t, false, regs.V())
}

func TestDataProcessingSUBOverflow(t *testing.T) {
	regs := NewRegisters()
	result := regs.dataProcessing(OpSUB, 0x80000000, 1, false, true)
	test.ExpectEquality(t, uint32(0x7fffffff), result)
	test.ExpectEquality(t, true, regs.V())
}

func TestDataProcessingLogicalTakesShifterCarry(t *testing.T) {
	regs := NewRegisters()
	regs.SetC(false)
	regs.dataProcessing(OpAND, 0xf, 0xf, true, true)
	test.ExpectEquality(t, true, regs.C())
}
