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

func TestResetRejectsAllZeroVectors(t *testing.T) {
	mem := newTestMemory(0x1000)
	cpu := NewARM(CPUPreferences{})
	err := cpu.Reset(mem)
	test.ExpectFailure(t, err)
}

func TestResetSeedsPipeline(t *testing.T) {
	mem := newTestMemory(0x1000)
	mem.pc = 0x100
	mem.sp = 0x2000
	mem.lr = 0x3000

	cpu := NewARM(CPUPreferences{})
	test.ExpectSuccess(t, cpu.Reset(mem))

	test.ExpectEquality(t, uint32(0x100), cpu.NextExecPC())
	test.ExpectEquality(t, uint32(0x2000), cpu.Registers().Read(rSP))
	test.ExpectEquality(t, uint32(0x3000), cpu.Registers().Read(rLR))
	test.ExpectEquality(t, ModeSupervisor, cpu.Registers().ReadMode())
	test.ExpectEquality(t, ISAARM, cpu.ISA())
}

func TestNextExecPCAdvancesByISize(t *testing.T) {
	mem := newTestMemory(0x1000)
	mem.pc = 0x100

	// NOP-equivalent: MOV R0,R0 AL, at every address Reset/Step will fetch.
	mem.putARM(0x100, 0xe1a00000)
	mem.putARM(0x104, 0xe1a00000)
	mem.putARM(0x108, 0xe1a00000)
	mem.putARM(0x10c, 0xe1a00000)

	cpu := newTestCPU(mem)

	test.ExpectEquality(t, uint32(0x100), cpu.NextExecPC())
	cpu.Step(mem)
	test.ExpectEquality(t, uint32(0x104), cpu.NextExecPC())
	cpu.Step(mem)
	test.ExpectEquality(t, uint32(0x108), cpu.NextExecPC())
}

func TestMOVImmediate(t *testing.T) {
	mem := newTestMemory(0x1000)
	mem.sp = 0x2000

	// MOV R0, #5 (AL, I=1, op=MOV, S=0)
	mem.putARM(0x0, 0xe3a00005)

	cpu := newTestCPU(mem)
	cpu.Step(mem)
	test.ExpectEquality(t, uint32(5), cpu.Registers().Read(0))
}

func TestMOVSSetsFlags(t *testing.T) {
	mem := newTestMemory(0x1000)
	mem.sp = 0x2000

	// MOVS R0, #0 (AL, I=1, op=MOV, S=1)
	mem.putARM(0x0, 0xe3b00000)

	cpu := newTestCPU(mem)
	cpu.Step(mem)
	test.ExpectEquality(t, uint32(0), cpu.Registers().Read(0))
	test.ExpectEquality(t, true, cpu.Registers().Z())
}

func TestBranchForward(t *testing.T) {
	mem := newTestMemory(0x1000)
	mem.sp = 0x2000

	// B, offset field 4: target = PC-during-execution(0x8) + 4*4 = 0x18
	mem.putARM(0x0, 0xea000004)

	cpu := newTestCPU(mem)
	cycles := cpu.Step(mem)
	test.ExpectEquality(t, uint32(0x18), cpu.NextExecPC())
	if cycles <= 0 {
		t.Errorf("expected positive cycle count, got %d", cycles)
	}
}

func TestBranchWithLinkSetsLR(t *testing.T) {
	mem := newTestMemory(0x1000)
	mem.sp = 0x2000

	// BL #0 (AL, offset=0): LR should be set to next_exec_pc() at entry (0x4).
	mem.putARM(0x0, 0xeb000000)

	cpu := newTestCPU(mem)
	cpu.Step(mem)
	test.ExpectEquality(t, uint32(0x4), cpu.Registers().Read(rLR))
}

func TestLDRSTRRoundTrip(t *testing.T) {
	mem := newTestMemory(0x1000)
	mem.sp = 0x2000

	// MOV R0, #0x42
	mem.putARM(0x0, 0xe3a00042)
	// MOV R1, #0x100 (base address): imm8=0x01 rotated right by 24 bits.
	mem.putARM(0x4, 0xe3a01c01)
	// STR R0, [R1]
	mem.putARM(0x8, 0xe5810000)
	// LDR R2, [R1]
	mem.putARM(0xc, 0xe5912000)

	cpu := newTestCPU(mem)
	cpu.Step(mem)
	cpu.Step(mem)
	cpu.Step(mem)
	cpu.Step(mem)

	test.ExpectEquality(t, uint32(0x42), cpu.Registers().Read(2))
}

func TestSWIRaisesException(t *testing.T) {
	mem := newTestMemory(0x1000)
	mem.sp = 0x2000

	// SWI #0
	mem.putARM(0x0, 0xef000000)

	cpu := newTestCPU(mem)
	cpu.Step(mem)

	test.ExpectEquality(t, ModeSupervisor, cpu.Registers().ReadMode())
	test.ExpectEquality(t, true, cpu.Registers().I())
	test.ExpectEquality(t, uint32(0x8), cpu.NextExecPC())
}

func TestBranchExchangeToThumb(t *testing.T) {
	mem := newTestMemory(0x1000)
	mem.sp = 0x2000

	// MOV R0, #0x21 (bit0 set selects THUMB)
	mem.putARM(0x0, 0xe3a00021)
	// BX R0
	mem.putARM(0x4, 0xe12fff10)
	mem.putThumb(0x20, 0x1c00) // ADD R0,R0,#0: a THUMB no-op, never executed in this test

	cpu := newTestCPU(mem)
	cpu.Step(mem)
	cpu.Step(mem)

	test.ExpectEquality(t, ISAThumb, cpu.ISA())
	test.ExpectEquality(t, uint32(0x20), cpu.NextExecPC())
}

func TestExceptionHandlerShortCircuits(t *testing.T) {
	mem := newTestMemory(0x1000)
	mem.sp = 0x2000
	cpu := newTestCPU(mem)

	called := false
	cpu.SetExceptionHandler(func(cpu *CPU, mem SharedMemory, kind ExceptionKind) ExceptionResult {
		called = true
		return Handled
	})

	cycles := cpu.RaiseException(mem, ExceptionSoftwareInterrupt, 0x40)
	test.ExpectEquality(t, true, called)
	test.ExpectEquality(t, 1, cycles)
	test.ExpectEquality(t, ModeSupervisor, cpu.Registers().ReadMode())
}
