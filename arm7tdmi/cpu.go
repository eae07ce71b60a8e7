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
	"github.com/retrogba/arm7tdmi/curated"
	"github.com/retrogba/arm7tdmi/logger"
)

// ISA is the instruction set currently selected by CPSR's T bit.
type ISA int

const (
	ISAARM ISA = iota
	ISAThumb
)

func (i ISA) String() string {
	if i == ISAThumb {
		return "THUMB"
	}
	return "ARM"
}

// armHandler implements one ARM instruction category. It is given the
// already condition-passed opcode and returns the number of cycles its
// own bus activity consumed (the one cycle for the step's own prefetch is
// added by Step separately). Handlers that write R15 must call
// cpu.branch() themselves -- see spec.md 4.6.
type armHandler func(cpu *CPU, mem SharedMemory, opcode uint32) int

// thumbHandler is the THUMB equivalent of armHandler.
type thumbHandler func(cpu *CPU, mem SharedMemory, opcode uint16) int

// pipeline holds the two opcode slots spec.md 3 describes: the most
// recently fetched raw word and the most recently decoded opcode plus its
// resolved handler. The *executing* opcode is implicit -- Step pulls the
// decoded slot forward into a local before moving fetched into decoded.
type pipeline struct {
	decodedAddr   uint32
	decodedOpcode uint32
	decodedARM    armHandler
	decodedThumb  thumbHandler

	fetchedAddr   uint32
	fetchedOpcode uint32
}

// CPUPreferences is an in-memory value object threaded into NewARM the
// way the teacher threads *preferences.ARMPreferences into NewARM --
// without that type's file-backed persistence, which is out of scope per
// spec.md 1 (see DESIGN.md).
type CPUPreferences struct {
	// ImmediateMode skips disassembly bookkeeping even when a DisasmOutput
	// is attached, for hosts that want the cycle-accurate counts without
	// the per-step formatting cost.
	ImmediateMode bool

	// AbortOnIllegalMem controls whether a SharedMemory access the CPU
	// cannot make sense of (this package never detects that itself --
	// SharedMemory has no fault-return path, see memory.go) should be
	// escalated by a host wrapper into a Data/Prefetch Abort. Recorded
	// here purely as the flag a host wrapper consults; the CPU core
	// itself does not branch on it.
	AbortOnIllegalMem bool
}

// CPU is the ARM7TDMI core: register file, pipeline and dispatch tables.
// It depends on nothing but the SharedMemory it is handed per call and an
// optional ExceptionHandler/DisasmOutput -- see doc.go.
type CPU struct {
	regs *Registers
	pipe pipeline

	armTable   [4096]armHandler
	thumbTable [256]thumbHandler

	exceptionHandler ExceptionHandler
	disasm           DisasmOutput
	prefs            CPUPreferences
	log              *logger.Log

	entry DisasmEntry
}

// NewARM creates a CPU in Supervisor mode, with ARM state selected and
// IRQ/FIQ masked (the NewRegisters reset state), its dispatch tables built
// and ready. The starting mode and ISA are not parameters; a host that
// wants another mode sets it through Registers() afterwards.
// The CPU is otherwise uninitialised until Reset or Branch seeds the
// pipeline -- see spec.md 3's lifecycle note.
func NewARM(prefs CPUPreferences) *CPU {
	cpu := &CPU{
		regs:  NewRegisters(),
		prefs: prefs,
		log:   logger.Discard,
	}
	cpu.armTable = buildARMTable()
	cpu.thumbTable = buildThumbTable()
	return cpu
}

// SetLogger attaches the logger used for undefined-opcode and coprocessor
// stub notices. A nil logger reverts to logger.Discard.
func (cpu *CPU) SetLogger(log *logger.Log) {
	if log == nil {
		log = logger.Discard
	}
	cpu.log = log
}

// SetDisassembler attaches the optional per-step disassembly hook.
func (cpu *CPU) SetDisassembler(d DisasmOutput) {
	cpu.disasm = d
}

// Registers exposes the banked register file for host inspection (e.g. a
// debugger) and for exception injection from outside the package.
func (cpu *CPU) Registers() *Registers {
	return cpu.regs
}

// ISA reports the instruction set the CPU is currently decoding.
func (cpu *CPU) ISA() ISA {
	if cpu.regs.T() {
		return ISAThumb
	}
	return ISAARM
}

// isize returns the current instruction width in bytes: 4 for ARM, 2 for
// THUMB.
func (cpu *CPU) isize() uint32 {
	if cpu.regs.T() {
		return 2
	}
	return 4
}

// NextExecPC returns the address of the instruction that will execute on
// the next call to Step -- the CPU's decoded slot. spec.md 6 calls this
// next_exec_pc().
func (cpu *CPU) NextExecPC() uint32 {
	return cpu.pipe.decodedAddr
}

// Reset puts the CPU into the state spec.md 4.1 describes for the ARM7TDMI
// reset exception (Supervisor mode, ARM state, IRQ and FIQ masked), asks
// mem for its reset vectors, and branches the pipeline to the reset PC.
// Unlike the other exceptions there is no prior CPSR worth preserving, so
// Reset does not go through RaiseException/SPSR_svc.
func (cpu *CPU) Reset(mem SharedMemory) error {
	cpu.regs = NewRegisters()

	sp, lr, pc := mem.ResetVectors()
	if pc == 0 && sp == 0 && lr == 0 {
		return curated.Errorf("arm7tdmi: reset vectors are all zero, no program memory mapped")
	}

	cpu.regs.Write(rSP, sp)
	cpu.regs.Write(rLR, lr)
	cpu.branch(mem, pc)
	return nil
}

// Branch reseeds the pipeline at addr -- the public entry point a host
// uses for the initial branch spec.md 3's lifecycle requires after
// construction, distinct from Reset in that it doesn't touch mode/SP/LR.
func (cpu *CPU) Branch(mem SharedMemory, addr uint32) int {
	return cpu.branch(mem, addr)
}

// branch masks addr to the current ISA's instruction alignment, performs
// a NonSeq fetch into the decoded slot and a Seq fetch into the fetched
// slot, and leaves R15 at target+isize -- spec.md 4.6's branch sequence.
// Total cost is the two fetches plus their waitstates.
func (cpu *CPU) branch(mem SharedMemory, addr uint32) int {
	isize := cpu.isize()
	addr &^= isize - 1

	cpu.pipe.decodedAddr = addr
	cpu.pipe.fetchedAddr = addr + isize

	var wsDecoded, wsFetched int
	if cpu.regs.T() {
		var v uint16
		v, wsDecoded = mem.Fetch16(cpu.pipe.decodedAddr, NonSeq)
		cpu.pipe.decodedOpcode = uint32(v)
		cpu.pipe.decodedThumb = cpu.thumbTable[thumbIndex(v)]

		v, wsFetched = mem.Fetch16(cpu.pipe.fetchedAddr, Seq)
		cpu.pipe.fetchedOpcode = uint32(v)
	} else {
		cpu.pipe.decodedOpcode, wsDecoded = mem.Fetch32(cpu.pipe.decodedAddr, NonSeq)
		cpu.pipe.decodedARM = cpu.armTable[armIndex(cpu.pipe.decodedOpcode)]

		cpu.pipe.fetchedOpcode, wsFetched = mem.Fetch32(cpu.pipe.fetchedAddr, Seq)
	}

	cpu.regs.Write(rPC, cpu.pipe.fetchedAddr)

	return 2 + wsDecoded + wsFetched
}

// Step advances the CPU by exactly one decode/execute and one new fetch,
// per spec.md 4.6's per-step sequence. The returned cycle count is always
// strictly positive: one cycle plus waitstates for this step's own
// prefetch, plus (if the instruction's condition passed) whatever the
// handler itself charges for its own bus activity.
func (cpu *CPU) Step(mem SharedMemory) int {
	if cpu.regs.T() {
		return cpu.stepThumb(mem)
	}
	return cpu.stepARM(mem)
}

func (cpu *CPU) stepARM(mem SharedMemory) int {
	execAddr := cpu.pipe.decodedAddr
	execOpcode := cpu.pipe.decodedOpcode
	execHandler := cpu.pipe.decodedARM

	cpu.pipe.decodedAddr = cpu.pipe.fetchedAddr
	cpu.pipe.decodedOpcode = cpu.pipe.fetchedOpcode
	cpu.pipe.decodedARM = cpu.armTable[armIndex(cpu.pipe.decodedOpcode)]

	cpu.pipe.fetchedAddr += 4
	word, ws := mem.Fetch32(cpu.pipe.fetchedAddr, Seq)
	cpu.pipe.fetchedOpcode = word
	cpu.regs.Write(rPC, cpu.pipe.fetchedAddr)

	total := 1 + ws

	cond := conditionOf(execOpcode)
	if cond.Test(cpu.regs.N(), cpu.regs.Z(), cpu.regs.C(), cpu.regs.V()) {
		total += execHandler(cpu, mem, execOpcode)
	}

	if cpu.disasm != nil && !cpu.prefs.ImmediateMode {
		cpu.entry = DisasmEntry{Addr: execAddr, Opcode: execOpcode, Is16bit: false, Cycles: total}
		cpu.disasm.Step(cpu.entry)
	}

	return total
}

func (cpu *CPU) stepThumb(mem SharedMemory) int {
	execAddr := cpu.pipe.decodedAddr
	execOpcode := uint16(cpu.pipe.decodedOpcode)
	execHandler := cpu.pipe.decodedThumb

	cpu.pipe.decodedAddr = cpu.pipe.fetchedAddr
	cpu.pipe.decodedOpcode = cpu.pipe.fetchedOpcode
	cpu.pipe.decodedThumb = cpu.thumbTable[thumbIndex(uint16(cpu.pipe.decodedOpcode))]

	cpu.pipe.fetchedAddr += 2
	half, ws := mem.Fetch16(cpu.pipe.fetchedAddr, Seq)
	cpu.pipe.fetchedOpcode = uint32(half)
	cpu.regs.Write(rPC, cpu.pipe.fetchedAddr)

	total := 1 + ws
	total += execHandler(cpu, mem, execOpcode)

	if cpu.disasm != nil && !cpu.prefs.ImmediateMode {
		cpu.entry = DisasmEntry{Addr: execAddr, Opcode: uint32(execOpcode), Is16bit: true, Cycles: total}
		cpu.disasm.Step(cpu.entry)
	}

	return total
}
