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

// ExceptionKind enumerates the eight ARMv4T exception entry points, in
// the order of their vector addresses (0x00 through 0x1c). The order does
// not encode priority; this package does not model exception priority.
type ExceptionKind int

const (
	ExceptionReset ExceptionKind = iota
	ExceptionUndefined
	ExceptionSoftwareInterrupt
	ExceptionPrefetchAbort
	ExceptionDataAbort
	ExceptionAddress26
	ExceptionIRQ
	ExceptionFIQ
)

func (k ExceptionKind) String() string {
	switch k {
	case ExceptionReset:
		return "reset"
	case ExceptionUndefined:
		return "undefined instruction"
	case ExceptionSoftwareInterrupt:
		return "software interrupt"
	case ExceptionPrefetchAbort:
		return "prefetch abort"
	case ExceptionDataAbort:
		return "data abort"
	case ExceptionAddress26:
		return "address exceeds 26 bit"
	case ExceptionIRQ:
		return "irq"
	case ExceptionFIQ:
		return "fiq"
	default:
		return "unknown exception"
	}
}

// exceptionInfo is one row of the exception table from spec.md 3: the
// mode entered, the vector offset, the adjustment added to the saved
// return address, and whether entry forces F=1 in addition to the I=1
// every exception sets.
type exceptionInfo struct {
	mode     Mode
	vector   uint32
	pcAdjust uint32
	forceF   bool
}

// exceptionTable is indexed by ExceptionKind. ExceptionAddress26 is
// present for completeness -- see DESIGN.md's Open Question (a) -- but is
// never raised internally by this package; a host that wants 26 bit
// legacy behaviour is on its own.
var exceptionTable = [...]exceptionInfo{
	ExceptionReset:             {mode: ModeSupervisor, vector: 0x00, pcAdjust: 0, forceF: true},
	ExceptionUndefined:         {mode: ModeUndefined, vector: 0x04, pcAdjust: 0, forceF: false},
	ExceptionSoftwareInterrupt: {mode: ModeSupervisor, vector: 0x08, pcAdjust: 0, forceF: false},
	ExceptionPrefetchAbort:     {mode: ModeAbort, vector: 0x0c, pcAdjust: 4, forceF: false},
	ExceptionDataAbort:         {mode: ModeAbort, vector: 0x10, pcAdjust: 4, forceF: false},
	ExceptionAddress26:         {mode: ModeSupervisor, vector: 0x14, pcAdjust: 4, forceF: false},
	ExceptionIRQ:               {mode: ModeIRQ, vector: 0x18, pcAdjust: 4, forceF: false},
	ExceptionFIQ:               {mode: ModeFIQ, vector: 0x1c, pcAdjust: 4, forceF: true},
}

// ExceptionResult is the value an ExceptionHandler returns.
type ExceptionResult int

const (
	// Ignored lets the hardware exception sequence run as normal.
	Ignored ExceptionResult = iota

	// Handled short-circuits the hardware exception sequence entirely; the
	// CPU charges one internal cycle and otherwise leaves register state
	// untouched.
	Handled
)

// ExceptionHandler is an optional collaborator given first refusal on
// every exception the CPU raises. While the handler itself is running it
// is taken out of the CPU's exceptionHandler slot, so a handler that
// itself triggers an exception (e.g. by calling back into the CPU) cannot
// recurse into itself -- see spec.md 5 and 9.
type ExceptionHandler func(cpu *CPU, mem SharedMemory, kind ExceptionKind) ExceptionResult

// RaiseException runs the full exception entry sequence described in
// spec.md 4.6: consult the external handler first; failing that, save
// CPSR to SPSR_<newMode>, switch mode, write LR, clear T, set I (and F if
// the exception mandates it), then branch to the vector. It returns the
// cycle cost, following the same "fetch cost from branch() plus any
// internal stall" accounting every other CPU entry point uses.
//
// returnAddr is the address exception entry should save (before
// pcAdjust) into LR of the new mode. Internal exceptions (raised from
// inside an instruction handler, e.g. SWI) pass next_exec_pc(), which --
// because of the pipeline's two-ahead fetch -- already equals the
// faulting instruction's address plus one instruction width. External
// asynchronous exceptions (IRQ/FIQ) raised between steps pass the same
// value for the same reason: it is the address of the instruction that
// has not yet executed.
func (cpu *CPU) RaiseException(mem SharedMemory, kind ExceptionKind, returnAddr uint32) int {
	if cpu.exceptionHandler != nil {
		handler := cpu.exceptionHandler
		cpu.exceptionHandler = nil
		result := handler(cpu, mem, kind)
		cpu.exceptionHandler = handler
		if result == Handled {
			mem.Stall(1)
			return 1
		}
	}

	info := exceptionTable[kind]

	oldCPSR := cpu.regs.ReadCPSR()
	cpu.regs.writeSPSRForMode(info.mode, oldCPSR)
	cpu.regs.WriteMode(info.mode)
	cpu.regs.Write(rLR, returnAddr+info.pcAdjust)
	cpu.regs.SetT(false)
	cpu.regs.SetI(true)
	if info.forceF {
		cpu.regs.SetF(true)
	}

	return cpu.branch(mem, info.vector)
}

// raiseInternal is the convenience used by instruction handlers (SWI,
// undefined instruction) to raise an exception from inside Step: the
// return address is always the CPU's current next_exec_pc(), per the
// reasoning in RaiseException's doc comment.
func (cpu *CPU) raiseInternal(mem SharedMemory, kind ExceptionKind) int {
	return cpu.RaiseException(mem, kind, cpu.NextExecPC())
}

// SetExceptionHandler installs (or, with nil, removes) the optional
// external exception handler.
func (cpu *CPU) SetExceptionHandler(h ExceptionHandler) {
	cpu.exceptionHandler = h
}
