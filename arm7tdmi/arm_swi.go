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

import "github.com/retrogba/arm7tdmi/logger"

// executeSoftwareInterrupt implements SWI: it always raises the
// SoftwareInterrupt exception, regardless of the comment field in bits
// 23:0 (those bits are for the software interrupt handler to inspect via
// the instruction at LR-4, not for the CPU core itself).
func executeSoftwareInterrupt(cpu *CPU, mem SharedMemory, opcode uint32) int {
	return cpu.raiseInternal(mem, ExceptionSoftwareInterrupt)
}

// executeUndefined implements the Undefined instruction exception:
// raised for any ARM opcode not decoded to a known handler, or any
// opcode landing in the architecturally reserved "undefined instruction"
// space (spec.md 4.5/7). This package never panics on guest code -- an
// unrecognised opcode is logged and routed here instead.
func executeUndefined(cpu *CPU, mem SharedMemory, opcode uint32) int {
	cpu.log.Logf(logger.Allow, "arm7tdmi", "undefined ARM opcode %08x at %08x", opcode, cpu.NextExecPC()-4)
	return cpu.raiseInternal(mem, ExceptionUndefined)
}

// executeCoprocessorStub handles CDP/LDC/STC/MCR/MRC: spec.md 1's
// non-goal leaves these as placeholders that log at the faulting PC and
// return zero cycles, matching the teacher's own coprocessor stub
// behaviour for opcodes it doesn't implement.
func executeCoprocessorStub(cpu *CPU, mem SharedMemory, opcode uint32) int {
	cpu.log.Logf(logger.Allow, "arm7tdmi", "unimplemented coprocessor opcode %08x at %08x", opcode, cpu.NextExecPC()-4)
	return 0
}
