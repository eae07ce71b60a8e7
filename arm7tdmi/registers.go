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

import "fmt"

// register names, kept as constants the way the teacher names rSP/rLR/rPC
// rather than spelling out 13/14/15 everywhere.
const (
	rSP = 13
	rLR = 14
	rPC = 15

	// NumRegisters is the size of the architectural register window
	// visible at any moment (R0-R15).
	NumRegisters = 16
)

// Mode is the 5 bit CPSR mode field.
type Mode uint32

const (
	ModeUser       Mode = 0b10000
	ModeFIQ        Mode = 0b10001
	ModeIRQ        Mode = 0b10010
	ModeSupervisor Mode = 0b10011
	ModeAbort      Mode = 0b10111
	ModeUndefined  Mode = 0b11011
	ModeSystem     Mode = 0b11111
)

func (m Mode) String() string {
	switch m {
	case ModeUser:
		return "USR"
	case ModeFIQ:
		return "FIQ"
	case ModeIRQ:
		return "IRQ"
	case ModeSupervisor:
		return "SVC"
	case ModeAbort:
		return "ABT"
	case ModeUndefined:
		return "UND"
	case ModeSystem:
		return "SYS"
	default:
		return fmt.Sprintf("?%02b?", uint32(m))
	}
}

// CPSR bit positions.
const (
	cpsrN      = 31
	cpsrZ      = 30
	cpsrC      = 29
	cpsrV      = 28
	cpsrI      = 7
	cpsrF      = 6
	cpsrT      = 5
	cpsrModeLo = 0
	cpsrModeHi = 4
)

const cpsrModeMask = uint32(0x1f)

// bankIndex maps a mode to one of the six physical banks that hold R13/R14
// (User and System share a bank; FIQ, IRQ, Supervisor, Abort and Undefined
// each have their own).
func bankIndex(m Mode) int {
	switch m {
	case ModeFIQ:
		return 1
	case ModeIRQ:
		return 2
	case ModeSupervisor:
		return 3
	case ModeAbort:
		return 4
	case ModeUndefined:
		return 5
	default: // ModeUser, ModeSystem, and anything unrecognised
		return 0
	}
}

// spsrIndex maps a privileged mode to its SPSR slot. User and System modes
// have no SPSR; ok is false for them.
func spsrIndex(m Mode) (idx int, ok bool) {
	switch m {
	case ModeFIQ:
		return 0, true
	case ModeIRQ:
		return 1, true
	case ModeSupervisor:
		return 2, true
	case ModeAbort:
		return 3, true
	case ModeUndefined:
		return 4, true
	default:
		return 0, false
	}
}

// Registers is the ARM7TDMI register file: the 16 registers visible at any
// moment, the banked physical storage backing R8-R12 (FIQ only) and
// R13/R14 (every privileged mode), the CPSR and the five SPSRs.
//
// Mode switches remap which physical bank is visible without copying user
// data around (see WriteMode), per spec.md's banked register invariant.
type Registers struct {
	r [NumRegisters]uint32

	// banked copies of R8-R12. normalHi holds the shared User/System/IRQ/
	// SVC/ABT/UND values while fiqHi holds FIQ's private values; whichever
	// one isn't currently live in r[8:13] is held here.
	normalHi [5]uint32
	fiqHi    [5]uint32

	// banked copies of R13/R14, one slot per bankIndex(); the slot for the
	// currently active bank is stale (the live values are in r[13]/r[14]).
	bankLo [6][2]uint32

	spsr [5]uint32

	cpsr uint32
}

// NewRegisters returns a Registers in Supervisor mode, ARM state, with
// IRQ and FIQ both masked -- the state the ARM7TDMI reset exception
// leaves the core in.
func NewRegisters() *Registers {
	regs := &Registers{}
	regs.cpsr = uint32(ModeSupervisor) | (1 << cpsrI) | (1 << cpsrF)
	return regs
}

// Read returns the value of r in the currently visible bank. r must be in
// [0,15].
func (regs *Registers) Read(r int) uint32 {
	return regs.r[r]
}

// Write sets the value of r in the currently visible bank. Writing R15
// does not by itself reseed the pipeline; callers that write R15 as a
// control-flow effect must follow up with CPU.branch().
func (regs *Registers) Write(r int, v uint32) {
	regs.r[r] = v
}

// ReadMode returns the CPSR mode field.
func (regs *Registers) ReadMode() Mode {
	return Mode(regs.cpsr & cpsrModeMask)
}

// WriteMode changes the CPSR mode field and remaps the banked physical
// registers so that R8-R12 (FIQ only), R13 and R14 refer to the new
// mode's storage. This is the remap algorithm from spec.md 4.1: save the
// outgoing mode's banked registers to their bank slots, load the incoming
// mode's bank slots into the visible file.
func (regs *Registers) WriteMode(m Mode) {
	old := regs.ReadMode()
	if old == m {
		return
	}

	oldBank := bankIndex(old)
	newBank := bankIndex(m)
	if oldBank != newBank {
		regs.bankLo[oldBank][0] = regs.r[rSP]
		regs.bankLo[oldBank][1] = regs.r[rLR]
		regs.r[rSP] = regs.bankLo[newBank][0]
		regs.r[rLR] = regs.bankLo[newBank][1]
	}

	oldFIQ := old == ModeFIQ
	newFIQ := m == ModeFIQ
	if oldFIQ != newFIQ {
		if oldFIQ {
			copy(regs.fiqHi[:], regs.r[8:13])
			copy(regs.r[8:13], regs.normalHi[:])
		} else {
			copy(regs.normalHi[:], regs.r[8:13])
			copy(regs.r[8:13], regs.fiqHi[:])
		}
	}

	regs.cpsr = (regs.cpsr &^ cpsrModeMask) | uint32(m)
}

// ReadCPSR returns the entire current program status register.
func (regs *Registers) ReadCPSR() uint32 {
	return regs.cpsr
}

// WriteCPSR performs a bulk write of the CPSR. If the mode field of v
// differs from the current mode, the banked registers are remapped before
// returning, so that the very next register access observes the new
// bank -- this is what lets data-processing instructions that target
// R15 with the S-bit set restore CPSR and PC as a single atomic-looking
// operation.
func (regs *Registers) WriteCPSR(v uint32) {
	newMode := Mode(v & cpsrModeMask)
	if newMode != regs.ReadMode() {
		// perform everything WriteMode does except assigning the mode bits
		// of cpsr twice; simplest is to write the non-mode bits first, then
		// let WriteMode finish the job.
		regs.cpsr = (regs.cpsr & cpsrModeMask) | (v & ^cpsrModeMask)
		regs.WriteMode(newMode)
		return
	}
	regs.cpsr = v
}

// ReadSPSR returns the SPSR of the current mode. Reading SPSR in User or
// System mode is undefined by the architecture; this implementation
// no-ops and returns 0.
func (regs *Registers) ReadSPSR() uint32 {
	idx, ok := spsrIndex(regs.ReadMode())
	if !ok {
		return 0
	}
	return regs.spsr[idx]
}

// WriteSPSR sets the SPSR of the current mode. Writing SPSR in User or
// System mode is undefined and is a no-op.
func (regs *Registers) WriteSPSR(v uint32) {
	idx, ok := spsrIndex(regs.ReadMode())
	if !ok {
		return
	}
	regs.spsr[idx] = v
}

// writeSPSRForMode sets the SPSR belonging to an arbitrary mode, used by
// exception entry to save the pre-exception CPSR into SPSR_<newMode>
// before the mode switch takes effect.
func (regs *Registers) writeSPSRForMode(m Mode, v uint32) {
	idx, ok := spsrIndex(m)
	if !ok {
		return
	}
	regs.spsr[idx] = v
}

// flag accessors. N, Z, C and V are the arithmetic condition flags; I and
// F mask IRQ and FIQ respectively; T selects THUMB state when set.

func (regs *Registers) N() bool { return regs.cpsr&(1<<cpsrN) != 0 }
func (regs *Registers) Z() bool { return regs.cpsr&(1<<cpsrZ) != 0 }
func (regs *Registers) C() bool { return regs.cpsr&(1<<cpsrC) != 0 }
func (regs *Registers) V() bool { return regs.cpsr&(1<<cpsrV) != 0 }
func (regs *Registers) I() bool { return regs.cpsr&(1<<cpsrI) != 0 }
func (regs *Registers) F() bool { return regs.cpsr&(1<<cpsrF) != 0 }
func (regs *Registers) T() bool { return regs.cpsr&(1<<cpsrT) != 0 }

func (regs *Registers) setFlag(bit uint, v bool) {
	if v {
		regs.cpsr |= 1 << bit
	} else {
		regs.cpsr &^= 1 << bit
	}
}

func (regs *Registers) SetN(v bool) { regs.setFlag(cpsrN, v) }
func (regs *Registers) SetZ(v bool) { regs.setFlag(cpsrZ, v) }
func (regs *Registers) SetC(v bool) { regs.setFlag(cpsrC, v) }
func (regs *Registers) SetV(v bool) { regs.setFlag(cpsrV, v) }
func (regs *Registers) SetI(v bool) { regs.setFlag(cpsrI, v) }
func (regs *Registers) SetF(v bool) { regs.setFlag(cpsrF, v) }

// SetT sets or clears the THUMB bit directly, without going through
// WriteCPSR. Used by branch exchange and exception entry/return.
func (regs *Registers) SetT(v bool) { regs.setFlag(cpsrT, v) }

// isNegative and isZero set N and Z from an ALU/load result -- lifted
// directly from the teacher's status.go, which uses the same two one-line
// bit tests.
func (regs *Registers) isNegative(a uint32) { regs.SetN(a&0x80000000 == 0x80000000) }
func (regs *Registers) isZero(a uint32)     { regs.SetZ(a == 0) }

// setCarryAdd and setOverflowAdd set C and V for a + b + carryIn, using
// the teacher's 31-bit carry-propagation trick (status.go's setCarry/
// setOverflow, unmodified: the arithmetic is correct regardless of how
// many CPSR bits surround it).
func (regs *Registers) setCarryAdd(a, b, carryIn uint32) {
	d := (a & 0x7fffffff) + (b & 0x7fffffff) + carryIn
	d = (d >> 31) + (a >> 31) + (b >> 31)
	regs.SetC(d&0x02 == 0x02)
}

func (regs *Registers) setOverflowAdd(a, b, carryIn uint32) {
	d := (a & 0x7fffffff) + (b & 0x7fffffff) + carryIn
	d >>= 31
	e := (d & 0x01) + ((a >> 31) & 0x01) + ((b >> 31) & 0x01)
	e >>= 1
	regs.SetV((d^e)&0x01 == 0x01)
}

// String renders all sixteen currently-visible registers plus CPSR, in the
// teacher's 4-per-line layout.
func (regs *Registers) String() string {
	s := ""
	for i, r := range regs.r {
		if i > 0 {
			if i%4 == 0 {
				s += "\n"
			} else {
				s += "\t\t"
			}
		}
		s += fmt.Sprintf("R%-2d: %08x", i, r)
	}
	s += fmt.Sprintf("\nCPSR: %08x (%s)", regs.cpsr, regs.ReadMode())
	return s
}
