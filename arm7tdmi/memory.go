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

// Access distinguishes the first bus access of a multi-access instruction
// (NonSeq) from the subsequent, address-contiguous ones (Seq). Bus
// implementations use it to decide whether to charge extra waitstates,
// the way a gamepak-style bus often does for the first access to a new
// page.
type Access int

const (
	NonSeq Access = iota
	Seq
)

func (a Access) String() string {
	if a == Seq {
		return "S"
	}
	return "N"
}

// SharedMemory is the narrow bus abstraction the CPU depends on for every
// fetch, load and store. It is the only way the core talks to the rest of
// the system -- DMA, timers, the PPU, ROM/SRAM backends and everything
// else sit behind it. Every method returns the waitstate count the bus
// wants charged for the access; load methods additionally return the
// value read.
//
// load32's address is not required to be word aligned: the CPU itself
// performs the ARMv4T unaligned-LDR rotation described in spec.md 4.2.
// Implementations are free to return 0 waitstates for addresses they
// don't decode to real memory, but should count that access as handled --
// SharedMemory has no way to signal a bus fault back to the CPU; hosts
// that want Data/Prefetch Abort semantics raise them externally via
// CPU.RaiseException.
type SharedMemory interface {
	Fetch32(addr uint32, access Access) (uint32, int)
	Fetch16(addr uint32, access Access) (uint16, int)

	Load32(addr uint32, access Access) (uint32, int)
	Load16(addr uint32, access Access) (uint16, int)
	Load8(addr uint32, access Access) (uint8, int)

	Store32(addr uint32, val uint32, access Access) int
	Store16(addr uint32, val uint16, access Access) int
	Store8(addr uint32, val uint8, access Access) int

	// Stall charges cycles for internal (I) cycles that perform no bus
	// transfer at all -- multiply internal cycles, the extra cycle
	// between load and use, and so on.
	Stall(cycles int)

	// ResetVectors supplies the initial SP, LR and PC the core should use
	// when the host calls CPU.Reset, mirroring how Gopher2600's ARM asks
	// its SharedMemory for reset state rather than hardcoding it.
	ResetVectors() (sp, lr, pc uint32)
}

// defaultFetch32/16 implement the "default to the regular load path"
// fallback spec.md 4.2 allows bus implementations to use for opcode
// fetches; callers that don't override Fetch32/16 on their SharedMemory
// can route through these from their own Fetch32/16 methods.
func defaultFetch32(mem SharedMemory, addr uint32, access Access) (uint32, int) {
	return mem.Load32(addr, access)
}

func defaultFetch16(mem SharedMemory, addr uint32, access Access) (uint16, int) {
	return mem.Load16(addr, access)
}

// rotateUnalignedWord applies the ARMv4T unaligned-LDR rotation: the word
// is always fetched from the word-aligned address, then rotated right by
// 8 * (addr mod 4).
func rotateUnalignedWord(word, addr uint32) uint32 {
	return bits.RotateLeft32(word, -int(8*(addr&0x3)))
}
