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

// DisasmEntry describes one decoded/executed instruction. It is filled in
// and handed to an optional DisasmOutput after every Step; unlike the
// teacher's DisasmEntry (arm/disassembly_entry.go) it carries no file/map
// lookup fields of its own, and no mnemonic/operand text -- this package
// has no instruction-formatting layer, so it only reports what Step
// already knows (address, raw opcode, width, cycle cost). A host that
// wants symbol names or disassembled text attaches that externally, keyed
// off Addr/Opcode.
type DisasmEntry struct {
	Addr    uint32
	Opcode  uint32
	Is16bit bool
	Cycles  int
}

func (e DisasmEntry) String() string {
	if e.Is16bit {
		return fmt.Sprintf("%08x  %04x  (%d cycles)", e.Addr, e.Opcode, e.Cycles)
	}
	return fmt.Sprintf("%08x  %08x  (%d cycles)", e.Addr, e.Opcode, e.Cycles)
}

// DisasmOutput is the optional collaborator the CPU calls once per Step
// with the entry it just executed. Supplying one is purely observational
// -- SPEC_FULL.md's DOMAIN STACK notes that it never changes a cycle count or
// register value. A nil DisasmOutput (the default) means the CPU does no
// disassembly bookkeeping at all.
type DisasmOutput interface {
	Step(entry DisasmEntry)
}
