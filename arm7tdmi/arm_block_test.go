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

func TestSTMIALDMIARoundTrip(t *testing.T) {
	mem := newTestMemory(0x1000)
	mem.sp = 0x2000

	mem.putARM(0x0, 0xe3a00040)  // MOV R0, #0x40
	mem.putARM(0x4, 0xe3a010aa)  // MOV R1, #0xaa
	mem.putARM(0x8, 0xe3a020bb)  // MOV R2, #0xbb
	mem.putARM(0xc, 0xe8a00006)  // STMIA R0!, {R1,R2}
	mem.putARM(0x10, 0xe3a00040) // MOV R0, #0x40 (reset pointer)
	mem.putARM(0x14, 0xe8900018) // LDMIA R0, {R3,R4}

	cpu := newTestCPU(mem)
	for i := 0; i < 4; i++ {
		cpu.Step(mem)
	}

	// writeback from the STMIA should have advanced R0 by 2 words.
	test.ExpectEquality(t, uint32(0x48), cpu.Registers().Read(0))

	for i := 0; i < 2; i++ {
		cpu.Step(mem)
	}

	test.ExpectEquality(t, uint32(0xaa), cpu.Registers().Read(3))
	test.ExpectEquality(t, uint32(0xbb), cpu.Registers().Read(4))
}

func TestBlockTransferAddressesAllFourModes(t *testing.T) {
	// IB
	start, wb := blockTransferAddresses(0x100, 2, true, true)
	test.ExpectEquality(t, uint32(0x104), start)
	test.ExpectEquality(t, uint32(0x108), wb)

	// IA
	start, wb = blockTransferAddresses(0x100, 2, false, true)
	test.ExpectEquality(t, uint32(0x100), start)
	test.ExpectEquality(t, uint32(0x108), wb)

	// DB
	start, wb = blockTransferAddresses(0x100, 2, true, false)
	test.ExpectEquality(t, uint32(0xf8), start)
	test.ExpectEquality(t, uint32(0xf8), wb)

	// DA
	start, wb = blockTransferAddresses(0x100, 2, false, false)
	test.ExpectEquality(t, uint32(0xfc), start)
	test.ExpectEquality(t, uint32(0xf8), wb)
}
