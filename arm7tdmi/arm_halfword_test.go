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

func TestSTRHLDRHRoundTrip(t *testing.T) {
	mem := newTestMemory(0x1000)
	mem.sp = 0x2000

	mem.putARM(0x0, 0xe3a00040)  // MOV R0, #0x40  (address)
	mem.putARM(0x4, 0xe3a020ab)  // MOV R2, #0xab
	mem.putARM(0x8, 0xe1c020b0)  // STRH R2, [R0]
	mem.putARM(0xc, 0xe1d030b0)  // LDRH R3, [R0]

	cpu := newTestCPU(mem)
	for i := 0; i < 4; i++ {
		cpu.Step(mem)
	}

	test.ExpectEquality(t, uint32(0xab), cpu.Registers().Read(3))
}

func TestLDRSBSignExtends(t *testing.T) {
	mem := newTestMemory(0x1000)
	mem.sp = 0x2000

	mem.putARM(0x0, 0xe3a00040) // MOV R0, #0x40
	mem.putARM(0x4, 0xe3a020ff) // MOV R2, #0xff
	mem.putARM(0x8, 0xe1c020b0) // STRH R2, [R0]  (store 0xff into the low byte)
	mem.putARM(0xc, 0xe1d030d0) // LDRSB R3, [R0]

	cpu := newTestCPU(mem)
	for i := 0; i < 4; i++ {
		cpu.Step(mem)
	}

	test.ExpectEquality(t, uint32(0xffffffff), cpu.Registers().Read(3))
}
