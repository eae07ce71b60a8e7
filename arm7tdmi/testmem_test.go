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

import "encoding/binary"

// testMemory is a flat byte-slice SharedMemory with zero waitstates,
// enough for exercising CPU semantics without a real bus. Modelled on the
// teacher's testMemory in hardware/memory/cartridge/arm/arm_test.go.
type testMemory struct {
	data       []byte
	sp, lr, pc uint32
	stalls     int
}

func newTestMemory(size uint32) *testMemory {
	return &testMemory{data: make([]byte, size)}
}

func (m *testMemory) ResetVectors() (sp, lr, pc uint32) {
	return m.sp, m.lr, m.pc
}

func (m *testMemory) Stall(cycles int) { m.stalls += cycles }

func (m *testMemory) Fetch32(addr uint32, access Access) (uint32, int) {
	return defaultFetch32(m, addr, access)
}

func (m *testMemory) Fetch16(addr uint32, access Access) (uint16, int) {
	return defaultFetch16(m, addr, access)
}

func (m *testMemory) Load32(addr uint32, access Access) (uint32, int) {
	a := addr &^ 0x3
	return binary.LittleEndian.Uint32(m.data[a : a+4]), 0
}

func (m *testMemory) Load16(addr uint32, access Access) (uint16, int) {
	a := addr &^ 0x1
	return binary.LittleEndian.Uint16(m.data[a : a+2]), 0
}

func (m *testMemory) Load8(addr uint32, access Access) (uint8, int) {
	return m.data[addr], 0
}

func (m *testMemory) Store32(addr, val uint32, access Access) int {
	a := addr &^ 0x3
	binary.LittleEndian.PutUint32(m.data[a:a+4], val)
	return 0
}

func (m *testMemory) Store16(addr uint32, val uint16, access Access) int {
	a := addr &^ 0x1
	binary.LittleEndian.PutUint16(m.data[a:a+2], val)
	return 0
}

func (m *testMemory) Store8(addr uint32, val uint8, access Access) int {
	m.data[addr] = val
	return 0
}

// putARM writes a little-endian ARM opcode at addr.
func (m *testMemory) putARM(addr, opcode uint32) {
	binary.LittleEndian.PutUint32(m.data[addr:addr+4], opcode)
}

// putThumb writes a little-endian THUMB opcode at addr.
func (m *testMemory) putThumb(addr uint32, opcode uint16) {
	binary.LittleEndian.PutUint16(m.data[addr:addr+2], opcode)
}

// newTestCPU returns a CPU reset against mem, ready to Step.
func newTestCPU(mem *testMemory) *CPU {
	cpu := NewARM(CPUPreferences{})
	cpu.Reset(mem)
	return cpu
}
