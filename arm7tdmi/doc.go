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

// Package arm7tdmi implements a cycle-accurate interpreter of the ARMv4T
// instruction set (both the 32 bit ARM and 16 bit THUMB encodings) along
// with the pipeline, banked register file and mode/exception machinery
// of the ARM7TDMI core used in the Game Boy Advance.
//
// The package depends on nothing outside of the CPU/memory boundary: the
// system bus, DMA, timers, video/audio and every other GBA subsystem are
// external collaborators reached only through the SharedMemory interface
// (fetches/loads/stores) and, in the other direction, through exception
// entry and the optional ExceptionHandler callback.
package arm7tdmi
