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

package test

import "github.com/retrogba/arm7tdmi/curated"

// RingWriter is an io.Writer that retains only the most recently written
// size bytes, useful for asserting on the tail of a long log/disasm stream
// without keeping the whole thing in memory.
type RingWriter struct {
	buf   []byte
	pos   int
	full  bool
	limit int
}

// NewRingWriter creates a RingWriter with the given buffer size.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, curated.Errorf("test: ring writer size must be greater than zero")
	}
	return &RingWriter{buf: make([]byte, size), limit: size}, nil
}

// Write implements io.Writer.
func (r *RingWriter) Write(p []byte) (int, error) {
	for _, b := range p {
		r.buf[r.pos] = b
		r.pos++
		if r.pos >= r.limit {
			r.pos = 0
			r.full = true
		}
	}
	return len(p), nil
}

// Reset empties the ring writer.
func (r *RingWriter) Reset() {
	r.pos = 0
	r.full = false
}

// String returns the current contents of the ring buffer, oldest byte
// first.
func (r *RingWriter) String() string {
	if !r.full {
		return string(r.buf[:r.pos])
	}
	out := make([]byte, r.limit)
	n := copy(out, r.buf[r.pos:])
	copy(out[n:], r.buf[:r.pos])
	return string(out)
}
