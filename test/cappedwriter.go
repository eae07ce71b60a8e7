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

// CappedWriter is an io.Writer that accepts writes only up to a fixed
// total size and silently discards anything beyond it.
type CappedWriter struct {
	buf   []byte
	limit int
}

// NewCappedWriter creates a CappedWriter with the given limit.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, curated.Errorf("test: capped writer size must be greater than zero")
	}
	return &CappedWriter{limit: size}, nil
}

// Write implements io.Writer. Bytes beyond the configured limit are
// dropped without error.
func (c *CappedWriter) Write(p []byte) (int, error) {
	remaining := c.limit - len(c.buf)
	if remaining <= 0 {
		return len(p), nil
	}
	if remaining > len(p) {
		remaining = len(p)
	}
	c.buf = append(c.buf, p[:remaining]...)
	return len(p), nil
}

// Reset empties the capped writer.
func (c *CappedWriter) Reset() {
	c.buf = c.buf[:0]
}

// String returns the content written so far, up to the configured limit.
func (c *CappedWriter) String() string {
	return string(c.buf)
}
