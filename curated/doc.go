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

// Package curated implements a minimal error type that remembers the
// format pattern it was created with, separately from the values used
// to fill it in. This lets callers compare errors by pattern (Is, Has)
// without resorting to string matching, which is useful for the handful
// of host-surfaced errors the CPU core can return (missing program
// memory on reset, in particular).
package curated
