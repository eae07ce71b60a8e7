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

package test_test

import (
	"testing"

	"github.com/retrogba/arm7tdmi/test"
)

func TestRingWriter(t *testing.T) {
	r, err := test.NewRingWriter(10)
	test.Equate(t, err, nil)

	test.Equate(t, r.String(), "")

	r.Write([]byte("abcde"))
	test.Equate(t, r.String(), "abcde")

	r.Write([]byte("fgh"))
	test.Equate(t, r.String(), "abcdefgh")

	r.Write([]byte("ij"))
	test.Equate(t, r.String(), "abcdefghij")

	r.Write([]byte("kl"))
	test.Equate(t, r.String(), "cdefghijkl")
	r.Write([]byte("mn"))
	test.Equate(t, r.String(), "efghijklmn")

	r.Write([]byte("1234567890"))
	test.Equate(t, r.String(), "1234567890")

	r.Write([]byte("1234567890ABC"))
	test.Equate(t, r.String(), "4567890ABC")

	r.Reset()
	test.Equate(t, r.String(), "")
	r.Write([]byte("1234567890ABC"))
	test.Equate(t, r.String(), "4567890ABC")
}
