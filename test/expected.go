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

// Package test collects small assertion helpers shared by every _test.go
// file in this module, so that test failures read consistently across
// packages instead of each package rolling its own reflect.DeepEqual calls.
package test

import (
	"fmt"
	"reflect"
	"testing"
)

// failureValue reports whether v should be treated as a "failed" result for
// ExpectFailure/ExpectSuccess. Accepts bool and error so that callers can
// pass either the condition they're testing or the error it produced.
func failureValue(v interface{}) bool {
	switch o := v.(type) {
	case bool:
		return !o
	case error:
		return o != nil
	case nil:
		return false
	default:
		panic(fmt.Sprintf("test: unsupported type in failure check: %T", v))
	}
}

// ExpectFailure fails the test unless v represents a failure (false, or a
// non-nil error).
func ExpectFailure(t *testing.T, v interface{}) {
	t.Helper()
	if !failureValue(v) {
		t.Errorf("expected failure but got success: %v", v)
	}
}

// ExpectSuccess fails the test unless v represents a success (true, nil
// error, or untyped nil).
func ExpectSuccess(t *testing.T, v interface{}) {
	t.Helper()
	if failureValue(v) {
		t.Errorf("expected success but got failure: %v", v)
	}
}

// ExpectEquality fails the test unless a and b are equal, as judged by
// the == operator on comparable values of the same underlying type, or by
// fmt-formatted string comparison otherwise.
func ExpectEquality(t *testing.T, a, b interface{}) {
	t.Helper()
	if !equal(a, b) {
		t.Errorf("expected equality: %v != %v", a, b)
	}
}

// ExpectInequality fails the test if a and b are equal.
func ExpectInequality(t *testing.T, a, b interface{}) {
	t.Helper()
	if equal(a, b) {
		t.Errorf("expected inequality: %v == %v", a, b)
	}
}

// ExpectApproximate fails the test unless a and b are within tolerance of
// one another.
func ExpectApproximate(t *testing.T, a, b, tolerance float64) {
	t.Helper()
	d := a - b
	if d < 0 {
		d = -d
	}
	if d > tolerance {
		t.Errorf("expected %v to be within %v of %v", a, tolerance, b)
	}
}

func equal(a, b interface{}) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta == tb && (ta == nil || ta.Comparable()) && a == b {
		return true
	}
	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
}

// Equate is an older alias for ExpectEquality, kept because some of this
// module's tests were translated directly from the teacher's earlier test
// style, which used this name.
func Equate(t *testing.T, a, b interface{}) {
	t.Helper()
	ExpectEquality(t, a, b)
}
