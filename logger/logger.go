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

// Package logger provides a small, dependency-free log used by the CPU
// core for everything that shouldn't panic or return an error but is
// still worth a note: undefined opcodes and coprocessor stub hits.
//
// Log entries are kept in memory (never written to a file by this
// package) so that the core keeps producing and consuming only in-memory
// values; it's up to the host to decide where Write/Tail output goes.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Permission allows a caller-supplied value to veto logging. The zero
// value of most types does not implement this interface, in which case
// logging is always allowed; see Allow.
type Permission interface {
	AllowLogging() bool
}

// Allow is a Permission that always allows logging.
var Allow = allowPermission{}

type allowPermission struct{}

func (allowPermission) AllowLogging() bool { return true }

type entry struct {
	tag    string
	detail string
}

func (e entry) String() string {
	return fmt.Sprintf("%s: %s\n", e.tag, e.detail)
}

// Log is a bounded, in-memory log of tagged entries.
type Log struct {
	mu      sync.Mutex
	entries []entry
	cap     int
}

// NewLogger creates a Log that retains at most capacity entries, discarding
// the oldest entry once capacity is exceeded. A capacity of zero retains
// nothing at all.
func NewLogger(capacity int) *Log {
	if capacity < 0 {
		capacity = 0
	}
	return &Log{cap: capacity}
}

func formatDetail(detail interface{}) string {
	switch d := detail.(type) {
	case error:
		return d.Error()
	case fmt.Stringer:
		return d.String()
	case string:
		return d
	default:
		return fmt.Sprintf("%v", d)
	}
}

// Log records a new entry under tag, subject to permission.AllowLogging().
// A nil permission is treated the same as Allow.
func (l *Log) Log(permission Permission, tag string, detail interface{}) {
	if permission != nil && !permission.AllowLogging() {
		return
	}

	if l.cap == 0 {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, entry{tag: tag, detail: formatDetail(detail)})
	if len(l.entries) > l.cap {
		l.entries = l.entries[len(l.entries)-l.cap:]
	}
}

// Logf is like Log but formats detail with fmt.Sprintf first.
func (l *Log) Logf(permission Permission, tag string, format string, args ...interface{}) {
	l.Log(permission, tag, fmt.Sprintf(format, args...))
}

// Write writes every retained entry, oldest first, to w.
func (l *Log) Write(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := strings.Builder{}
	for _, e := range l.entries {
		s.WriteString(e.String())
	}
	io.WriteString(w, s.String())
}

// Tail writes the most recent n entries (or fewer, if there aren't n) to w.
func (l *Log) Tail(w io.Writer, n int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n > len(l.entries) {
		n = len(l.entries)
	}

	s := strings.Builder{}
	for _, e := range l.entries[len(l.entries)-n:] {
		s.WriteString(e.String())
	}
	io.WriteString(w, s.String())
}

// Clear empties the log.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

// Discard is a Log that never retains anything; used as the default when a
// collaborator is constructed without an explicit logger.
var Discard = NewLogger(0)
