// Package render owns the single output surface of a verification run:
// a one-line status area plus a result area. Writes are gated by a
// run-generation token so a superseded run can never touch the display.
package render

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"
)

// Surface is the shared status/result display. Only the generation that
// currently owns the surface may mutate it; every write from an older
// generation is a silent no-op.
type Surface struct {
	mu        sync.Mutex
	out       io.Writer
	owner     int64
	statusLen int // Rune width of the currently displayed status line
}

// NewSurface wraps an output writer
func NewSurface(out io.Writer) *Surface {
	return &Surface{out: out}
}

// Own transfers surface ownership to gen. Any in-flight writer holding an
// older generation goes stale immediately.
func (s *Surface) Own(gen int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owner = gen
}

// Owned reports whether gen still owns the surface
func (s *Surface) Owned(gen int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.owner == gen
}

// SetStatus replaces the status line. Stale generations are ignored.
func (s *Surface) SetStatus(gen int64, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.owner != gen {
		return
	}
	s.overwriteStatus(msg)
}

// ClearStatus erases the status line
func (s *Surface) ClearStatus(gen int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.owner != gen {
		return
	}
	s.overwriteStatus("")
	s.statusLen = 0
}

// Print writes to the result area, clearing any status line first
func (s *Surface) Print(gen int64, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.owner != gen {
		return
	}
	if s.statusLen > 0 {
		s.overwriteStatus("")
		s.statusLen = 0
	}
	_, _ = io.WriteString(s.out, text)
}

// Printf is Print with formatting
func (s *Surface) Printf(gen int64, format string, args ...interface{}) {
	s.Print(gen, fmt.Sprintf(format, args...))
}

// overwriteStatus rewrites the status line in place with \r padding.
// Callers must hold the lock.
func (s *Surface) overwriteStatus(msg string) {
	width := utf8.RuneCountInString(msg)
	pad := ""
	if s.statusLen > width {
		pad = strings.Repeat(" ", s.statusLen-width)
	}
	if msg == "" {
		_, _ = fmt.Fprintf(s.out, "\r%s\r", pad)
		s.statusLen = 0
		return
	}
	_, _ = fmt.Fprintf(s.out, "\r%s%s", msg, pad)
	s.statusLen = width
}
