package render

import (
	"regexp"
	"strings"
)

// ANSI fragments used by the transform
const (
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"

	ansiGreen  = "\x1b[32m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
)

// boldRE matches **emphasized** spans
var boldRE = regexp.MustCompile(`\*\*(.+?)\*\*`)

// glyphStyles wraps status glyphs in a color without altering the glyph
var glyphStyles = []struct {
	glyph string
	color string
	re    *regexp.Regexp
}{
	{glyph: "✓", color: ansiGreen},
	{glyph: "✗", color: ansiRed},
	{glyph: "⚠", color: ansiYellow},
}

func init() {
	for i := range glyphStyles {
		g := &glyphStyles[i]
		// Match the glyph with or without its existing styling so a second
		// pass rewrites instead of re-wrapping.
		g.re = regexp.MustCompile(`(?:` + regexp.QuoteMeta(g.color) + `)?` + regexp.QuoteMeta(g.glyph) + `(?:` + regexp.QuoteMeta(ansiReset) + `)?`)
	}
}

// Transform applies the inline markup-to-presentation rules:
// **X** becomes a bold span, status glyphs gain a color span, newlines pass
// through as line breaks. Idempotent: transforming already-transformed text
// yields the same output.
func Transform(s string) string {
	if s == "" {
		return ""
	}
	s = boldRE.ReplaceAllString(s, ansiBold+"$1"+ansiReset)
	for _, g := range glyphStyles {
		if !strings.Contains(s, g.glyph) {
			continue
		}
		s = g.re.ReplaceAllString(s, g.color+g.glyph+ansiReset)
	}
	return s
}
