package render

import (
	"strings"
	"testing"
)

func TestTransform_Bold(t *testing.T) {
	got := Transform("the claim is **false** overall")
	want := "the claim is " + ansiBold + "false" + ansiReset + " overall"
	if got != want {
		t.Errorf("Transform bold = %q, want %q", got, want)
	}
}

func TestTransform_MultipleBoldSpans(t *testing.T) {
	got := Transform("**a** and **b**")
	if strings.Contains(got, "**") {
		t.Errorf("Unconverted markers remain: %q", got)
	}
	if strings.Count(got, ansiBold) != 2 {
		t.Errorf("Expected 2 bold spans, got %q", got)
	}
}

func TestTransform_Glyphs(t *testing.T) {
	got := Transform("✓ supported, ✗ refuted, ⚠ caution")
	for _, want := range []string{
		ansiGreen + "✓" + ansiReset,
		ansiRed + "✗" + ansiReset,
		ansiYellow + "⚠" + ansiReset,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Transform output %q missing styled glyph %q", got, want)
		}
	}
}

func TestTransform_NewlinesPassThrough(t *testing.T) {
	got := Transform("line one\nline two")
	if got != "line one\nline two" {
		t.Errorf("Newlines altered: %q", got)
	}
}

func TestTransform_Idempotent(t *testing.T) {
	inputs := []string{
		"plain text",
		"**bold** text",
		"✓ and ✗ and ⚠",
		"**bold with ✓ glyph**",
		"සිංහල පෙළ **අසත්‍ය** බව ✗",
		"",
	}

	for _, in := range inputs {
		once := Transform(in)
		twice := Transform(once)
		if once != twice {
			t.Errorf("Transform not idempotent for %q:\n once: %q\ntwice: %q", in, once, twice)
		}
	}
}

func TestTransform_GlyphUnaltered(t *testing.T) {
	got := Transform("✓")
	stripped := strings.ReplaceAll(strings.ReplaceAll(got, ansiGreen, ""), ansiReset, "")
	if stripped != "✓" {
		t.Errorf("Glyph altered by styling: %q", got)
	}
}
