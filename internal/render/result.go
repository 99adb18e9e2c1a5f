package render

import (
	"fmt"
	"strings"

	"github.com/warunap/sathya/internal/model"
)

// relationGlyph maps an evidence relation to its status glyph. The glyphs
// pick up their color in the markup transform.
func relationGlyph(rel model.EvidenceRelation) string {
	switch rel {
	case model.RelationSupports:
		return "✓"
	case model.RelationRefutes:
		return "✗"
	default:
		return "•"
	}
}

// WriteResult renders a complete verification result to the surface under
// the given generation. The explanation goes through the revealer; the
// structured sections are written directly. Citations appear only when no
// rich evidence items were returned.
func WriteResult(s *Surface, gen int64, res *model.VerificationResult, rev *Revealer) {
	var head strings.Builder
	head.WriteString("\n")
	head.WriteString(Transform(fmt.Sprintf("**Verdict:** %s\n", res.Verdict.Label.Display())))
	head.WriteString(fmt.Sprintf("Confidence: %s\n", res.ConfidencePercent()))
	if res.Verdict.AIAssisted {
		head.WriteString("(AI-assisted verdict)\n")
	}
	if res.FromCache {
		head.WriteString("(cached by backend)\n")
	}
	if claim := res.Claim.NormalizedSinhala; claim != "" && claim != res.Claim.Original {
		head.WriteString(fmt.Sprintf("Claim: %s\n", claim))
	}
	head.WriteString("\n")
	s.Print(gen, head.String())

	if res.Verdict.Explanation != "" {
		rev.Reveal(gen, res.Verdict.Explanation)
		s.Print(gen, "\n")
	}

	if len(res.Evidence) > 0 {
		writeEvidence(s, gen, res.Evidence)
	} else if len(res.Citations) > 0 {
		writeCitations(s, gen, res.Citations)
	}

	if len(res.Reasoning) > 0 {
		writeReasoning(s, gen, res.Reasoning)
	}
}

func writeEvidence(s *Surface, gen int64, items []model.EvidenceItem) {
	var b strings.Builder
	b.WriteString("\nEvidence:\n")
	for _, it := range items {
		b.WriteString(fmt.Sprintf("  %s [%s] %s\n", relationGlyph(it.Relation), it.Relation, it.Outlet))
		if it.Snippet != "" {
			b.WriteString(fmt.Sprintf("      %s\n", it.Snippet))
		}
		if it.URL != "" {
			b.WriteString(fmt.Sprintf("      %s\n", it.URL))
		}
	}
	s.Print(gen, Transform(b.String()))
}

func writeCitations(s *Surface, gen int64, citations []model.Citation) {
	var b strings.Builder
	b.WriteString("\nCitations:\n")
	for _, c := range citations {
		if c.URL != "" {
			b.WriteString(fmt.Sprintf("  - %s (%s)\n", c.Outlet, c.URL))
		} else {
			b.WriteString(fmt.Sprintf("  - %s\n", c.Outlet))
		}
	}
	s.Print(gen, b.String())
}

func writeReasoning(s *Surface, gen int64, steps []model.ReasoningStep) {
	var b strings.Builder
	b.WriteString("\nReasoning:\n")
	for i, st := range steps {
		if st.Result != "" {
			b.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, st.Step, st.Result))
		} else {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, st.Step))
		}
	}
	s.Print(gen, b.String())
}
