// Package result normalizes heterogeneous backend responses into the
// canonical VerificationResult model. Normalize is total: it never fails,
// missing or malformed fields degrade to documented defaults.
package result

import (
	"strings"

	"github.com/warunap/sathya/internal/model"
)

// Normalize maps a decoded backend response onto the canonical result.
// Pure function, no side effects.
func Normalize(raw Raw) model.VerificationResult {
	res := model.VerificationResult{
		Verdict: model.Verdict{
			Label:       model.ParseVerdictLabel(raw.Verdict.Label),
			Confidence:  clamp01(raw.Verdict.Confidence),
			Explanation: firstNonBlank(raw.Verdict.ExplanationSinhala, raw.Verdict.ExplanationEnglish, raw.Verdict.DetailedExplanation),
			AIAssisted:  raw.Verdict.LLMPowered,
		},
		Claim: model.ClaimInfo{
			Original:          firstNonBlank(raw.Claim.Original, raw.Claim.ClaimText),
			NormalizedSinhala: strings.TrimSpace(raw.Claim.NormalizedSinhala),
			NormalizedEnglish: strings.TrimSpace(raw.Claim.NormalizedEnglish),
		},
		Evidence:  normalizeEvidence(raw.Research.Evidence),
		Citations: normalizeCitations(raw),
		Reasoning: normalizeReasoning(raw.Reasoning),
		FromCache: raw.FromCache,
	}
	return res
}

// clamp01 forces confidence into [0,1]; a missing value maps to 0.
func clamp01(v *float64) float64 {
	if v == nil {
		return 0
	}
	switch {
	case *v < 0:
		return 0
	case *v > 1:
		return 1
	}
	return *v
}

func firstNonBlank(candidates ...string) string {
	for _, c := range candidates {
		if s := strings.TrimSpace(c); s != "" {
			return s
		}
	}
	return ""
}

func normalizeEvidence(items []RawEvidenceItem) []model.EvidenceItem {
	out := make([]model.EvidenceItem, 0, len(items))
	for _, it := range items {
		out = append(out, model.EvidenceItem{
			ID:       string(it.ID),
			Outlet:   strings.TrimSpace(it.Outlet),
			Relation: model.ParseEvidenceRelation(it.Relation),
			Snippet:  StripTags(it.Snippet),
			URL:      strings.TrimSpace(it.URL),
		})
	}
	return out
}

// normalizeCitations picks the first non-empty citation list: the verdict's
// own citations win over the retrieval summary's.
func normalizeCitations(raw Raw) []model.Citation {
	src := raw.Verdict.Citations
	if len(src) == 0 {
		src = raw.Evidence.Citations
	}
	out := make([]model.Citation, 0, len(src))
	for _, c := range src {
		out = append(out, model.Citation{
			ID:     string(c.ID),
			Outlet: firstNonBlank(c.Outlet, c.Source),
			URL:    strings.TrimSpace(c.URL),
		})
	}
	return out
}

// normalizeReasoning merges whichever spelling of the steps key the backend
// used. Best-effort: steps with no content are dropped.
func normalizeReasoning(raw RawReasoning) []model.ReasoningStep {
	src := raw.Statements
	if len(src) == 0 {
		src = raw.Misstated
	}
	var out []model.ReasoningStep
	for _, s := range src {
		step := model.ReasoningStep{
			Step:   strings.TrimSpace(s.Step),
			Result: strings.TrimSpace(s.Result),
		}
		if step.Step == "" && step.Result == "" {
			continue
		}
		out = append(out, step)
	}
	return out
}
