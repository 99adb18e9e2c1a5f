package model

import (
	"math"
	"strconv"
	"strings"
)

// VerdictLabel classifies a verified claim
type VerdictLabel string

const (
	LabelTrue              VerdictLabel = "true"
	LabelFalse             VerdictLabel = "false"
	LabelMisleading        VerdictLabel = "misleading"
	LabelNeedsVerification VerdictLabel = "needs_verification"
	LabelLikelyTrue        VerdictLabel = "likely_true"
	LabelLikelyFalse       VerdictLabel = "likely_false"
	LabelUnverified        VerdictLabel = "unverified"
	LabelUnknown           VerdictLabel = "unknown"
)

// labelAliases maps the spellings observed from different backend agents
// onto canonical labels.
var labelAliases = map[string]VerdictLabel{
	"likely_fake":         LabelLikelyFalse,
	"needs_more_evidence": LabelNeedsVerification,
	"fake":                LabelFalse,
	"real":                LabelTrue,
}

// ParseVerdictLabel normalizes a raw label string. Absent or unrecognized
// values collapse to LabelUnknown.
func ParseVerdictLabel(s string) VerdictLabel {
	s = strings.ToLower(strings.TrimSpace(s))
	switch VerdictLabel(s) {
	case LabelTrue, LabelFalse, LabelMisleading, LabelNeedsVerification,
		LabelLikelyTrue, LabelLikelyFalse, LabelUnverified, LabelUnknown:
		return VerdictLabel(s)
	}
	if alias, ok := labelAliases[s]; ok {
		return alias
	}
	return LabelUnknown
}

// Display returns the bilingual presentation string for the label,
// e.g. "FALSE / අසත්‍යයි".
func (l VerdictLabel) Display() string {
	switch l {
	case LabelTrue:
		return "TRUE / සත්‍යයි"
	case LabelFalse:
		return "FALSE / අසත්‍යයි"
	case LabelMisleading:
		return "MISLEADING / නොමඟ යවන සුළුයි"
	case LabelNeedsVerification:
		return "NEEDS VERIFICATION / තහවුරු කළ යුතුයි"
	case LabelLikelyTrue:
		return "LIKELY TRUE / බොහෝ විට සත්‍යයි"
	case LabelLikelyFalse:
		return "LIKELY FALSE / බොහෝ විට අසත්‍යයි"
	case LabelUnverified:
		return "UNVERIFIED / තහවුරු නොවූ"
	default:
		return "UNKNOWN / නොදනී"
	}
}

// EvidenceRelation states how a piece of evidence bears on the claim
type EvidenceRelation string

const (
	RelationSupports EvidenceRelation = "SUPPORTS"
	RelationRefutes  EvidenceRelation = "REFUTES"
	RelationNeutral  EvidenceRelation = "NEUTRAL"
)

// ParseEvidenceRelation normalizes a raw relation string, defaulting to NEUTRAL.
func ParseEvidenceRelation(s string) EvidenceRelation {
	switch EvidenceRelation(strings.ToUpper(strings.TrimSpace(s))) {
	case RelationSupports:
		return RelationSupports
	case RelationRefutes:
		return RelationRefutes
	default:
		return RelationNeutral
	}
}

// Verdict is the canonical classification of a claim
type Verdict struct {
	Label       VerdictLabel `json:"label"`
	Confidence  float64      `json:"confidence"` // Always in [0,1]
	Explanation string       `json:"explanation"`
	AIAssisted  bool         `json:"ai_assisted"` // Whether an LLM contributed to the verdict
}

// ClaimInfo carries the claim as submitted plus normalized variants
type ClaimInfo struct {
	Original          string `json:"original"`
	NormalizedSinhala string `json:"normalized_si,omitempty"`
	NormalizedEnglish string `json:"normalized_en,omitempty"`
}

// EvidenceItem is a retrieved document with a stated relation to the claim
type EvidenceItem struct {
	ID       string           `json:"id"`
	Outlet   string           `json:"outlet"`
	Relation EvidenceRelation `json:"relation"`
	Snippet  string           `json:"snippet,omitempty"`
	URL      string           `json:"url,omitempty"`
}

// Citation is a lightweight reference, the fallback presentation used only
// when no rich evidence items were returned
type Citation struct {
	ID     string `json:"id"`
	Outlet string `json:"outlet"`
	URL    string `json:"url"`
}

// ReasoningStep is one step of the backend's reasoning trace (best-effort,
// optional in responses)
type ReasoningStep struct {
	Step   string `json:"step"`
	Result string `json:"result"`
}

// VerificationResult is the canonical, normalized outcome of one verification.
// Produced once per completed request and immutable after construction.
type VerificationResult struct {
	Verdict   Verdict         `json:"verdict"`
	Claim     ClaimInfo       `json:"claim"`
	Evidence  []EvidenceItem  `json:"evidence"`  // Never nil
	Citations []Citation      `json:"citations"` // Never nil
	Reasoning []ReasoningStep `json:"reasoning,omitempty"`
	FromCache bool            `json:"from_cache"`
}

// ConfidencePercent renders the confidence as a whole percentage, e.g. "87%".
func (r *VerificationResult) ConfidencePercent() string {
	pct := int(math.Round(r.Verdict.Confidence * 100))
	if pct > 100 {
		pct = 100
	}
	return strconv.Itoa(pct) + "%"
}
