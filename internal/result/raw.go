package result

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Raw mirrors the backend's /v1/predict response shape. Every field is
// optional; absent or malformed sections degrade to defaults during
// normalization.
type Raw struct {
	Verdict   RawVerdict   `json:"verdict"`
	Claim     RawClaim     `json:"claim"`
	Evidence  RawEvidence  `json:"evidence"`
	Research  RawResearch  `json:"research_evidence"`
	Reasoning RawReasoning `json:"reasoning"`
	FromCache bool         `json:"from_cache"`
}

// RawVerdict carries the backend verdict with its near-duplicate
// explanation fields.
type RawVerdict struct {
	Label               string        `json:"label"`
	Confidence          *float64      `json:"confidence"`
	ExplanationSinhala  string        `json:"explanation_si"`
	ExplanationEnglish  string        `json:"explanation_en"`
	DetailedExplanation string        `json:"detailed_explanation"`
	LLMPowered          bool          `json:"llm_powered"`
	Citations           []RawCitation `json:"citations"`
}

type RawClaim struct {
	Original          string `json:"original"`
	NormalizedSinhala string `json:"normalized_si"`
	NormalizedEnglish string `json:"normalized_en"`
	ClaimText         string `json:"claim_text"`
}

// RawEvidence is the retrieval summary block; only its citation list is
// consumed here (as a fallback), the counters are diagnostic.
type RawEvidence struct {
	LabeledCount  int           `json:"labeled_count"`
	TopSimilarity float64       `json:"top_similarity"`
	WebCount      int           `json:"web_count"`
	Citations     []RawCitation `json:"citations"`
}

type RawResearch struct {
	Evidence []RawEvidenceItem `json:"evidence"`
}

type RawEvidenceItem struct {
	ID       FlexString `json:"id"`
	Outlet   string     `json:"outlet"`
	Relation string     `json:"relation"`
	Snippet  string     `json:"snippet"`
	URL      string     `json:"url"`
}

type RawCitation struct {
	ID     FlexString `json:"id"`
	Outlet string     `json:"outlet"`
	Source string     `json:"source"` // Older responses use "source" for the outlet
	URL    string     `json:"url"`
}

// RawReasoning accepts both the corrected and the historical misspelled
// key for reasoning steps; neither spelling is authoritative.
type RawReasoning struct {
	Statements []RawStep `json:"statements"`
	Misstated  []RawStep `json:"statments"`
}

type RawStep struct {
	Step   string `json:"step"`
	Result string `json:"result"`
}

// FlexString decodes a JSON string or number into a string. Backend IDs
// have been observed in both forms.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		// Tolerate any other scalar shape rather than failing the whole decode
		*f = ""
		return nil
	}
	if i, err := n.Int64(); err == nil {
		*f = FlexString(strconv.FormatInt(i, 10))
		return nil
	}
	*f = FlexString(n.String())
	return nil
}
