// Package llm condenses over-long verdict explanations before display.
// The summarizer never alters the verdict itself: it is a presentation
// aid, disabled unless explicitly requested.
package llm

import (
	"context"
	"fmt"

	"github.com/warunap/sathya/internal/model"
)

// Provider defines the interface for summarization backends
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize condenses an explanation
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks if the provider is configured and reachable
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest is the input for explanation condensation
type SummarizeRequest struct {
	// Claim is the verified claim, for context
	Claim string

	// Explanation is the full explanation text to condense
	Explanation string

	// Label is the verdict classification; the summary must not contradict it
	Label model.VerdictLabel

	// Model overrides the configured model when set
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse is the condensed output
type SummarizeResponse struct {
	Summary    string
	Model      string
	TokensUsed int
}

// BuildPrompt constructs the condensation prompt. The verdict label is
// pinned so the summary cannot drift from the classification.
func BuildPrompt(req SummarizeRequest) string {
	return fmt.Sprintf(`Condense the following fact-check explanation to at most four sentences.

RULES:
1. The verdict is %q. Do not contradict or soften it.
2. Keep the explanation's language (Sinhala stays Sinhala, English stays English).
3. Preserve any source or outlet names mentioned.
4. Do not add facts that are not in the explanation.

Claim: %s

Explanation:
%s`, string(req.Label), req.Claim, req.Explanation)
}
