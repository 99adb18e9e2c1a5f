package llm

import (
	"fmt"
	"strings"

	"github.com/warunap/sathya/internal/model"
)

// NewProvider creates a summarization provider from configuration.
// An empty provider name disables summarization (nil, nil).
func NewProvider(cfg model.LLMConfig) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return NewOpenAIProvider(cfg)

	case "ollama":
		return NewOllamaProvider(cfg)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, ollama)", cfg.Provider)
	}
}
