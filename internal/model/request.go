package model

// ClaimRequest is the body sent to POST /v1/predict.
// The request is immutable once dispatched; Text must be trimmed and non-empty.
type ClaimRequest struct {
	Text        string `json:"text"`                    // The claim to verify
	LLMProvider string `json:"llm_provider,omitempty"`  // Backend LLM provider hint
	UseVectorDB *bool  `json:"use_vector_db,omitempty"` // Toggle vector retrieval (backend default when nil)
	TopK        int    `json:"top_k,omitempty"`         // Evidence retrieval depth
}

// RequestOptions carries the optional backend flags a caller may set on a run.
type RequestOptions struct {
	LLMProvider string
	UseVectorDB *bool
	TopK        int
}

// NewClaimRequest builds the wire request for a claim with the given options.
func NewClaimRequest(text string, opts RequestOptions) ClaimRequest {
	return ClaimRequest{
		Text:        text,
		LLMProvider: opts.LLMProvider,
		UseVectorDB: opts.UseVectorDB,
		TopK:        opts.TopK,
	}
}
