package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/warunap/sathya/internal/api"
	"github.com/warunap/sathya/internal/model"
	"github.com/warunap/sathya/internal/result"
)

// BatchVerifier verifies claims without a display surface. Safe for
// concurrent use: there is no shared output, so runs do not supersede each
// other. Same request/normalization path and error taxonomy as Run.
type BatchVerifier struct {
	backend Backend
}

// NewBatchVerifier creates a verifier for batch processing
func NewBatchVerifier(cfg model.Config) *BatchVerifier {
	return &BatchVerifier{backend: api.New(cfg.API)}
}

// NewBatchVerifierWithBackend wires a custom transport, used by tests
func NewBatchVerifierWithBackend(backend Backend) *BatchVerifier {
	return &BatchVerifier{backend: backend}
}

// Run verifies one claim and returns the normalized result
func (v *BatchVerifier) Run(ctx context.Context, claimText string, opts model.RequestOptions) (*model.VerificationResult, error) {
	claimText = trimClaim(claimText)
	if claimText == "" {
		return nil, ErrEmptyInput
	}

	body, err := v.backend.Predict(ctx, model.NewClaimRequest(claimText, opts))
	if err != nil {
		return nil, asNetworkError(err)
	}

	var raw result.Raw
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("%w: %v", ErrMalformedResponse, err)}
	}

	res := result.Normalize(raw)
	return &res, nil
}
