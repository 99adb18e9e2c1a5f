package client

import (
	"errors"
	"fmt"
)

// ErrEmptyInput rejects a blank claim before any network activity
var ErrEmptyInput = errors.New("claim text is empty")

// ErrSuperseded marks a run whose result arrived after a newer run took
// over the display. The late result is discarded, nothing is rendered.
var ErrSuperseded = errors.New("verification superseded by a newer run")

// ErrMalformedResponse marks a response body that was not parseable JSON.
// It is carried inside a NetworkError: errors.Is(err, ErrMalformedResponse)
// and errors.As(err, **NetworkError) both hold.
var ErrMalformedResponse = errors.New("malformed response body")

// NetworkError is the terminal failure for a run: transport failure or a
// non-2xx backend status. No partial result accompanies it.
type NetworkError struct {
	Status int // HTTP status when available, 0 otherwise
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("verification request failed (status %d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("verification request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
