package worker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/warunap/sathya/internal/model"
)

// stubVerifier returns scripted results per claim
type stubVerifier struct {
	calls atomic.Int32
	run   func(claim string) (*model.VerificationResult, error)
}

func (s *stubVerifier) Run(ctx context.Context, claimText string, opts model.RequestOptions) (*model.VerificationResult, error) {
	s.calls.Add(1)
	return s.run(claimText)
}

func okResult(label model.VerdictLabel) *model.VerificationResult {
	return &model.VerificationResult{
		Verdict:   model.Verdict{Label: label, Confidence: 0.8},
		Evidence:  []model.EvidenceItem{},
		Citations: []model.Citation{},
	}
}

func TestProcessClaims_AllVerified(t *testing.T) {
	verifier := &stubVerifier{run: func(claim string) (*model.VerificationResult, error) {
		return okResult(model.LabelTrue), nil
	}}

	claims := []string{"claim one", "claim two", "claim three"}
	runner := NewBatchRunner(verifier, 2, 1000, 10, model.RequestOptions{})
	results := runner.ProcessClaims(context.Background(), claims)

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	for i, res := range results {
		if res.Claim != claims[i] {
			t.Errorf("Result %d claim = %q, want %q (input order preserved)", i, res.Claim, claims[i])
		}
		if res.Err != nil {
			t.Errorf("Result %d unexpected error: %v", i, res.Err)
		}
		if res.Result == nil {
			t.Errorf("Result %d missing verdict", i)
		}
	}
	if calls := verifier.calls.Load(); calls != 3 {
		t.Errorf("Verifier called %d times, want 3", calls)
	}
}

func TestProcessClaims_MixedFailures(t *testing.T) {
	verifier := &stubVerifier{run: func(claim string) (*model.VerificationResult, error) {
		if claim == "bad" {
			return nil, errors.New("backend error")
		}
		return okResult(model.LabelFalse), nil
	}}

	runner := NewBatchRunner(verifier, 4, 1000, 10, model.RequestOptions{})
	results := runner.ProcessClaims(context.Background(), []string{"good", "bad", "good"})

	if results[0].Err != nil || results[2].Err != nil {
		t.Error("Good claims should succeed")
	}
	if results[1].Err == nil {
		t.Error("Bad claim should carry its error")
	}
}

func TestProcessClaims_Empty(t *testing.T) {
	verifier := &stubVerifier{run: func(claim string) (*model.VerificationResult, error) {
		return okResult(model.LabelTrue), nil
	}}

	runner := NewBatchRunner(verifier, 2, 1000, 10, model.RequestOptions{})
	results := runner.ProcessClaims(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

func TestReadClaimsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claims.txt")
	content := `# comment line
first claim

second claim
first claim
  third claim
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	claims, err := ReadClaimsFromFile(path)
	if err != nil {
		t.Fatalf("ReadClaimsFromFile failed: %v", err)
	}

	want := []string{"first claim", "second claim", "third claim"}
	if len(claims) != len(want) {
		t.Fatalf("Got %d claims, want %d: %v", len(claims), len(want), claims)
	}
	for i := range want {
		if claims[i] != want[i] {
			t.Errorf("Claim %d = %q, want %q", i, claims[i], want[i])
		}
	}
}

func TestReadClaimsFromFile_Missing(t *testing.T) {
	if _, err := ReadClaimsFromFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestProcessFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claims.txt")
	var content string
	for i := 0; i < 10; i++ {
		content += fmt.Sprintf("claim number %d\n", i)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	verifier := &stubVerifier{run: func(claim string) (*model.VerificationResult, error) {
		return okResult(model.LabelNeedsVerification), nil
	}}
	runner := NewBatchRunner(verifier, 3, 1000, 10, model.RequestOptions{})

	results, err := runner.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}
	if len(results) != 10 {
		t.Errorf("Expected 10 results, got %d", len(results))
	}
}
