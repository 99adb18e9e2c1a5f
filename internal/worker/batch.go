// Package worker runs batch claim verification: many claims from a file,
// a bounded worker pool, and request pacing so the backend is not flooded.
package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/time/rate"

	"github.com/warunap/sathya/internal/model"
)

// Verifier verifies a single claim. Satisfied by the client's Run with the
// rendering surface pointed at a discard writer.
type Verifier interface {
	Run(ctx context.Context, claimText string, opts model.RequestOptions) (*model.VerificationResult, error)
}

// ClaimResult pairs one input claim with its outcome
type ClaimResult struct {
	Claim  string
	Result *model.VerificationResult
	Err    error
}

// BatchRunner verifies claims concurrently against one backend
type BatchRunner struct {
	verifier Verifier
	workers  int
	limiter  *rate.Limiter
	opts     model.RequestOptions
}

// NewBatchRunner creates a runner with the given worker count and request
// rate. The single shared limiter paces all workers against the one
// backend.
func NewBatchRunner(verifier Verifier, workers int, requestsPerSecond float64, burst int, opts model.RequestOptions) *BatchRunner {
	if workers <= 0 {
		workers = 1
	}
	if burst <= 0 {
		burst = 1
	}
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	return &BatchRunner{
		verifier: verifier,
		workers:  workers,
		limiter:  rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
		opts:     opts,
	}
}

// ProcessClaims verifies all claims and returns results in input order
func (b *BatchRunner) ProcessClaims(ctx context.Context, claims []string) []ClaimResult {
	results := make([]ClaimResult, len(claims))
	if len(claims) == 0 {
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < b.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = b.verifyOne(ctx, claims[idx])
			}
		}()
	}

	for i := range claims {
		select {
		case <-ctx.Done():
		case jobs <- i:
			continue
		}
		break
	}
	close(jobs)
	wg.Wait()

	// Claims never dispatched because the context expired
	for i := range results {
		if results[i].Claim == "" && results[i].Result == nil && results[i].Err == nil {
			results[i] = ClaimResult{Claim: claims[i], Err: ctx.Err()}
		}
	}

	return results
}

func (b *BatchRunner) verifyOne(ctx context.Context, claim string) ClaimResult {
	if err := b.limiter.Wait(ctx); err != nil {
		return ClaimResult{Claim: claim, Err: err}
	}
	res, err := b.verifier.Run(ctx, claim, b.opts)
	return ClaimResult{Claim: claim, Result: res, Err: err}
}

// ProcessFile reads claims from a file (one per line) and verifies them
func (b *BatchRunner) ProcessFile(ctx context.Context, path string) ([]ClaimResult, error) {
	claims, err := ReadClaimsFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("read claims: %w", err)
	}
	return b.ProcessClaims(ctx, claims), nil
}

// ReadClaimsFromFile loads claims one per line, skipping blanks, comment
// lines and duplicates.
func ReadClaimsFromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var claims []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			claims = append(claims, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return claims, nil
}
