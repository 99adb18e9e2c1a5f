// Package client orchestrates one verification surface: input validation,
// progress reporting, the backend request, normalization and rendering.
// One Client per independent surface; a new Run supersedes any run still
// in flight on the same Client.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/warunap/sathya/internal/api"
	"github.com/warunap/sathya/internal/cache"
	"github.com/warunap/sathya/internal/model"
	"github.com/warunap/sathya/internal/progress"
	"github.com/warunap/sathya/internal/render"
	"github.com/warunap/sathya/internal/result"
)

// Backend is the transport the client drives. Satisfied by *api.Client.
type Backend interface {
	Predict(ctx context.Context, req model.ClaimRequest) ([]byte, error)
	RefreshNews(ctx context.Context) (string, error)
	Health(ctx context.Context) error
}

// Client runs claim verifications against one backend and renders onto one
// output surface. The run-generation counter is the ownership token: only
// the most recent run may write.
type Client struct {
	backend Backend
	surface *render.Surface
	cfg     model.Config
	cache   cache.Cache
	gen     atomic.Int64
	logW    io.Writer // Verbose diagnostics
}

// New creates a Client rendering to out
func New(cfg model.Config, out io.Writer) *Client {
	c := &Client{
		backend: api.New(cfg.API),
		surface: render.NewSurface(out),
		cfg:     cfg,
		logW:    os.Stderr,
	}
	if cfg.Cache.Enabled {
		c.cache = cache.NewMemoryCache(time.Minute, 5*time.Minute)
	}
	return c
}

// NewWithBackend wires a custom transport, used by tests and the batch runner
func NewWithBackend(cfg model.Config, backend Backend, out io.Writer) *Client {
	c := New(cfg, out)
	c.backend = backend
	return c
}

// Run verifies one claim. It validates input, starts the progress
// reporter, issues exactly one predict request, normalizes the response
// and renders it. A Run started while another is in flight supersedes it:
// the older run's pending output is suppressed and its eventual response
// returns ErrSuperseded without rendering.
func (c *Client) Run(ctx context.Context, claimText string, opts model.RequestOptions) (*model.VerificationResult, error) {
	claimText = trimClaim(claimText)
	if claimText == "" {
		return nil, ErrEmptyInput
	}

	gen := c.gen.Add(1)
	c.surface.Own(gen)

	reporter := progress.NewReporter(c.surface, gen, c.cfg.Progress.Interval, c.cfg.Progress.Linger)
	if err := reporter.Start(); err != nil {
		return nil, err
	}

	body, err := c.backend.Predict(ctx, model.NewClaimRequest(claimText, opts))
	if c.gen.Load() != gen {
		// A newer run owns the surface; discard whatever arrived without
		// touching the display.
		reporter.Abandon()
		return nil, ErrSuperseded
	}
	if err != nil {
		netErr := asNetworkError(err)
		reporter.Fail(netErr.Error())
		return nil, netErr
	}

	var raw result.Raw
	if err := json.Unmarshal(body, &raw); err != nil {
		netErr := &NetworkError{Err: fmt.Errorf("%w: %v", ErrMalformedResponse, err)}
		reporter.Fail(netErr.Error())
		return nil, netErr
	}

	res := result.Normalize(raw)
	reporter.Done()

	if c.gen.Load() != gen {
		return nil, ErrSuperseded
	}

	revealer := c.newRevealer()
	render.WriteResult(c.surface, gen, &res, revealer)

	return &res, nil
}

// RefreshNews triggers the backend's news ingestion pre-step. The trigger
// is throttled through the cache so repeated invocations within the TTL
// are skipped. Failures are the caller's to swallow: prediction proceeds
// without this step.
func (c *Client) RefreshNews(ctx context.Context) (string, error) {
	const key = "news:refresh"
	if c.cache != nil {
		if msg, ok := c.cache.Get(key); ok {
			return string(msg) + " (recently refreshed, skipped)", nil
		}
	}

	msg, err := c.backend.RefreshNews(ctx)
	if err != nil {
		return "", err
	}
	if c.cache != nil {
		_ = c.cache.Set(key, []byte(msg), c.cfg.Cache.NewsTTL)
	}
	return msg, nil
}

// Health probes backend liveness, memoized briefly through the cache
func (c *Client) Health(ctx context.Context) error {
	const key = "health:ok"
	if c.cache != nil {
		if _, ok := c.cache.Get(key); ok {
			return nil
		}
	}

	if err := c.backend.Health(ctx); err != nil {
		return asNetworkError(err)
	}
	if c.cache != nil {
		_ = c.cache.Set(key, []byte("ok"), c.cfg.Cache.HealthTTL)
	}
	return nil
}

// Verbose logs a diagnostic line when verbose output is enabled
func (c *Client) Verbose(format string, args ...interface{}) {
	if c.cfg.Output.Verbose {
		fmt.Fprintf(c.logW, format+"\n", args...)
	}
}

func (c *Client) newRevealer() *render.Revealer {
	rc := c.cfg.Reveal
	if !rc.Enabled || c.cfg.Output.Plain {
		// Zero interval with the full-display threshold disabled still
		// reveals in order, just without delays; simplest is a huge
		// threshold so the text prints in one step.
		return render.NewRevealer(c.surface, rc.ChunkRunes, 0, 1<<30)
	}
	return render.NewRevealer(c.surface, rc.ChunkRunes, rc.Interval, rc.MinRunes)
}

func trimClaim(s string) string {
	return strings.TrimSpace(s)
}

// asNetworkError wraps a transport error, extracting the HTTP status when
// the backend answered with a non-2xx code.
func asNetworkError(err error) *NetworkError {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		return &NetworkError{Status: statusErr.StatusCode, Err: err}
	}
	return &NetworkError{Err: err}
}
