package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/warunap/sathya/internal/client"
	"github.com/warunap/sathya/internal/model"
	"github.com/warunap/sathya/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	requestRate  float64
	requestBurst int
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Verify multiple claims from a file",
	Long: `Batch verifies claims concurrently:
- Read claims from the input file (one per line, # comments skipped)
- Verify them in parallel with a bounded worker pool
- Pace requests so the backend is not flooded
- Write one normalized JSON result per claim

Progress display and typewriter reveal are disabled in batch mode.

Example:
  sathya batch claims.txt
  sathya batch claims.txt --concurrency 8 --rate 5 --output-dir ./verdicts`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&apiBase, "api", "", "backend base URL (default http://localhost:8000)")
	batchCmd.Flags().IntVar(&concurrency, "concurrency", 4, "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./sathya-verdicts", "output directory for results")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 15*time.Minute, "total timeout for the batch")
	batchCmd.Flags().Float64Var(&requestRate, "rate", 2, "requests per second against the backend")
	batchCmd.Flags().IntVar(&requestBurst, "burst", 4, "request burst size")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "backend LLM provider hint")
	batchCmd.Flags().IntVar(&topK, "top-k", 0, "evidence retrieval depth (backend default when 0)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := buildConfig()
	cfg.Concurrency.Workers = concurrency
	cfg.RateLimit.RequestsPerSecond = requestRate
	cfg.RateLimit.Burst = requestBurst

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// No display surface in batch mode: results are written as JSON files
	verifier := client.NewBatchVerifier(cfg)

	opts := model.RequestOptions{
		LLMProvider: llmProvider,
		TopK:        topK,
	}
	runner := worker.NewBatchRunner(verifier, cfg.Concurrency.Workers, cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, opts)

	fmt.Fprintf(os.Stderr, "⚙️  Reading claims from %s...\n", file)
	results, err := runner.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "✓ Verified %d claims with %d workers\n\n", len(results), cfg.Concurrency.Workers)

	successCount := 0
	failureCount := 0

	for i, res := range results {
		if res.Err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", truncateClaim(res.Claim), res.Err)
			continue
		}
		successCount++

		path := filepath.Join(outputDir, fmt.Sprintf("claim-%03d.json", i+1))
		if err := writeResultJSON(res.Result, path); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: write failed: %v\n", truncateClaim(res.Claim), err)
			continue
		}
		fmt.Fprintf(os.Stderr, "✓ %s → %s (%s)\n", truncateClaim(res.Claim), res.Result.Verdict.Label, res.Result.ConfidencePercent())
	}

	fmt.Fprintf(os.Stderr, "\n  Total:    %d claims\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:  %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures: %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:   %s\n", outputDir)

	return nil
}

func truncateClaim(claim string) string {
	runes := []rune(strings.TrimSpace(claim))
	if len(runes) <= 40 {
		return string(runes)
	}
	return string(runes[:40]) + "…"
}
