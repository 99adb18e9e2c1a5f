package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/warunap/sathya/internal/client"
)

var newsTimeout time.Duration

// newsCmd groups news-related actions
var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "News ingestion actions on the backend",
}

// newsRefreshCmd triggers the backend's news scrape/ingest cycle. This is
// an independent action, not a precondition of verification: check works
// with whatever the backend already has.
var newsRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Ask the backend to ingest the latest news",
	Long: `Refresh triggers the backend's news scraping and indexing cycle so
verdicts draw on current articles. Verification does not require this:
the backend answers from its existing index either way.

Repeated refreshes within a short window are skipped client-side.`,
	RunE: runNewsRefresh,
}

func init() {
	rootCmd.AddCommand(newsCmd)
	newsCmd.AddCommand(newsRefreshCmd)

	newsRefreshCmd.Flags().StringVar(&apiBase, "api", "", "backend base URL (default http://localhost:8000)")
	newsRefreshCmd.Flags().DurationVar(&newsTimeout, "timeout", 2*time.Minute, "refresh timeout (scraping can be slow)")
}

func runNewsRefresh(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), newsTimeout)
	defer cancel()

	cfg := buildConfig()
	cfg.API.Timeout = newsTimeout

	cl := client.New(cfg, cmd.OutOrStdout())
	msg, err := cl.RefreshNews(ctx)
	if err != nil {
		return fmt.Errorf("news refresh: %w", err)
	}

	fmt.Printf("✓ %s\n", msg)
	return nil
}
