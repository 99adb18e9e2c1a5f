package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/warunap/sathya/internal/client"
)

var healthTimeout time.Duration

// healthCmd probes backend liveness
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the fact-checking backend is reachable",
	RunE:  runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)

	healthCmd.Flags().StringVar(&apiBase, "api", "", "backend base URL (default http://localhost:8000)")
	healthCmd.Flags().DurationVar(&healthTimeout, "timeout", 10*time.Second, "probe timeout")
}

func runHealth(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
	defer cancel()

	cfg := buildConfig()
	cfg.API.Timeout = healthTimeout

	cl := client.New(cfg, cmd.OutOrStdout())
	if err := cl.Health(ctx); err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}

	fmt.Printf("✓ Backend reachable at %s\n", cfg.API.BaseURL)
	return nil
}
