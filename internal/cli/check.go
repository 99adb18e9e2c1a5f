package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/warunap/sathya/internal/client"
	"github.com/warunap/sathya/internal/llm"
	"github.com/warunap/sathya/internal/model"
)

var (
	apiBase      string
	checkTimeout time.Duration
	llmProvider  string
	topK         int
	noVectorDB   bool
	refreshFirst bool
	plainOutput  bool
	chunkRunes   int
	interval     time.Duration
	jsonPath     string
	summarize    bool
	sumProvider  string
	sumModel     string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <claim>",
	Short: "Verify a claim against the fact-checking backend",
	Long: `Check submits a claim for verification and renders the verdict:
- Classification (true/false/misleading/needs verification) with confidence
- A long-form explanation, revealed incrementally
- Supporting and refuting evidence with outlets and links

Example:
  sathya check "මේක සැබවක්ද?"
  sathya check "The earth is flat" --top-k 10 --llm-provider openai
  sathya check "..." --plain --json verdict.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	// Backend flags
	checkCmd.Flags().StringVar(&apiBase, "api", "", "backend base URL (default http://localhost:8000)")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 90*time.Second, "overall verification timeout")
	checkCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "backend LLM provider hint")
	checkCmd.Flags().IntVar(&topK, "top-k", 0, "evidence retrieval depth (backend default when 0)")
	checkCmd.Flags().BoolVar(&noVectorDB, "no-vector-db", false, "disable vector retrieval on the backend")
	checkCmd.Flags().BoolVar(&refreshFirst, "refresh-news", false, "trigger a news refresh before verifying (failures ignored)")

	// Presentation flags
	checkCmd.Flags().BoolVar(&plainOutput, "plain", false, "print the explanation at once, no typewriter reveal")
	checkCmd.Flags().IntVar(&chunkRunes, "chunk", 3, "characters revealed per step")
	checkCmd.Flags().DurationVar(&interval, "interval", 15*time.Millisecond, "delay between reveal steps")
	checkCmd.Flags().StringVar(&jsonPath, "json", "", "write the normalized result to this path")

	// Summarizer flags
	checkCmd.Flags().BoolVar(&summarize, "summarize", false, "condense very long explanations with an LLM before display")
	checkCmd.Flags().StringVar(&sumProvider, "summarize-provider", "openai", "summarizer provider (openai, ollama)")
	checkCmd.Flags().StringVar(&sumModel, "summarize-model", "", "summarizer model name")
}

func runCheck(cmd *cobra.Command, args []string) error {
	claim := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	cfg := buildConfig()
	cfg.API.Timeout = checkTimeout
	cfg.Output.Plain = plainOutput
	cfg.Reveal.ChunkRunes = chunkRunes
	cfg.Reveal.Interval = interval

	cl := client.New(cfg, os.Stdout)

	if refreshFirst {
		// Pre-step is best-effort: verification proceeds either way
		if msg, err := cl.RefreshNews(ctx); err != nil {
			cl.Verbose("news refresh failed (continuing): %v", err)
		} else {
			cl.Verbose("news refresh: %s", msg)
		}
	}

	opts := model.RequestOptions{
		LLMProvider: llmProvider,
		TopK:        topK,
	}
	if noVectorDB {
		useVectorDB := false
		opts.UseVectorDB = &useVectorDB
	}

	res, err := cl.Run(ctx, claim, opts)
	if err != nil {
		return err
	}

	if summarize {
		condenseExplanation(ctx, cfg, res)
	}

	if jsonPath == "" {
		jsonPath = cfg.Output.JSON
	}
	if jsonPath != "" {
		if err := writeResultJSON(res, jsonPath); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
		cl.Verbose("wrote %s", jsonPath)
	}

	return nil
}

// condenseExplanation asks the configured summarizer for a shorter
// explanation and prints it below the full one. Failures only log: the
// verdict has already been rendered.
func condenseExplanation(ctx context.Context, cfg model.Config, res *model.VerificationResult) {
	const condenseThreshold = 600 // runes; shorter explanations stay as-is

	if len([]rune(res.Verdict.Explanation)) < condenseThreshold {
		return
	}

	llmCfg := cfg.LLM
	llmCfg.Provider = sumProvider
	if sumModel != "" {
		llmCfg.Model = sumModel
	}
	switch sumProvider {
	case "openai":
		llmCfg.APIKey = os.Getenv("OPENAI_API_KEY")
	case "ollama":
		if base := os.Getenv("OLLAMA_BASE_URL"); base != "" {
			llmCfg.BaseURL = base
		}
	}

	provider, err := llm.NewProvider(llmCfg)
	if err != nil || provider == nil {
		fmt.Fprintf(os.Stderr, "summarizer unavailable: %v\n", err)
		return
	}

	resp, err := provider.Summarize(ctx, llm.SummarizeRequest{
		Claim:       res.Claim.Original,
		Explanation: res.Verdict.Explanation,
		Label:       res.Verdict.Label,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "summarize failed: %v\n", err)
		return
	}

	fmt.Printf("\nIn short:\n%s\n", resp.Summary)
}

func writeResultJSON(res *model.VerificationResult, path string) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// buildConfig merges viper-loaded settings over the defaults and applies
// shared CLI flags.
func buildConfig() model.Config {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid configuration, using defaults: %v\n", err)
		cfg = model.DefaultConfig()
	}
	if apiBase != "" {
		cfg.API.BaseURL = apiBase
	}
	cfg.Output.Verbose = verbose
	return cfg
}
