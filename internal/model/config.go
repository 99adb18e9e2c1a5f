package model

import "time"

// Config is the full client configuration.
// Hierarchy: CLI flags > SATHYA_* env vars > ~/.sathya/config.yaml > defaults.
type Config struct {
	API         APIConfig         `yaml:"api" mapstructure:"api"`
	Progress    ProgressConfig    `yaml:"progress" mapstructure:"progress"`
	Reveal      RevealConfig      `yaml:"reveal" mapstructure:"reveal"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit" mapstructure:"rate_limit"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// APIConfig configures the backend HTTP transport
type APIConfig struct {
	BaseURL      string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls" mapstructure:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy" mapstructure:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy" mapstructure:"no_proxy"`
}

// ProgressConfig drives the staged status indicator
type ProgressConfig struct {
	Interval time.Duration `yaml:"interval" mapstructure:"interval"` // Delay between status messages
	Linger   time.Duration `yaml:"linger" mapstructure:"linger"`     // How long the terminal message stays visible
}

// RevealConfig drives the typewriter explanation reveal
type RevealConfig struct {
	Enabled    bool          `yaml:"enabled" mapstructure:"enabled"`
	ChunkRunes int           `yaml:"chunk_runes" mapstructure:"chunk_runes"`
	Interval   time.Duration `yaml:"interval" mapstructure:"interval"`
	MinRunes   int           `yaml:"min_runes" mapstructure:"min_runes"` // Below this, skip incremental reveal
}

// CacheConfig guards repeated health probes and news-refresh triggers.
// Verification results themselves are never cached.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	NewsTTL   time.Duration `yaml:"news_ttl" mapstructure:"news_ttl"`
	HealthTTL time.Duration `yaml:"health_ttl" mapstructure:"health_ttl"`
}

// ConcurrencyConfig configures batch verification workers
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// RateLimitConfig paces batch requests against the backend
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// LLMConfig configures the optional explanation summarizer
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"` // openai, ollama, "" (disabled)
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"-" mapstructure:"api_key"` // Never written to config files
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// OutputConfig controls presentation
type OutputConfig struct {
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
	Plain   bool   `yaml:"plain" mapstructure:"plain"` // Disable typewriter reveal
	JSON    string `yaml:"json" mapstructure:"json"`   // Optional path for the normalized result
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:      "http://localhost:8000",
			Timeout:      90 * time.Second,
			UserAgent:    "Sathya/0.1 (+https://github.com/warunap/sathya)",
			MaxBodyBytes: 2_000_000,
		},
		Progress: ProgressConfig{
			Interval: 900 * time.Millisecond,
			Linger:   400 * time.Millisecond,
		},
		Reveal: RevealConfig{
			Enabled:    true,
			ChunkRunes: 3,
			Interval:   15 * time.Millisecond,
			MinRunes:   50,
		},
		Cache: CacheConfig{
			Enabled:   true,
			NewsTTL:   5 * time.Minute,
			HealthTTL: 30 * time.Second,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 2,
			Burst:             4,
		},
		LLM: LLMConfig{
			Timeout:   30,
			MaxTokens: 500,
		},
	}
}
