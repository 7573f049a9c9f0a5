package model

import "time"

// Config holds the complete veridoc configuration
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Policy    PolicyConfig    `yaml:"policy"`
	Server    ServerConfig    `yaml:"server"`
	Batch     BatchConfig     `yaml:"batch"`
	LLM       LLMConfig       `yaml:"llm"`
	Output    OutputConfig    `yaml:"output"`
}

// HTTPConfig controls outbound HTTP behavior
type HTTPConfig struct {
	DocTimeout    time.Duration `yaml:"doc_timeout"`    // fetching the source document
	LinkTimeout   time.Duration `yaml:"link_timeout"`   // each linked-page fetch
	UserAgent     string        `yaml:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes"`
	RespectRobots bool          `yaml:"respect_robots"` // consult robots.txt before linked-page fetches
	HTTPProxy     string        `yaml:"http_proxy"`
	HTTPSProxy    string        `yaml:"https_proxy"`
	NoProxy       string        `yaml:"no_proxy"`
}

// RateLimitConfig controls per-domain politeness for linked-page fetches
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// PolicyConfig extends the built-in source policy tables
type PolicyConfig struct {
	ExtraBlockedDomains []string `yaml:"extra_blocked_domains"`
}

// ServerConfig controls the HTTP transport
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// BatchConfig controls concurrent batch verification
type BatchConfig struct {
	Workers int `yaml:"workers"`
}

// LLMConfig controls the optional critique summarizer
type LLMConfig struct {
	Provider  string `yaml:"provider"` // "openai", "ollama", or "" (disabled)
	Model     string `yaml:"model"`
	APIKey    string `yaml:"-"` // from environment only, never persisted
	BaseURL   string `yaml:"base_url"`
	Timeout   int    `yaml:"timeout_seconds"`
	MaxTokens int    `yaml:"max_tokens"`
}

// OutputConfig controls CLI output
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			DocTimeout:   20 * time.Second,
			LinkTimeout:  20 * time.Second,
			UserAgent:    "Veridoc/0.1 (+https://github.com/ppiankov/veridoc)",
			MaxBodyBytes: 2_000_000,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 4,
			Burst:             4,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Batch: BatchConfig{
			Workers: 4,
		},
		LLM: LLMConfig{
			Timeout:   30,
			MaxTokens: 600,
		},
	}
}
