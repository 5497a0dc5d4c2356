// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults applied when neither the config file nor flags provide a value.
const (
	DefaultCorpusDir    = "uploads"
	DefaultModel        = "gemini-2.5-flash"
	DefaultMaxChunkSize = 50000
	DefaultChunkOverlap = 5000
	DefaultTimeoutSecs  = 60
	DefaultPort         = 8080
)

// Config represents the application configuration loadable from a JSON
// file. All fields are optional; missing values use defaults or come from
// the environment and CLI flags.
type Config struct {
	// Paths
	CorpusDir  string `json:"corpus_dir,omitempty"`  // Directory of searchable PDF files
	UploadsDir string `json:"uploads_dir,omitempty"` // Directory for resolving document references

	// Model
	APIKey             string `json:"api_key,omitempty"`              // Gemini API key
	Model              string `json:"model,omitempty"`                // Model name
	RequestTimeoutSecs int    `json:"request_timeout_secs,omitempty"` // Per-call model timeout

	// Search
	MaxChunkSize int `json:"max_chunk_size,omitempty"` // Chunk window in characters
	ChunkOverlap int `json:"chunk_overlap,omitempty"`  // Overlap carried between chunks

	// Server
	Port int `json:"port,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print pipeline details
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables. Values are
// used as defaults beneath any config file or flag values.
func FromEnv() Config {
	return Config{
		APIKey:     os.Getenv("GEMINI_API_KEY"),
		CorpusDir:  os.Getenv("DOCCHAT_CORPUS_DIR"),
		UploadsDir: os.Getenv("DOCCHAT_UPLOADS_DIR"),
		Model:      os.Getenv("DOCCHAT_MODEL"),
	}
}

// Validate checks that the configuration has usable values. A missing API
// key is deliberately not an error here: the engine degrades to canned
// replies without credentials.
func (c *Config) Validate() error {
	if c.MaxChunkSize < 0 {
		return fmt.Errorf("config error: 'max_chunk_size' must be non-negative")
	}
	if c.ChunkOverlap < 0 {
		return fmt.Errorf("config error: 'chunk_overlap' must be non-negative")
	}
	// The splitter needs overlap below half the window to guarantee forward
	// progress; reject configs it would otherwise silently rewrite.
	if c.MaxChunkSize > 0 && c.ChunkOverlap >= c.MaxChunkSize/2 {
		return fmt.Errorf("config error: 'chunk_overlap' must be smaller than half of 'max_chunk_size'")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}
	if c.RequestTimeoutSecs < 0 {
		return fmt.Errorf("config error: 'request_timeout_secs' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to layer config file values over environment values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.CorpusDir == "" {
		result.CorpusDir = defaults.CorpusDir
	}
	if result.UploadsDir == "" {
		result.UploadsDir = defaults.UploadsDir
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.MaxChunkSize == 0 {
		result.MaxChunkSize = defaults.MaxChunkSize
	}
	if result.ChunkOverlap == 0 {
		result.ChunkOverlap = defaults.ChunkOverlap
	}
	if result.RequestTimeoutSecs == 0 {
		result.RequestTimeoutSecs = defaults.RequestTimeoutSecs
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	return result
}

// WithFallbacks fills any still-empty field with the package defaults.
func (c *Config) WithFallbacks() Config {
	return c.MergeWithDefaults(Config{
		CorpusDir:          DefaultCorpusDir,
		Model:              DefaultModel,
		MaxChunkSize:       DefaultMaxChunkSize,
		ChunkOverlap:       DefaultChunkOverlap,
		RequestTimeoutSecs: DefaultTimeoutSecs,
		Port:               DefaultPort,
	})
}

// RequestTimeout returns the per-call model timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSecs) * time.Second
}
