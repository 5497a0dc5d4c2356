package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"corpus_dir": "/data/pdfs", "model": "gemini-2.5-pro", "max_chunk_size": 10000}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/pdfs", cfg.CorpusDir)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, 10000, cfg.MaxChunkSize)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"zero config is valid", Config{}, false},
		{"sane values", Config{MaxChunkSize: 50000, ChunkOverlap: 5000, Port: 8080}, false},
		{"negative chunk size", Config{MaxChunkSize: -1}, true},
		{"overlap at window size", Config{MaxChunkSize: 100, ChunkOverlap: 100}, true},
		{"overlap at half window", Config{MaxChunkSize: 100, ChunkOverlap: 50}, true},
		{"overlap below half window", Config{MaxChunkSize: 100, ChunkOverlap: 49}, false},
		{"port out of range", Config{Port: 70000}, true},
		{"negative timeout", Config{RequestTimeoutSecs: -5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Model: "custom-model"}
	merged := cfg.MergeWithDefaults(Config{Model: "default-model", CorpusDir: "/default"})

	assert.Equal(t, "custom-model", merged.Model)
	assert.Equal(t, "/default", merged.CorpusDir)
}

func TestWithFallbacks(t *testing.T) {
	cfg := Config{}
	full := cfg.WithFallbacks()

	assert.Equal(t, DefaultCorpusDir, full.CorpusDir)
	assert.Equal(t, DefaultModel, full.Model)
	assert.Equal(t, DefaultMaxChunkSize, full.MaxChunkSize)
	assert.Equal(t, DefaultPort, full.Port)
	assert.Equal(t, time.Duration(DefaultTimeoutSecs)*time.Second, full.RequestTimeout())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("DOCCHAT_CORPUS_DIR", "/env/corpus")

	cfg := FromEnv()
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "/env/corpus", cfg.CorpusDir)
}
