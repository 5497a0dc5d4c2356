package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/docchat/internal/chatbot"
	"github.com/jonathan/docchat/internal/chunking"
	"github.com/jonathan/docchat/internal/config"
	"github.com/jonathan/docchat/internal/llm"
	"github.com/jonathan/docchat/internal/pdf"
	"github.com/jonathan/docchat/internal/search"
)

// loadConfig layers configuration sources: file values override environment
// values, and package defaults fill whatever remains.
func loadConfig(configPath string, verbose bool) (config.Config, error) {
	cfg := config.FromEnv()

	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = loaded.MergeWithDefaults(cfg)
		if verbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", configPath)
		}
	}

	full := cfg.WithFallbacks()
	if err := full.Validate(); err != nil {
		return config.Config{}, err
	}
	return full, nil
}

// buildEngine wires the full pipeline. When no API key is configured the
// engine is created without a document service and answers with a fixed
// notice instead of calling the model. onOutcome may be nil; when set it
// receives every corpus search outcome for verbose output. The returned
// cleanup function closes the model client, if any.
func buildEngine(ctx context.Context, cfg config.Config, onOutcome func(*search.Outcome)) (*chatbot.Engine, func(), error) {
	var service chatbot.DocumentService
	cleanup := func() {}

	if cfg.APIKey != "" {
		client, err := llm.NewGeminiClient(ctx, llm.Config{
			Model:   cfg.Model,
			Timeout: cfg.RequestTimeout(),
		}, cfg.APIKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create model client: %w", err)
		}
		cleanup = func() { _ = client.Close() }

		splitter := chunking.NewSplitter(cfg.MaxChunkSize, cfg.ChunkOverlap)
		service = search.NewSearcher(client, pdf.NewExtractor(), splitter)
	}

	engine := chatbot.NewEngine(chatbot.Options{
		CorpusDir:  cfg.CorpusDir,
		UploadsDir: cfg.UploadsDir,
		Service:    service,
		OnOutcome:  onOutcome,
	})
	return engine, cleanup, nil
}
