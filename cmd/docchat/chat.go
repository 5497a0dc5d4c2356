package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jonathan/docchat/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long:  `Opens a terminal chat interface. Each message runs through the same pipeline as the ask command.`,
	RunE:  runChat,
}

var (
	chatConfigPath string
	chatCorpusDir  string
)

func init() {
	chatCmd.Flags().StringVar(&chatConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	chatCmd.Flags().StringVarP(&chatCorpusDir, "corpus", "d", "", "Directory of PDF files to search")

	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(chatConfigPath, false)
	if err != nil {
		return err
	}
	if chatCorpusDir != "" {
		cfg.CorpusDir = chatCorpusDir
	}

	engine, cleanup, err := buildEngine(ctx, cfg, nil)
	if err != nil {
		return err
	}
	defer cleanup()

	program := tea.NewProgram(tui.New(engine), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("chat session failed: %w", err)
	}
	return nil
}
