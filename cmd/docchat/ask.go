package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/docchat/internal/config"
	"github.com/jonathan/docchat/internal/corpus"
	"github.com/jonathan/docchat/internal/intent"
	"github.com/jonathan/docchat/internal/observability"
	"github.com/jonathan/docchat/internal/rules"
	"github.com/jonathan/docchat/internal/search"
)

var askCmd = &cobra.Command{
	Use:   "ask [message]",
	Short: "Ask a single question and print the reply",
	Long: `Classifies the message, ranks the PDF corpus by filename relevance, and
searches document text chunk by chunk until an answer is found.

Configuration can be loaded from a JSON file using --config. Environment
variables (GEMINI_API_KEY, DOCCHAT_CORPUS_DIR) fill missing values.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

var (
	askConfigPath string
	askCorpusDir  string
	askVerbose    bool
)

func init() {
	askCmd.Flags().StringVar(&askConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	askCmd.Flags().StringVarP(&askCorpusDir, "corpus", "d", "", "Directory of PDF files to search")
	askCmd.Flags().BoolVarP(&askVerbose, "verbose", "v", false, "Print classification and search details")

	rootCmd.AddCommand(askCmd)
}

func runAsk(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	message := args[0]

	cfg, err := loadConfig(askConfigPath, askVerbose)
	if err != nil {
		return err
	}
	if askCorpusDir != "" {
		cfg.CorpusDir = askCorpusDir
	}

	var onOutcome func(*search.Outcome)
	if askVerbose {
		printer := observability.NewPrinter(os.Stdout)
		onOutcome = printer.PrintOutcome
	}

	engine, cleanup, err := buildEngine(ctx, cfg, onOutcome)
	if err != nil {
		return err
	}
	defer cleanup()

	if askVerbose {
		printPipelineDetails(cfg, message)
	}

	fmt.Println(engine.Process(ctx, message))
	return nil
}

// printPipelineDetails shows the classification and candidate ranking the
// engine will act on, without consuming any model calls.
func printPipelineDetails(cfg config.Config, message string) {
	printer := observability.NewPrinter(os.Stdout)

	label := intent.Classify(message)
	action := rules.NewEngine(cfg.UploadsDir).Apply(label, message)
	printer.PrintClassification(label, action)

	if action.RequiresExternalCall {
		paths := corpus.ListPDFs(cfg.CorpusDir)
		printer.PrintCandidates(corpus.RankCandidates(paths, message))
	}
}
