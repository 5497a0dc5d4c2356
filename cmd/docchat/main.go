// Package main provides the entry point for the document chatbot CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "docchat",
	Short: "Chat with a local PDF corpus",
	Long:  "docchat classifies natural language questions, ranks the local PDF corpus by filename relevance, and searches document text chunk by chunk with the Gemini model until an answer is found.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
