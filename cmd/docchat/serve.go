package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/docchat/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Start an HTTP server that exposes the chat pipeline as a REST endpoint.`,
	RunE:  runServe,
}

var (
	serveConfigPath string
	servePort       int
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(serveConfigPath, false)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	engine, cleanup, err := buildEngine(ctx, cfg, nil)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := server.New(server.Config{Port: cfg.Port}, engine)
	return srv.Start()
}
