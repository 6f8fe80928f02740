package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-scout/internal/chat"
	"github.com/jonathan/talent-scout/internal/config"
	"github.com/jonathan/talent-scout/internal/intent"
	"github.com/jonathan/talent-scout/internal/logger"
	"github.com/jonathan/talent-scout/internal/pipeline"
	"github.com/jonathan/talent-scout/internal/server"
	"github.com/jonathan/talent-scout/internal/simplifier"
)

var (
	serveConfigPath string
	servePort       int
	serveDebug      bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing the chat assistant, the one-shot screening
run and the term simplifier as REST endpoints.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values; provider keys come from the
environment (GEMINI_API_KEY, TAVILY_API_KEY). The server runs without them,
with the affected features degraded to their fallbacks.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Debug-level logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfigFile(serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = serveDebug
	}
	cfg.ApplyEnv()
	cfg = cfg.MergeWithDefaults(config.Config{Port: 8080})
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	client, err := buildLLMClient(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close() //nolint:errcheck

	provider, err := buildProvider(ctx, cfg, log)
	if err != nil {
		return err
	}

	database := buildDatabase(ctx, cfg, log)
	if database != nil {
		defer database.Close()
	}

	pipelineOpts := pipeline.Options{
		Provider:       provider,
		Database:       database,
		EnrichProfiles: cfg.FetchPages,
		UseBrowser:     cfg.UseBrowser,
		Logger:         log,
	}
	runner := pipeline.NewRunner(pipelineOpts)
	assistant := chat.NewAssistant(client, intent.NewAnalyzer(client, log), runner, log)

	srv, err := server.New(server.Config{
		Port:             cfg.Port,
		Assistant:        assistant,
		Simplifier:       simplifier.NewService(client, log),
		Database:         database,
		Pipeline:         pipelineOpts,
		GeminiConfigured: cfg.GeminiAPIKey != "",
		SearchConfigured: searchConfigured(cfg),
		Logger:           log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
