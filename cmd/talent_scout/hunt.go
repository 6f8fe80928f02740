package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/talent-scout/internal/config"
	"github.com/jonathan/talent-scout/internal/logger"
	"github.com/jonathan/talent-scout/internal/observability"
	"github.com/jonathan/talent-scout/internal/pipeline"
)

var (
	huntConfigPath string
	huntDebug      bool
)

var huntCmd = &cobra.Command{
	Use:   "hunt [request]",
	Short: "Run a one-shot MERN + AI developer screening",
	Long: `Run the standalone screening flow: one tuned search for MERN stack
developers with AI experience, risk scoring of the strongest results and a
printed shortlist of the top five. The optional request is displayed with
the run; the screening flow always uses its tuned query.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHunt,
}

func init() {
	huntCmd.Flags().StringVar(&huntConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	huntCmd.Flags().BoolVar(&huntDebug, "debug", false, "Debug-level logging")
	rootCmd.AddCommand(huntCmd)
}

func runHunt(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfigFile(huntConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = huntDebug
	}
	cfg.ApplyEnv()
	cfg = cfg.MergeWithDefaults(config.Config{})
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := zap.NewNop()
	if cfg.Debug {
		log, err = logger.New(cfg.JSONLogs, true)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
	}

	provider, err := buildProvider(ctx, cfg, log)
	if err != nil {
		return err
	}

	database := buildDatabase(ctx, cfg, log)
	if database != nil {
		defer database.Close()
	}

	request := "Find MERN stack developers with AI experience"
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		request = strings.TrimSpace(args[0])
	}

	fmt.Println("🚀 MERN + AI DEVELOPER SEARCH SYSTEM INITIATED")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("📝 User Request: %s\n", request)
	fmt.Println(strings.Repeat("=", 70))

	runner := pipeline.NewRunner(pipeline.Options{
		Provider: provider,
		Database: database,
		Logger:   log,
	})

	report, err := runner.HuntMERNAI(ctx)
	if err != nil {
		fmt.Printf("\n❌ SYSTEM ERROR: %v\n", err)
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	fmt.Println()
	printer.PrintHuntShortlist(report.Candidates)

	fmt.Println("\n" + strings.Repeat("=", 70))
	fmt.Println("🎉 SEARCH MISSION ACCOMPLISHED!")
	fmt.Println(strings.Repeat("=", 70))
	printer.PrintRunSummary(report.Candidates)

	return nil
}
