package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/talent-scout/internal/chat"
	"github.com/jonathan/talent-scout/internal/config"
	"github.com/jonathan/talent-scout/internal/intent"
	"github.com/jonathan/talent-scout/internal/logger"
	"github.com/jonathan/talent-scout/internal/observability"
	"github.com/jonathan/talent-scout/internal/pipeline"
	"github.com/jonathan/talent-scout/internal/types"
)

var (
	chatConfigPath string
	chatVerbose    bool
	chatDebug      bool
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the talent sourcing assistant",
	Long: `Start an interactive terminal session with the assistant. Talent requests
trigger live platform searches; anything else is answered conversationally.

Session commands: 'reset' clears the conversation, 'summary' prints its
state, 'quit' exits.`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	chatCmd.Flags().BoolVarP(&chatVerbose, "verbose", "v", false, "Print pipeline stage details")
	chatCmd.Flags().BoolVar(&chatDebug, "debug", false, "Debug-level logging")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfigFile(chatConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = chatVerbose
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = chatDebug
	}
	cfg.ApplyEnv()
	cfg = cfg.MergeWithDefaults(config.Config{})
	if err := cfg.Validate(); err != nil {
		return err
	}

	// The session is conversational; logs stay out of the way unless asked for
	log := zap.NewNop()
	if cfg.Debug {
		log, err = logger.New(cfg.JSONLogs, true)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
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

	printer := observability.NewPrinter(os.Stdout)
	opts := pipeline.Options{
		Provider:       provider,
		Database:       database,
		EnrichProfiles: cfg.FetchPages,
		UseBrowser:     cfg.UseBrowser,
		Logger:         log,
	}
	if cfg.Verbose {
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			switch content := event.Content.(type) {
			case types.RequirementSet:
				printer.PrintRequirements(&content)
			case []string:
				printer.PrintQueries(content)
			case []types.CandidateProfile:
				printer.PrintShortlist(content)
			}
		}
	}

	assistant := chat.NewAssistant(client, intent.NewAnalyzer(client, log), pipeline.NewRunner(opts), log)
	assistant.OnSearchStart = func(acknowledgment string) {
		fmt.Println("\n" + acknowledgment)
	}

	printChatBanner(cfg)

	prompt := promptui.Prompt{Label: "👤 You"}
	for {
		input, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				fmt.Println("👋 Goodbye!")
				return nil
			}
			return fmt.Errorf("prompt failed: %w", err)
		}

		input = strings.TrimSpace(input)
		switch strings.ToLower(input) {
		case "quit", "exit", "q":
			fmt.Println("👋 Goodbye!")
			return nil
		case "reset":
			assistant.Reset()
			fmt.Println("🔄 Conversation reset successfully")
			continue
		case "summary":
			fmt.Println("📋 " + assistant.Summary())
			continue
		case "":
			fmt.Println("⚠️ Please enter a message.")
			continue
		}

		result := assistant.Chat(ctx, input)
		fmt.Println("\n🤖 Bot: " + result.Message)
		if result.SearchPerformed {
			fmt.Println("🔍 Search Summary: " + result.SearchSummary)
			fmt.Printf("👥 Candidates Found: %d\n", len(result.TalentResults))
			if len(result.TalentResults) > 0 {
				printer.PrintQuickSummary(&result.TalentResults[0])
			}
		}
		fmt.Println()
	}
}

func printChatBanner(cfg config.Config) {
	fmt.Println("🤖 AI Talent Scout - Conversational Sourcing Assistant")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("💡 Try these example requests:")
	fmt.Println("   - 'Find me 3 senior React developers'")
	fmt.Println("   - 'I need Python engineers with AI experience'")
	fmt.Println("   - 'Search for MERN stack freelancers'")
	fmt.Println("   - 'Hello, what can you help me with?'")
	fmt.Println(strings.Repeat("=", 50))
	if cfg.GeminiAPIKey == "" {
		fmt.Println("⚠️  GEMINI_API_KEY not set. Replies use fallback responses.")
	}
	if !searchConfigured(cfg) {
		fmt.Println("⚠️  No search provider key configured. Searches will find no results.")
	}
	fmt.Println("\n💬 Start chatting! (Type 'quit' to exit, 'reset' to clear the conversation)")
	fmt.Println()
}
