package chat

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/talent-scout/internal/llm"
	"github.com/jonathan/talent-scout/internal/logger"
	"github.com/jonathan/talent-scout/internal/prompts"
	"github.com/jonathan/talent-scout/internal/types"
)

// historyWindow is how many trailing messages accompany a general chat call.
const historyWindow = 10

const generalChatFallback = "I'm here to help you find talent! What kind of developers or professionals are you looking for?"

// IntentAnalyzer classifies a message as a talent request or general chat.
type IntentAnalyzer interface {
	Analyze(ctx context.Context, message string) types.SearchIntent
}

// TalentSearcher runs a full sourcing search for one request.
type TalentSearcher interface {
	FindTalent(ctx context.Context, request string, intent types.SearchIntent) ([]types.CandidateProfile, error)
}

// Result is the assistant's reply to one message.
type Result struct {
	Message             string
	TalentResults       []types.CandidateProfile
	SearchPerformed     bool
	SearchSummary       string
	ConversationContext string
}

// Assistant routes messages between talent searches and general conversation,
// keeping a shared history across both paths.
type Assistant struct {
	llm      llm.Client
	intents  IntentAnalyzer
	searcher TalentSearcher
	history  *History
	log      *zap.Logger

	// OnSearchStart, when set, receives the acknowledgment line before a
	// talent search begins.
	OnSearchStart func(acknowledgment string)
}

// NewAssistant wires an assistant from its collaborators.
func NewAssistant(client llm.Client, analyzer IntentAnalyzer, searcher TalentSearcher, log *zap.Logger) *Assistant {
	if log == nil {
		log = zap.NewNop()
	}
	return &Assistant{
		llm:      client,
		intents:  analyzer,
		searcher: searcher,
		history:  NewHistory(),
		log:      log,
	}
}

// Chat processes one user message and returns the assistant's reply. Failures
// degrade instead of propagating: the search path reports an error candidate,
// the chat path falls back to a canned reply.
func (a *Assistant) Chat(ctx context.Context, userMessage string) Result {
	a.log.Info("user message received",
		zap.String("message", logger.TruncateForLog(userMessage, 200)))

	a.history.Append(llm.RoleUser, userMessage)

	searchIntent := a.intents.Analyze(ctx, userMessage)
	if searchIntent.IsTalentRequest {
		result, err := a.handleTalentSearch(ctx, userMessage, searchIntent)
		if err != nil {
			a.log.Error("chat turn failed", zap.Error(err))
			return Result{
				Message: fmt.Sprintf("I apologize, but I encountered an error: %v. Please try again.", err),
			}
		}
		return result
	}
	return a.handleGeneralChat(ctx)
}

func (a *Assistant) handleTalentSearch(ctx context.Context, userMessage string, searchIntent types.SearchIntent) (Result, error) {
	ack := BuildAcknowledgment(searchIntent)
	a.log.Debug("search acknowledged", zap.String("acknowledgment", ack))
	if a.OnSearchStart != nil {
		a.OnSearchStart(ack)
	}

	results, err := a.searcher.FindTalent(ctx, userMessage, searchIntent)
	if err != nil {
		a.log.Error("talent search failed", zap.Error(err))
		results = []types.CandidateProfile{ErrorCandidate(err)}
	}

	message, err := a.FormatResults(ctx, results)
	if err != nil {
		return Result{}, err
	}

	a.history.Append(llm.RoleAssistant, message)

	return Result{
		Message:             message,
		TalentResults:       results,
		SearchPerformed:     true,
		SearchSummary:       fmt.Sprintf("Found %d candidates matching your criteria", len(results)),
		ConversationContext: "talent_search_completed",
	}, nil
}

func (a *Assistant) handleGeneralChat(ctx context.Context) Result {
	system, err := prompts.Get("chat.json", "system")
	if err != nil {
		a.log.Error("chat prompt unavailable", zap.Error(err))
		return Result{Message: generalChatFallback}
	}

	reply, err := a.llm.GenerateChat(ctx, system, a.history.Tail(historyWindow), llm.TierStandard)
	if err != nil {
		a.log.Error("general chat failed", zap.Error(err))
		return Result{Message: generalChatFallback}
	}

	a.history.Append(llm.RoleAssistant, reply)

	return Result{
		Message:             reply,
		ConversationContext: "general_chat",
	}
}

// Reset clears the conversation history.
func (a *Assistant) Reset() {
	a.history.Reset()
	a.log.Info("conversation history reset")
}

// Summary describes the current conversation length.
func (a *Assistant) Summary() string {
	total, user := a.history.Counts()
	if total == 0 {
		return "No conversation history yet."
	}
	return fmt.Sprintf("Conversation: %d total messages, %d from user", total, user)
}

// BuildAcknowledgment renders the "searching now" line for a talent request.
func BuildAcknowledgment(searchIntent types.SearchIntent) string {
	parts := []string{"🔍 I'll help you find"}

	if searchIntent.Quantity != 0 {
		parts = append(parts, strconv.Itoa(searchIntent.Quantity))
	}
	if searchIntent.Seniority != "" {
		parts = append(parts, searchIntent.Seniority)
	}
	if len(searchIntent.Skills) > 1 {
		parts = append(parts, strings.Join(searchIntent.Skills[:len(searchIntent.Skills)-1], ", ")+
			" and "+searchIntent.Skills[len(searchIntent.Skills)-1])
	} else if len(searchIntent.Skills) == 1 {
		parts = append(parts, searchIntent.Skills[0])
	}

	parts = append(parts, "developers. Let me search across multiple platforms...")
	return strings.Join(parts, " ")
}

// ErrorCandidate is the placeholder profile reported when a search fails.
func ErrorCandidate(err error) types.CandidateProfile {
	return types.CandidateProfile{
		Name:      "System Error",
		Purpose:   fmt.Sprintf("Error occurred during talent search: %v", err),
		Seniority: types.SenioritySenior,
		Skills:    []string{"troubleshooting", "system administration"},
		Summary:   "An error occurred during the talent hunting process.",
	}
}
