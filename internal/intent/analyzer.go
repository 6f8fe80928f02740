// Package intent classifies chat messages as talent requests or general
// conversation.
package intent

import (
	"context"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/jonathan/talent-scout/internal/llm"
	"github.com/jonathan/talent-scout/internal/prompts"
	"github.com/jonathan/talent-scout/internal/schemas"
	"github.com/jonathan/talent-scout/internal/types"
)

// fallbackKeywords drive the keyword classifier used when the model call or
// its output fails.
var fallbackKeywords = []string{
	"find", "search", "need", "developer", "engineer",
	"programmer", "talent", "hire", "recruit",
}

// Analyzer extracts a SearchIntent from a chat message.
type Analyzer struct {
	llm llm.Client
	log *zap.Logger
}

// NewAnalyzer creates an intent analyzer backed by the given model client.
func NewAnalyzer(client llm.Client, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{llm: client, log: log}
}

// Analyze classifies one message. It never returns an error: when the model
// call, schema validation or prompt loading fails it falls back to keyword
// detection.
func (a *Analyzer) Analyze(ctx context.Context, message string) types.SearchIntent {
	system, err := prompts.Get("intent.json", "system")
	if err != nil {
		a.log.Warn("intent prompt unavailable", zap.Error(err))
		return a.fallback(message)
	}
	prompt, err := prompts.FormatPrompt("intent.json", "analyze", map[string]string{
		"Message": message,
	})
	if err != nil {
		a.log.Warn("intent prompt unavailable", zap.Error(err))
		return a.fallback(message)
	}

	raw, err := a.llm.GenerateJSON(ctx, system+"\n\n"+prompt, llm.TierStandard)
	if err != nil {
		a.log.Warn("intent analysis failed, using keyword fallback", zap.Error(err))
		return a.fallback(message)
	}

	if err := schemas.Validate(schemas.IntentSchema, raw); err != nil {
		a.log.Warn("intent response failed validation, using keyword fallback", zap.Error(err))
		return a.fallback(message)
	}

	intent := types.SearchIntent{
		IsTalentRequest:        gjson.Get(raw, "is_talent_request").Bool(),
		Seniority:              gjson.Get(raw, "seniority").String(),
		Quantity:               int(gjson.Get(raw, "quantity").Int()),
		PlatformPreference:     gjson.Get(raw, "platform_preference").String(),
		Urgency:                gjson.Get(raw, "urgency").String(),
		AdditionalRequirements: gjson.Get(raw, "additional_requirements").String(),
	}
	gjson.Get(raw, "skills").ForEach(func(_, item gjson.Result) bool {
		intent.Skills = append(intent.Skills, item.String())
		return true
	})
	if intent.Urgency == "" {
		intent.Urgency = "medium"
	}

	a.log.Info("search intent analyzed",
		zap.Bool("is_talent_request", intent.IsTalentRequest),
		zap.Strings("skills", intent.Skills),
		zap.Int("quantity", intent.Quantity))

	return intent
}

func (a *Analyzer) fallback(message string) types.SearchIntent {
	lower := strings.ToLower(message)
	isTalent := false
	for _, kw := range fallbackKeywords {
		if strings.Contains(lower, kw) {
			isTalent = true
			break
		}
	}
	return types.SearchIntent{
		IsTalentRequest: isTalent,
		Skills:          []string{},
		Urgency:         "medium",
	}
}
