package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/talent-scout/internal/llm"
	"github.com/jonathan/talent-scout/internal/prompts"
	"github.com/jonathan/talent-scout/internal/types"
)

const noResultsMessage = "🚫 I couldn't find any candidates matching your exact criteria. Would you like me to try a broader search or adjust the requirements?"

// formattedResult is the candidate view handed to the model for presentation.
type formattedResult struct {
	Name      string   `json:"name"`
	Skills    []string `json:"skills"`
	Exp       string   `json:"experience"`
	Rating    string   `json:"rating"`
	Rate      string   `json:"rate"`
	RiskScore int      `json:"risk_score"`
	Strengths []string `json:"strengths"`
	Summary   string   `json:"summary"`
}

// FormatResults renders the candidate list into a conversational reply. The
// model formats the results; if it fails, a fixed template takes over.
func (a *Assistant) FormatResults(ctx context.Context, results []types.CandidateProfile) (string, error) {
	if len(results) == 0 {
		return noResultsMessage, nil
	}

	data := make([]formattedResult, 0, len(results))
	for _, talent := range results {
		data = append(data, formattedResult{
			Name:      talent.Name,
			Skills:    talent.Skills,
			Exp:       talent.Experience,
			Rating:    talent.Rating,
			Rate:      talent.HourlyRate,
			RiskScore: talent.RiskScore,
			Strengths: talent.Strengths,
			Summary:   talent.Summary,
		})
	}
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode results: %w", err)
	}

	system, err := prompts.Get("formatting.json", "system")
	if err != nil {
		return "", err
	}
	prompt, err := prompts.FormatPrompt("formatting.json", "results", map[string]string{
		"Results": string(encoded),
		"Count":   strconv.Itoa(len(results)),
	})
	if err != nil {
		return "", err
	}

	reply, err := a.llm.GenerateChat(ctx, system, []llm.Message{
		{Role: llm.RoleUser, Content: prompt},
	}, llm.TierAdvanced)
	if err != nil {
		a.log.Warn("result formatting failed, using fixed template", zap.Error(err))
		return fallbackFormat(results), nil
	}
	return reply, nil
}

func fallbackFormat(results []types.CandidateProfile) string {
	parts := []string{fmt.Sprintf("✅ Great! I found %d talented candidates for you:\n", len(results))}

	shown := results
	if len(shown) > 5 {
		shown = shown[:5]
	}
	for i, talent := range shown {
		skills := talent.Skills
		if len(skills) > 5 {
			skills = skills[:5]
		}
		parts = append(parts, fmt.Sprintf("\n%d. **%s**", i+1, talent.Name))
		parts = append(parts, fmt.Sprintf("   💼 Skills: %s", strings.Join(skills, ", ")))
		parts = append(parts, fmt.Sprintf("   ⭐ Experience: %s", talent.Experience))
		parts = append(parts, fmt.Sprintf("   📊 Risk Score: %d/5", talent.RiskScore))
		if talent.ProfileURL != "" {
			parts = append(parts, fmt.Sprintf("   🔗 Profile: %s", talent.ProfileURL))
		}
	}

	parts = append(parts, "\n\nWould you like me to provide more details about any of these candidates or search for additional talent?")
	return strings.Join(parts, "\n")
}
