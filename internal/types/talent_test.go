//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeniority(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Seniority
		ok    bool
	}{
		{name: "junior", input: "junior", want: SeniorityJunior, ok: true},
		{name: "mid", input: "mid", want: SeniorityMid, ok: true},
		{name: "senior", input: "senior", want: SenioritySenior, ok: true},
		{name: "lead", input: "lead", want: SeniorityLead, ok: true},
		{name: "principal", input: "principal", want: SeniorityPrincipal, ok: true},
		{name: "mixed case", input: "Senior", want: SenioritySenior, ok: true},
		{name: "surrounding whitespace", input: "  lead  ", want: SeniorityLead, ok: true},
		{name: "unknown label", input: "architect", want: "", ok: false},
		{name: "empty", input: "", want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSeniority(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCandidateProfile_Serialization(t *testing.T) {
	profile := CandidateProfile{
		Name:       "Jane Smith",
		Purpose:    "Software development professional",
		Seniority:  SenioritySenior,
		Skills:     []string{"React", "Node.js"},
		Experience: "5 years",
		Rating:     "4.5/5",
		HourlyRate: "$75/hour",
		RiskScore:  2,
		RiskLevel:  "Low Risk",
		ProfileURL: "https://upwork.com/freelancers/jane",
	}

	jsonBytes, err := json.Marshal(profile)
	require.NoError(t, err)

	jsonStr := string(jsonBytes)
	assert.Contains(t, jsonStr, "risk_score")
	assert.Contains(t, jsonStr, "hourly_rate")
	assert.Contains(t, jsonStr, "Jane Smith")

	var unmarshaled CandidateProfile
	err = json.Unmarshal(jsonBytes, &unmarshaled)
	require.NoError(t, err)
	assert.Equal(t, profile.Name, unmarshaled.Name)
	assert.Equal(t, profile.RiskScore, unmarshaled.RiskScore)
	assert.Equal(t, profile.Skills, unmarshaled.Skills)
}

func TestSearchIntent_Serialization(t *testing.T) {
	raw := `{
		"is_talent_request": true,
		"skills": ["python", "ml"],
		"seniority": "senior",
		"quantity": 3,
		"platform_preference": "upwork",
		"urgency": "high",
		"additional_requirements": "remote only"
	}`

	var intent SearchIntent
	err := json.Unmarshal([]byte(raw), &intent)
	require.NoError(t, err)
	assert.True(t, intent.IsTalentRequest)
	assert.Equal(t, []string{"python", "ml"}, intent.Skills)
	assert.Equal(t, "senior", intent.Seniority)
	assert.Equal(t, 3, intent.Quantity)
	assert.Equal(t, "high", intent.Urgency)
}
