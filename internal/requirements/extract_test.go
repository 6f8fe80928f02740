package requirements

import (
	"testing"

	"github.com/jonathan/talent-scout/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestExtract_SkillKeywords(t *testing.T) {
	req := Extract("Find me 3 senior React developers")

	assert.Equal(t, []string{"React", "ReactJS", "Frontend"}, req.Skills)
	assert.Equal(t, types.SenioritySenior, req.Seniority)
	assert.Equal(t, 3, req.Quantity)
	assert.Equal(t, "Find me 3 senior React developers", req.OriginalRequest)
}

func TestExtract_NoKeywordsFallsBack(t *testing.T) {
	req := Extract("I want to hire somebody good")

	assert.Equal(t, []string{FallbackSkill}, req.Skills)
	assert.Equal(t, types.SeniorityMid, req.Seniority)
	assert.Equal(t, DefaultQuantity, req.Quantity)
}

func TestExtract_MernExpandsToStack(t *testing.T) {
	req := Extract("need mern freelancers")

	assert.Equal(t, []string{"MERN", "MongoDB", "Express", "React", "Node"}, req.Skills)
}

func TestExtract_OverlappingKeywordsDeduplicated(t *testing.T) {
	// mongodb contributes first; the mern expansion repeats MongoDB
	req := Extract("mongodb and mern specialists")

	assert.Equal(t, []string{"MongoDB", "NoSQL", "Database", "MERN", "Express", "React", "Node"}, req.Skills)
}

func TestExtract_Deterministic(t *testing.T) {
	first := Extract("fullstack javascript ai developer")
	second := Extract("fullstack javascript ai developer")

	assert.Equal(t, first.Skills, second.Skills)
}

func TestExtract_SeniorityLevels(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Seniority
	}{
		{name: "junior", input: "junior python dev", want: types.SeniorityJunior},
		{name: "mid", input: "mid level python dev", want: types.SeniorityMid},
		{name: "senior", input: "senior python dev", want: types.SenioritySenior},
		{name: "lead", input: "lead python dev", want: types.SeniorityLead},
		{name: "principal", input: "principal python dev", want: types.SeniorityPrincipal},
		{name: "entry alias", input: "entry level python dev", want: types.SeniorityJunior},
		{name: "experienced alias", input: "experienced python dev", want: types.SenioritySenior},
		{name: "expert alias", input: "python expert", want: types.SenioritySenior},
		{name: "default", input: "python dev", want: types.SeniorityMid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.input).Seniority)
		})
	}
}

func TestExtract_QuantityBounds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "explicit quantity", input: "7 node developers", want: 7},
		{name: "no digits uses default", input: "node developers", want: DefaultQuantity},
		{name: "zero clamps up", input: "0 node developers", want: MinQuantity},
		{name: "large clamps down", input: "99 node developers", want: MaxQuantity},
		{name: "first number wins", input: "2 devs for 6 months", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.input).Quantity)
		})
	}
}

func TestClampQuantity(t *testing.T) {
	assert.Equal(t, MinQuantity, ClampQuantity(-3))
	assert.Equal(t, MinQuantity, ClampQuantity(0))
	assert.Equal(t, 5, ClampQuantity(5))
	assert.Equal(t, MaxQuantity, ClampQuantity(10))
	assert.Equal(t, MaxQuantity, ClampQuantity(11))
}
