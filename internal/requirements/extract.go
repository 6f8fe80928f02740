// Package requirements infers structured hiring requirements from natural-language requests.
package requirements

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/talent-scout/internal/types"
)

// Quantity bounds and defaults applied to every extracted requirement set.
const (
	DefaultQuantity = 5
	MinQuantity     = 1
	MaxQuantity     = 10
)

// FallbackSkill is used when no technology keyword matches the request.
const FallbackSkill = "Software Development"

// techKeywords maps request substrings onto canonical skill labels. Order is
// fixed so the emitted skill list is deterministic for identical input.
var techKeywords = []struct {
	key    string
	labels []string
}{
	{"react", []string{"React", "ReactJS", "Frontend"}},
	{"node", []string{"Node.js", "NodeJS", "Backend"}},
	{"python", []string{"Python", "Django", "Flask"}},
	{"javascript", []string{"JavaScript", "JS", "Frontend"}},
	{"mongodb", []string{"MongoDB", "NoSQL", "Database"}},
	{"express", []string{"Express.js", "ExpressJS"}},
	{"ai", []string{"AI", "Machine Learning", "Deep Learning"}},
	{"fullstack", []string{"Full Stack", "Full-Stack", "Fullstack"}},
	{"mern", []string{"MERN", "MongoDB", "Express", "React", "Node"}},
	{"devops", []string{"DevOps", "AWS", "Docker", "Kubernetes"}},
	{"mobile", []string{"React Native", "Flutter", "iOS", "Android"}},
}

// seniorityKeywords maps request substrings onto seniority levels. The first
// match wins, so "senior" beats the later aliases.
var seniorityKeywords = []struct {
	key   string
	level types.Seniority
}{
	{"junior", types.SeniorityJunior},
	{"mid", types.SeniorityMid},
	{"senior", types.SenioritySenior},
	{"lead", types.SeniorityLead},
	{"principal", types.SeniorityPrincipal},
	{"entry", types.SeniorityJunior},
	{"experienced", types.SenioritySenior},
	{"expert", types.SenioritySenior},
}

var quantityPattern = regexp.MustCompile(`(\d+)`)

// Extract infers skills, seniority, and quantity from a free-form request.
// It never fails: unmatched fields fall back to documented defaults.
func Extract(text string) types.RequirementSet {
	lower := strings.ToLower(text)

	return types.RequirementSet{
		Skills:          extractSkills(lower),
		Seniority:       extractSeniority(lower),
		Quantity:        extractQuantity(text),
		OriginalRequest: text,
	}
}

// extractSkills collects canonical labels for every matched technology
// keyword, deduplicated in first-seen order.
func extractSkills(lower string) []string {
	seen := make(map[string]bool)
	var skills []string

	for _, entry := range techKeywords {
		if !strings.Contains(lower, entry.key) {
			continue
		}
		for _, label := range entry.labels {
			if seen[label] {
				continue
			}
			seen[label] = true
			skills = append(skills, label)
		}
	}

	if len(skills) == 0 {
		return []string{FallbackSkill}
	}
	return skills
}

func extractSeniority(lower string) types.Seniority {
	for _, entry := range seniorityKeywords {
		if strings.Contains(lower, entry.key) {
			return entry.level
		}
	}
	return types.SeniorityMid
}

// extractQuantity reads the first number in the request. The raw text is used
// rather than the lowered copy so digit positions match the user's message.
func extractQuantity(text string) int {
	quantity := DefaultQuantity
	if match := quantityPattern.FindStringSubmatch(text); match != nil {
		if parsed, err := strconv.Atoi(match[1]); err == nil {
			quantity = parsed
		}
	}
	return ClampQuantity(quantity)
}

// ClampQuantity bounds a requested candidate count to [MinQuantity, MaxQuantity].
func ClampQuantity(quantity int) int {
	if quantity < MinQuantity {
		return MinQuantity
	}
	if quantity > MaxQuantity {
		return MaxQuantity
	}
	return quantity
}
