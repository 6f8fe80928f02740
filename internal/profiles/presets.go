package profiles

import (
	"strings"

	"github.com/jonathan/talent-scout/internal/ranking"
)

// Config bundles the skill vocabulary, unset-field sentinels, strength rules
// and risk scoring of one extraction preset.
type Config struct {
	vocabulary         []string
	defaultName        string
	experienceSentinel string
	ratingSentinel     string
	rateSentinel       string
	strengths          func(found []string, text, url string) []string
	risk               ranking.ScoreConfig
}

// SourcingConfig matches a broad vocabulary across the whole stack and
// rewards marketplace presence. Used by the conversational flow.
func SourcingConfig() Config {
	return Config{
		vocabulary: []string{
			"React", "Node.js", "Python", "JavaScript", "MongoDB", "Express",
			"AI", "Machine Learning", "DevOps", "AWS", "Docker", "TypeScript",
			"Full Stack", "Frontend", "Backend", "Mobile", "Flutter",
		},
		defaultName:        "Unknown",
		experienceSentinel: "Not specified",
		ratingSentinel:     "Not specified",
		rateSentinel:       "Not specified",
		strengths:          sourcingStrengths,
		risk:               ranking.SourcingScoring(),
	}
}

// ScreeningConfig matches a MERN and AI focused vocabulary and rewards stack
// depth. Used by the standalone screening run.
func ScreeningConfig() Config {
	return Config{
		vocabulary: []string{
			"MongoDB", "Express", "React", "Node", "JavaScript", "Full Stack",
			"AI", "Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "NLP",
		},
		defaultName:        "Unknown",
		experienceSentinel: "Unknown",
		ratingSentinel:     "Not specified",
		rateSentinel:       "Not specified",
		strengths:          screeningStrengths,
		risk:               ranking.ScreeningScoring(),
	}
}

func sourcingStrengths(found []string, text, url string) []string {
	has := func(label string) bool {
		for _, s := range found {
			if s == label {
				return true
			}
		}
		return false
	}

	var strengths []string
	if len(found) >= 5 {
		strengths = append(strengths, "Diverse skill set")
	}
	if has("Full Stack") || (has("Frontend") && has("Backend")) {
		strengths = append(strengths, "Full-stack capabilities")
	}
	if has("AI") || has("Machine Learning") {
		strengths = append(strengths, "AI/ML expertise")
	}
	if strings.Contains(url, "upwork.com") {
		strengths = append(strengths, "Upwork verified")
	}
	return strengths
}

func screeningStrengths(found []string, text, url string) []string {
	var strengths []string
	if len(found) >= 6 {
		strengths = append(strengths, "Strong technical skill set")
	}
	if strings.Contains(text, "react") && strings.Contains(text, "node") {
		strengths = append(strengths, "Full MERN stack experience")
	}
	if strings.Contains(text, "ai") || strings.Contains(text, "machine learning") ||
		strings.Contains(text, "deep learning") {
		strengths = append(strengths, "AI/ML expertise")
	}
	if strings.Contains(url, "upwork.com") {
		strengths = append(strengths, "Upwork verified profile")
	}
	return strengths
}
