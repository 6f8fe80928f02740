// Package queries turns structured hiring requirements into web search queries.
package queries

import (
	"fmt"
	"strings"

	"github.com/jonathan/talent-scout/internal/types"
)

// MaxQueries caps the generated query list to keep provider usage bounded.
const MaxQueries = 5

// maxSkillsPerQuery limits the skill phrase so queries stay short enough for
// search providers.
const maxSkillsPerQuery = 4

// Platforms lists the site qualifiers used for platform-targeted queries, in
// preference order.
var Platforms = []string{
	"site:upwork.com/freelancers",
	"site:linkedin.com/in",
	"site:github.com",
	"site:stackoverflow.com/users",
	"site:freelancer.com",
}

// Generate builds the search query list for a requirement set. Output is
// deterministic: identical requirements produce byte-identical queries.
func Generate(req types.RequirementSet) []string {
	skills := req.Skills
	if len(skills) > maxSkillsPerQuery {
		skills = skills[:maxSkillsPerQuery]
	}
	skillString := strings.Join(skills, " ")

	var result []string

	// Platform-specific queries over the top platforms
	for _, platform := range Platforms[:3] {
		var query string
		switch {
		case strings.Contains(platform, "upwork"):
			query = fmt.Sprintf("%s %s developer %s", skillString, req.Seniority, platform)
		case strings.Contains(platform, "linkedin"):
			query = fmt.Sprintf("%s software engineer %s %s", skillString, req.Seniority, platform)
		default:
			query = fmt.Sprintf("%s developer %s", skillString, platform)
		}
		result = append(result, query)
	}

	// General queries
	result = append(result,
		fmt.Sprintf("%s %s developer freelancer", skillString, req.Seniority),
		fmt.Sprintf("%s software engineer remote", skillString),
		fmt.Sprintf("%s consultant expert developer", skillString),
	)

	if len(result) > MaxQueries {
		result = result[:MaxQueries]
	}
	return result
}
