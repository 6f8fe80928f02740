// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talent-scout/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRequirements outputs a human-readable summary of the extracted
// hiring requirements.
func (p *Printer) PrintRequirements(req *types.RequirementSet) {
	if req == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Seniority: %s\n", req.Seniority))
	sb.WriteString(fmt.Sprintf("Quantity:  %d\n", req.Quantity))
	sb.WriteString("\n")

	if len(req.Skills) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(req.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", req.Skills[i]))
		}
		if len(req.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(req.Skills)-maxItemsToShow))
		}
	}

	p.printBox("EXTRACTED REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQueries outputs the generated search queries in execution order.
func (p *Printer) PrintQueries(queries []string) {
	if len(queries) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generated %d queries:\n\n", len(queries)))

	count := min(len(queries), maxItemsToShow)
	for i := 0; i < count; i++ {
		query := queries[i]
		if len(query) > 50 {
			query = query[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, query))
	}

	if len(queries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more queries", len(queries)-maxItemsToShow))
	}

	p.printBox("GENERATED SEARCH QUERIES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintShortlist outputs the ranked candidate shortlist with scores and skills.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintShortlist(candidates []types.CandidateProfile) {
	if len(candidates) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "⚠ NO CANDIDATES FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates: %d\n\n", len(candidates)))

	count := min(len(candidates), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := candidates[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, c.Name))
		sb.WriteString(fmt.Sprintf("    Match: %.2f  Risk: %d/5", c.MatchScore, c.RiskScore))
		if c.RiskLevel != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", c.RiskLevel))
		}
		sb.WriteString("\n")
		if len(c.Skills) > 0 {
			skills := strings.Join(c.Skills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(candidates) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(candidates)-maxItemsToShow))
	}

	p.printBox("CANDIDATE SHORTLIST", sb.String())
}

// PrintHuntCandidate outputs one screened developer in the flat list format
// used by the one-shot screening flow.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintHuntCandidate(rank int, c types.CandidateProfile) {
	fmt.Fprintf(p.out, "\n%d. %s\n", rank, c.Name)
	fmt.Fprintf(p.out, "   🎯 Risk Level: %s (Score: %d/5)\n", c.RiskLevel, c.RiskScore)
	fmt.Fprintf(p.out, "   💼 Skills: %s\n", strings.Join(c.Skills[:min(len(c.Skills), maxItemsToShow)], ", "))
	fmt.Fprintf(p.out, "   ⭐ Rating: %s\n", c.Rating)
	fmt.Fprintf(p.out, "   💰 Rate: %s\n", c.HourlyRate)
	fmt.Fprintf(p.out, "   🔗 Profile: %s\n", c.ProfileURL)
	fmt.Fprintf(p.out, "   ✅ Strengths: %s\n", strings.Join(c.Strengths, ", "))
}

// PrintHuntShortlist outputs the full screening recommendation list.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintHuntShortlist(candidates []types.CandidateProfile) {
	if len(candidates) == 0 {
		fmt.Fprintln(p.out, "❌ No developers to recommend.")
		return
	}

	fmt.Fprintf(p.out, "🏆 Top %d Recommended Developers:\n", len(candidates))
	for i, c := range candidates {
		p.PrintHuntCandidate(i+1, c)
	}
	fmt.Fprintf(p.out, "\n✅ Final recommendations ready! Best match: %s\n", candidates[0].Name)
}

// PrintRunSummary outputs the closing summary for a completed screening run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRunSummary(candidates []types.CandidateProfile) {
	if len(candidates) == 0 {
		fmt.Fprintln(p.out, "⚠️  No suitable developers found. Try refining search criteria.")
		return
	}

	total := 0
	for _, c := range candidates {
		total += c.RiskScore
	}
	avg := float64(total) / float64(len(candidates))

	fmt.Fprintf(p.out, "✅ Successfully found %d qualified developers\n", len(candidates))
	fmt.Fprintf(p.out, "🏆 Top recommendation: %s\n", candidates[0].Name)
	fmt.Fprintf(p.out, "⚡ Average risk level: %.1f/5\n", avg)
}

// PrintQuickSummary outputs the short best-match recap shown after an
// interactive search.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintQuickSummary(c *types.CandidateProfile) {
	if c == nil {
		return
	}

	fmt.Fprintf(p.out, "\n💡 Quick Summary:\n")
	fmt.Fprintf(p.out, "   Best Match: %s\n", c.Name)
	fmt.Fprintf(p.out, "   Risk Level: %s\n", c.RiskLevel)
	fmt.Fprintf(p.out, "   Key Skills: %s\n", strings.Join(c.Skills[:min(len(c.Skills), 3)], ", "))
}
