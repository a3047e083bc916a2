// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-coach/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for CLI results
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

func writeItems(sb *strings.Builder, title string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(title + ":\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		item := items[i]
		if len(item) > 50 {
			item = item[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

// PrintRecommendations outputs career recommendations with match scores.
func (p *Printer) PrintRecommendations(recs []types.CareerRecommendation, source string) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	for i, rec := range recs {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, rec.JobTitle))
		sb.WriteString(fmt.Sprintf("    Match: %.0f%%   Salary: %s\n", rec.MatchPercentage, rec.SalaryRange))
		if len(rec.SkillGaps) > 0 {
			gaps := strings.Join(rec.SkillGaps, ", ")
			if len(gaps) > 40 {
				gaps = gaps[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Gaps:  %s\n", gaps))
		}
		if len(rec.CareerPath) > 0 {
			path := strings.Join(rec.CareerPath, " → ")
			if len(path) > 45 {
				path = path[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Path:  %s\n", path))
		}
		if i < len(recs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(fmt.Sprintf("CAREER RECOMMENDATIONS (%s)", source), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResumeAnalysis outputs a resume review with score and findings.
func (p *Printer) PrintResumeAnalysis(analysis types.ResumeAnalysis, warnings []string, source string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall score: %.0f/100\n\n", analysis.OverallScore))
	writeItems(&sb, "Strengths", analysis.Strengths, maxItemsToShow)
	writeItems(&sb, "Weaknesses", analysis.Weaknesses, maxItemsToShow)
	writeItems(&sb, "Suggestions", analysis.ImprovementSuggestions, maxItemsToShow)
	writeItems(&sb, "Keywords to add", analysis.KeywordOptimization, 3)
	writeItems(&sb, "Formatting", analysis.FormattingFeedback, 3)
	writeItems(&sb, "Warnings", warnings, 3)

	p.printBox(fmt.Sprintf("RESUME REVIEW (%s)", source), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobMatches outputs matched jobs with scores and requirements.
func (p *Printer) PrintJobMatches(matches []types.JobMatch, source string) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder
	for i, m := range matches {
		sb.WriteString(fmt.Sprintf("#%d  %s (%s)\n", i+1, m.JobTitle, m.CompanyType))
		sb.WriteString(fmt.Sprintf("    Match: %.0f%%   %s   %s\n", m.MatchPercentage, m.Location, m.SalaryRange))
		if len(m.Requirements) > 0 {
			reqs := strings.Join(m.Requirements, ", ")
			if len(reqs) > 40 {
				reqs = reqs[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Requires: %s\n", reqs))
		}
		if i < len(matches)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(fmt.Sprintf("JOB MATCHES (%s)", source), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillGap outputs a skill gap analysis with the learning path.
func (p *Printer) PrintSkillGap(role string, analysis types.SkillGapAnalysis, source string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target role: %s\n\n", role))
	writeItems(&sb, "Relevant skills", analysis.RelevantSkills, maxItemsToShow)
	writeItems(&sb, "Missing skills", analysis.MissingSkills, maxItemsToShow)
	writeItems(&sb, "Learning path", analysis.LearningPath, maxItemsToShow)
	writeItems(&sb, "Resources", analysis.Resources, 3)
	if analysis.Timeline != "" {
		sb.WriteString(fmt.Sprintf("Timeline: %s\n", analysis.Timeline))
	}

	p.printBox(fmt.Sprintf("SKILL GAP ANALYSIS (%s)", source), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInterviewFeedback outputs mock interview scores and advice.
func (p *Printer) PrintInterviewFeedback(fb types.InterviewFeedback, answered int, source string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Answers evaluated: %d\n\n", answered))
	sb.WriteString(fmt.Sprintf("Overall performance:  %.0f/100\n", fb.OverallPerformance))
	sb.WriteString(fmt.Sprintf("Communication:        %.0f/100\n", fb.CommunicationSkills))
	sb.WriteString(fmt.Sprintf("Technical knowledge:  %.0f/100\n", fb.TechnicalKnowledge))
	sb.WriteString(fmt.Sprintf("Problem solving:      %.0f/100\n\n", fb.ProblemSolving))
	writeItems(&sb, "Areas for improvement", fb.AreasForImprovement, maxItemsToShow)
	writeItems(&sb, "Practice topics", fb.SuggestedPracticeTopics, maxItemsToShow)

	p.printBox(fmt.Sprintf("INTERVIEW FEEDBACK (%s)", source), strings.TrimSuffix(sb.String(), "\n"))
}
