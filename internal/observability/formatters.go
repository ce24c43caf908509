// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/daniel/interview-coach/internal/evaluation"
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

// PrintScores outputs the overall score, verdict, and dimension breakdown.
func (p *Printer) PrintScores(result *evaluation.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:  %d/100\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Verdict:  %s\n", formatVerdict(result.Verdict)))
	sb.WriteString("\n")
	sb.WriteString("Dimensions:\n")
	sb.WriteString(fmt.Sprintf("  Technical:      %s %d\n", scoreBar(result.Dimensions.Technical), result.Dimensions.Technical))
	sb.WriteString(fmt.Sprintf("  Completeness:   %s %d\n", scoreBar(result.Dimensions.Completeness), result.Dimensions.Completeness))
	sb.WriteString(fmt.Sprintf("  Structure:      %s %d\n", scoreBar(result.Dimensions.Structure), result.Dimensions.Structure))
	sb.WriteString(fmt.Sprintf("  Communication:  %s %d", scoreBar(result.Dimensions.Communication), result.Dimensions.Communication))

	p.printBox("EVALUATION", sb.String())
}

// PrintCoverage outputs which required concepts the answer covered and missed.
func (p *Printer) PrintCoverage(result *evaluation.Result) {
	if result == nil {
		return
	}
	if len(result.CoveredConcepts) == 0 && len(result.MissedConcepts) == 0 {
		return
	}

	var sb strings.Builder

	if len(result.CoveredConcepts) > 0 {
		sb.WriteString(fmt.Sprintf("Covered (%d):\n", len(result.CoveredConcepts)))
		count := min(len(result.CoveredConcepts), maxItemsToShow)
		for i := 0; i < count; i++ {
			match := result.CoveredConcepts[i]
			sb.WriteString(fmt.Sprintf("  ✓ %s", match.Concept))
			if match.Confidence != evaluation.ConfidenceExact {
				sb.WriteString(fmt.Sprintf(" (%s: %q)", match.Confidence, match.MatchedAs))
			}
			sb.WriteString("\n")
		}
		if len(result.CoveredConcepts) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.CoveredConcepts)-maxItemsToShow))
		}
	}

	if len(result.MissedConcepts) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("Missed (%d):\n", len(result.MissedConcepts)))
		count := min(len(result.MissedConcepts), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", result.MissedConcepts[i]))
		}
		if len(result.MissedConcepts) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MissedConcepts)-maxItemsToShow))
		}
	}

	p.printBox("CONCEPT COVERAGE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDelivery outputs the structure and fluency analysis.
func (p *Printer) PrintDelivery(result *evaluation.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString("Structure:\n")
	sb.WriteString(fmt.Sprintf("  %s introduction   %s examples   %s conclusion\n",
		checkMark(result.Structure.HasIntroduction),
		checkMark(result.Structure.HasExamples),
		checkMark(result.Structure.HasConclusion)))
	if result.Structure.UsesSTAR {
		star := result.Structure.STAR
		sb.WriteString(fmt.Sprintf("  STAR: %s situation  %s task  %s action  %s result\n",
			checkMark(star.Situation), checkMark(star.Task),
			checkMark(star.Action), checkMark(star.Result)))
	}
	sb.WriteString(fmt.Sprintf("  Organization: %d/100\n", result.Structure.OrganizationScore))
	sb.WriteString("\n")

	sb.WriteString("Fluency:\n")
	sb.WriteString(fmt.Sprintf("  Words: %d   Avg sentence: %d words\n",
		result.Fluency.WordCount, result.Fluency.AverageSentenceLength))
	sb.WriteString(fmt.Sprintf("  Vocabulary richness: %d/100\n", result.Fluency.VocabularyRichness))
	if result.Fluency.FillerWordCount > 0 {
		fillers := strings.Join(result.Fluency.FillerWords, ", ")
		if len(fillers) > 40 {
			fillers = fillers[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("  ⚠ %d filler words: %s", result.Fluency.FillerWordCount, fillers))
	} else {
		sb.WriteString("  No filler words detected")
	}

	p.printBox("DELIVERY", sb.String())
}

// PrintFeedback outputs the generated feedback, strengths, and improvements.
func (p *Printer) PrintFeedback(result *evaluation.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder

	if len(result.Strengths) > 0 {
		sb.WriteString("Strengths:\n")
		count := min(len(result.Strengths), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Strengths[i]))
		}
		sb.WriteString("\n")
	}

	if len(result.Improvements) > 0 {
		sb.WriteString("Improvements:\n")
		count := min(len(result.Improvements), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Improvements[i]))
		}
		sb.WriteString("\n")
	}

	if len(result.Feedback) > 0 {
		sb.WriteString("Summary:\n")
		for _, line := range result.Feedback {
			sb.WriteString(fmt.Sprintf("  %s\n", line))
		}
	}

	p.printBox("FEEDBACK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs the full evaluation report as a sequence of boxes.
func (p *Printer) PrintReport(result *evaluation.Result) {
	p.PrintScores(result)
	p.PrintCoverage(result)
	p.PrintDelivery(result)
	p.PrintFeedback(result)
}

// scoreBar renders a ten-segment bar for a 0..100 score.
func scoreBar(score int) string {
	filled := score / 10
	if filled < 0 {
		filled = 0
	}
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

func checkMark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func formatVerdict(v evaluation.Verdict) string {
	return strings.ReplaceAll(string(v), "_", " ")
}
