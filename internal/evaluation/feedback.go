package evaluation

import (
	"fmt"
	"strings"
)

const (
	maxStrengths       = 4
	maxImprovements    = 4
	maxCitedConcepts   = 3
	maxCitedFillers    = 2
	fillerCautionCount = 5
)

// generateFeedback turns the analysis results into reviewer-style feedback:
// a short narrative, a list of strengths, and a list of improvements. Rules
// run in a fixed order and lists are capped, so the output is deterministic
// and stays readable.
func generateFeedback(cov coverageAnalysis, st StructureAnalysis, fl FluencyMetrics, d DimensionScores) (feedback, strengths, improvements []string) {
	feedback = append(feedback, overallRemark(d))
	feedback = append(feedback, coverageRemark(cov.CoverageScore))
	if st.UsesSTAR || st.HasExamples {
		feedback = append(feedback, "The answer is well structured, which makes it easy to follow.")
	}
	if fl.FillerWordCount > fillerCautionCount {
		feedback = append(feedback, fmt.Sprintf(
			"Watch out for filler words such as %s; they dilute an otherwise stronger delivery.",
			quoteList(fl.FillerWords, maxCitedFillers)))
	}

	strengths = collectStrengths(cov, st, fl)
	improvements = collectImprovements(cov, st, fl, d)
	return feedback, strengths, improvements
}

func overallRemark(d DimensionScores) string {
	mean := float64(d.Technical+d.Completeness+d.Structure+d.Communication) / 4
	switch {
	case mean >= 70:
		return "Strong answer overall: it covers the material well and is delivered clearly."
	case mean >= 55:
		return "Solid answer with a good foundation, though there is room to sharpen it."
	case mean >= 40:
		return "The answer touches the topic but needs more depth and polish to convince."
	default:
		return "The answer falls short of what interviewers expect; focus on the fundamentals first."
	}
}

func coverageRemark(score int) string {
	switch {
	case score >= 70:
		return "You addressed most of the key concepts the question is probing for."
	case score >= 40:
		return "You covered some of the key concepts, but several expected points went unmentioned."
	default:
		return "Most of the concepts this question is probing for are missing from the answer."
	}
}

func collectStrengths(cov coverageAnalysis, st StructureAnalysis, fl FluencyMetrics) []string {
	strengths := make([]string, 0, maxStrengths)
	add := func(s string) {
		if len(strengths) < maxStrengths {
			strengths = append(strengths, s)
		}
	}

	exact := make([]string, 0, len(cov.Covered))
	for _, match := range cov.Covered {
		if match.Confidence == ConfidenceExact {
			exact = append(exact, match.Concept)
		}
	}
	if len(exact) > 0 {
		add(fmt.Sprintf("Directly addressed %s.", nameList(exact, maxCitedConcepts)))
	}
	if st.UsesSTAR {
		add("Followed the STAR pattern, walking through situation, task, action, and result.")
	}
	if st.HasExamples {
		add("Grounded the explanation in concrete examples.")
	}
	if fl.FillerWordCount <= 2 {
		add("Clean delivery with almost no filler words.")
	}
	if fl.VocabularyRichness >= 70 && fl.WordCount >= 30 {
		add("Varied vocabulary that keeps the answer engaging.")
	}
	if len(strengths) == 0 {
		add("Gave a direct response to the question asked.")
	}
	return strengths
}

func collectImprovements(cov coverageAnalysis, st StructureAnalysis, fl FluencyMetrics, d DimensionScores) []string {
	improvements := make([]string, 0, maxImprovements)
	add := func(s string) {
		if len(improvements) < maxImprovements {
			improvements = append(improvements, s)
		}
	}

	if len(cov.Missed) > 0 && d.Technical < 60 {
		add(fmt.Sprintf("Work %s into the answer; the question is probing for them.",
			nameList(cov.Missed, maxCitedConcepts)))
	}
	if fl.FillerWordCount > fillerCautionCount {
		add(fmt.Sprintf("Cut down on fillers like %s.", quoteList(fl.FillerWords, maxCitedFillers)))
	}
	if fl.WordCount < 30 {
		add("Expand the answer; a few sentences are rarely enough to show depth.")
	}
	if !st.HasExamples {
		add("Add a concrete example to back up the main claims.")
	}
	if st.OrganizationScore < 50 {
		add("Give the answer a clearer shape: open with a framing and close with a takeaway.")
	}
	if fl.RepetitionScore > 30 {
		add("Vary the wording; a few terms repeat often enough to stand out.")
	}
	return improvements
}

// nameList joins up to max concept names for citation in a sentence.
func nameList(names []string, max int) string {
	if len(names) > max {
		names = names[:max]
	}
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = fmt.Sprintf("%q", name)
	}
	return strings.Join(quoted, ", ")
}

// quoteList joins up to max filler terms for citation in a sentence.
func quoteList(terms []string, max int) string {
	if len(terms) > max {
		terms = terms[:max]
	}
	quoted := make([]string, len(terms))
	for i, term := range terms {
		quoted[i] = fmt.Sprintf("%q", term)
	}
	return strings.Join(quoted, " and ")
}
