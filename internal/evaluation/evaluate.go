// Package evaluation scores interview answers without calling any external
// service. The engine compares a user's answer against an ideal answer and
// optional question keywords, analyzes concept coverage, discourse structure,
// and delivery fluency, and produces dimension scores, a hiring verdict, and
// reviewer-style feedback.
//
// Evaluation is a pure function of its inputs: identical inputs always yield
// identical results. No state is kept between calls and no error paths exist.
// Degenerate input (empty or nonsense text) produces low scores, never a
// failure. The package is safe for concurrent use.
package evaluation

import "strings"

// Options carries the optional question context for an evaluation.
type Options struct {
	// Concepts are the question's explicit keywords. When present they define
	// the required concept set; otherwise concepts are extracted from the
	// ideal answer.
	Concepts []string
	// Category selects indicator sets and score weighting. Unknown values
	// fall back to CategoryTechnical.
	Category Category
}

// Evaluate scores a user's answer against an ideal answer. An empty ideal
// answer is permitted: required concepts then come from explicit keywords or,
// failing that, from the user's own answer.
func Evaluate(userAnswer, idealAnswer string, opts Options) Result {
	category := ParseCategory(string(opts.Category))

	userNorm := Normalize(userAnswer)
	idealNorm := Normalize(idealAnswer)

	cov := analyzeCoverage(userAnswer, userNorm, idealAnswer, idealNorm, opts.Concepts)
	structure := analyzeStructure(userAnswer, userNorm, category)
	fluency := analyzeFluency(userAnswer)

	dims := scoreDimensions(cov, structure, fluency, len(strings.Fields(idealAnswer)))
	overall := overallScore(dims, category)
	verdict := verdictFor(overall, dims)
	feedback, strengths, improvements := generateFeedback(cov, structure, fluency, dims)

	return Result{
		OverallScore:    overall,
		Verdict:         verdict,
		Dimensions:      dims,
		CoveredConcepts: cov.Covered,
		MissedConcepts:  cov.Missed,
		Feedback:        feedback,
		Strengths:       strengths,
		Improvements:    improvements,
		Structure:       structure,
		Fluency:         fluency,
	}
}
