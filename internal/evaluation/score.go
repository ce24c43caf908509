package evaluation

import "math"

// dimensionWeights maps each question category to the weight of the four
// dimensions, in order: technical, completeness, structure, communication.
// Weights in each row sum to 1.
var dimensionWeights = map[Category][4]float64{
	CategoryTechnical:    {0.35, 0.30, 0.15, 0.20},
	CategoryBehavioral:   {0.20, 0.25, 0.30, 0.25},
	CategorySystemDesign: {0.40, 0.30, 0.15, 0.15},
}

// scoreDimensions derives the four dimension scores from the analysis
// results. Every score is clamped to [0,100].
func scoreDimensions(cov coverageAnalysis, st StructureAnalysis, fl FluencyMetrics, idealWordCount int) DimensionScores {
	technical := roundScore(0.7*float64(cov.CoverageScore) + 0.3*float64(cov.TechnicalDepth))

	// Completeness blends coverage with answer length relative to half the
	// ideal answer. A missing ideal answer contributes no length credit.
	lengthRatio := 0.0
	if idealWordCount > 0 {
		lengthRatio = math.Min(float64(fl.WordCount)/(float64(idealWordCount)*0.5), 1)
	}
	completeness := roundScore(0.6*float64(cov.CoverageScore) + 0.4*100*lengthRatio)

	communication := 100.0
	communication -= math.Min(3*float64(fl.FillerWordCount), 20)
	communication -= math.Min(0.5*float64(fl.RepetitionScore), 15)
	// The richness term is negative below 50, so a flat vocabulary costs
	// points rather than earning them.
	communication += math.Min(0.3*(float64(fl.VocabularyRichness)-50), 15)
	switch {
	case fl.WordCount < 30:
		communication -= 20
	case fl.WordCount < 50:
		communication -= 10
	}
	if fl.AverageSentenceLength >= 10 && fl.AverageSentenceLength <= 25 {
		communication += 10
	}

	return DimensionScores{
		Technical:     technical,
		Completeness:  completeness,
		Structure:     clampScore(st.OrganizationScore),
		Communication: roundScore(communication),
	}
}

// overallScore combines the dimension scores using the weights for the
// question category.
func overallScore(d DimensionScores, category Category) int {
	weights, ok := dimensionWeights[category]
	if !ok {
		weights = dimensionWeights[CategoryTechnical]
	}
	total := weights[0]*float64(d.Technical) +
		weights[1]*float64(d.Completeness) +
		weights[2]*float64(d.Structure) +
		weights[3]*float64(d.Communication)
	return clampScore(int(math.Round(total)))
}

// verdictFor maps the overall score to a hiring recommendation. The floor on
// technical and completeness keeps a well-delivered but empty answer from
// reaching the upper verdicts.
func verdictFor(overall int, d DimensionScores) Verdict {
	floor := d.Technical
	if d.Completeness < floor {
		floor = d.Completeness
	}
	switch {
	case overall >= 75 && floor >= 50:
		return VerdictStrongHire
	case overall >= 60 && floor >= 40:
		return VerdictHire
	case overall >= 45 && floor >= 30:
		return VerdictLeanHire
	case overall >= 30:
		return VerdictLeanNoHire
	default:
		return VerdictNoHire
	}
}

// roundScore rounds a float score and clamps it to [0,100].
func roundScore(v float64) int {
	return clampScore(int(math.Round(v)))
}

// clampScore bounds an integer score to [0,100].
func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
