package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreDimensions_TechnicalAndCompleteness(t *testing.T) {
	cov := coverageAnalysis{CoverageScore: 80, TechnicalDepth: 60}
	fl := FluencyMetrics{WordCount: 60, AverageSentenceLength: 15, VocabularyRichness: 80, RepetitionScore: 10, FillerWordCount: 2}

	dims := scoreDimensions(cov, StructureAnalysis{OrganizationScore: 70}, fl, 100)

	assert.Equal(t, 74, dims.Technical)
	// 0.6*80 + 0.4*100*min(60/50, 1).
	assert.Equal(t, 88, dims.Completeness)
	assert.Equal(t, 70, dims.Structure)
}

func TestScoreDimensions_CompletenessWithoutIdealAnswer(t *testing.T) {
	cov := coverageAnalysis{CoverageScore: 50, TechnicalDepth: 50}

	dims := scoreDimensions(cov, StructureAnalysis{}, FluencyMetrics{WordCount: 40}, 0)

	assert.Equal(t, 30, dims.Completeness)
}

func TestScoreDimensions_CommunicationPenalties(t *testing.T) {
	fl := FluencyMetrics{
		WordCount:             25,
		FillerWordCount:       10,
		RepetitionScore:       40,
		VocabularyRichness:    30,
		AverageSentenceLength: 5,
	}

	dims := scoreDimensions(coverageAnalysis{}, StructureAnalysis{}, fl, 0)

	// 100 - 20 (fillers) - 15 (repetition) - 6 (flat vocabulary) - 20 (short).
	assert.Equal(t, 39, dims.Communication)
}

func TestScoreDimensions_CommunicationClampedAt100(t *testing.T) {
	fl := FluencyMetrics{
		WordCount:             60,
		FillerWordCount:       2,
		RepetitionScore:       10,
		VocabularyRichness:    80,
		AverageSentenceLength: 15,
	}

	dims := scoreDimensions(coverageAnalysis{}, StructureAnalysis{}, fl, 0)

	assert.Equal(t, 100, dims.Communication)
}

func TestOverallScore_CategoryWeights(t *testing.T) {
	dims := DimensionScores{Technical: 80, Completeness: 70, Structure: 60, Communication: 90}

	tests := []struct {
		category Category
		want     int
	}{
		{category: CategoryTechnical, want: 76},
		{category: CategoryBehavioral, want: 74},
		{category: CategorySystemDesign, want: 76},
		{category: Category("unknown"), want: 76},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, overallScore(dims, tt.category))
		})
	}
}

func TestVerdictFor_Ladder(t *testing.T) {
	tests := []struct {
		name         string
		overall      int
		technical    int
		completeness int
		want         Verdict
	}{
		{name: "strong hire", overall: 80, technical: 60, completeness: 55, want: VerdictStrongHire},
		{name: "strong hire boundary", overall: 75, technical: 50, completeness: 50, want: VerdictStrongHire},
		{name: "high overall low floor drops to hire", overall: 80, technical: 45, completeness: 90, want: VerdictHire},
		{name: "hire boundary", overall: 60, technical: 40, completeness: 40, want: VerdictHire},
		{name: "lean hire", overall: 59, technical: 45, completeness: 45, want: VerdictLeanHire},
		{name: "lean hire low floor", overall: 80, technical: 35, completeness: 90, want: VerdictLeanHire},
		{name: "lean no hire", overall: 44, technical: 90, completeness: 90, want: VerdictLeanNoHire},
		{name: "lean no hire tiny floor", overall: 80, technical: 20, completeness: 90, want: VerdictLeanNoHire},
		{name: "no hire", overall: 29, technical: 0, completeness: 0, want: VerdictNoHire},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dims := DimensionScores{Technical: tt.technical, Completeness: tt.completeness}
			assert.Equal(t, tt.want, verdictFor(tt.overall, dims))
		})
	}
}

func TestClampScore_Bounds(t *testing.T) {
	assert.Equal(t, 0, clampScore(-5))
	assert.Equal(t, 0, clampScore(0))
	assert.Equal(t, 55, clampScore(55))
	assert.Equal(t, 100, clampScore(100))
	assert.Equal(t, 100, clampScore(140))
}
