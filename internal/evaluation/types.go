package evaluation

// Category identifies the kind of interview question an answer responds to.
// It selects the indicator sets and score weighting used during evaluation.
type Category string

const (
	// CategoryTechnical covers knowledge and coding questions. It is the default.
	CategoryTechnical Category = "technical"
	// CategoryBehavioral covers experience questions, where STAR structure matters most.
	CategoryBehavioral Category = "behavioral"
	// CategorySystemDesign covers architecture questions, where concept coverage matters most.
	CategorySystemDesign Category = "system_design"
)

// ParseCategory parses a user-provided category value. Unknown or empty values
// fall back to CategoryTechnical so that evaluation never fails on bad input.
func ParseCategory(raw string) Category {
	switch Category(raw) {
	case CategoryBehavioral:
		return CategoryBehavioral
	case CategorySystemDesign:
		return CategorySystemDesign
	default:
		return CategoryTechnical
	}
}

// Confidence ranks how directly a required concept was found in an answer.
type Confidence string

const (
	// ConfidenceExact means the canonical concept name appeared verbatim.
	ConfidenceExact Confidence = "exact"
	// ConfidenceSynonym means a listed synonym appeared.
	ConfidenceSynonym Confidence = "synonym"
	// ConfidenceRelated means a related term appeared.
	ConfidenceRelated Confidence = "related"
	// ConfidencePartial means only a fuzzy word-level match was found.
	ConfidencePartial Confidence = "partial"
)

// Verdict is the five-level hiring recommendation derived from the scores.
type Verdict string

const (
	VerdictStrongHire Verdict = "strong_hire"
	VerdictHire       Verdict = "hire"
	VerdictLeanHire   Verdict = "lean_hire"
	VerdictLeanNoHire Verdict = "lean_no_hire"
	VerdictNoHire     Verdict = "no_hire"
)

// ConceptMatch records one concept detected in the answer, the surface form it
// was matched through, and the confidence tier of that match.
type ConceptMatch struct {
	Concept    string     `json:"concept"`
	MatchedAs  string     `json:"matched_as"`
	Confidence Confidence `json:"confidence"`
}

// STARBreakdown reports which STAR components were detected in the answer.
type STARBreakdown struct {
	Situation bool `json:"situation"`
	Task      bool `json:"task"`
	Action    bool `json:"action"`
	Result    bool `json:"result"`
}

// Count returns the number of STAR components present.
func (b STARBreakdown) Count() int {
	count := 0
	for _, present := range []bool{b.Situation, b.Task, b.Action, b.Result} {
		if present {
			count++
		}
	}
	return count
}

// StructureAnalysis describes the discourse structure detected in an answer.
type StructureAnalysis struct {
	HasIntroduction   bool          `json:"has_introduction"`
	HasExamples       bool          `json:"has_examples"`
	HasConclusion     bool          `json:"has_conclusion"`
	UsesSTAR          bool          `json:"uses_star"`
	STAR              STARBreakdown `json:"star"`
	OrganizationScore int           `json:"organization_score"`
}

// FluencyMetrics describes delivery quality computed from the raw answer text.
// Sentence boundaries and casing matter here, so the original (non-normalized)
// text is analyzed.
type FluencyMetrics struct {
	WordCount             int      `json:"word_count"`
	UniqueWordRatio       float64  `json:"unique_word_ratio"`
	FillerWordCount       int      `json:"filler_word_count"`
	FillerWords           []string `json:"filler_words,omitempty"`
	RepetitionScore       int      `json:"repetition_score"`
	AverageSentenceLength int      `json:"average_sentence_length"`
	VocabularyRichness    int      `json:"vocabulary_richness"`
}

// DimensionScores holds the four independently computed quality dimensions,
// each clamped to [0,100].
type DimensionScores struct {
	Technical     int `json:"technical"`
	Completeness  int `json:"completeness"`
	Structure     int `json:"structure"`
	Communication int `json:"communication"`
}

// Result is the complete outcome of evaluating one answer. It is a pure value:
// the engine keeps no state between calls and never persists results itself.
type Result struct {
	OverallScore    int               `json:"overall_score"`
	Verdict         Verdict           `json:"verdict"`
	Dimensions      DimensionScores   `json:"dimensions"`
	CoveredConcepts []ConceptMatch    `json:"covered_concepts"`
	MissedConcepts  []string          `json:"missed_concepts"`
	Feedback        []string          `json:"feedback"`
	Strengths       []string          `json:"strengths"`
	Improvements    []string          `json:"improvements"`
	Structure       StructureAnalysis `json:"structure"`
	Fluency         FluencyMetrics    `json:"fluency"`
}
