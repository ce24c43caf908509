package evaluation

import (
	"math"
	"regexp"
	"strings"
)

// maxExtractedConcepts caps how many required concepts ideal-answer
// extraction may produce.
const maxExtractedConcepts = 15

// maxBonusConcepts caps how many non-required knowledge-base concepts can
// earn bonus credit.
const maxBonusConcepts = 5

// confidenceCredit maps each match tier to the fraction of the concept's
// weight it earns.
var confidenceCredit = map[Confidence]float64{
	ConfidenceExact:   1.0,
	ConfidenceSynonym: 0.9,
	ConfidenceRelated: 0.7,
	ConfidencePartial: 0.5,
}

// adHocTermPattern captures multi-word capitalized sequences from raw text,
// the usual shape of product names and technologies ("Load Balancer",
// "Amazon S3") that the knowledge base does not know about.
var adHocTermPattern = regexp.MustCompile(`[A-Z][A-Za-z0-9]*(?:\s+[A-Z][A-Za-z0-9]*)+`)

// requiredConcept is one concept the answer is expected to cover. Concepts
// resolved through the knowledge base carry its synonyms, related terms, and
// weight; ad-hoc concepts carry only a name and the default weight.
type requiredConcept struct {
	name  string
	entry ConceptEntry
}

// coverageAnalysis is the outcome of concept matching for one answer.
type coverageAnalysis struct {
	Covered        []ConceptMatch
	Missed         []string
	CoverageScore  int
	TechnicalDepth int
}

// analyzeCoverage determines which required concepts the user's answer covers
// and scores the coverage. Required concepts come from explicit question
// keywords when present, otherwise from the ideal answer, otherwise from the
// user's own answer. Raw and normalized forms of both texts are needed:
// matching runs on normalized text while ad-hoc term extraction depends on
// the original capitalization.
func analyzeCoverage(userRaw, userNorm, idealRaw, idealNorm string, explicit []string) coverageAnalysis {
	required := resolveRequired(explicit, idealRaw, idealNorm, userRaw, userNorm)
	userWords := strings.Fields(userNorm)

	covered := make([]ConceptMatch, 0, len(required))
	missed := make([]string, 0)
	coveredWeight := 0.0
	totalWeight := 0.0
	requiredSet := make(map[string]struct{}, len(required))

	for _, rc := range required {
		requiredSet[rc.name] = struct{}{}
		totalWeight += float64(rc.entry.Weight)
		match, ok := matchConcept(userNorm, userWords, rc)
		if !ok {
			missed = append(missed, rc.name)
			continue
		}
		covered = append(covered, match)
		coveredWeight += confidenceCredit[match.Confidence] * float64(rc.entry.Weight)
	}

	// Concepts the answer brings up beyond the required set still show
	// knowledge. They earn half weight and raise both sides of the ratio, so
	// a bonus can never lower the coverage score.
	bonuses := 0
	for _, name := range conceptNames {
		if bonuses >= maxBonusConcepts {
			break
		}
		if _, isRequired := requiredSet[name]; isRequired {
			continue
		}
		entry := conceptBase[name]
		form, tier, ok := conceptInText(userNorm, name, entry)
		if !ok {
			continue
		}
		credit := 0.5 * float64(entry.Weight)
		covered = append(covered, ConceptMatch{Concept: name, MatchedAs: form, Confidence: tier})
		coveredWeight += credit
		totalWeight += credit
		bonuses++
	}

	score := 0
	if totalWeight > 0 {
		score = int(math.Round(100 * coveredWeight / totalWeight))
	}
	depth := int(math.Round(math.Min(100, float64(15*len(covered))+0.4*float64(score))))

	return coverageAnalysis{
		Covered:        covered,
		Missed:         missed,
		CoverageScore:  score,
		TechnicalDepth: depth,
	}
}

// resolveRequired builds the required concept list from the highest-priority
// source available.
func resolveRequired(explicit []string, idealRaw, idealNorm, userRaw, userNorm string) []requiredConcept {
	if len(explicit) > 0 {
		return resolveKeywords(explicit)
	}
	if strings.TrimSpace(idealNorm) != "" {
		if extracted := extractConcepts(idealRaw, idealNorm); len(extracted) > 0 {
			return extracted
		}
	}
	return extractConcepts(userRaw, userNorm)
}

// resolveKeywords maps explicit question keywords to required concepts.
// Keywords matching a knowledge-base concept or synonym resolve to the
// canonical entry; the rest become ad-hoc concepts with the default weight.
func resolveKeywords(keywords []string) []requiredConcept {
	required := make([]requiredConcept, 0, len(keywords))
	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		norm := Normalize(kw)
		if norm == "" {
			continue
		}
		name := norm
		entry := ConceptEntry{Weight: adHocWeight}
		if canonical, known, ok := lookupConcept(norm); ok {
			name = canonical
			entry = known
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		required = append(required, requiredConcept{name: name, entry: entry})
	}
	return required
}

// extractConcepts derives required concepts from answer text: every
// knowledge-base concept mentioned directly, plus capitalized multi-word
// terms the knowledge base does not know. Knowledge-base concepts are scanned
// in sorted order and ad-hoc terms in document order, so the result is
// deterministic.
func extractConcepts(raw, norm string) []requiredConcept {
	required := make([]requiredConcept, 0, maxExtractedConcepts)
	seen := make(map[string]struct{})

	for _, name := range conceptNames {
		if len(required) >= maxExtractedConcepts {
			return required
		}
		entry := conceptBase[name]
		if _, _, ok := conceptInText(norm, name, entry); ok {
			seen[name] = struct{}{}
			required = append(required, requiredConcept{name: name, entry: entry})
		}
	}

	for _, term := range adHocTermPattern.FindAllString(raw, -1) {
		if len(required) >= maxExtractedConcepts {
			break
		}
		name := Normalize(term)
		if name == "" {
			continue
		}
		if canonical, _, ok := lookupConcept(name); ok {
			name = canonical
		}
		if _, dup := seen[name]; dup {
			continue
		}
		if _, known := conceptBase[name]; known {
			// Already scanned above; a capitalized mention means it is
			// present in the text but was capped out, so skip it here too.
			continue
		}
		seen[name] = struct{}{}
		required = append(required, requiredConcept{name: name, entry: ConceptEntry{Weight: adHocWeight}})
	}

	return required
}

// matchConcept finds the strongest match for one required concept in the
// user's answer. Tiers are tried strictly in order of confidence and the
// first hit wins, so a concept never earns more than one match.
func matchConcept(userNorm string, userWords []string, rc requiredConcept) (ConceptMatch, bool) {
	if strings.Contains(userNorm, rc.name) {
		return ConceptMatch{Concept: rc.name, MatchedAs: rc.name, Confidence: ConfidenceExact}, true
	}
	for _, syn := range rc.entry.Synonyms {
		if strings.Contains(userNorm, syn) {
			return ConceptMatch{Concept: rc.name, MatchedAs: syn, Confidence: ConfidenceSynonym}, true
		}
	}
	for _, rel := range rc.entry.Related {
		if strings.Contains(userNorm, rel) {
			return ConceptMatch{Concept: rc.name, MatchedAs: rel, Confidence: ConfidenceRelated}, true
		}
	}
	for _, word := range userWords {
		if len(word) < 3 {
			continue
		}
		if fuzzyWordMatch(word, rc.name) {
			return ConceptMatch{Concept: rc.name, MatchedAs: word, Confidence: ConfidencePartial}, true
		}
	}
	return ConceptMatch{}, false
}

// fuzzyWordMatch reports whether a single answer word is close enough to a
// concept term to count as a partial match: either the two share a prefix
// (up to 4 characters) with similar lengths, or better than 70% of their
// characters overlap.
func fuzzyWordMatch(word, term string) bool {
	n := 4
	if len(term) < n {
		n = len(term)
	}
	if n > 0 && len(word) >= n && word[:n] == term[:n] {
		diff := len(word) - len(term)
		if diff < 0 {
			diff = -diff
		}
		if diff <= 3 {
			return true
		}
	}
	return similarityRatio(word, term) > 0.7
}

// similarityRatio measures character overlap between two strings: the number
// of shared characters, each consumed at most once, divided by the longer
// length. Order is ignored, which keeps transposed spellings close.
func similarityRatio(a, b string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	remaining := make(map[rune]int, len(b))
	for _, r := range b {
		remaining[r]++
	}
	shared := 0
	for _, r := range a {
		if remaining[r] > 0 {
			remaining[r]--
			shared++
		}
	}
	longer := len(a)
	if len(b) > longer {
		longer = len(b)
	}
	return float64(shared) / float64(longer)
}
