package evaluation

import (
	"math"
	"regexp"
	"strings"
)

// fillerTerms are the spoken-delivery fillers the engine looks for, in the
// order they are reported. Multi-word fillers are matched as whole phrases.
var fillerTerms = []string{
	"um", "uh", "like", "you know", "basically", "actually", "literally",
	"sort of", "kind of", "i mean", "right", "okay", "so yeah", "anyway",
	"i guess", "i think", "maybe", "probably", "stuff", "things", "whatever",
}

var fillerPatterns = compileFillerPatterns()

func compileFillerPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(fillerTerms))
	for i, term := range fillerTerms {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
	}
	return patterns
}

// stopWords are excluded from the meaningful-word analysis behind repetition
// and vocabulary richness. Tokens of length three or less are excluded by the
// length check, so only longer function words appear here.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "that": {}, "this": {}, "with": {}, "from": {},
	"have": {}, "been": {}, "were": {}, "would": {}, "could": {}, "should": {},
}

// analyzeFluency measures delivery quality from the raw answer text. It works
// on the original casing and punctuation: fillers are matched against the
// lowercased raw text and sentences are split on terminal punctuation, both
// of which the normalizer destroys.
func analyzeFluency(raw string) FluencyMetrics {
	lowered := strings.ToLower(raw)
	tokens := strings.Fields(lowered)
	metrics := FluencyMetrics{WordCount: len(tokens)}

	if len(tokens) > 0 {
		distinct := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			distinct[tok] = struct{}{}
		}
		metrics.UniqueWordRatio = float64(len(distinct)) / float64(len(tokens))
	}

	for i, pattern := range fillerPatterns {
		hits := len(pattern.FindAllStringIndex(lowered, -1))
		if hits == 0 {
			continue
		}
		metrics.FillerWordCount += hits
		metrics.FillerWords = append(metrics.FillerWords, fillerTerms[i])
	}

	meaningful := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		word := strings.TrimFunc(tok, func(r rune) bool { return !isWordRune(r) })
		if len(word) <= 3 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		meaningful = append(meaningful, word)
	}
	if len(meaningful) > 0 {
		counts := make(map[string]int, len(meaningful))
		for _, word := range meaningful {
			counts[word]++
		}
		repeated := 0
		for _, word := range meaningful {
			if counts[word] > 2 {
				repeated++
			}
		}
		metrics.RepetitionScore = int(math.Round(100 * float64(repeated) / float64(len(meaningful))))
		metrics.VocabularyRichness = int(math.Round(100 * float64(len(counts)) / float64(len(meaningful))))
	}

	if sentences := len(splitSentences(raw)); sentences > 0 {
		metrics.AverageSentenceLength = int(math.Round(float64(len(tokens)) / float64(sentences)))
	} else {
		metrics.AverageSentenceLength = len(tokens)
	}

	return metrics
}
