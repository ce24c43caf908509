package evaluation

import "strings"

// Normalize lowercases text and reduces it to the alphabet the concept
// matcher operates on. Every character other than letters, digits,
// apostrophes, and hyphens becomes a space, runs of spaces collapse to one,
// and the result is trimmed. Apostrophes and hyphens survive so contractions
// ("don't") and compound terms ("fault-tolerance") stay intact.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(lowered))
	lastSpace := false
	for _, r := range lowered {
		if isWordRune(r) {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '\'' || r == '-':
		return true
	}
	return false
}

// splitSentences breaks raw text on terminal punctuation and drops fragments
// that contain no words. Normalized text has no punctuation left, so sentence
// counting always runs on the original input.
func splitSentences(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			sentences = append(sentences, strings.TrimSpace(part))
		}
	}
	return sentences
}

// tokenSet returns the distinct whitespace-separated tokens of normalized text.
func tokenSet(norm string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(norm) {
		set[tok] = struct{}{}
	}
	return set
}
