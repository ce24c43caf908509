package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_LowercasesAndStripsPunctuation(t *testing.T) {
	got := Normalize("We use Redis, Kafka, and PostgreSQL!")
	assert.Equal(t, "we use redis kafka and postgresql", got)
}

func TestNormalize_PreservesApostrophesAndHyphens(t *testing.T) {
	got := Normalize("Don't forget fault-tolerance.")
	assert.Equal(t, "don't forget fault-tolerance", got)
}

func TestNormalize_CollapsesWhitespaceRuns(t *testing.T) {
	got := Normalize("  spaced\t\tout...   text  ")
	assert.Equal(t, "spaced out text", got)
}

func TestNormalize_EmptyAndPunctuationOnlyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("?!?... ---"))
}

func TestNormalize_DropsNonASCIILetters(t *testing.T) {
	got := Normalize("caché systems")
	assert.Equal(t, "cach systems", got)
}

func TestSplitSentences_TerminalPunctuation(t *testing.T) {
	got := splitSentences("First point. Second point! Third point? ")
	assert.Equal(t, []string{"First point", "Second point", "Third point"}, got)
}

func TestSplitSentences_DiscardsEmptyFragments(t *testing.T) {
	got := splitSentences("Wait... what?!")
	assert.Equal(t, []string{"Wait", "what"}, got)
}

func TestSplitSentences_NoBoundaries(t *testing.T) {
	got := splitSentences("no punctuation here")
	assert.Equal(t, []string{"no punctuation here"}, got)
}

func TestSplitSentences_EmptyInput(t *testing.T) {
	assert.Empty(t, splitSentences(""))
	assert.Empty(t, splitSentences("..."))
}

func TestTokenSet_DistinctTokens(t *testing.T) {
	set := tokenSet("first we plan then we build then we ship")
	assert.Len(t, set, 6)
	assert.Contains(t, set, "then")
	assert.NotContains(t, set, "later")
}
