package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Matching runs against normalized text, so every term in the knowledge base
// must already be in normalized form or it can never match anything.
func TestConceptBase_TermsAreNormalized(t *testing.T) {
	for name, entry := range conceptBase {
		assert.Equal(t, Normalize(name), name, "canonical name %q is not normalized", name)
		for _, syn := range entry.Synonyms {
			assert.Equal(t, Normalize(syn), syn, "synonym %q of %q is not normalized", syn, name)
		}
		for _, rel := range entry.Related {
			assert.Equal(t, Normalize(rel), rel, "related term %q of %q is not normalized", rel, name)
		}
		assert.GreaterOrEqual(t, entry.Weight, 1, "weight of %q out of range", name)
		assert.LessOrEqual(t, entry.Weight, 3, "weight of %q out of range", name)
	}
}

func TestConceptBase_NamesAreSorted(t *testing.T) {
	assert.Len(t, conceptNames, len(conceptBase))
	for i := 1; i < len(conceptNames); i++ {
		assert.Less(t, conceptNames[i-1], conceptNames[i])
	}
}

func TestLookupConcept_CanonicalName(t *testing.T) {
	name, entry, ok := lookupConcept("caching")

	assert.True(t, ok)
	assert.Equal(t, "caching", name)
	assert.Equal(t, 3, entry.Weight)
}

func TestLookupConcept_SynonymResolvesToCanonical(t *testing.T) {
	name, entry, ok := lookupConcept("load balancing")

	assert.True(t, ok)
	assert.Equal(t, "load balancer", name)
	assert.Equal(t, 3, entry.Weight)
}

func TestLookupConcept_UnknownTerm(t *testing.T) {
	_, _, ok := lookupConcept("quantum flux")
	assert.False(t, ok)
}

func TestConceptInText_PrefersCanonicalOverSynonym(t *testing.T) {
	entry := conceptBase["caching"]

	form, tier, ok := conceptInText("caching and caches everywhere", "caching", entry)

	assert.True(t, ok)
	assert.Equal(t, "caching", form)
	assert.Equal(t, ConfidenceExact, tier)
}

func TestConceptInText_SynonymOnly(t *testing.T) {
	entry := conceptBase["caching"]

	form, tier, ok := conceptInText("we cache the results", "caching", entry)

	assert.True(t, ok)
	assert.Equal(t, "cache", form)
	assert.Equal(t, ConfidenceSynonym, tier)
}

func TestConceptInText_IgnoresRelatedTerms(t *testing.T) {
	entry := conceptBase["caching"]

	_, _, ok := conceptInText("redis handles it", "caching", entry)

	assert.False(t, ok)
}
