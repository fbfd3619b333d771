package client

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSearchTermsLowercasesAndSplits(t *testing.T) {
	terms := deriveSearchTerms("Sunset at THE beach! #nofilter, really?")
	assert.Equal(t, []string{"sunset", "at", "beach", "nofilter", "really"}, terms)
}

func TestDeriveSearchTermsDropsStopWordsAndEmptyTokens(t *testing.T) {
	terms := deriveSearchTerms("the A an IT ... !!  I'm")
	assert.Empty(t, terms)

	terms = deriveSearchTerms("a walk in the park")
	assert.Equal(t, []string{"walk", "park"}, terms)

	for _, term := range deriveSearchTerms("Some Description, with: MIXED case.tokens") {
		assert.Equal(t, strings.ToLower(term), term)
		assert.NotEmpty(t, term)
		assert.False(t, stopWords[term], "stop word %q leaked into index", term)
	}
}

func TestDeriveSearchTermsDeduplicates(t *testing.T) {
	terms := deriveSearchTerms("beach Beach BEACH beach")
	assert.Equal(t, []string{"beach"}, terms)
}

func TestDeriveSearchTermsEmptyDescription(t *testing.T) {
	assert.Empty(t, deriveSearchTerms(""))
	assert.Empty(t, deriveSearchTerms("  ,,!!  "))
}
