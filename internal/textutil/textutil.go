// Package textutil normalizes free-text profile fields and queries into
// stemmed tokens for the word-overlap matching pass.
package textutil

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball/english"

	"github.com/skillswap/interviewer-match/config"
)

// nonAlphanumericRegex matches every character that is not a letter, digit,
// or whitespace. Such characters are replaced with a space before splitting.
var nonAlphanumericRegex = regexp.MustCompile(`[^a-zA-Z0-9\s]+`)

// Stemmer reduces a word to an approximate root form so related word forms
// ("developer", "development") collapse to a shared token. Implementations
// are selected once at startup, never per call in the hot path.
type Stemmer interface {
	Stem(word string) string
}

// SnowballStemmer applies the Porter stemming algorithm.
type SnowballStemmer struct{}

func (SnowballStemmer) Stem(word string) string {
	return english.Stem(word, true)
}

// suffixes recognized by SuffixStemmer, longest first so a single pass
// strips the most specific match.
var suffixes = []string{"ment", "tion", "ions", "ing", "ers", "er", "ed", "ly"}

// SuffixStemmer is a crude fallback that strips one common English suffix.
// No iterative stripping: at most one suffix is removed per word.
type SuffixStemmer struct{}

func (SuffixStemmer) Stem(word string) string {
	for _, suffix := range suffixes {
		if strings.HasSuffix(word, suffix) && len(word) > len(suffix)+1 {
			return word[:len(word)-len(suffix)]
		}
	}
	return word
}

// NewStemmer returns the stemmer named in the matching settings, defaulting
// to the snowball implementation for unrecognized names.
func NewStemmer(name string) Stemmer {
	if name == config.StemmerSuffix {
		return SuffixStemmer{}
	}
	return SnowballStemmer{}
}

// Normalize converts a string into a slice of stemmed tokens.
// It lowercases the input, replaces punctuation with spaces, collapses
// whitespace, splits into words, and stems each word. Empty or
// whitespace-only input yields an empty slice.
func Normalize(text string, stemmer Stemmer) []string {
	lowerText := strings.ToLower(text)
	cleaned := nonAlphanumericRegex.ReplaceAllString(lowerText, " ")

	split := strings.Fields(cleaned)

	tokens := make([]string, 0, len(split))
	for _, word := range split {
		if stemmed := stemmer.Stem(word); stemmed != "" {
			tokens = append(tokens, stemmed)
		}
	}
	return tokens
}

// NormalizeSet returns the stemmed tokens of the concatenation of the given
// texts as a set.
func NormalizeSet(stemmer Stemmer, texts ...string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, text := range texts {
		for _, token := range Normalize(text, stemmer) {
			set[token] = struct{}{}
		}
	}
	return set
}
