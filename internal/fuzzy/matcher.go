// Package fuzzy provides approximate substring matching for short free-text
// fields. Scores are distance ratios in [0, 1] where lower means a closer
// match; they are comparable only within one threshold/weight configuration.
package fuzzy

import "strings"

// Config controls one matching pass.
type Config struct {
	// Threshold is the maximum score for a field to count as a match
	// (0 = exact match only, 1 = match anything).
	Threshold float64

	// Distance bounds how many characters into a field an approximate
	// match may start. Matches deeper inside the field are ignored.
	Distance int
}

// WeightedField is one candidate text field with its weight. Higher-weight
// fields produce strictly better (lower) weighted scores at equal raw
// distance, so they dominate the per-candidate score when they match.
type WeightedField struct {
	Text   string
	Weight float64
}

// Score computes the raw distance ratio of pattern against text: the
// minimum edits to align the whole pattern with a substring of text,
// divided by the pattern length. The second return is false when the field
// does not qualify (empty input, match start outside the distance window,
// or score above the threshold).
func Score(text, pattern string, cfg Config) (float64, bool) {
	patternRunes := []rune(strings.ToLower(strings.TrimSpace(pattern)))
	textRunes := []rune(strings.ToLower(text))

	if len(patternRunes) == 0 || len(textRunes) == 0 {
		return 0, false
	}

	edits, _ := substringAlignment(patternRunes, textRunes, cfg.Distance)
	if edits < 0 {
		return 0, false
	}

	score := float64(edits) / float64(len(patternRunes))
	if score > 1 {
		score = 1
	}
	if score > cfg.Threshold {
		return 0, false
	}
	return score, true
}

// BestScore scores the pattern against every field and returns the lowest
// weighted score among the qualifying ones. Thresholding happens on the raw
// score; the weight only orders qualifying matches. Returns false when no
// field qualifies.
func BestScore(fields []WeightedField, pattern string, cfg Config) (float64, bool) {
	best := 0.0
	matched := false

	for _, field := range fields {
		if field.Weight <= 0 {
			continue
		}
		raw, ok := Score(field.Text, pattern, cfg)
		if !ok {
			continue
		}
		weighted := raw / field.Weight
		if !matched || weighted < best {
			best = weighted
			matched = true
		}
	}

	return best, matched
}
