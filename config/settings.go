// Package config provides configuration structures for the matching service.
// It defines the fuzzy pass parameters, score merge constants, and stemmer
// selection used by the ranking engine.
package config

import (
	"fmt"
	"strings"
)

// Stemmer implementation names accepted by MatchingSettings.Stemmer.
const (
	StemmerSnowball = "snowball" // Porter stemmer backed by kljensen/snowball
	StemmerSuffix   = "suffix"   // single-pass suffix trimming fallback
)

// PassSettings configures one fuzzy pass of the ranking engine.
//
// Threshold is the maximum per-field distance ratio (0 = exact match only,
// 1 = match anything) beyond which a field does not count as a match.
// Distance bounds how many characters into a field an approximate match may
// start, which controls tolerance for matches deep inside longer fields.
type PassSettings struct {
	Threshold float64 `json:"threshold" mapstructure:"threshold"`
	Distance  int     `json:"distance" mapstructure:"distance"`
}

// MatchingSettings contains all tunables of the interviewer ranking engine.
//
// IMPORTANT: the position and company passes score on different scales by
// design. Position-pass scores stay within [0, PositionPass.Threshold] while
// company-only matches carry CompanyPenalty on top of their raw score, which
// encodes the product priority "role relevance > employer relevance". Do not
// normalize the two scales against each other.
type MatchingSettings struct {
	PositionPass PassSettings `json:"position_pass" mapstructure:"position-pass"`
	CompanyPass  PassSettings `json:"company_pass" mapstructure:"company-pass"`

	// Field weights. Higher-weight fields produce strictly better (lower)
	// score keys at equal raw distance.
	PositionWeight      float64 `json:"position_weight" mapstructure:"position-weight"`
	QualificationWeight float64 `json:"qualification_weight" mapstructure:"qualification-weight"`
	CompanyWeight       float64 `json:"company_weight" mapstructure:"company-weight"`
	CollegeWeight       float64 `json:"college_weight" mapstructure:"college-weight"`

	// WordMatchScore is the fixed score assigned to token-overlap ("word")
	// matches layered under the stricter position fuzzy pass.
	WordMatchScore float64 `json:"word_match_score" mapstructure:"word-match-score"`

	// CompanyPenalty is added to company-only match scores so they rank
	// behind any position-qualified match.
	CompanyPenalty float64 `json:"company_penalty" mapstructure:"company-penalty"`

	// DualMatchBoost multiplies the score of a candidate matching both
	// criteria. Must be below 1 so a dual match ranks strictly better than
	// either criterion alone.
	DualMatchBoost float64 `json:"dual_match_boost" mapstructure:"dual-match-boost"`

	// Stemmer selects the stemming strategy at startup: "snowball" or
	// "suffix". Selection happens once, never per call.
	Stemmer string `json:"stemmer" mapstructure:"stemmer"`
}

// ApplyDefaults applies default values to unset matching settings.
func (settings *MatchingSettings) ApplyDefaults() {
	if settings.PositionPass.Threshold == 0 {
		settings.PositionPass.Threshold = 0.3
	}
	if settings.PositionPass.Distance == 0 {
		settings.PositionPass.Distance = 100
	}
	if settings.CompanyPass.Threshold == 0 {
		settings.CompanyPass.Threshold = 0.4
	}
	if settings.CompanyPass.Distance == 0 {
		settings.CompanyPass.Distance = 100
	}
	if settings.PositionWeight == 0 {
		settings.PositionWeight = 3
	}
	if settings.QualificationWeight == 0 {
		settings.QualificationWeight = 1
	}
	if settings.CompanyWeight == 0 {
		settings.CompanyWeight = 2
	}
	if settings.CollegeWeight == 0 {
		settings.CollegeWeight = 1
	}
	if settings.WordMatchScore == 0 {
		settings.WordMatchScore = 0.15
	}
	if settings.CompanyPenalty == 0 {
		settings.CompanyPenalty = 0.3
	}
	if settings.DualMatchBoost == 0 {
		settings.DualMatchBoost = 0.5
	}
	if strings.TrimSpace(settings.Stemmer) == "" {
		settings.Stemmer = StemmerSnowball
	}
}

// Validate checks the settings for inconsistent values and returns a list of
// human-readable conflicts. An empty slice means the settings are usable.
func (settings *MatchingSettings) Validate() []string {
	var conflicts []string

	conflicts = append(conflicts, validatePass("position_pass", settings.PositionPass)...)
	conflicts = append(conflicts, validatePass("company_pass", settings.CompanyPass)...)

	for name, weight := range map[string]float64{
		"position_weight":      settings.PositionWeight,
		"qualification_weight": settings.QualificationWeight,
		"company_weight":       settings.CompanyWeight,
		"college_weight":       settings.CollegeWeight,
	} {
		if weight <= 0 {
			conflicts = append(conflicts, fmt.Sprintf("%s must be positive, got %v", name, weight))
		}
	}

	if settings.WordMatchScore < 0 {
		conflicts = append(conflicts, fmt.Sprintf("word_match_score cannot be negative, got %v", settings.WordMatchScore))
	}
	if settings.CompanyPenalty < 0 {
		conflicts = append(conflicts, fmt.Sprintf("company_penalty cannot be negative, got %v", settings.CompanyPenalty))
	}
	if settings.DualMatchBoost <= 0 || settings.DualMatchBoost >= 1 {
		conflicts = append(conflicts, fmt.Sprintf("dual_match_boost must be in (0, 1), got %v", settings.DualMatchBoost))
	}

	switch settings.Stemmer {
	case StemmerSnowball, StemmerSuffix:
	default:
		conflicts = append(conflicts, fmt.Sprintf("unknown stemmer '%s' (must be '%s' or '%s')",
			settings.Stemmer, StemmerSnowball, StemmerSuffix))
	}

	return conflicts
}

func validatePass(name string, pass PassSettings) []string {
	var conflicts []string
	if pass.Threshold < 0 || pass.Threshold > 1 {
		conflicts = append(conflicts, fmt.Sprintf("%s.threshold must be in [0, 1], got %v", name, pass.Threshold))
	}
	if pass.Distance < 0 {
		conflicts = append(conflicts, fmt.Sprintf("%s.distance cannot be negative, got %d", name, pass.Distance))
	}
	return conflicts
}
