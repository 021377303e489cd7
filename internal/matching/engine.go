// Package matching implements the interviewer ranking engine: two
// independent fuzzy passes (position-weighted, company-weighted) plus a
// token-overlap pass, merged per candidate with priority rules and sorted
// by ascending score.
package matching

import (
	"sort"

	"go.uber.org/zap"

	"github.com/skillswap/interviewer-match/config"
	"github.com/skillswap/interviewer-match/index"
	"github.com/skillswap/interviewer-match/internal/fuzzy"
	"github.com/skillswap/interviewer-match/internal/textutil"
	"github.com/skillswap/interviewer-match/model"
	"github.com/skillswap/interviewer-match/services"
)

// TokenLookup returns the prebuilt profile token set for an application, or
// nil when none is indexed. A nil lookup makes the engine tokenize profiles
// on the fly.
type TokenLookup func(applicationID string) index.TokenSet

// Engine ranks a candidate pool against a query. It is stateless per
// invocation and safe for concurrent use.
type Engine struct {
	settings config.MatchingSettings
	stemmer  textutil.Stemmer
	logger   *zap.Logger
}

// NewEngine creates a ranking engine. Zero-valued settings fields are
// filled with defaults; the stemmer is selected once from the settings.
func NewEngine(settings config.MatchingSettings, logger *zap.Logger) *Engine {
	settings.ApplyDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		settings: settings,
		stemmer:  textutil.NewStemmer(settings.Stemmer),
		logger:   logger,
	}
}

// Rank orders the pool by relevance to the query. The pool is expected to
// be pre-filtered to approved interviewers; candidates are not mutated.
func (e *Engine) Rank(pool []model.Interviewer, query services.Query) []services.MatchResult {
	return e.RankWithTokens(pool, query, nil)
}

// RankWithTokens is Rank with an optional prebuilt token lookup for the
// word-overlap pass.
func (e *Engine) RankWithTokens(pool []model.Interviewer, query services.Query, tokens TokenLookup) []services.MatchResult {
	// Default "browse all approved interviewers" view: pool order, stats
	// attached, no match annotation.
	if query.IsEmpty() {
		results := make([]services.MatchResult, 0, len(pool))
		for _, iv := range pool {
			results = append(results, services.MatchResult{
				Application: iv.Application,
				User:        iv.User,
				Stats:       iv.Stats,
			})
		}
		return results
	}

	results := make(map[string]*services.MatchResult)

	if query.Position != "" {
		e.runPass("position", func() {
			e.positionPass(pool, query.Position, results)
		})
		e.runPass("position-word", func() {
			e.wordOverlapPass(pool, query.Position, tokens, results)
		})
	}

	if query.Company != "" {
		e.runPass("company", func() {
			e.companyPass(pool, query.Company, results)
		})
	}

	// Collect in pool order so equal scores keep a deterministic base
	// before the stable sort.
	ordered := make([]services.MatchResult, 0, len(results))
	for _, iv := range pool {
		if entry, ok := results[iv.Application.ID]; ok {
			ordered = append(ordered, *entry)
		}
	}

	// Ascending score (lower is better), then average rating descending,
	// then application ID for a fully deterministic order.
	sort.SliceStable(ordered, func(i, j int) bool {
		scoreI := *ordered[i].Score
		scoreJ := *ordered[j].Score
		if scoreI != scoreJ {
			return scoreI < scoreJ
		}
		if ordered[i].Stats.AverageRating != ordered[j].Stats.AverageRating {
			return ordered[i].Stats.AverageRating > ordered[j].Stats.AverageRating
		}
		return ordered[i].Application.ID < ordered[j].Application.ID
	})

	return ordered
}

// positionPass seeds the result map with strict fuzzy matches on position
// and qualification.
func (e *Engine) positionPass(pool []model.Interviewer, pattern string, results map[string]*services.MatchResult) {
	cfg := fuzzy.Config{
		Threshold: e.settings.PositionPass.Threshold,
		Distance:  e.settings.PositionPass.Distance,
	}

	for _, iv := range pool {
		fields := []fuzzy.WeightedField{
			{Text: iv.Application.Position, Weight: e.settings.PositionWeight},
			{Text: iv.Application.Qualification, Weight: e.settings.QualificationWeight},
		}
		score, ok := fuzzy.BestScore(fields, pattern, cfg)
		if !ok {
			continue
		}
		results[iv.Application.ID] = &services.MatchResult{
			Application: iv.Application,
			User:        iv.User,
			Score:       &score,
			MatchType:   services.MatchPosition,
			Stats:       iv.Stats,
		}
	}
}

// wordOverlapPass layers stemmed token-overlap matches under the stricter
// position pass. It is a coarse recall booster: it can add candidates the
// fuzzy threshold rejected and can only ever lower an existing score.
func (e *Engine) wordOverlapPass(pool []model.Interviewer, pattern string, tokens TokenLookup, results map[string]*services.MatchResult) {
	queryTokens := index.TokenSet(textutil.NormalizeSet(e.stemmer, pattern))
	if len(queryTokens) == 0 {
		return
	}

	wordScore := e.settings.WordMatchScore

	for _, iv := range pool {
		profileTokens := e.profileTokens(iv, tokens)
		if !profileTokens.Overlaps(queryTokens) {
			continue
		}

		entry, exists := results[iv.Application.ID]
		if !exists {
			score := wordScore
			results[iv.Application.ID] = &services.MatchResult{
				Application: iv.Application,
				User:        iv.User,
				Score:       &score,
				MatchType:   services.MatchPositionWord,
				Stats:       iv.Stats,
			}
			continue
		}

		// Only a plain position match is upgraded; a type set elsewhere
		// stays as is.
		if entry.MatchType == services.MatchPosition {
			entry.MatchType = services.MatchPositionBoth
		}
		if wordScore < *entry.Score {
			*entry.Score = wordScore
		}
	}
}

// companyPass runs the lenient fuzzy pass over company and college. A hit
// on a candidate already matched by the position criteria upgrades it to a
// dual match; company-only hits carry the configured penalty so they rank
// behind any position-qualified match.
func (e *Engine) companyPass(pool []model.Interviewer, pattern string, results map[string]*services.MatchResult) {
	cfg := fuzzy.Config{
		Threshold: e.settings.CompanyPass.Threshold,
		Distance:  e.settings.CompanyPass.Distance,
	}

	for _, iv := range pool {
		fields := []fuzzy.WeightedField{
			{Text: iv.Application.Company, Weight: e.settings.CompanyWeight},
			{Text: iv.User.College, Weight: e.settings.CollegeWeight},
		}
		score, ok := fuzzy.BestScore(fields, pattern, cfg)
		if !ok {
			continue
		}

		if entry, exists := results[iv.Application.ID]; exists {
			// The boost is unconditional: a dual-criterion match ranks
			// strictly better than either alone.
			entry.MatchType = services.MatchBoth
			*entry.Score *= e.settings.DualMatchBoost
			continue
		}

		penalized := score + e.settings.CompanyPenalty
		results[iv.Application.ID] = &services.MatchResult{
			Application: iv.Application,
			User:        iv.User,
			Score:       &penalized,
			MatchType:   services.MatchCompany,
			Stats:       iv.Stats,
		}
	}
}

// profileTokens returns the stemmed token set of a candidate's
// position + qualification + company, preferring the prebuilt index.
func (e *Engine) profileTokens(iv model.Interviewer, tokens TokenLookup) index.TokenSet {
	if tokens != nil {
		if set := tokens(iv.Application.ID); set != nil {
			return set
		}
	}
	return index.TokenSet(textutil.NormalizeSet(e.stemmer,
		iv.Application.Position, iv.Application.Qualification, iv.Application.Company))
}

// runPass executes one matching pass, converting a panic (malformed field,
// matcher failure) into "no hits from this pass". A partial ranked list is
// always preferable to failing the whole request.
func (e *Engine) runPass(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("matching pass failed, continuing with partial results",
				zap.String("pass", name), zap.Any("panic", r))
		}
	}()
	fn()
}
