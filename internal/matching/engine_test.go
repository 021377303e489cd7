package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/interviewer-match/config"
	"github.com/skillswap/interviewer-match/index"
	"github.com/skillswap/interviewer-match/model"
	"github.com/skillswap/interviewer-match/services"
)

func newTestEngine() *Engine {
	return NewEngine(config.MatchingSettings{}, nil)
}

func makeInterviewer(id, position, qualification, company, college string, rating float64) model.Interviewer {
	return model.Interviewer{
		Application: model.Application{
			ID:            id,
			Position:      position,
			Qualification: qualification,
			Company:       company,
			Status:        model.StatusApproved,
		},
		User: model.UserProfile{
			ID:      "user-" + id,
			Name:    "User " + id,
			College: college,
		},
		Stats: model.InterviewerStats{
			ConductedInterviews: 10,
			AverageRating:       rating,
			TotalRatings:        10,
		},
	}
}

func TestRank_EmptyQueryReturnsPoolOrder(t *testing.T) {
	engine := newTestEngine()
	pool := []model.Interviewer{
		makeInterviewer("a1", "Software Engineer", "B.Tech", "Acme", "MIT", 4.5),
		makeInterviewer("a2", "Product Manager", "MBA", "Initech", "Harvard", 4.8),
		makeInterviewer("a3", "Data Scientist", "PhD", "Globex", "Stanford", 3.9),
	}

	results := engine.Rank(pool, services.Query{})

	require.Len(t, results, 3)
	for i, result := range results {
		assert.Equal(t, pool[i].Application.ID, result.Application.ID)
		assert.Nil(t, result.Score, "browse results carry no score")
		assert.Empty(t, result.MatchType)
		assert.Equal(t, pool[i].Stats, result.Stats)
	}
}

func TestRank_ExactPositionMatchScoresZero(t *testing.T) {
	engine := newTestEngine()
	pool := []model.Interviewer{
		makeInterviewer("a1", "Software Engineer", "B.Tech", "Acme", "MIT", 4.5),
		makeInterviewer("a2", "Product Manager", "MBA", "Initech", "Harvard", 4.8),
	}

	results := engine.Rank(pool, services.Query{Position: "Software Engineer"})

	require.Len(t, results, 1)
	assert.Equal(t, "a1", results[0].Application.ID)
	require.NotNil(t, results[0].Score)
	assert.Equal(t, 0.0, *results[0].Score)
	// The word pass also overlaps on an exact match, upgrading the type.
	assert.Equal(t, services.MatchPositionBoth, results[0].MatchType)
}

func TestRank_WordOverlapRecoversFuzzyMiss(t *testing.T) {
	engine := newTestEngine()
	// "Backend Development" needs at least ten edits against "Developer",
	// far past the position threshold, but the stems share "develop".
	pool := []model.Interviewer{
		makeInterviewer("a1", "Developer", "Bootcamp", "Initech", "CMU", 4.0),
		makeInterviewer("a2", "Accountant", "CPA", "Initech", "CMU", 4.0),
	}

	results := engine.Rank(pool, services.Query{Position: "Backend Development"})

	require.Len(t, results, 1)
	assert.Equal(t, "a1", results[0].Application.ID)
	require.NotNil(t, results[0].Score)
	assert.Equal(t, 0.15, *results[0].Score)
	assert.Equal(t, services.MatchPositionWord, results[0].MatchType)
}

func TestRank_WordOverlapUpgradesFuzzyHit(t *testing.T) {
	engine := newTestEngine()
	// "Developer" aligns against "development" within the threshold and
	// shares the "develop" stem, so both passes hit.
	pool := []model.Interviewer{
		makeInterviewer("a1", "Backend Development", "Systems", "Globex", "Stanford", 4.0),
	}

	results := engine.Rank(pool, services.Query{Position: "Developer"})

	require.Len(t, results, 1)
	assert.Equal(t, services.MatchPositionBoth, results[0].MatchType)
	require.NotNil(t, results[0].Score)
	assert.Less(t, *results[0].Score, 0.15, "the fuzzy score is better than the fixed word score and must be kept")
}

func TestRank_DualMatchOutranksSingleCriterion(t *testing.T) {
	engine := newTestEngine()
	pool := []model.Interviewer{
		makeInterviewer("1", "Backend Developer", "", "Acme", "", 4.0),
		makeInterviewer("2", "Frontend Developer", "", "Globex", "", 4.0),
	}

	results := engine.Rank(pool, services.Query{Position: "developer", Company: "Acme"})

	require.Len(t, results, 2)
	assert.Equal(t, "1", results[0].Application.ID)
	assert.Equal(t, services.MatchBoth, results[0].MatchType)
	assert.Equal(t, "2", results[1].Application.ID)
	assert.Equal(t, services.MatchPositionBoth, results[1].MatchType)
	assert.LessOrEqual(t, *results[0].Score, *results[1].Score)
}

func TestRank_DualMatchHalvesPositionScore(t *testing.T) {
	engine := newTestEngine()
	pool := []model.Interviewer{
		makeInterviewer("a1", "Software Engineer", "B.Tech", "Acme Corp", "MIT", 4.5),
	}

	positionOnly := engine.Rank(pool, services.Query{Position: "Sofware Engineer"})
	require.Len(t, positionOnly, 1)
	require.NotNil(t, positionOnly[0].Score)

	combined := engine.Rank(pool, services.Query{Position: "Sofware Engineer", Company: "Acme"})
	require.Len(t, combined, 1)
	require.NotNil(t, combined[0].Score)

	assert.Equal(t, services.MatchBoth, combined[0].MatchType)
	assert.InDelta(t, *positionOnly[0].Score*0.5, *combined[0].Score, 1e-12)
	assert.Less(t, *combined[0].Score, *positionOnly[0].Score)
}

func TestRank_CompanyOnlyMatchCarriesPenalty(t *testing.T) {
	engine := newTestEngine()
	pool := []model.Interviewer{
		makeInterviewer("a1", "Product Manager", "MBA", "Globex", "Harvard", 4.2),
		makeInterviewer("a2", "Designer", "B.Des", "Initech", "RISD", 4.9),
	}

	results := engine.Rank(pool, services.Query{Company: "Globex"})

	require.Len(t, results, 1)
	assert.Equal(t, "a1", results[0].Application.ID)
	require.NotNil(t, results[0].Score)
	assert.Equal(t, 0.3, *results[0].Score, "exact company match still pays the company-only penalty")
	assert.Equal(t, services.MatchCompany, results[0].MatchType)
}

func TestRank_TieBreakByRatingThenID(t *testing.T) {
	engine := newTestEngine()
	// All three qualify only through the word pass, at the same fixed
	// score, so ordering falls through to rating and then ID.
	pool := []model.Interviewer{
		makeInterviewer("ta", "Developer", "", "Initech", "", 4.2),
		makeInterviewer("tc", "Developer", "", "Initech", "", 4.2),
		makeInterviewer("tb", "Developer", "", "Initech", "", 4.8),
	}

	results := engine.Rank(pool, services.Query{Position: "Backend Development"})

	require.Len(t, results, 3)
	assert.Equal(t, "tb", results[0].Application.ID)
	assert.Equal(t, "ta", results[1].Application.ID)
	assert.Equal(t, "tc", results[2].Application.ID)
}

func TestRank_CombinedQueryOrdering(t *testing.T) {
	engine := newTestEngine()
	pool := []model.Interviewer{
		makeInterviewer("e1", "Frontend Developer", "B.Sc", "Acme Corporation", "MIT", 4.0),
		makeInterviewer("e2", "Backend Developer", "M.Sc", "Globex", "Stanford", 4.5),
		makeInterviewer("e3", "Developer", "Bootcamp", "Acme Inc", "CMU", 3.9),
		makeInterviewer("e4", "Data Scientist", "PhD", "Initech", "Berkeley", 5.0),
	}

	results := engine.Rank(pool, services.Query{Position: "Backend Developer", Company: "Acme"})

	require.Len(t, results, 3)

	assert.Equal(t, "e2", results[0].Application.ID)
	assert.Equal(t, 0.0, *results[0].Score)

	// e1 and e3 both match on company too, so both rank as dual matches
	// behind the exact position hit.
	assert.Equal(t, "e1", results[1].Application.ID)
	assert.Equal(t, services.MatchBoth, results[1].MatchType)

	assert.Equal(t, "e3", results[2].Application.ID)
	assert.Equal(t, services.MatchBoth, results[2].MatchType)
	assert.Equal(t, 0.15*0.5, *results[2].Score)

	for _, result := range results {
		assert.NotEqual(t, "e4", result.Application.ID)
	}
	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, *results[i-1].Score, *results[i].Score)
	}
}

func TestRank_EmptyPool(t *testing.T) {
	engine := newTestEngine()

	assert.Empty(t, engine.Rank(nil, services.Query{Position: "Engineer"}))
	assert.Empty(t, engine.Rank(nil, services.Query{}))
}

func TestRank_Deterministic(t *testing.T) {
	engine := newTestEngine()
	pool := []model.Interviewer{
		makeInterviewer("a1", "Frontend Developer", "B.Sc", "Acme", "MIT", 4.0),
		makeInterviewer("a2", "Backend Developer", "M.Sc", "Globex", "Stanford", 4.5),
		makeInterviewer("a3", "Developer", "Bootcamp", "Acme Inc", "CMU", 3.9),
	}
	query := services.Query{Position: "Developer", Company: "Acme"}

	first := engine.Rank(pool, query)
	second := engine.Rank(pool, query)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Application.ID, second[i].Application.ID)
		assert.Equal(t, first[i].MatchType, second[i].MatchType)
		assert.Equal(t, *first[i].Score, *second[i].Score)
	}
}

func TestRankWithTokens_UsesPrebuiltSets(t *testing.T) {
	engine := newTestEngine()
	pool := []model.Interviewer{
		makeInterviewer("a1", "Painter", "Fine Arts", "Studio", "RISD", 4.0),
	}

	lookup := func(applicationID string) index.TokenSet {
		if applicationID == "a1" {
			return index.TokenSet{"develop": {}}
		}
		return nil
	}

	results := engine.RankWithTokens(pool, services.Query{Position: "Developer"}, lookup)

	require.Len(t, results, 1)
	assert.Equal(t, services.MatchPositionWord, results[0].MatchType)
	assert.Equal(t, 0.15, *results[0].Score)
}

func TestRankWithTokens_PanickingLookupKeepsOtherPasses(t *testing.T) {
	engine := newTestEngine()
	pool := []model.Interviewer{
		makeInterviewer("a1", "Software Engineer", "B.Tech", "Acme Corp", "MIT", 4.5),
	}

	lookup := func(string) index.TokenSet { panic("token index corrupted") }

	// The word pass dies; the fuzzy position and company passes must still
	// produce their hits.
	results := engine.RankWithTokens(pool, services.Query{Position: "Software Engineer", Company: "Acme"}, lookup)

	require.Len(t, results, 1)
	assert.Equal(t, "a1", results[0].Application.ID)
	assert.Equal(t, services.MatchBoth, results[0].MatchType)
	require.NotNil(t, results[0].Score)
	assert.Equal(t, 0.0, *results[0].Score)
}

func TestRankWithTokens_PanickingLookupDropsOnlyWordHits(t *testing.T) {
	engine := newTestEngine()
	// This candidate is reachable only through the word pass, so a failing
	// pass means no hit at all rather than an error.
	pool := []model.Interviewer{
		makeInterviewer("a1", "Developer", "", "Initech", "", 4.0),
	}

	lookup := func(string) index.TokenSet { panic("token index corrupted") }

	results := engine.RankWithTokens(pool, services.Query{Position: "Backend Development"}, lookup)

	assert.Empty(t, results)
}

func TestRankWithTokens_FallsBackWhenLookupMisses(t *testing.T) {
	engine := newTestEngine()
	pool := []model.Interviewer{
		makeInterviewer("a1", "Developer", "", "Initech", "", 4.0),
	}

	lookup := func(string) index.TokenSet { return nil }

	results := engine.RankWithTokens(pool, services.Query{Position: "Backend Development"}, lookup)

	require.Len(t, results, 1)
	assert.Equal(t, services.MatchPositionWord, results[0].MatchType)
}
