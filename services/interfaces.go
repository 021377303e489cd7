package services

import (
	"github.com/skillswap/interviewer-match/model"
)

// MatchType labels which query criterion (or combination) produced a match.
type MatchType string

const (
	MatchPosition     MatchType = "position"      // strict fuzzy match on position/qualification
	MatchPositionWord MatchType = "position-word" // stemmed token overlap only
	MatchPositionBoth MatchType = "position+word" // fuzzy match reinforced by token overlap
	MatchCompany      MatchType = "company"       // fuzzy match on company/college only
	MatchBoth         MatchType = "both"          // matched the position and company criteria
)

// Query carries the search criteria. Both fields are optional; an empty
// query means "browse all approved interviewers".
type Query struct {
	Position string
	Company  string
}

// IsEmpty reports whether no criterion was provided.
func (q Query) IsEmpty() bool {
	return q.Position == "" && q.Company == ""
}

// MatchResult is a single ranked candidate. Score is a priority key where
// lower means better/shown first; it is nil for browse (no-query) results,
// which also carry no MatchType.
type MatchResult struct {
	Application model.Application      `json:"application"`
	User        model.UserProfile      `json:"user"`
	Score       *float64               `json:"score,omitempty"`
	MatchType   MatchType              `json:"matchType,omitempty"`
	Stats       model.InterviewerStats `json:"stats"`
}

// SearchResult is the response of one ranking request.
type SearchResult struct {
	Results []MatchResult `json:"results"`
	Total   int           `json:"total"`
	Took    int64         `json:"took"`     // milliseconds
	QueryID string        `json:"query_id"` // unique UUID for this search
}

// Ranker orders a candidate pool by relevance to a query. The pool is
// expected to be pre-filtered to approved interviewers.
type Ranker interface {
	Rank(pool []model.Interviewer, query Query) []MatchResult
}

// Searcher runs a ranking request against the managed pool.
type Searcher interface {
	Search(query Query) (SearchResult, error)
}

// PoolManager manages the interviewer pool backing the matcher.
type PoolManager interface {
	UpsertInterviewers(interviewers []model.Interviewer) error
	DeleteInterviewer(applicationID string) error
	DeleteAllInterviewers() error
	GetInterviewer(applicationID string) (model.Interviewer, error)
	ListInterviewers() []model.Interviewer
	PoolSize() int
}
