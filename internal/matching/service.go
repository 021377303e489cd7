package matching

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skillswap/interviewer-match/index"
	"github.com/skillswap/interviewer-match/services"
	"github.com/skillswap/interviewer-match/store"
)

// Service implements services.Searcher over the managed pool. Each request
// ranks the approved interviewers and is tagged with a unique query ID.
type Service struct {
	store      *store.InterviewerStore
	tokenIndex *index.TokenIndex
	engine     *Engine
	logger     *zap.Logger
}

// NewService creates a search service.
func NewService(interviewerStore *store.InterviewerStore, tokenIndex *index.TokenIndex, engine *Engine, logger *zap.Logger) (*Service, error) {
	if interviewerStore == nil {
		return nil, errors.New("matching service requires a non-nil store")
	}
	if engine == nil {
		return nil, errors.New("matching service requires a non-nil engine")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:      interviewerStore,
		tokenIndex: tokenIndex,
		engine:     engine,
		logger:     logger,
	}, nil
}

// Search ranks the approved pool against the query.
func (s *Service) Search(query services.Query) (services.SearchResult, error) {
	start := time.Now()

	pool := s.store.ListApproved()

	var lookup TokenLookup
	if s.tokenIndex != nil {
		lookup = s.tokenIndex.Get
	}

	results := s.engine.RankWithTokens(pool, query, lookup)

	took := time.Since(start).Milliseconds()
	queryID := uuid.New().String()

	s.logger.Debug("search completed",
		zap.String("query_id", queryID),
		zap.String("position", query.Position),
		zap.String("company", query.Company),
		zap.Int("pool_size", len(pool)),
		zap.Int("results", len(results)),
		zap.Int64("took_ms", took))

	return services.SearchResult{
		Results: results,
		Total:   len(results),
		Took:    took,
		QueryID: queryID,
	}, nil
}
