// Package pool manages the interviewer pool: the in-memory store, the
// profile token index kept in sync with it, and snapshot persistence.
package pool

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/skillswap/interviewer-match/index"
	apperrors "github.com/skillswap/interviewer-match/internal/errors"
	"github.com/skillswap/interviewer-match/internal/persistence"
	"github.com/skillswap/interviewer-match/internal/textutil"
	"github.com/skillswap/interviewer-match/model"
	"github.com/skillswap/interviewer-match/store"
)

const snapshotFile = "interviewers.gob"

// Service implements services.PoolManager. Every write keeps the token
// index in sync with the store and schedules a pool snapshot.
type Service struct {
	store      *store.InterviewerStore
	tokenIndex *index.TokenIndex
	stemmer    textutil.Stemmer
	logger     *zap.Logger

	// dataDir is the snapshot directory; empty disables persistence.
	dataDir string
	saveMu  sync.Mutex
}

// NewService creates a pool service. When dataDir is non-empty, a previous
// snapshot is loaded from it; a missing snapshot means a fresh start, and a
// corrupt one is logged and skipped so the server still comes up.
func NewService(interviewerStore *store.InterviewerStore, tokenIndex *index.TokenIndex, stemmer textutil.Stemmer, logger *zap.Logger, dataDir string) (*Service, error) {
	if interviewerStore == nil {
		return nil, errors.New("pool service requires a non-nil store")
	}
	if tokenIndex == nil {
		return nil, errors.New("pool service requires a non-nil token index")
	}
	if stemmer == nil {
		stemmer = textutil.SnowballStemmer{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Service{
		store:      interviewerStore,
		tokenIndex: tokenIndex,
		stemmer:    stemmer,
		logger:     logger,
		dataDir:    dataDir,
	}

	if dataDir != "" {
		if err := persistence.LoadGob(s.snapshotPath(), s.store); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				logger.Info("no pool snapshot found, starting with an empty pool",
					zap.String("path", s.snapshotPath()))
			} else {
				logger.Warn("failed to load pool snapshot, starting with an empty pool",
					zap.String("path", s.snapshotPath()), zap.Error(err))
			}
		} else {
			logger.Info("loaded pool snapshot",
				zap.String("path", s.snapshotPath()), zap.Int("interviewers", s.store.Len()))
		}
	}

	// Token sets are derived data and are not persisted; rebuild them from
	// whatever the snapshot restored.
	for _, iv := range s.store.List() {
		s.tokenIndex.Put(iv.Application.ID, s.profileTokens(iv))
	}

	return s, nil
}

// UpsertInterviewers inserts or replaces interviewers in bulk. The batch is
// rejected as a whole when any record is missing an application ID.
func (s *Service) UpsertInterviewers(interviewers []model.Interviewer) error {
	for _, iv := range interviewers {
		if iv.Application.ID == "" {
			return apperrors.NewValidationError("application._id", "application ID is required")
		}
	}

	for _, iv := range interviewers {
		if err := s.store.Upsert(iv); err != nil {
			return err
		}
		s.tokenIndex.Put(iv.Application.ID, s.profileTokens(iv))
	}

	s.logger.Debug("upserted interviewers", zap.Int("count", len(interviewers)))
	s.scheduleSnapshot()
	return nil
}

// DeleteInterviewer removes one interviewer by application ID.
func (s *Service) DeleteInterviewer(applicationID string) error {
	if !s.store.Delete(applicationID) {
		return apperrors.NewInterviewerNotFoundError(applicationID)
	}
	s.tokenIndex.Delete(applicationID)
	s.scheduleSnapshot()
	return nil
}

// DeleteAllInterviewers clears the pool.
func (s *Service) DeleteAllInterviewers() error {
	s.store.DeleteAll()
	s.tokenIndex.Clear()
	s.scheduleSnapshot()
	return nil
}

// GetInterviewer returns one interviewer by application ID.
func (s *Service) GetInterviewer(applicationID string) (model.Interviewer, error) {
	iv, ok := s.store.Get(applicationID)
	if !ok {
		return model.Interviewer{}, apperrors.NewInterviewerNotFoundError(applicationID)
	}
	return iv, nil
}

// ListInterviewers returns all interviewers in insertion order, regardless
// of approval status.
func (s *Service) ListInterviewers() []model.Interviewer {
	return s.store.List()
}

// PoolSize returns the number of stored interviewers.
func (s *Service) PoolSize() int {
	return s.store.Len()
}

// Snapshot writes the pool to disk synchronously. It is a no-op without a
// data directory.
func (s *Service) Snapshot() error {
	if s.dataDir == "" {
		return nil
	}
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	return persistence.SaveGob(s.snapshotPath(), s.store)
}

// scheduleSnapshot persists the pool in the background so writes do not
// block on disk I/O. Failures are logged, not surfaced to the caller.
func (s *Service) scheduleSnapshot() {
	if s.dataDir == "" {
		return
	}
	go func() {
		if err := s.Snapshot(); err != nil {
			s.logger.Warn("failed to persist pool snapshot",
				zap.String("path", s.snapshotPath()), zap.Error(err))
		}
	}()
}

func (s *Service) snapshotPath() string {
	return filepath.Join(s.dataDir, snapshotFile)
}

func (s *Service) profileTokens(iv model.Interviewer) index.TokenSet {
	return index.TokenSet(textutil.NormalizeSet(s.stemmer,
		iv.Application.Position, iv.Application.Qualification, iv.Application.Company))
}
