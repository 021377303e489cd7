// Package analytics tracks search events and aggregates them into the
// dashboard served by the API.
package analytics

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/skillswap/interviewer-match/model"
	"github.com/skillswap/interviewer-match/services"
)

const (
	analyticsFile   = "analytics.json"
	maxEventsToKeep = 10000 // keep the last 10k events for performance
	topQueryCount   = 5
)

// Service records search events in memory and persists them as JSON. All
// methods are safe for concurrent use.
type Service struct {
	mutex        sync.RWMutex
	events       []model.SearchEvent
	pool         services.PoolManager
	dataFilePath string     // empty disables persistence
	saveMu       sync.Mutex // serializes file writes
	logger       *zap.Logger
}

// NewService creates an analytics service. When dataDir is non-empty,
// previously persisted events are loaded from it; load failures are logged
// and the service starts empty.
func NewService(pool services.PoolManager, logger *zap.Logger, dataDir string) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Service{
		events: make([]model.SearchEvent, 0),
		pool:   pool,
		logger: logger,
	}
	if dataDir != "" {
		s.dataFilePath = filepath.Join(dataDir, analyticsFile)
		if err := s.loadData(); err != nil {
			logger.Warn("failed to load analytics data", zap.Error(err))
		}
	}
	return s
}

// TrackSearchEvent records a search event and schedules persistence. The
// event timestamp is set here.
func (s *Service) TrackSearchEvent(event model.SearchEvent) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	event.Timestamp = time.Now()
	s.events = append(s.events, event)

	if len(s.events) > maxEventsToKeep {
		s.events = s.events[len(s.events)-maxEventsToKeep:]
	}

	go func() {
		if err := s.saveData(); err != nil {
			s.logger.Warn("failed to save analytics data", zap.Error(err))
		}
	}()

	return nil
}

// GetDashboardData aggregates the recorded events into the dashboard view.
func (s *Service) GetDashboardData() (model.AnalyticsDashboard, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	yesterday := time.Now().Add(-24 * time.Hour)
	last24h := s.filterEventsByTime(s.events, yesterday)

	dashboard := model.AnalyticsDashboard{
		TotalSearches:    len(s.events),
		Searches24h:      len(last24h),
		AvgResponseTime:  s.calculateAvgResponseTime(last24h),
		PopularPositions: s.popularQueries(func(e model.SearchEvent) string { return e.Position }),
		PopularCompanies: s.popularQueries(func(e model.SearchEvent) string { return e.Company }),
		ZeroResultCount:  s.zeroResultCount(),
		SearchTypes:      s.searchTypeStats(),
	}
	if s.pool != nil {
		dashboard.PoolSize = s.pool.PoolSize()
	}

	return dashboard, nil
}

// EventCount returns the number of recorded events.
func (s *Service) EventCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.events)
}

func (s *Service) filterEventsByTime(events []model.SearchEvent, after time.Time) []model.SearchEvent {
	var filtered []model.SearchEvent
	for _, event := range events {
		if event.Timestamp.After(after) {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

func (s *Service) calculateAvgResponseTime(events []model.SearchEvent) int64 {
	if len(events) == 0 {
		return 0
	}

	var total time.Duration
	for _, event := range events {
		total += event.ResponseTime
	}
	return (total / time.Duration(len(events))).Milliseconds()
}

// popularQueries counts the non-empty values of one query field and
// returns the most frequent ones, most searched first.
func (s *Service) popularQueries(field func(model.SearchEvent) string) []model.PopularQuery {
	counts := make(map[string]int)
	for _, event := range s.events {
		if value := field(event); value != "" {
			counts[value]++
		}
	}

	queries := make([]model.PopularQuery, 0, len(counts))
	for query, count := range counts {
		queries = append(queries, model.PopularQuery{Query: query, SearchCount: count})
	}

	sort.Slice(queries, func(i, j int) bool {
		if queries[i].SearchCount != queries[j].SearchCount {
			return queries[i].SearchCount > queries[j].SearchCount
		}
		return queries[i].Query < queries[j].Query
	})

	if len(queries) > topQueryCount {
		queries = queries[:topQueryCount]
	}
	return queries
}

func (s *Service) zeroResultCount() int {
	count := 0
	for _, event := range s.events {
		if event.ResultCount == 0 && event.SearchType != model.SearchTypeBrowse {
			count++
		}
	}
	return count
}

func (s *Service) searchTypeStats() model.SearchTypeStats {
	stats := model.SearchTypeStats{}
	for _, event := range s.events {
		switch event.SearchType {
		case model.SearchTypeBrowse:
			stats.Browse++
		case model.SearchTypePosition:
			stats.Position++
		case model.SearchTypeCompany:
			stats.Company++
		case model.SearchTypeCombined:
			stats.Combined++
		}
	}
	return stats
}

// saveData persists events as JSON. Callers hold no lock requirements; the
// read lock is taken here. Writes go through a temp file and rename under
// saveMu so overlapping background saves cannot interleave on the file.
func (s *Service) saveData() error {
	if s.dataFilePath == "" {
		return nil
	}

	s.mutex.RLock()
	data, err := json.Marshal(s.events)
	s.mutex.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal analytics events: %w", err)
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.dataFilePath), 0750); err != nil {
		return fmt.Errorf("failed to create analytics directory: %w", err)
	}

	tmpPath := s.dataFilePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write analytics file: %w", err)
	}
	if err := os.Rename(tmpPath, s.dataFilePath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to finalize analytics file: %w", err)
	}
	return nil
}

func (s *Service) loadData() error {
	data, err := os.ReadFile(s.dataFilePath) // #nosec G304 -- path is controlled by the application
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read analytics file: %w", err)
	}

	var events []model.SearchEvent
	if err := json.Unmarshal(data, &events); err != nil {
		return fmt.Errorf("failed to parse analytics file: %w", err)
	}

	s.mutex.Lock()
	s.events = events
	s.mutex.Unlock()
	return nil
}
