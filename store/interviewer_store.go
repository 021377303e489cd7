package store

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"sync"

	"github.com/skillswap/interviewer-match/model"
)

// InterviewerStore holds the interviewer pool in memory, keyed by
// application ID. Insertion order is preserved so the "browse all" view is
// stable across identical requests.
type InterviewerStore struct {
	Mu           sync.RWMutex
	Interviewers map[string]model.Interviewer
	Order        []string // application IDs in first-insertion order
}

// NewInterviewerStore creates an empty store.
func NewInterviewerStore() *InterviewerStore {
	return &InterviewerStore{
		Interviewers: make(map[string]model.Interviewer),
		Order:        make([]string, 0),
	}
}

// Upsert inserts or replaces an interviewer. New records keep their
// insertion position; updates do not move a record in the ordering.
func (s *InterviewerStore) Upsert(iv model.Interviewer) error {
	if iv.Application.ID == "" {
		return fmt.Errorf("interviewer application must have an ID")
	}

	s.Mu.Lock()
	defer s.Mu.Unlock()

	if _, exists := s.Interviewers[iv.Application.ID]; !exists {
		s.Order = append(s.Order, iv.Application.ID)
	}
	s.Interviewers[iv.Application.ID] = iv
	return nil
}

// Get returns the interviewer with the given application ID.
func (s *InterviewerStore) Get(applicationID string) (model.Interviewer, bool) {
	s.Mu.RLock()
	defer s.Mu.RUnlock()

	iv, ok := s.Interviewers[applicationID]
	return iv, ok
}

// Delete removes the interviewer with the given application ID. It reports
// whether a record was removed.
func (s *InterviewerStore) Delete(applicationID string) bool {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	if _, ok := s.Interviewers[applicationID]; !ok {
		return false
	}
	delete(s.Interviewers, applicationID)
	for i, id := range s.Order {
		if id == applicationID {
			s.Order = append(s.Order[:i], s.Order[i+1:]...)
			break
		}
	}
	return true
}

// DeleteAll removes every interviewer.
func (s *InterviewerStore) DeleteAll() {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	s.Interviewers = make(map[string]model.Interviewer)
	s.Order = s.Order[:0]
}

// List returns all interviewers in insertion order.
func (s *InterviewerStore) List() []model.Interviewer {
	s.Mu.RLock()
	defer s.Mu.RUnlock()

	out := make([]model.Interviewer, 0, len(s.Order))
	for _, id := range s.Order {
		if iv, ok := s.Interviewers[id]; ok {
			out = append(out, iv)
		}
	}
	return out
}

// ListApproved returns the approved interviewers in insertion order. This is
// the candidate pool handed to the ranking engine, which assumes its input
// is already filtered to approved records.
func (s *InterviewerStore) ListApproved() []model.Interviewer {
	s.Mu.RLock()
	defer s.Mu.RUnlock()

	out := make([]model.Interviewer, 0, len(s.Order))
	for _, id := range s.Order {
		if iv, ok := s.Interviewers[id]; ok && iv.IsApproved() {
			out = append(out, iv)
		}
	}
	return out
}

// Len returns the number of stored interviewers.
func (s *InterviewerStore) Len() int {
	s.Mu.RLock()
	defer s.Mu.RUnlock()
	return len(s.Interviewers)
}

// gobInterviewerStoreData is a helper struct for Gob encoding/decoding
// store data. It excludes the mutex.
type gobInterviewerStoreData struct {
	Interviewers map[string]model.Interviewer
	Order        []string
}

// GobEncode implements the gob.GobEncoder interface for InterviewerStore.
func (s *InterviewerStore) GobEncode() ([]byte, error) {
	s.Mu.RLock()
	defer s.Mu.RUnlock()

	dataToEncode := gobInterviewerStoreData{
		Interviewers: s.Interviewers,
		Order:        s.Order,
	}

	var buf bytes.Buffer
	encoder := gob.NewEncoder(&buf)
	if err := encoder.Encode(dataToEncode); err != nil {
		return nil, fmt.Errorf("failed to gob encode interviewer store data: %w", err)
	}
	return buf.Bytes(), nil
}

// GobDecode implements the gob.GobDecoder interface for InterviewerStore.
func (s *InterviewerStore) GobDecode(data []byte) error {
	decodedData := gobInterviewerStoreData{}

	buf := bytes.NewBuffer(data)
	decoder := gob.NewDecoder(buf)
	if err := decoder.Decode(&decodedData); err != nil {
		return fmt.Errorf("failed to gob decode interviewer store data: %w", err)
	}

	s.Mu.Lock()
	defer s.Mu.Unlock()

	s.Interviewers = decodedData.Interviewers
	s.Order = decodedData.Order

	if s.Interviewers == nil {
		s.Interviewers = make(map[string]model.Interviewer)
	}
	if s.Order == nil {
		s.Order = make([]string, 0)
	}

	return nil
}
