// Package index holds the stemmed token sets used by the word-overlap
// matching pass.
package index

import "sync"

// TokenSet is the set of stemmed tokens of an interviewer's profile text
// (position + qualification + company).
type TokenSet map[string]struct{}

// Overlaps reports whether the two sets share at least one token.
func (ts TokenSet) Overlaps(other TokenSet) bool {
	small, large := ts, other
	if len(other) < len(ts) {
		small, large = other, ts
	}
	for token := range small {
		if _, ok := large[token]; ok {
			return true
		}
	}
	return false
}

// TokenIndex maps application IDs to their profile token sets. It is kept in
// sync with the interviewer store by the pool service so searches do not
// re-tokenize profiles per request.
type TokenIndex struct {
	Mu     sync.RWMutex
	Tokens map[string]TokenSet
}

// NewTokenIndex creates an empty token index.
func NewTokenIndex() *TokenIndex {
	return &TokenIndex{Tokens: make(map[string]TokenSet)}
}

// Put stores the token set for an application, replacing any previous set.
func (ti *TokenIndex) Put(applicationID string, tokens TokenSet) {
	ti.Mu.Lock()
	defer ti.Mu.Unlock()
	ti.Tokens[applicationID] = tokens
}

// Get returns the token set for an application, or nil if absent.
func (ti *TokenIndex) Get(applicationID string) TokenSet {
	ti.Mu.RLock()
	defer ti.Mu.RUnlock()
	return ti.Tokens[applicationID]
}

// Delete removes the token set for an application.
func (ti *TokenIndex) Delete(applicationID string) {
	ti.Mu.Lock()
	defer ti.Mu.Unlock()
	delete(ti.Tokens, applicationID)
}

// Clear removes every token set.
func (ti *TokenIndex) Clear() {
	ti.Mu.Lock()
	defer ti.Mu.Unlock()
	ti.Tokens = make(map[string]TokenSet)
}

// Len returns the number of indexed applications.
func (ti *TokenIndex) Len() int {
	ti.Mu.RLock()
	defer ti.Mu.RUnlock()
	return len(ti.Tokens)
}
