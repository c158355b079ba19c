// Package formflow drives the multi-section form from the client side:
// an authenticated session, a step cursor over the sections, dirty
// tracking against the last-known server state, and the one-way final
// submission. The same validation rules the server enforces run here
// first, so a payload the machine accepts is one the server will accept.
package formflow

import (
	"sync"

	"github.com/Devendra616/collectEmpData-sub000/internal/model"
)

// Session is the explicit per-login context: the bearer token and the
// per-section cache. It is created at login and discarded at logout;
// nothing in this package lives in package-level state.
type Session struct {
	mu sync.RWMutex

	token       string
	employeeID  string
	isSubmitted bool

	// cache holds the last server copy of each loaded section.
	cache map[model.Section]interface{}
	// loaded marks sections fetched at least once, including empty 404s.
	loaded map[model.Section]bool
}

// NewSession creates a session from a successful login.
func NewSession(token, employeeID string, isSubmitted bool) *Session {
	return &Session{
		token:       token,
		employeeID:  employeeID,
		isSubmitted: isSubmitted,
		cache:       make(map[model.Section]interface{}),
		loaded:      make(map[model.Section]bool),
	}
}

// Token returns the bearer token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// EmployeeID returns the logged-in employee's ID.
func (s *Session) EmployeeID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.employeeID
}

// IsSubmitted reports whether the form has been finally submitted.
func (s *Session) IsSubmitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isSubmitted
}

func (s *Session) setSubmitted(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isSubmitted = v
}

// Cached returns the cached copy of a section, if the section has been
// loaded. A loaded section may cache nil (never saved on the server).
func (s *Session) Cached(section model.Section) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache[section], s.loaded[section]
}

func (s *Session) setCached(section model.Section, data interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[section] = data
	s.loaded[section] = true
}

// Clear wipes the session at logout.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.employeeID = ""
	s.cache = make(map[model.Section]interface{})
	s.loaded = make(map[model.Section]bool)
}
