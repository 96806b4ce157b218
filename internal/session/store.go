package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/surveyflow/surveyflow/internal/services"
)

type entry struct {
	sess    services.SurveySession
	touched time.Time
}

// Store holds in-flight survey sessions keyed by opaque token. Sessions are
// short-lived: they are cleared at commit and swept after the inactivity
// TTL. A zero TTL disables expiry.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]entry
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		now:      func() time.Time { return time.Now().UTC() },
		sessions: map[string]entry{},
	}
}

// NewToken mints an opaque session token for the transport layer.
func NewToken() string { return uuid.NewString() }

// Get returns the session for token, or a well-formed empty session when
// none exists. Callers never special-case absence.
func (s *Store) Get(token string) services.SurveySession {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	e, ok := s.sessions[token]
	if !ok {
		return services.SurveySession{Answers: map[string]string{}}
	}
	e.touched = s.now()
	s.sessions[token] = e
	return copySession(e.sess)
}

// Put stores the session under token, refreshing its inactivity window.
func (s *Store) Put(token string, sess services.SurveySession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.sessions[token] = entry{sess: copySession(sess), touched: s.now()}
}

// Clear removes the session in full. Clearing an unknown token is a no-op.
func (s *Store) Clear(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	return len(s.sessions)
}

func (s *Store) sweepLocked() {
	if s.ttl <= 0 {
		return
	}
	cutoff := s.now().Add(-s.ttl)
	for token, e := range s.sessions {
		if e.touched.Before(cutoff) {
			delete(s.sessions, token)
		}
	}
}

// copySession isolates callers from the stored map so drafts only change
// through Put.
func copySession(in services.SurveySession) services.SurveySession {
	out := in
	out.Answers = make(map[string]string, len(in.Answers))
	for k, v := range in.Answers {
		out.Answers[k] = v
	}
	return out
}

var _ services.SessionStore = (*Store)(nil)
