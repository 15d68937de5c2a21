package convo

import (
	"sync"
	"time"

	"github.com/2beens/gymprogress/internal/gymlog/records"
)

// Step is the position of a user inside the add-record conversation.
// A user with no session entry is idle.
type Step string

const (
	StepAwaitingDateChoice Step = "awaiting_date_choice"
	StepAwaitingCustomDate Step = "awaiting_custom_date"
	StepAwaitingExercise   Step = "awaiting_exercise"
	StepAwaitingWeight     Step = "awaiting_weight"
)

// Draft is the partially completed record under construction. Fields are
// filled in as steps complete; HasDate distinguishes "no date yet" from a
// zero time value.
type Draft struct {
	Exercise records.Exercise
	Weight   int
	Date     time.Time
	HasDate  bool
}

type Session struct {
	UserID int64
	Step   Step
	Draft  Draft
}

// SessionStore holds the per-user conversation sessions. It is an explicit
// keyed store passed into the workflow - no package-level state - and all
// read-modify-write cycles on one user's session run under the store lock,
// so concurrent deliveries for the same user cannot lose updates. Sessions
// of different users are fully independent.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*Session),
	}
}

// Create makes a fresh session in the date-choice step, overwriting any
// session the user already had (re-entering mid-flow discards the draft).
func (s *SessionStore) Create(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = &Session{
		UserID: userID,
		Step:   StepAwaitingDateChoice,
	}
}

// Get returns a copy of the user's session, if any.
func (s *SessionStore) Get(userID int64) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return Session{}, false
	}
	return *sess, true
}

// Remove destroys the user's session. Removing an absent session is a no-op.
func (s *SessionStore) Remove(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Len returns the number of live sessions (feeds the active-sessions gauge).
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// update applies fn to the user's session atomically. Returns false when
// the user has no session or fn refused the transition; fn itself reports
// whether it applied, so the state check and the mutation form one
// critical section.
func (s *SessionStore) update(userID int64, fn func(*Session) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return false
	}
	return fn(sess)
}
