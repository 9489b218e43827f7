package telegram

import (
	"fmt"
	"sync"
	"time"

	"vybevigil/internal/dto"
	"vybevigil/pkg/cache"
)

const UserSessionKey = "user_session:%d"

// Session is one user's position inside a multi-step flow. Params carries
// answers collected in earlier steps, keyed by parameter name.
type Session struct {
	Flow   dto.Flow
	Step   string
	Params map[string]string
}

func NewSession(flow dto.Flow, step string) *Session {
	return &Session{
		Flow:   flow,
		Step:   step,
		Params: make(map[string]string),
	}
}

// SessionStore keeps at most one session per user in the TTL cache and
// hands out a per-user lock so updates from concurrent events for the same
// user are applied one at a time.
type SessionStore struct {
	cache cache.Cache
	ttl   time.Duration

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewSessionStore(inmemoryCache cache.Cache, ttl time.Duration) *SessionStore {
	return &SessionStore{
		cache: inmemoryCache,
		ttl:   ttl,
		locks: make(map[int64]*sync.Mutex),
	}
}

// Lock acquires the user's lock and returns the matching unlock.
func (s *SessionStore) Lock(userID int64) func() {
	s.mu.Lock()
	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

func (s *SessionStore) Get(userID int64) (*Session, bool) {
	return cache.GetTyped[*Session](s.cache, fmt.Sprintf(UserSessionKey, userID))
}

// Set stores the session, replacing whatever flow the user was in before.
func (s *SessionStore) Set(userID int64, sess *Session) {
	s.cache.Set(fmt.Sprintf(UserSessionKey, userID), sess, s.ttl)
}

func (s *SessionStore) Clear(userID int64) {
	s.cache.Delete(fmt.Sprintf(UserSessionKey, userID))
}
