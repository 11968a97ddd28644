package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultTTL is how long an untouched session survives.
const DefaultTTL = 30 * time.Minute

// Store holds live sessions, evicting the least recently used one beyond
// capacity and any session idle for longer than the TTL.
type Store struct {
	cache *expirable.LRU[string, *Session]
}

// NewStore returns a store of at most capacity sessions.
func NewStore(capacity int, ttl time.Duration) *Store {
	if capacity <= 0 {
		capacity = 1
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		cache: expirable.NewLRU[string, *Session](capacity, nil, ttl),
	}
}

// Create starts a new session under a random id.
func (st *Store) Create() *Session {
	s := New(uuid.NewString())
	st.cache.Add(s.ID, s)
	return s
}

// Get returns the session with the given id and renews its TTL.
func (st *Store) Get(id string) (*Session, bool) {
	s, ok := st.cache.Get(id)
	if !ok {
		return nil, false
	}
	st.cache.Add(id, s)
	return s, true
}

// Delete removes a session, reporting whether it existed.
func (st *Store) Delete(id string) bool {
	return st.cache.Remove(id)
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	return st.cache.Len()
}
