package session

import (
	"sync"
	"time"

	"github.com/ytget/yt-downloader-bot/internal/model"
)

// MemoryStore is a thread-safe in-memory session store.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[int64]*model.Session
	now      func() time.Time
}

// NewMemoryStore creates a new empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[int64]*model.Session),
		now:      time.Now,
	}
}

// Put adds or overwrites the session for userID.
func (m *MemoryStore) Put(userID int64, url string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = &model.Session{
		UserID:    userID,
		SourceURL: url,
		CreatedAt: m.now(),
	}
}

// Take returns the session for userID and removes it from the store.
func (m *MemoryStore) Take(userID int64) (*model.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		return nil, false
	}
	delete(m.sessions, userID)
	return s, true
}

// Discard removes the session for userID; missing sessions are a no-op.
func (m *MemoryStore) Discard(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

// Len returns the number of pending sessions.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
