package tokenstore

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/fitsched/internal/common"
)

// MemoryStore keeps the token for the lifetime of the process only.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	setAt time.Time
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (s *MemoryStore) Get(_ context.Context) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != "", nil
}

func (s *MemoryStore) Set(_ context.Context, token string) error {
	if token == "" {
		return common.ErrEmptyToken
	}
	s.mu.Lock()
	s.token = token
	s.setAt = s.now()
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.setAt = time.Time{}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) IssuedAt(_ context.Context) (time.Time, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.setAt, s.token != "", nil
}
