package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStorage keeps the record in process memory. It is the default
// backend and the test substitute; sessions do not survive restarts.
type MemoryStorage struct {
	mu       sync.Mutex
	data     []byte
	deadline time.Time
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load(_ context.Context) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, false, nil
	}
	if !s.deadline.IsZero() && time.Now().After(s.deadline) {
		s.data = nil
		return nil, false, nil
	}
	return s.data, true, nil
}

func (s *MemoryStorage) Store(_ context.Context, data []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	if ttl > 0 {
		s.deadline = time.Now().Add(ttl)
	} else {
		s.deadline = time.Time{}
	}
	return nil
}

func (s *MemoryStorage) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.deadline = time.Time{}
	return nil
}
