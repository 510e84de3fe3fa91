package storage

import (
	"context"
	c "georemind/internal/core/domain/common"
	"sync"
)

type FakeStore struct {
	Values   map[string]string
	GetError error
	SetError error
	SetCalls int
	lock     sync.Mutex
}

func NewFakeStore() *FakeStore {
	return &FakeStore{Values: make(map[string]string)}
}

func (s *FakeStore) GetString(ctx context.Context, key string) (c.Optional[string], error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.GetError != nil {
		return c.Optional[string]{}, s.GetError
	}
	value, ok := s.Values[key]
	return c.NewOptional(value, ok), nil
}

func (s *FakeStore) SetString(ctx context.Context, key string, value string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.SetCalls++
	if s.SetError != nil {
		return s.SetError
	}
	s.Values[key] = value
	return nil
}
