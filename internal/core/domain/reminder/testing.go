package reminder

import (
	"context"
	"sync"
)

type FakeStore struct {
	Reminders   []Reminder
	LoadError   error
	AddError    error
	RemoveError error
	lock        sync.Mutex
}

func NewFakeStore(reminders ...Reminder) *FakeStore {
	return &FakeStore{Reminders: reminders}
}

func (s *FakeStore) Load(ctx context.Context) ([]Reminder, error) {
	if s.LoadError != nil {
		return nil, s.LoadError
	}
	return s.List(ctx), nil
}

func (s *FakeStore) Add(ctx context.Context, rem Reminder) error {
	if s.AddError != nil {
		return s.AddError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	for _, r := range s.Reminders {
		if r.ID == rem.ID {
			return ErrReminderAlreadyExists
		}
	}
	s.Reminders = append(s.Reminders, rem)
	return nil
}

func (s *FakeStore) Remove(ctx context.Context, id ID) (rem Reminder, err error) {
	if s.RemoveError != nil {
		return rem, s.RemoveError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	for ix, r := range s.Reminders {
		if r.ID == id {
			s.Reminders = append(s.Reminders[:ix:ix], s.Reminders[ix+1:]...)
			return r, nil
		}
	}
	return rem, ErrReminderDoesNotExist
}

func (s *FakeStore) List(ctx context.Context) []Reminder {
	s.lock.Lock()
	defer s.lock.Unlock()
	reminders := make([]Reminder, len(s.Reminders))
	copy(reminders, s.Reminders)
	return reminders
}

func (s *FakeStore) Get(ctx context.Context, id ID) (Reminder, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	for _, r := range s.Reminders {
		if r.ID == id {
			return r, true
		}
	}
	return Reminder{}, false
}
