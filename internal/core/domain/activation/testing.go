package activation

import (
	"context"
	"sync"
)

type FakeLog struct {
	Entries     []Entry
	LoadError   error
	AppendError error
	lock        sync.Mutex
}

func NewFakeLog(entries ...Entry) *FakeLog {
	return &FakeLog{Entries: entries}
}

func (l *FakeLog) Load(ctx context.Context) ([]Entry, error) {
	if l.LoadError != nil {
		return nil, l.LoadError
	}
	return l.List(ctx), nil
}

func (l *FakeLog) Append(ctx context.Context, entry Entry) error {
	l.lock.Lock()
	defer l.lock.Unlock()
	if l.AppendError != nil {
		return l.AppendError
	}
	l.Entries = append(l.Entries, entry)
	return nil
}

func (l *FakeLog) List(ctx context.Context) []Entry {
	l.lock.Lock()
	defer l.lock.Unlock()
	entries := make([]Entry, len(l.Entries))
	copy(entries, l.Entries)
	return entries
}
