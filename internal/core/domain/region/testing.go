package region

import (
	"context"
	"sync"
)

type FakeMonitor struct {
	Registered   []Region
	Calls        int
	ReplaceError error
	events       chan Event
	lock         sync.Mutex
}

func NewFakeMonitor() *FakeMonitor {
	return &FakeMonitor{events: make(chan Event, 64)}
}

func (m *FakeMonitor) ReplaceRegisteredRegions(ctx context.Context, regions []Region) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.Calls++
	if m.ReplaceError != nil {
		return m.ReplaceError
	}
	m.Registered = make([]Region, len(regions))
	copy(m.Registered, regions)
	return nil
}

func (m *FakeMonitor) Events() <-chan Event {
	return m.events
}

func (m *FakeMonitor) Deliver(event Event) {
	m.events <- event
}

func (m *FakeMonitor) Close() {
	close(m.events)
}

func (m *FakeMonitor) RegisteredRegions() []Region {
	m.lock.Lock()
	defer m.lock.Unlock()
	regions := make([]Region, len(m.Registered))
	copy(regions, m.Registered)
	return regions
}
