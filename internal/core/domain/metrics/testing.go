package metrics

import "sync"

type FakeMetrics struct {
	EventsReceived      map[string]int
	ActivationsRecorded int
	ActivationsIgnored  map[string]int
	NotificationsFailed int
	RegistrationsFailed int
	RegisteredRegions   int
	lock                sync.Mutex
}

func NewFakeMetrics() *FakeMetrics {
	return &FakeMetrics{
		EventsReceived:     make(map[string]int),
		ActivationsIgnored: make(map[string]int),
	}
}

func (m *FakeMetrics) RegionEventReceived(eventType string) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.EventsReceived[eventType]++
}

func (m *FakeMetrics) ActivationRecorded() {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.ActivationsRecorded++
}

func (m *FakeMetrics) ActivationIgnored(reason string) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.ActivationsIgnored[reason]++
}

func (m *FakeMetrics) NotificationFailed() {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.NotificationsFailed++
}

func (m *FakeMetrics) RegistrationFailed() {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.RegistrationsFailed++
}

func (m *FakeMetrics) SetRegisteredRegions(count int) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.RegisteredRegions = count
}
