package simulated

import (
	"context"
	e "georemind/internal/core/domain/errors"
	"georemind/internal/core/domain/logging"
	"georemind/internal/core/domain/region"
	"sync"
)

// Monitor evaluates registered regions against locations reported through
// UpdateLocation. A region registered while the device is already inside it
// reports an enter on the next location update.
type Monitor struct {
	log        logging.Logger
	maxRegions int
	events     chan region.Event
	regions    []region.Region
	inside     map[string]bool
	lock       sync.Mutex
}

func New(log logging.Logger, maxRegions int, bufferSize int) *Monitor {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &Monitor{
		log:        log,
		maxRegions: maxRegions,
		events:     make(chan region.Event, bufferSize),
		inside:     make(map[string]bool),
	}
}

func (m *Monitor) ReplaceRegisteredRegions(ctx context.Context, regions []region.Region) error {
	if m.maxRegions > 0 && len(regions) > m.maxRegions {
		return region.ErrCapacityExceeded
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	inside := make(map[string]bool, len(regions))
	for _, r := range regions {
		if wasInside, ok := m.inside[r.Identifier]; ok {
			inside[r.Identifier] = wasInside
		}
	}
	m.regions = make([]region.Region, len(regions))
	copy(m.regions, regions)
	m.inside = inside

	m.log.Debug(ctx, "Simulated monitor regions replaced.", logging.Entry("regions", len(regions)))
	return nil
}

func (m *Monitor) Events() <-chan region.Event {
	return m.events
}

// UpdateLocation moves the simulated device and emits an event for every
// region whose boundary was crossed.
func (m *Monitor) UpdateLocation(ctx context.Context, latitude, longitude float64) error {
	m.lock.Lock()
	transitions := make([]region.Event, 0)
	for _, r := range m.regions {
		isInside := r.Contains(latitude, longitude)
		wasInside := m.inside[r.Identifier]
		switch {
		case isInside && !wasInside:
			transitions = append(transitions, r.EventFor(region.EventTypeEnter))
		case !isInside && wasInside:
			transitions = append(transitions, r.EventFor(region.EventTypeExit))
		}
		m.inside[r.Identifier] = isInside
	}
	m.lock.Unlock()

	for _, event := range transitions {
		select {
		case m.events <- event:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// RegisteredRegions returns a copy of the currently monitored regions.
func (m *Monitor) RegisteredRegions() []region.Region {
	m.lock.Lock()
	defer m.lock.Unlock()
	regions := make([]region.Region, len(m.regions))
	copy(regions, m.regions)
	return regions
}

// Close stops event delivery. UpdateLocation must not be called afterwards.
func (m *Monitor) Close() {
	close(m.events)
}
