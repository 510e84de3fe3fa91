package registerregions

import (
	"context"
	"fmt"
	e "georemind/internal/core/domain/errors"
	"georemind/internal/core/domain/logging"
	"georemind/internal/core/domain/metrics"
	"georemind/internal/core/domain/region"
	"georemind/internal/core/domain/reminder"
	"sync"
)

type Input struct {
	Reminders []reminder.Reminder
}

type Result struct {
	Regions []region.Region
}

// Registrar submits the full reminder set to the region monitor. Calls are
// serialized so that a later set never gets overwritten by an earlier one.
type Registrar struct {
	log       logging.Logger
	monitor   region.Monitor
	metrics   metrics.Metrics
	lock      sync.Mutex

	submitted     map[reminder.ID]struct{}
	submittedLock sync.RWMutex
}

func New(
	log logging.Logger,
	monitor region.Monitor,
	metrics metrics.Metrics,
) *Registrar {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if monitor == nil {
		panic(e.NewNilArgumentError("monitor"))
	}
	if metrics == nil {
		panic(e.NewNilArgumentError("metrics"))
	}
	return &Registrar{
		log:       log,
		monitor:   monitor,
		metrics:   metrics,
		submitted: make(map[reminder.ID]struct{}),
	}
}

func (s *Registrar) Run(ctx context.Context, input Input) (result Result, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	regions := make([]region.Region, 0, len(input.Reminders))
	for _, rem := range input.Reminders {
		regions = append(regions, region.Region{
			Identifier: string(rem.ID),
			Latitude:   rem.Latitude,
			Longitude:  rem.Longitude,
			Radius:     rem.Radius,
		})
	}

	s.submittedLock.Lock()
	for _, rem := range input.Reminders {
		s.submitted[rem.ID] = struct{}{}
	}
	s.submittedLock.Unlock()

	if err := s.monitor.ReplaceRegisteredRegions(ctx, regions); err != nil {
		s.metrics.RegistrationFailed()
		s.log.Error(
			ctx,
			"Region monitor rejected registration.",
			logging.Entry("regions", len(regions)),
			logging.Entry("err", err),
		)
		return result, fmt.Errorf("%w: %w", region.ErrRegistration, err)
	}

	s.metrics.SetRegisteredRegions(len(regions))
	s.log.Info(ctx, "Regions have been registered.", logging.Entry("regions", len(regions)))
	result.Regions = regions
	return result, nil
}

// WasRegistered reports whether a region with the given id has been submitted
// to the monitor since the registrar was created.
func (s *Registrar) WasRegistered(id reminder.ID) bool {
	s.submittedLock.RLock()
	defer s.submittedLock.RUnlock()
	_, ok := s.submitted[id]
	return ok
}
