package addreminder

import (
	"context"
	"errors"
	e "georemind/internal/core/domain/errors"
	"georemind/internal/core/domain/logging"
	"georemind/internal/core/domain/reminder"
	"georemind/internal/core/services"
	registerregions "georemind/internal/core/services/register_regions"
)

type Input struct {
	Name      string
	Latitude  float64
	Longitude float64
	Radius    float64
	// Client identifies the caller for rate limiting. It is empty for
	// in-process calls.
	Client string
}

func (i Input) GetRateLimitKey() string {
	return i.Client
}

type Result struct {
	Reminder reminder.Reminder
}

type service struct {
	log       logging.Logger
	store     reminder.Store
	registrar services.Service[registerregions.Input, registerregions.Result]
}

func New(
	log logging.Logger,
	store reminder.Store,
	registrar services.Service[registerregions.Input, registerregions.Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	if registrar == nil {
		panic(e.NewNilArgumentError("registrar"))
	}
	return &service{
		log:       log,
		store:     store,
		registrar: registrar,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	createInput := reminder.CreateInput{
		Name:      input.Name,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Radius:    input.Radius,
	}
	if err := createInput.Validate(); err != nil {
		s.log.Info(ctx, "Invalid reminder.", logging.Entry("input", input), logging.Entry("err", err))
		return result, err
	}

	rem := createInput.Reminder()
	if err := s.store.Add(ctx, rem); err != nil {
		switch {
		case errors.Is(err, reminder.ErrReminderAlreadyExists):
			s.log.Info(ctx, "Reminder already exists.", logging.Entry("id", rem.ID))
		default:
			logging.Error(ctx, s.log, err, logging.Entry("id", rem.ID))
		}
		return result, err
	}

	result.Reminder = rem
	s.log.Info(ctx, "Reminder has been added.", logging.Entry("id", rem.ID))

	// The reminder stays stored when the monitor rejects the new set.
	if _, err := s.registrar.Run(ctx, registerregions.Input{Reminders: s.store.List(ctx)}); err != nil {
		return result, err
	}
	return result, nil
}
