package removereminder

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
	ID reminder.ID
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
	rem, err := s.store.Remove(ctx, input.ID)
	if err != nil {
		switch {
		case errors.Is(err, reminder.ErrReminderDoesNotExist):
			s.log.Info(ctx, "Reminder not found.", logging.Entry("id", input.ID))
		default:
			logging.Error(ctx, s.log, err, logging.Entry("id", input.ID))
		}
		return result, err
	}

	result.Reminder = rem
	s.log.Info(ctx, "Reminder has been removed.", logging.Entry("id", rem.ID))

	if _, err := s.registrar.Run(ctx, registerregions.Input{Reminders: s.store.List(ctx)}); err != nil {
		return result, err
	}
	return result, nil
}
