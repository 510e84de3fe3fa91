package listreminders

import (
	"context"
	e "georemind/internal/core/domain/errors"
	"georemind/internal/core/domain/reminder"
	"georemind/internal/core/services"
)

type Input struct{}

type Result struct {
	Reminders []reminder.Reminder
}

type service struct {
	store reminder.Store
}

func New(store reminder.Store) services.Service[Input, Result] {
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	return &service{store: store}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	result.Reminders = s.store.List(ctx)
	return result, nil
}
