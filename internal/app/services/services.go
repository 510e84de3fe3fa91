package services

import (
	"georemind/internal/app/deps"
	drl "georemind/internal/core/domain/rate_limiter"
	"georemind/internal/core/engine"
	"georemind/internal/core/services"
	addreminder "georemind/internal/core/services/add_reminder"
	listhistory "georemind/internal/core/services/list_history"
	listreminders "georemind/internal/core/services/list_reminders"
	processactivation "georemind/internal/core/services/process_activation"
	ratelimiting "georemind/internal/core/services/rate_limiting"
	removereminder "georemind/internal/core/services/remove_reminder"
)

type Services struct {
	Engine *engine.Engine

	AddReminder       services.Service[addreminder.Input, addreminder.Result]
	RemoveReminder    services.Service[removereminder.Input, removereminder.Result]
	ListReminders     services.Service[listreminders.Input, listreminders.Result]
	ListHistory       services.Service[listhistory.Input, listhistory.Result]
	ProcessActivation services.Service[processactivation.Input, processactivation.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.Engine = engine.New(engine.Deps{
		Log:      deps.Logger,
		Store:    deps.ReminderStore,
		History:  deps.ActivationLog,
		Monitor:  deps.Monitor,
		Notifier: deps.Notifier,
		Metrics:  deps.Metrics,
		Now:      deps.Now,
	})

	s.AddReminder = s.Engine.Services.AddReminder
	if deps.RateLimiter != nil {
		s.AddReminder = ratelimiting.New(
			deps.Logger,
			deps.RateLimiter,
			"add_reminder",
			drl.Limit{Interval: drl.Hour, Value: deps.Config.AddReminderRateLimitPerHour},
			s.AddReminder,
		)
	}
	s.RemoveReminder = s.Engine.Services.RemoveReminder
	s.ListReminders = s.Engine.Services.ListReminders
	s.ListHistory = s.Engine.Services.ListHistory
	s.ProcessActivation = s.Engine.Services.ProcessActivation

	return s
}
