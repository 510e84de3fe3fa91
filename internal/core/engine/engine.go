package engine

import (
	"context"
	"georemind/internal/core/domain/activation"
	e "georemind/internal/core/domain/errors"
	"georemind/internal/core/domain/logging"
	"georemind/internal/core/domain/metrics"
	"georemind/internal/core/domain/notification"
	"georemind/internal/core/domain/region"
	"georemind/internal/core/domain/reminder"
	"georemind/internal/core/services"
	addreminder "georemind/internal/core/services/add_reminder"
	listhistory "georemind/internal/core/services/list_history"
	listreminders "georemind/internal/core/services/list_reminders"
	processactivation "georemind/internal/core/services/process_activation"
	registerregions "georemind/internal/core/services/register_regions"
	removereminder "georemind/internal/core/services/remove_reminder"
	"georemind/internal/core/services/serialized"
	"time"
)

type Deps struct {
	Log      logging.Logger
	Store    reminder.Store
	History  activation.Log
	Monitor  region.Monitor
	Notifier notification.Notifier
	Metrics  metrics.Metrics
	Now      func() time.Time
}

type Services struct {
	AddReminder       services.Service[addreminder.Input, addreminder.Result]
	RemoveReminder    services.Service[removereminder.Input, removereminder.Result]
	ListReminders     services.Service[listreminders.Input, listreminders.Result]
	ListHistory       services.Service[listhistory.Input, listhistory.Result]
	RegisterRegions   services.Service[registerregions.Input, registerregions.Result]
	ProcessActivation services.Service[processactivation.Input, processactivation.Result]
}

// Engine ties the reminder store, the activation history and the region
// monitor together. Services are exposed for transports that call them
// directly. ProcessActivation is serialized, so events pushed by transports
// and events drained by Run never interleave.
type Engine struct {
	Services Services

	log     logging.Logger
	store   reminder.Store
	history activation.Log
}

func New(deps Deps) *Engine {
	if deps.Log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if deps.Store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	if deps.History == nil {
		panic(e.NewNilArgumentError("history"))
	}
	if deps.Now == nil {
		panic(e.NewNilArgumentError("now"))
	}

	registrar := registerregions.New(deps.Log, deps.Monitor, deps.Metrics)
	return &Engine{
		Services: Services{
			AddReminder:     addreminder.New(deps.Log, deps.Store, registrar),
			RemoveReminder:  removereminder.New(deps.Log, deps.Store, registrar),
			ListReminders:   listreminders.New(deps.Store),
			ListHistory:     listhistory.New(deps.History),
			RegisterRegions: registrar,
			ProcessActivation: serialized.New(processactivation.New(
				deps.Log,
				deps.Store,
				deps.History,
				deps.Notifier,
				registrar.WasRegistered,
				deps.Metrics,
				deps.Now,
			)),
		},
		log:     deps.Log,
		store:   deps.Store,
		history: deps.History,
	}
}

// Start loads persisted state and submits the loaded reminders to the monitor.
// Registrations do not survive a restart, so they are always re-submitted.
func (en *Engine) Start(ctx context.Context) error {
	reminders, err := en.store.Load(ctx)
	if err != nil {
		return err
	}
	if _, err := en.history.Load(ctx); err != nil {
		return err
	}
	if _, err := en.Services.RegisterRegions.Run(ctx, registerregions.Input{Reminders: reminders}); err != nil {
		return err
	}
	en.log.Info(ctx, "Engine has been started.", logging.Entry("reminders", len(reminders)))
	return nil
}

func (en *Engine) AddReminder(
	ctx context.Context,
	name string,
	latitude float64,
	longitude float64,
	radius float64,
) (reminder.Reminder, error) {
	result, err := en.Services.AddReminder.Run(ctx, addreminder.Input{
		Name:      name,
		Latitude:  latitude,
		Longitude: longitude,
		Radius:    radius,
	})
	return result.Reminder, err
}

func (en *Engine) RemoveReminder(ctx context.Context, id reminder.ID) error {
	_, err := en.Services.RemoveReminder.Run(ctx, removereminder.Input{ID: id})
	return err
}

func (en *Engine) ListReminders(ctx context.Context) []reminder.Reminder {
	result, _ := en.Services.ListReminders.Run(ctx, listreminders.Input{})
	return result.Reminders
}

func (en *Engine) ListHistory(ctx context.Context) []activation.Entry {
	result, _ := en.Services.ListHistory.Run(ctx, listhistory.Input{})
	return result.Entries
}

// Run processes region events in delivery order until the channel is closed
// or the context is done. Processing errors are logged by the service and do
// not stop the loop.
func (en *Engine) Run(ctx context.Context, events <-chan region.Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-events:
			if !ok {
				en.log.Info(ctx, "Region event channel has been closed.")
				return nil
			}
			en.Services.ProcessActivation.Run(ctx, processactivation.Input{Event: event})
		}
	}
}
