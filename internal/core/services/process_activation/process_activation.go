package processactivation

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
	"time"
)

type Input struct {
	Event region.Event
}

type Result struct {
	Outcome activation.Outcome
}

type service struct {
	log           logging.Logger
	store         reminder.Store
	history       activation.Log
	notifier      notification.Notifier
	wasRegistered activation.RegistrationCheck
	metrics       metrics.Metrics
	now           func() time.Time
}

func New(
	log logging.Logger,
	store reminder.Store,
	history activation.Log,
	notifier notification.Notifier,
	wasRegistered activation.RegistrationCheck,
	metrics metrics.Metrics,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	if history == nil {
		panic(e.NewNilArgumentError("history"))
	}
	if notifier == nil {
		panic(e.NewNilArgumentError("notifier"))
	}
	if wasRegistered == nil {
		panic(e.NewNilArgumentError("wasRegistered"))
	}
	if metrics == nil {
		panic(e.NewNilArgumentError("metrics"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:           log,
		store:         store,
		history:       history,
		notifier:      notifier,
		wasRegistered: wasRegistered,
		metrics:       metrics,
		now:           now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	event := input.Event
	s.metrics.RegionEventReceived(eventTypeLabel(event.Type))

	lookup := func(id reminder.ID) (reminder.Reminder, bool) {
		return s.store.Get(ctx, id)
	}
	outcome := activation.Process(event, lookup, s.wasRegistered, s.now().UTC())
	result.Outcome = outcome

	switch outcome.Decision {
	case activation.DecisionIgnoreEventType:
		s.metrics.ActivationIgnored(outcome.Decision.String())
		s.log.Debug(
			ctx,
			"Region event ignored because of its type.",
			logging.Entry("identifier", event.Identifier),
			logging.Entry("type", eventTypeLabel(event.Type)),
		)
		return result, nil
	case activation.DecisionIgnoreUnregistered:
		s.metrics.ActivationIgnored(outcome.Decision.String())
		s.log.Warning(
			ctx,
			"Region event for an unregistered region ignored.",
			logging.Entry("identifier", event.Identifier),
		)
		return result, nil
	}

	if outcome.IsStale {
		s.log.Warning(
			ctx,
			"Reminder no longer exists, using region event payload.",
			logging.Entry("identifier", event.Identifier),
		)
	}

	if err := s.history.Append(ctx, outcome.Entry); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("identifier", event.Identifier))
		return result, err
	}
	s.metrics.ActivationRecorded()

	if err := s.notifier.Present(ctx, outcome.Notification); err != nil {
		s.metrics.NotificationFailed()
		s.log.Warning(
			ctx,
			"Could not present notification.",
			logging.Entry("identifier", event.Identifier),
			logging.Entry("err", err),
		)
	}

	s.log.Info(
		ctx,
		"Reminder has been activated.",
		logging.Entry("id", outcome.Entry.ID),
		logging.Entry("activationDate", outcome.Entry.ActivationDate),
	)
	return result, nil
}

func eventTypeLabel(t region.EventType) string {
	if t == region.EventTypeUnknown {
		return "unknown"
	}
	return t.String()
}
