package activation

import (
	"fmt"
	"georemind/internal/core/domain/notification"
	"georemind/internal/core/domain/region"
	"georemind/internal/core/domain/reminder"
	"time"
)

const NotificationTitle = "Reminder"

type Decision struct {
	v string
}

func (d Decision) String() string {
	return d.v
}

var (
	DecisionActivate           = Decision{v: "activate"}
	DecisionIgnoreEventType    = Decision{v: "ignore_event_type"}
	DecisionIgnoreUnregistered = Decision{v: "ignore_unregistered"}
)

// Lookup returns the current definition of a reminder.
type Lookup func(id reminder.ID) (reminder.Reminder, bool)

// RegistrationCheck reports whether a region was submitted to the monitor.
type RegistrationCheck func(id reminder.ID) bool

type Outcome struct {
	Decision Decision
	// IsStale is set when the reminder is gone and the entry was built from
	// the event payload.
	IsStale      bool
	Entry        Entry
	Notification notification.Notification
}

// Process decides what a region event turns into. It has no side effects:
// persisting the entry and presenting the notification is up to the caller.
func Process(event region.Event, lookup Lookup, wasRegistered RegistrationCheck, now time.Time) Outcome {
	if event.Type != region.EventTypeEnter {
		return Outcome{Decision: DecisionIgnoreEventType}
	}

	id := reminder.ID(event.Identifier)
	rem, ok := lookup(id)
	isStale := false
	if !ok {
		if !wasRegistered(id) {
			return Outcome{Decision: DecisionIgnoreUnregistered}
		}
		isStale = true
		rem = reminder.Reminder{
			ID:        id,
			Name:      event.Identifier,
			Latitude:  event.Latitude,
			Longitude: event.Longitude,
			Radius:    event.Radius,
		}
	}

	return Outcome{
		Decision: DecisionActivate,
		IsStale:  isStale,
		Entry:    NewEntry(rem, now),
		Notification: notification.Notification{
			Title: NotificationTitle,
			Body:  fmt.Sprintf("You have entered the region for your task: %s", rem.Name),
		},
	}
}
