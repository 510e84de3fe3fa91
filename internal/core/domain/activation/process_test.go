package activation

import (
	"georemind/internal/core/domain/region"
	"georemind/internal/core/domain/reminder"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	Now      = time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	Pharmacy = reminder.Reminder{
		ID:        reminder.ID("Pharmacy-40--3"),
		Name:      "Pharmacy",
		Latitude:  40,
		Longitude: -3,
		Radius:    100,
	}
)

func lookupOf(reminders ...reminder.Reminder) Lookup {
	return func(id reminder.ID) (reminder.Reminder, bool) {
		for _, rem := range reminders {
			if rem.ID == id {
				return rem, true
			}
		}
		return reminder.Reminder{}, false
	}
}

func registered(ids ...reminder.ID) RegistrationCheck {
	return func(id reminder.ID) bool {
		for _, registeredID := range ids {
			if registeredID == id {
				return true
			}
		}
		return false
	}
}

func TestProcessEnterForKnownReminder(t *testing.T) {
	// Exercise ---
	outcome := Process(
		region.Event{Identifier: string(Pharmacy.ID), Type: region.EventTypeEnter, Latitude: 1, Longitude: 2, Radius: 3},
		lookupOf(Pharmacy),
		registered(),
		Now,
	)

	// Verify ---
	assert := require.New(t)
	assert.Equal(DecisionActivate, outcome.Decision)
	assert.False(outcome.IsStale)
	assert.Equal(NewEntry(Pharmacy, Now), outcome.Entry)
	assert.Equal(NotificationTitle, outcome.Notification.Title)
	assert.Equal("You have entered the region for your task: Pharmacy", outcome.Notification.Body)
}

func TestProcessEnterForDeletedReminderUsesEventPayload(t *testing.T) {
	// Exercise ---
	outcome := Process(
		region.Event{Identifier: "Gym-1-2", Type: region.EventTypeEnter, Latitude: 1, Longitude: 2, Radius: 30},
		lookupOf(Pharmacy),
		registered(reminder.ID("Gym-1-2")),
		Now,
	)

	// Verify ---
	assert := require.New(t)
	assert.Equal(DecisionActivate, outcome.Decision)
	assert.True(outcome.IsStale)
	assert.Equal(
		Entry{ID: "Gym-1-2", Name: "Gym-1-2", Latitude: 1, Longitude: 2, Radius: 30, ActivationDate: Now},
		outcome.Entry,
	)
	assert.Equal("You have entered the region for your task: Gym-1-2", outcome.Notification.Body)
}

func TestProcessEnterForUnregisteredRegionIsIgnored(t *testing.T) {
	outcome := Process(
		region.Event{Identifier: "Unknown-0-0", Type: region.EventTypeEnter},
		lookupOf(Pharmacy),
		registered(Pharmacy.ID),
		Now,
	)

	assert := require.New(t)
	assert.Equal(DecisionIgnoreUnregistered, outcome.Decision)
	assert.Equal(Entry{}, outcome.Entry)
}

func TestProcessIgnoresNonEnterEvents(t *testing.T) {
	for _, eventType := range []region.EventType{region.EventTypeExit, region.EventTypeUnknown} {
		outcome := Process(
			region.Event{Identifier: string(Pharmacy.ID), Type: eventType},
			lookupOf(Pharmacy),
			registered(Pharmacy.ID),
			Now,
		)

		assert := require.New(t)
		assert.Equal(DecisionIgnoreEventType, outcome.Decision, eventType.String())
	}
}
