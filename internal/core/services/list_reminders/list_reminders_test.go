package listreminders

import (
	"context"
	"georemind/internal/core/domain/reminder"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListReminders(t *testing.T) {
	// Setup ---
	pharmacy := reminder.Reminder{ID: "Pharmacy-40--3", Name: "Pharmacy", Latitude: 40, Longitude: -3, Radius: 100}
	gym := reminder.Reminder{ID: "Gym-1-2", Name: "Gym", Latitude: 1, Longitude: 2, Radius: 50}
	store := reminder.NewFakeStore(pharmacy, gym)

	// Exercise ---
	result, err := New(store).Run(context.Background(), Input{})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal([]reminder.Reminder{pharmacy, gym}, result.Reminders)
}
