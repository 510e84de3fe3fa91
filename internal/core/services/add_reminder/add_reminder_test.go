package addreminder

import (
	"context"
	"georemind/internal/core/domain/logging"
	"georemind/internal/core/domain/metrics"
	"georemind/internal/core/domain/region"
	"georemind/internal/core/domain/reminder"
	"georemind/internal/core/domain/storage"
	"georemind/internal/core/services"
	registerregions "georemind/internal/core/services/register_regions"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type Fixture struct {
	log     *logging.FakeLogger
	store   *reminder.FakeStore
	monitor *region.FakeMonitor
}

func NewFixture(reminders ...reminder.Reminder) Fixture {
	return Fixture{
		log:     logging.NewFakeLogger(),
		store:   reminder.NewFakeStore(reminders...),
		monitor: region.NewFakeMonitor(),
	}
}

func (f *Fixture) service() services.Service[Input, Result] {
	registrar := registerregions.New(f.log, f.monitor, metrics.NewFakeMetrics())
	return New(f.log, f.store, registrar)
}

func TestAddReminderSuccess(t *testing.T) {
	// Setup ---
	f := NewFixture()

	// Exercise ---
	result, err := f.service().Run(
		context.Background(),
		Input{Name: "  Pharmacy ", Latitude: 40, Longitude: -3, Radius: 100},
	)

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	expected := reminder.Reminder{ID: "Pharmacy-40--3", Name: "Pharmacy", Latitude: 40, Longitude: -3, Radius: 100}
	assert.Equal(expected, result.Reminder)
	assert.Equal([]reminder.Reminder{expected}, f.store.Reminders)
	assert.Equal(
		[]region.Region{{Identifier: "Pharmacy-40--3", Latitude: 40, Longitude: -3, Radius: 100}},
		f.monitor.RegisteredRegions(),
	)
}

func TestAddReminderRegistersWholeSet(t *testing.T) {
	// Setup ---
	gym := reminder.Reminder{ID: "Gym-1-2", Name: "Gym", Latitude: 1, Longitude: 2, Radius: 50}
	f := NewFixture(gym)

	// Exercise ---
	_, err := f.service().Run(context.Background(), Input{Name: "Pharmacy", Latitude: 40, Longitude: -3, Radius: 100})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	regions := f.monitor.RegisteredRegions()
	assert.Len(regions, 2)
	assert.Equal("Gym-1-2", regions[0].Identifier)
	assert.Equal("Pharmacy-40--3", regions[1].Identifier)
}

func TestAddReminderValidationError(t *testing.T) {
	cases := []struct {
		id    string
		input Input
	}{
		{id: "blank name", input: Input{Name: "   ", Latitude: 40, Longitude: -3, Radius: 100}},
		{id: "latitude", input: Input{Name: "A", Latitude: 91, Longitude: -3, Radius: 100}},
		{id: "longitude", input: Input{Name: "A", Latitude: 40, Longitude: -181, Radius: 100}},
		{id: "nan", input: Input{Name: "A", Latitude: math.NaN(), Longitude: -3, Radius: 100}},
		{id: "zero radius", input: Input{Name: "A", Latitude: 40, Longitude: -3, Radius: 0}},
		{id: "huge radius", input: Input{Name: "A", Latitude: 40, Longitude: -3, Radius: reminder.MaxRadius + 1}},
		{id: "inf radius", input: Input{Name: "A", Latitude: 40, Longitude: -3, Radius: math.Inf(1)}},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			f := NewFixture()

			// Exercise ---
			_, err := f.service().Run(context.Background(), testcase.input)

			// Verify ---
			assert := require.New(t)
			assert.ErrorIs(err, reminder.ErrValidation)
			assert.Empty(f.store.Reminders)
			assert.Equal(0, f.monitor.Calls)
		})
	}
}

func TestAddReminderDuplicate(t *testing.T) {
	// Setup ---
	pharmacy := reminder.Reminder{ID: "Pharmacy-40--3", Name: "Pharmacy", Latitude: 40, Longitude: -3, Radius: 100}
	f := NewFixture(pharmacy)

	// Exercise ---
	_, err := f.service().Run(context.Background(), Input{Name: "Pharmacy", Latitude: 40, Longitude: -3, Radius: 500})

	// Verify ---
	assert := require.New(t)
	assert.ErrorIs(err, reminder.ErrReminderAlreadyExists)
	assert.Equal([]reminder.Reminder{pharmacy}, f.store.Reminders)
	assert.Equal(0, f.monitor.Calls)
}

func TestAddReminderStorageError(t *testing.T) {
	// Setup ---
	f := NewFixture()
	f.store.AddError = storage.ErrStorage

	// Exercise ---
	_, err := f.service().Run(context.Background(), Input{Name: "Pharmacy", Latitude: 40, Longitude: -3, Radius: 100})

	// Verify ---
	assert := require.New(t)
	assert.ErrorIs(err, storage.ErrStorage)
	assert.Equal(0, f.monitor.Calls)
}

func TestAddReminderRegistrationErrorKeepsReminder(t *testing.T) {
	// Setup ---
	f := NewFixture()
	f.monitor.ReplaceError = region.ErrCapacityExceeded

	// Exercise ---
	result, err := f.service().Run(context.Background(), Input{Name: "Pharmacy", Latitude: 40, Longitude: -3, Radius: 100})

	// Verify ---
	assert := require.New(t)
	assert.ErrorIs(err, region.ErrRegistration)
	assert.Equal(reminder.ID("Pharmacy-40--3"), result.Reminder.ID)
	assert.Len(f.store.Reminders, 1)
}

func TestGetRateLimitKey(t *testing.T) {
	require.Equal(t, "127.0.0.1", Input{Client: "127.0.0.1"}.GetRateLimitKey())
}
