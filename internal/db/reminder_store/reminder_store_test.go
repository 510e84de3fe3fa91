package reminderstore

import (
	"context"
	"errors"
	"georemind/internal/core/domain/logging"
	"georemind/internal/core/domain/reminder"
	"georemind/internal/core/domain/storage"
	"testing"

	"github.com/stretchr/testify/suite"
)

var (
	Pharmacy = reminder.Reminder{ID: "Pharmacy-40--3", Name: "Pharmacy", Latitude: 40, Longitude: -3, Radius: 100}
	Gym      = reminder.Reminder{ID: "Gym-40.5--3.25", Name: "Gym", Latitude: 40.5, Longitude: -3.25, Radius: 250}
)

type testSuite struct {
	suite.Suite
	log     *logging.FakeLogger
	durable *storage.FakeStore
	store   *Store
}

func (s *testSuite) SetupTest() {
	s.log = logging.NewFakeLogger()
	s.durable = storage.NewFakeStore()
	s.store = New(s.log, s.durable)
}

func TestReminderStore(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestLoadWithoutPersistedValue() {
	// Exercise ---
	reminders, err := s.store.Load(context.Background())

	// Verify ---
	s.Nil(err)
	s.Empty(reminders)
	s.Empty(s.store.List(context.Background()))
}

func (s *testSuite) TestAddPersistsAndReloads() {
	// Setup ---
	ctx := context.Background()
	_, err := s.store.Load(ctx)
	s.Require().Nil(err)

	// Exercise ---
	s.Require().Nil(s.store.Add(ctx, Pharmacy))
	s.Require().Nil(s.store.Add(ctx, Gym))

	// Verify ---
	s.Equal([]reminder.Reminder{Pharmacy, Gym}, s.store.List(ctx))

	reloaded := New(s.log, s.durable)
	reminders, err := reloaded.Load(ctx)
	s.Nil(err)
	s.Equal([]reminder.Reminder{Pharmacy, Gym}, reminders)
}

func (s *testSuite) TestPersistedLayout() {
	// Exercise ---
	s.Require().Nil(s.store.Add(context.Background(), Pharmacy))

	// Verify ---
	s.JSONEq(
		`[{"id":"Pharmacy-40--3","name":"Pharmacy","latitude":40,"longitude":-3,"radius":100}]`,
		s.durable.Values[storage.RemindersKey],
	)
}

func (s *testSuite) TestAddDuplicate() {
	// Setup ---
	ctx := context.Background()
	s.Require().Nil(s.store.Add(ctx, Pharmacy))

	// Exercise ---
	err := s.store.Add(ctx, Pharmacy)

	// Verify ---
	s.ErrorIs(err, reminder.ErrReminderAlreadyExists)
	s.Len(s.store.List(ctx), 1)
	s.Equal(1, s.durable.SetCalls)
}

func (s *testSuite) TestAddStorageFailureKeepsMemoryUnchanged() {
	// Setup ---
	ctx := context.Background()
	s.Require().Nil(s.store.Add(ctx, Pharmacy))
	s.durable.SetError = errors.New("disk full")

	// Exercise ---
	err := s.store.Add(ctx, Gym)

	// Verify ---
	s.ErrorIs(err, storage.ErrStorage)
	s.Equal([]reminder.Reminder{Pharmacy}, s.store.List(ctx))
	s.Len(s.log.Records(logging.ERROR), 1)
}

func (s *testSuite) TestRemove() {
	// Setup ---
	ctx := context.Background()
	s.Require().Nil(s.store.Add(ctx, Pharmacy))
	s.Require().Nil(s.store.Add(ctx, Gym))

	// Exercise ---
	removed, err := s.store.Remove(ctx, Pharmacy.ID)

	// Verify ---
	s.Nil(err)
	s.Equal(Pharmacy, removed)
	s.Equal([]reminder.Reminder{Gym}, s.store.List(ctx))
	_, ok := s.store.Get(ctx, Pharmacy.ID)
	s.False(ok)

	reminders, err := New(s.log, s.durable).Load(ctx)
	s.Nil(err)
	s.Equal([]reminder.Reminder{Gym}, reminders)
}

func (s *testSuite) TestRemoveUnknown() {
	// Setup ---
	ctx := context.Background()
	s.Require().Nil(s.store.Add(ctx, Pharmacy))

	// Exercise ---
	_, err := s.store.Remove(ctx, "Nope-0-0")

	// Verify ---
	s.ErrorIs(err, reminder.ErrReminderDoesNotExist)
	s.Equal([]reminder.Reminder{Pharmacy}, s.store.List(ctx))
}

func (s *testSuite) TestRemoveStorageFailureKeepsMemoryUnchanged() {
	// Setup ---
	ctx := context.Background()
	s.Require().Nil(s.store.Add(ctx, Pharmacy))
	s.durable.SetError = errors.New("disk full")

	// Exercise ---
	_, err := s.store.Remove(ctx, Pharmacy.ID)

	// Verify ---
	s.ErrorIs(err, storage.ErrStorage)
	rem, ok := s.store.Get(ctx, Pharmacy.ID)
	s.True(ok)
	s.Equal(Pharmacy, rem)
}

func (s *testSuite) TestLoadMalformedValue() {
	for _, raw := range []string{
		`not json`,
		`{"id":"x"}`,
		`[{"id":"","name":"Pharmacy","latitude":40,"longitude":-3,"radius":100}]`,
		`[{"id":"A-1-1","name":"A","latitude":1,"longitude":1,"radius":10},{"id":"A-1-1","name":"A","latitude":1,"longitude":1,"radius":10}]`,
	} {
		// Setup ---
		s.SetupTest()
		s.durable.Values[storage.RemindersKey] = raw

		// Exercise ---
		reminders, err := s.store.Load(context.Background())

		// Verify ---
		s.Nil(err, raw)
		s.Empty(reminders, raw)
		s.Len(s.log.Records(logging.WARNING), 1, raw)
	}
}

func (s *testSuite) TestLoadReadFailure() {
	// Setup ---
	s.durable.GetError = errors.New("io")

	// Exercise ---
	_, err := s.store.Load(context.Background())

	// Verify ---
	s.ErrorIs(err, storage.ErrStorage)
}

func (s *testSuite) TestListReturnsCopy() {
	// Setup ---
	ctx := context.Background()
	s.Require().Nil(s.store.Add(ctx, Pharmacy))

	// Exercise ---
	reminders := s.store.List(ctx)
	reminders[0].Name = "Changed"

	// Verify ---
	rem, _ := s.store.Get(ctx, Pharmacy.ID)
	s.Equal("Pharmacy", rem.Name)
}
