package activationlog

import (
	"context"
	"errors"
	"georemind/internal/core/domain/activation"
	"georemind/internal/core/domain/logging"
	"georemind/internal/core/domain/storage"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var (
	Now   = time.Date(2024, 5, 1, 10, 30, 0, 123456789, time.UTC)
	First = activation.Entry{
		ID:             "Pharmacy-40--3",
		Name:           "Pharmacy",
		Latitude:       40,
		Longitude:      -3,
		Radius:         100,
		ActivationDate: Now,
	}
	Second = activation.Entry{
		ID:             "Pharmacy-40--3",
		Name:           "Pharmacy",
		Latitude:       40,
		Longitude:      -3,
		Radius:         100,
		ActivationDate: Now.Add(time.Minute),
	}
)

type testSuite struct {
	suite.Suite
	log     *logging.FakeLogger
	durable *storage.FakeStore
	history *Log
}

func (s *testSuite) SetupTest() {
	s.log = logging.NewFakeLogger()
	s.durable = storage.NewFakeStore()
	s.history = New(s.log, s.durable)
}

func TestActivationLog(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestAppendKeepsOrderAcrossRestart() {
	// Setup ---
	ctx := context.Background()
	_, err := s.history.Load(ctx)
	s.Require().Nil(err)

	// Exercise ---
	s.Require().Nil(s.history.Append(ctx, First))
	s.Require().Nil(s.history.Append(ctx, Second))

	// Verify ---
	s.Equal([]activation.Entry{First, Second}, s.history.List(ctx))

	entries, err := New(s.log, s.durable).Load(ctx)
	s.Nil(err)
	s.Equal([]activation.Entry{First, Second}, entries)
}

func (s *testSuite) TestPersistedLayout() {
	// Exercise ---
	s.Require().Nil(s.history.Append(context.Background(), First))

	// Verify ---
	s.JSONEq(
		`[{
			"id":"Pharmacy-40--3",
			"name":"Pharmacy",
			"latitude":40,
			"longitude":-3,
			"radius":100,
			"activationDate":"2024-05-01T10:30:00.123456789Z"
		}]`,
		s.durable.Values[storage.HistoryKey],
	)
}

func (s *testSuite) TestAppendKeepsEntriesOfAnotherWriter() {
	// Setup ---
	ctx := context.Background()
	other := New(s.log, s.durable)
	_, err := s.history.Load(ctx)
	s.Require().Nil(err)
	_, err = other.Load(ctx)
	s.Require().Nil(err)

	// Exercise ---
	s.Require().Nil(other.Append(ctx, First))
	s.Require().Nil(s.history.Append(ctx, Second))

	// Verify ---
	s.Equal([]activation.Entry{First, Second}, s.history.List(ctx))
}

func (s *testSuite) TestAppendStorageFailure() {
	// Setup ---
	ctx := context.Background()
	s.Require().Nil(s.history.Append(ctx, First))
	s.durable.SetError = errors.New("disk full")

	// Exercise ---
	err := s.history.Append(ctx, Second)

	// Verify ---
	s.ErrorIs(err, storage.ErrStorage)
	s.Equal([]activation.Entry{First}, s.history.List(ctx))
}

func (s *testSuite) TestLoadMalformedValue() {
	for _, raw := range []string{
		`{}`,
		`[{"id":"","activationDate":"2024-05-01T10:30:00Z"}]`,
		`[{"id":"A-1-1","activationDate":"yesterday"}]`,
	} {
		// Setup ---
		s.SetupTest()
		s.durable.Values[storage.HistoryKey] = raw

		// Exercise ---
		entries, err := s.history.Load(context.Background())

		// Verify ---
		s.Nil(err, raw)
		s.Empty(entries, raw)
		s.Len(s.log.Records(logging.WARNING), 1, raw)
	}
}

func (s *testSuite) TestLoadReadFailure() {
	// Setup ---
	s.durable.GetError = errors.New("io")

	// Exercise ---
	_, err := s.history.Load(context.Background())

	// Verify ---
	s.ErrorIs(err, storage.ErrStorage)
}
