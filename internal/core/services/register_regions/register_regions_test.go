package registerregions

import (
	"context"
	"errors"
	"georemind/internal/core/domain/logging"
	"georemind/internal/core/domain/metrics"
	"georemind/internal/core/domain/region"
	"georemind/internal/core/domain/reminder"
	"testing"

	"github.com/stretchr/testify/suite"
)

var (
	Pharmacy = reminder.Reminder{ID: "Pharmacy-40--3", Name: "Pharmacy", Latitude: 40, Longitude: -3, Radius: 100}
	Gym      = reminder.Reminder{ID: "Gym-1-2", Name: "Gym", Latitude: 1, Longitude: 2, Radius: 50}
)

type testSuite struct {
	suite.Suite
	logger    *logging.FakeLogger
	monitor   *region.FakeMonitor
	metrics   *metrics.FakeMetrics
	registrar *Registrar
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.monitor = region.NewFakeMonitor()
	suite.metrics = metrics.NewFakeMetrics()
	suite.registrar = New(suite.logger, suite.monitor, suite.metrics)
}

func TestRegisterRegionsService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestRegistersWholeSetInStoreOrder() {
	// Exercise ---
	result, err := s.registrar.Run(context.Background(), Input{Reminders: []reminder.Reminder{Pharmacy, Gym}})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	expected := []region.Region{
		{Identifier: "Pharmacy-40--3", Latitude: 40, Longitude: -3, Radius: 100},
		{Identifier: "Gym-1-2", Latitude: 1, Longitude: 2, Radius: 50},
	}
	assert.Equal(expected, result.Regions)
	assert.Equal(expected, s.monitor.RegisteredRegions())
	assert.Equal(1, s.monitor.Calls)
	assert.Equal(2, s.metrics.RegisteredRegions)
}

func (s *testSuite) TestIsIdempotent() {
	// Setup ---
	ctx := context.Background()
	input := Input{Reminders: []reminder.Reminder{Pharmacy, Gym}}
	_, err := s.registrar.Run(ctx, input)
	s.Require().Nil(err)
	first := s.monitor.RegisteredRegions()

	// Exercise ---
	_, err = s.registrar.Run(ctx, input)

	// Verify ---
	s.Nil(err)
	s.Equal(first, s.monitor.RegisteredRegions())
}

func (s *testSuite) TestEmptySetClearsMonitor() {
	// Setup ---
	ctx := context.Background()
	_, err := s.registrar.Run(ctx, Input{Reminders: []reminder.Reminder{Pharmacy}})
	s.Require().Nil(err)

	// Exercise ---
	_, err = s.registrar.Run(ctx, Input{})

	// Verify ---
	s.Nil(err)
	s.Empty(s.monitor.RegisteredRegions())
	s.Equal(0, s.metrics.RegisteredRegions)
}

func (s *testSuite) TestRejectedRegistration() {
	// Setup ---
	s.monitor.ReplaceError = region.ErrCapacityExceeded

	// Exercise ---
	_, err := s.registrar.Run(context.Background(), Input{Reminders: []reminder.Reminder{Pharmacy}})

	// Verify ---
	assert := s.Require()
	assert.ErrorIs(err, region.ErrRegistration)
	assert.ErrorIs(err, region.ErrCapacityExceeded)
	assert.Equal(1, s.metrics.RegistrationsFailed)
	assert.Len(s.logger.Records(logging.ERROR), 1)
}

func (s *testSuite) TestWasRegistered() {
	// Setup ---
	s.monitor.ReplaceError = errors.New("offline")

	// Exercise ---
	s.registrar.Run(context.Background(), Input{Reminders: []reminder.Reminder{Pharmacy}})

	// Verify ---
	s.True(s.registrar.WasRegistered(Pharmacy.ID))
	s.False(s.registrar.WasRegistered(Gym.ID))
}
