package simulated

import (
	"context"
	"georemind/internal/core/domain/logging"
	"georemind/internal/core/domain/region"
	"testing"

	"github.com/stretchr/testify/suite"
)

var (
	Pharmacy = region.Region{Identifier: "Pharmacy-40--3", Latitude: 40, Longitude: -3, Radius: 100}
	Gym      = region.Region{Identifier: "Gym-40.001--3", Latitude: 40.001, Longitude: -3, Radius: 200}
)

type testSuite struct {
	suite.Suite
	monitor *Monitor
}

func (suite *testSuite) SetupTest() {
	suite.monitor = New(logging.NewFakeLogger(), 2, 16)
}

func TestSimulatedMonitor(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) received() []region.Event {
	events := make([]region.Event, 0)
	for {
		select {
		case event := <-s.monitor.Events():
			events = append(events, event)
		default:
			return events
		}
	}
}

func (s *testSuite) TestEnterAndExit() {
	// Setup ---
	ctx := context.Background()
	s.Require().Nil(s.monitor.ReplaceRegisteredRegions(ctx, []region.Region{Pharmacy}))

	// Exercise ---
	s.Require().Nil(s.monitor.UpdateLocation(ctx, 41, -3))
	s.Require().Nil(s.monitor.UpdateLocation(ctx, 40, -3))
	s.Require().Nil(s.monitor.UpdateLocation(ctx, 40.0001, -3))
	s.Require().Nil(s.monitor.UpdateLocation(ctx, 41, -3))

	// Verify ---
	s.Equal(
		[]region.Event{Pharmacy.EventFor(region.EventTypeEnter), Pharmacy.EventFor(region.EventTypeExit)},
		s.received(),
	)
}

func (s *testSuite) TestOverlappingRegions() {
	// Setup ---
	ctx := context.Background()
	s.Require().Nil(s.monitor.ReplaceRegisteredRegions(ctx, []region.Region{Pharmacy, Gym}))

	// Exercise ---
	s.Require().Nil(s.monitor.UpdateLocation(ctx, 40.0005, -3))

	// Verify ---
	events := s.received()
	s.Len(events, 2)
	s.Equal(region.EventTypeEnter, events[0].Type)
	s.Equal(region.EventTypeEnter, events[1].Type)
}

func (s *testSuite) TestReplaceKeepsStateOfRemainingRegions() {
	// Setup ---
	ctx := context.Background()
	s.Require().Nil(s.monitor.ReplaceRegisteredRegions(ctx, []region.Region{Pharmacy}))
	s.Require().Nil(s.monitor.UpdateLocation(ctx, 40, -3))
	s.received()

	// Exercise ---
	s.Require().Nil(s.monitor.ReplaceRegisteredRegions(ctx, []region.Region{Pharmacy}))
	s.Require().Nil(s.monitor.UpdateLocation(ctx, 40, -3))

	// Verify ---
	s.Empty(s.received())
}

func (s *testSuite) TestRemovedRegionStopsReporting() {
	// Setup ---
	ctx := context.Background()
	s.Require().Nil(s.monitor.ReplaceRegisteredRegions(ctx, []region.Region{Pharmacy}))

	// Exercise ---
	s.Require().Nil(s.monitor.ReplaceRegisteredRegions(ctx, []region.Region{}))
	s.Require().Nil(s.monitor.UpdateLocation(ctx, 40, -3))

	// Verify ---
	s.Empty(s.received())
	s.Empty(s.monitor.RegisteredRegions())
}

func (s *testSuite) TestCapacityExceeded() {
	// Exercise ---
	err := s.monitor.ReplaceRegisteredRegions(
		context.Background(),
		[]region.Region{Pharmacy, Gym, {Identifier: "Third-0-0", Radius: 10}},
	)

	// Verify ---
	s.ErrorIs(err, region.ErrCapacityExceeded)
	s.Empty(s.monitor.RegisteredRegions())
}
