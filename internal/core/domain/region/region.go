package region

import (
	"context"
	"errors"
)

// Region is a circle registered for entry monitoring. Identifier is the id of
// the reminder the region was registered for.
type Region struct {
	Identifier string
	Latitude   float64
	Longitude  float64
	Radius     float64
}

type EventType struct {
	v string
}

func (t EventType) String() string {
	return t.v
}

var (
	EventTypeUnknown = EventType{}
	EventTypeEnter   = EventType{v: "enter"}
	EventTypeExit    = EventType{v: "exit"}
)

var ErrParseEventType = errors.New("invalid region event type")

func ParseEventType(value string) (EventType, error) {
	switch value {
	case "enter":
		return EventTypeEnter, nil
	case "exit":
		return EventTypeExit, nil
	default:
		return EventTypeUnknown, ErrParseEventType
	}
}

// Event is a region transition reported by a monitor. Monitors may deliver the
// same event more than once and give no ordering guarantee across regions.
type Event struct {
	Identifier string
	Type       EventType
	Latitude   float64
	Longitude  float64
	Radius     float64
}

type Monitor interface {
	// ReplaceRegisteredRegions replaces the whole set of monitored regions.
	ReplaceRegisteredRegions(ctx context.Context, regions []Region) error
	Events() <-chan Event
}
