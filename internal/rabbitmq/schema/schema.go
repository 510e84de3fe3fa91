package schema

import (
	"encoding/json"
	"georemind/internal/core/domain/region"
	"time"
)

// RegionEvent is the AMQP message body of a region transition.
type RegionEvent struct {
	Identifier string    `json:"identifier"`
	Type       string    `json:"type"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Radius     float64   `json:"radius"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewRegionEvent(event region.Event, occurredAt time.Time) RegionEvent {
	return RegionEvent{
		Identifier: event.Identifier,
		Type:       event.Type.String(),
		Latitude:   event.Latitude,
		Longitude:  event.Longitude,
		Radius:     event.Radius,
		OccurredAt: occurredAt,
	}
}

func (r *RegionEvent) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func (r *RegionEvent) Unmarshal(data []byte) error {
	return json.Unmarshal(data, r)
}

// Event converts the message to a domain event. Unrecognized types map to
// region.EventTypeUnknown.
func (r *RegionEvent) Event() region.Event {
	eventType, _ := region.ParseEventType(r.Type)
	return region.Event{
		Identifier: r.Identifier,
		Type:       eventType,
		Latitude:   r.Latitude,
		Longitude:  r.Longitude,
		Radius:     r.Radius,
	}
}
