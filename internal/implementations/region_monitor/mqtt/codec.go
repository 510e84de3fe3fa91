package mqtt

import (
	"encoding/json"
	"fmt"
	"georemind/internal/core/domain/region"
)

type regionPayload struct {
	Identifier string  `json:"identifier"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Radius     float64 `json:"radius"`
}

type regionSetPayload struct {
	Regions []regionPayload `json:"regions"`
}

type eventPayload struct {
	Identifier string  `json:"identifier"`
	Type       string  `json:"type"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Radius     float64 `json:"radius"`
}

func EncodeRegions(regions []region.Region) ([]byte, error) {
	payload := regionSetPayload{Regions: make([]regionPayload, 0, len(regions))}
	for _, r := range regions {
		payload.Regions = append(payload.Regions, regionPayload{
			Identifier: r.Identifier,
			Latitude:   r.Latitude,
			Longitude:  r.Longitude,
			Radius:     r.Radius,
		})
	}
	return json.Marshal(payload)
}

func DecodeRegions(data []byte) ([]region.Region, error) {
	var payload regionSetPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	regions := make([]region.Region, 0, len(payload.Regions))
	for _, r := range payload.Regions {
		regions = append(regions, region.Region{
			Identifier: r.Identifier,
			Latitude:   r.Latitude,
			Longitude:  r.Longitude,
			Radius:     r.Radius,
		})
	}
	return regions, nil
}

func EncodeEvent(event region.Event) ([]byte, error) {
	return json.Marshal(eventPayload{
		Identifier: event.Identifier,
		Type:       event.Type.String(),
		Latitude:   event.Latitude,
		Longitude:  event.Longitude,
		Radius:     event.Radius,
	})
}

// DecodeEvent parses an event payload. An unrecognized type is kept as
// EventTypeUnknown so that it can be accounted for and ignored downstream.
func DecodeEvent(data []byte) (region.Event, error) {
	var payload eventPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return region.Event{}, err
	}
	if payload.Identifier == "" {
		return region.Event{}, fmt.Errorf("region event without identifier")
	}
	eventType, _ := region.ParseEventType(payload.Type)
	return region.Event{
		Identifier: payload.Identifier,
		Type:       eventType,
		Latitude:   payload.Latitude,
		Longitude:  payload.Longitude,
		Radius:     payload.Radius,
	}, nil
}
