package main

import (
	"fmt"
	"strconv"
	"strings"
)

type point struct {
	latitude  float64
	longitude float64
}

// parseRoute reads points written as "lat,lon;lat,lon".
func parseRoute(raw string) ([]point, error) {
	parts := strings.Split(raw, ";")
	route := make([]point, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		coordinates := strings.Split(part, ",")
		if len(coordinates) != 2 {
			return nil, fmt.Errorf("invalid point %q: expected lat,lon", part)
		}
		latitude, err := strconv.ParseFloat(strings.TrimSpace(coordinates[0]), 64)
		if err != nil || latitude < -90 || latitude > 90 {
			return nil, fmt.Errorf("invalid latitude in %q", part)
		}
		longitude, err := strconv.ParseFloat(strings.TrimSpace(coordinates[1]), 64)
		if err != nil || longitude < -180 || longitude > 180 {
			return nil, fmt.Errorf("invalid longitude in %q", part)
		}
		route = append(route, point{latitude: latitude, longitude: longitude})
	}
	if len(route) == 0 {
		return nil, fmt.Errorf("route is empty")
	}
	return route, nil
}
