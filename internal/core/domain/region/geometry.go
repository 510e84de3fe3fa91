package region

import "math"

const earthRadius = 6_371_000.0

// Distance returns the great-circle distance in meters between two points.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return 2 * earthRadius * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Contains reports whether the point lies inside the region's circle.
func (r Region) Contains(latitude, longitude float64) bool {
	return Distance(r.Latitude, r.Longitude, latitude, longitude) <= r.Radius
}

// EventFor builds an event of the given type carrying the region geometry.
func (r Region) EventFor(t EventType) Event {
	return Event{
		Identifier: r.Identifier,
		Type:       t,
		Latitude:   r.Latitude,
		Longitude:  r.Longitude,
		Radius:     r.Radius,
	}
}
