package geotrack

import (
	"encoding/json"
	"time"
)

// GeoPoint is a position in decimal degrees. Time is the fix time recorded in
// the track file and is zero when the file carries none.
type GeoPoint struct {
	Lat, Lon float64
	Time     time.Time
}

func (p GeoPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{p.Lat, p.Lon})
}

// Track is an ordered sequence of points; slice order is traversal order.
type Track []GeoPoint

func (t Track) Start() (GeoPoint, bool) {
	if len(t) == 0 {
		return GeoPoint{}, false
	}
	return t[0], true
}

func (t Track) Finish() (GeoPoint, bool) {
	if len(t) == 0 {
		return GeoPoint{}, false
	}
	return t[len(t)-1], true
}

// Middle returns the point at index len/2, used to center a map on the route.
func (t Track) Middle() (GeoPoint, bool) {
	if len(t) == 0 {
		return GeoPoint{}, false
	}
	return t[len(t)/2], true
}
