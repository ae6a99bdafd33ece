package geotrack

import (
	"errors"
	"fmt"

	"github.com/tkrajina/gpxgo/gpx"
)

var (
	errNoTrack   = errors.New("no track in GPX data")
	errNoSegment = errors.New("first track has no segment")
	errNoPoints  = errors.New("first track segment has no points")
)

// ParseGPX reads the first segment of the first track. Further segments and
// tracks are ignored.
func ParseGPX(data []byte) (Track, error) {
	gpxData, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse GPX: %w", err)
	}

	if len(gpxData.Tracks) == 0 {
		return nil, errNoTrack
	}
	if len(gpxData.Tracks[0].Segments) == 0 {
		return nil, errNoSegment
	}

	segment := gpxData.Tracks[0].Segments[0]
	if len(segment.Points) == 0 {
		return nil, errNoPoints
	}

	points := make(Track, 0, len(segment.Points))
	for _, p := range segment.Points {
		points = append(points, GeoPoint{Lat: p.Latitude, Lon: p.Longitude, Time: p.Timestamp})
	}

	return points, nil
}
