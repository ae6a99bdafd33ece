// Package route derives the distance summary of a track that is drawn on a
// route map: total length and whole-kilometer markers.
package route

import (
	"math"

	"github.com/bgraf/kmroute/geotrack"
	"github.com/bgraf/kmroute/option"
)

// KmMarker flags the point at which the accumulated distance first reached Km
// whole kilometers.
type KmMarker struct {
	Point geotrack.GeoPoint `json:"position" yaml:"position"`
	Km    int               `json:"km" yaml:"km"`
}

type Summary struct {
	// TotalDistance in kilometers.
	TotalDistance float64
	Markers       []KmMarker

	Start  option.Option[geotrack.GeoPoint]
	Finish option.Option[geotrack.GeoPoint]
	Center option.Option[geotrack.GeoPoint]
}

// Summarize walks the track in order and accumulates the haversine length of
// each segment. Whenever the integer part of the running total grows within a
// segment, a marker is placed at the segment's end point. A segment crossing
// several kilometer boundaries yields one marker only.
func Summarize(track geotrack.Track) Summary {
	s := Summary{
		Start:  option.FromPair(track.Start()),
		Finish: option.FromPair(track.Finish()),
		Center: option.FromPair(track.Middle()),
	}

	if len(track) < 2 {
		return s
	}

	distance := 0.0
	for i := 1; i < len(track); i++ {
		before := math.Floor(distance)
		distance += Distance(track[i-1], track[i])
		after := math.Floor(distance)

		if after > before {
			s.Markers = append(s.Markers, KmMarker{Point: track[i], Km: int(after)})
		}
	}

	s.TotalDistance = distance
	return s
}
