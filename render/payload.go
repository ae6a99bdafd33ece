package render

import (
	"fmt"

	"github.com/bgraf/kmroute/geotrack"
	"github.com/bgraf/kmroute/route"
)

type markerPayload struct {
	Position geotrack.GeoPoint `json:"position"`
	Popup    string            `json:"popup"`
}

type kmPayload struct {
	Position geotrack.GeoPoint `json:"position"`
	Km       int               `json:"km"`
	Popup    string            `json:"popup"`
}

// MapPayload is the JSON document mounted by static/map.js.
type MapPayload struct {
	Name          string            `json:"name"`
	Track         geotrack.Track    `json:"track"`
	Start         *markerPayload    `json:"start,omitempty"`
	Finish        *markerPayload    `json:"finish,omitempty"`
	Center        geotrack.GeoPoint `json:"center"`
	Zoom          int               `json:"zoom"`
	TileURL       string            `json:"tileURL"`
	Attribution   string            `json:"attribution"`
	LineColor     string            `json:"lineColor"`
	FillColor     string            `json:"fillColor"`
	TotalDistance float64           `json:"totalDistance"`
	TotalDisplay  string            `json:"totalDisplay"`
	KmMarkers     []kmPayload       `json:"kmMarkers"`
}

// FormatDistance renders kilometers with two decimals.
func FormatDistance(km float64) string {
	return fmt.Sprintf("%.2f km", km)
}

// NewMapPayload assembles the map of one route. The summary's center is used
// when present, the style's default center otherwise.
func NewMapPayload(name string, track geotrack.Track, summary route.Summary, style Style, colors RouteColors) MapPayload {
	p := MapPayload{
		Name:          name,
		Track:         track,
		Center:        summary.Center.GetOr(style.DefaultCenter),
		Zoom:          style.Zoom,
		TileURL:       style.TileURL,
		Attribution:   style.Attribution,
		LineColor:     colors.Line,
		FillColor:     colors.Fill,
		TotalDistance: summary.TotalDistance,
		TotalDisplay:  FormatDistance(summary.TotalDistance),
		KmMarkers:     make([]kmPayload, 0, len(summary.Markers)),
	}

	if p.Track == nil {
		p.Track = geotrack.Track{}
	}

	if summary.Start.IsSome() {
		p.Start = &markerPayload{
			Position: summary.Start.Get(),
			Popup:    "<strong>Start Point</strong><br/>Get ready for an amazing run!",
		}
	}

	if summary.Finish.IsSome() {
		p.Finish = &markerPayload{
			Position: summary.Finish.Get(),
			Popup:    fmt.Sprintf("<strong>Finish Line</strong><br/>Total Distance: %s", p.TotalDisplay),
		}
	}

	for _, m := range summary.Markers {
		p.KmMarkers = append(p.KmMarkers, kmPayload{
			Position: m.Point,
			Km:       m.Km,
			Popup:    fmt.Sprintf("%d km", m.Km),
		})
	}

	return p
}
