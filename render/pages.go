package render

import (
	"html/template"
	"time"
)

// RouteEntry describes one route on the index and route pages.
type RouteEntry struct {
	Name        string
	Description template.HTML
	// Available is false when the route's track could not be loaded.
	Available     bool
	TotalDistance float64
	Markers       int
	// DownloadURL points to the original track file, if it is published.
	DownloadURL string
}

type IndexPage struct {
	Title  string
	Date   *time.Time
	Routes []RouteEntry
}

type RoutePage struct {
	Title string
	Route RouteEntry
	Map   template.HTML
}
