package render

import (
	"fmt"
	"html/template"

	"github.com/bgraf/kmroute/config"
	"github.com/bgraf/kmroute/routes"
)

// MapElementID is the id of the map element on a route page.
const MapElementID = "route-map"

func NewRouteEntry(r *routes.Route) (RouteEntry, error) {
	description, err := Description(r.Description)
	if err != nil {
		return RouteEntry{}, fmt.Errorf("route '%s': %w", r.Name, err)
	}

	return RouteEntry{
		Name:          r.Name,
		Description:   description,
		Available:     r.Available(),
		TotalDistance: r.Summary.TotalDistance,
		Markers:       len(r.Summary.Markers),
	}, nil
}

func NewIndexPage(rs []*routes.Route) (IndexPage, error) {
	page := IndexPage{Title: config.EventTitle()}

	if config.HasEventDate() {
		date := config.EventDate()
		page.Date = &date
	}

	for _, r := range rs {
		entry, err := NewRouteEntry(r)
		if err != nil {
			return IndexPage{}, err
		}
		page.Routes = append(page.Routes, entry)
	}

	return page, nil
}

// NewRoutePage builds the page of a route around an already rendered map
// element.
func NewRoutePage(r *routes.Route, mapHTML template.HTML) (RoutePage, error) {
	entry, err := NewRouteEntry(r)
	if err != nil {
		return RoutePage{}, err
	}

	return RoutePage{
		Title: config.EventTitle(),
		Route: entry,
		Map:   mapHTML,
	}, nil
}

// NewRoutePayload builds the map payload of an available route.
func NewRoutePayload(r *routes.Route, style Style, colors *ColorSet) (MapPayload, error) {
	if !r.Available() {
		return MapPayload{}, fmt.Errorf("route '%s' is unavailable: %w", r.Name, r.Err)
	}

	rc, err := colors.Colors(r.Name, r.Color)
	if err != nil {
		return MapPayload{}, err
	}

	return NewMapPayload(r.Name, r.Track, r.Summary, style, rc), nil
}
