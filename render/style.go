package render

import (
	"github.com/bgraf/kmroute/config"
	"github.com/bgraf/kmroute/geotrack"
)

// Style holds the map settings shared by all routes.
type Style struct {
	TileURL       string
	Attribution   string
	Zoom          int
	LineColor     string
	DefaultCenter geotrack.GeoPoint
}

func StyleFromConfig() Style {
	center := config.DefaultCenter()

	return Style{
		TileURL:       config.TileURL(),
		Attribution:   config.Attribution(),
		Zoom:          config.Zoom(),
		LineColor:     config.LineColor(),
		DefaultCenter: geotrack.GeoPoint{Lat: center.Lat, Lon: center.Lon},
	}
}
