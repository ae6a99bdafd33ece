package config

import (
	"time"

	"github.com/spf13/viper"
)

var (
	KeyRoutesDirectory = "routes.directory"
	KeyRoutes          = "routes.list"
	KeyDefaultRoute    = "routes.default"
	KeyGPXExtensions   = "tracks.gpx-extensions"
	KeyNMEAExtensions  = "tracks.nmea-extensions"
	KeyFetchTimeout    = "fetch.timeout"
	KeyTileURL         = "map.tile-url"
	KeyAttribution     = "map.attribution"
	KeyZoom            = "map.zoom"
	KeyLineColor       = "map.line-color"
	KeyCenterLat       = "map.center.lat"
	KeyCenterLon       = "map.center.lon"
	KeyEventTitle      = "event.title"
	KeyEventDate       = "event.date"
	KeyEventLocale     = "event.locale"
	KeyServeAddress    = "serve.address"
	KeyBuildDirectory  = "build.directory"
)

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault(KeyRoutesDirectory, ".")
	viper.SetDefault(KeyRoutes, []map[string]interface{}{
		{"name": "3K", "file": "3K.gpx"},
		{"name": "5K", "file": "5K.gpx"},
		{"name": "10K", "file": "10 KM.gpx"},
	})
	viper.SetDefault(KeyDefaultRoute, "10K")
	viper.SetDefault(KeyGPXExtensions, []string{".gpx"})
	viper.SetDefault(KeyNMEAExtensions, []string{".nmea", ".txt"})
	viper.SetDefault(KeyFetchTimeout, 15*time.Second)
	viper.SetDefault(KeyTileURL, "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png")
	viper.SetDefault(KeyAttribution, `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`)
	viper.SetDefault(KeyZoom, 15)
	viper.SetDefault(KeyLineColor, "#d97706")
	viper.SetDefault(KeyCenterLat, 18.646789)
	viper.SetDefault(KeyCenterLon, 73.759049)
	viper.SetDefault(KeyEventTitle, "Marathon")
	viper.SetDefault(KeyEventLocale, "en_US")
	viper.SetDefault(KeyServeAddress, ":8000")
	viper.SetDefault(KeyBuildDirectory, "build")
}

func RoutesDirectory() string {
	return viper.GetString(KeyRoutesDirectory)
}

func DefaultRoute() string {
	return viper.GetString(KeyDefaultRoute)
}

func GPXExtensions() []string {
	return viper.GetStringSlice(KeyGPXExtensions)
}

func NMEAExtensions() []string {
	return viper.GetStringSlice(KeyNMEAExtensions)
}

func FetchTimeout() time.Duration {
	return viper.GetDuration(KeyFetchTimeout)
}

func TileURL() string {
	return viper.GetString(KeyTileURL)
}

func Attribution() string {
	return viper.GetString(KeyAttribution)
}

func Zoom() int {
	return viper.GetInt(KeyZoom)
}

func LineColor() string {
	return viper.GetString(KeyLineColor)
}

type Coords struct {
	Lat, Lon float64
}

// DefaultCenter is the map center used while no track is available.
func DefaultCenter() Coords {
	return Coords{
		Lat: viper.GetFloat64(KeyCenterLat),
		Lon: viper.GetFloat64(KeyCenterLon),
	}
}

func EventTitle() string {
	return viper.GetString(KeyEventTitle)
}

func HasEventDate() bool {
	return viper.IsSet(KeyEventDate)
}

func EventDate() time.Time {
	return viper.GetTime(KeyEventDate)
}

func EventLocale() string {
	return viper.GetString(KeyEventLocale)
}

func ServeAddress() string {
	return viper.GetString(KeyServeAddress)
}

func BuildDirectory() string {
	return viper.GetString(KeyBuildDirectory)
}
