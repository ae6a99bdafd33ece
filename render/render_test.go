package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/bgraf/kmroute/geotrack"
	"github.com/bgraf/kmroute/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStyle = Style{
	TileURL:       "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
	Attribution:   "OSM",
	Zoom:          15,
	LineColor:     "#d97706",
	DefaultCenter: geotrack.GeoPoint{Lat: 18.646789, Lon: 73.759049},
}

func TestNewMapPayload(t *testing.T) {
	track := geotrack.Track{
		{Lat: 18.6468, Lon: 73.7590},
		{Lat: 18.6568, Lon: 73.7590},
	}

	p := NewMapPayload("3K", track, route.Summarize(track), testStyle, RouteColors{Line: "#d97706", Fill: "#fff"})

	assert.Equal(t, "1.11 km", p.TotalDisplay)
	require.NotNil(t, p.Start)
	require.NotNil(t, p.Finish)
	assert.Equal(t, track[0], p.Start.Position)
	assert.Equal(t, track[1], p.Finish.Position)
	assert.Equal(t, track[1], p.Center)
	assert.Contains(t, p.Finish.Popup, "Total Distance: 1.11 km")
	require.Len(t, p.KmMarkers, 1)
	assert.Equal(t, "1 km", p.KmMarkers[0].Popup)
}

func TestNewMapPayloadEmptyTrack(t *testing.T) {
	p := NewMapPayload("3K", nil, route.Summarize(nil), testStyle, RouteColors{})

	assert.Nil(t, p.Start)
	assert.Nil(t, p.Finish)
	assert.Equal(t, testStyle.DefaultCenter, p.Center)

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"track":[]`)
	assert.Contains(t, string(b), `"kmMarkers":[]`)
	assert.NotContains(t, string(b), `"start"`)
}

func TestColorSet(t *testing.T) {
	cs, err := NewColorSet("#d97706")
	require.NoError(t, err)

	base, err := cs.Colors("5K", "")
	require.NoError(t, err)
	assert.Equal(t, "#d97706", base.Line)
	assert.NotEqual(t, base.Line, base.Fill)

	custom, err := cs.Colors("10K", "#2563EB")
	require.NoError(t, err)
	assert.Equal(t, "#2563eb", custom.Line)

	_, err = cs.Colors("21K", "blue")
	assert.Error(t, err)

	_, err = NewColorSet("nope")
	assert.Error(t, err)
}

func TestMapRendererCapability(t *testing.T) {
	leaflet := NewMapRenderer(testStyle)
	html := string(leaflet.Deferred("route-map", "/api/route/5K"))
	assert.Contains(t, html, `id="route-map"`)
	assert.Contains(t, html, `loadAndMountRouteMap(mapContainer, { 'dataURL': "/api/route/5K" })`)

	offline := testStyle
	offline.TileURL = ""
	placeholder := NewMapRenderer(offline)

	html = string(placeholder.Deferred("route-map", "/api/route/5K"))
	assert.Contains(t, html, "Loading map...")
	assert.False(t, strings.Contains(html, "<script>"))

	embedded, err := placeholder.Embed("route-map", MapPayload{})
	require.NoError(t, err)
	assert.NotContains(t, string(embedded), "<script>")
}

func TestLeafletEmbed(t *testing.T) {
	track := geotrack.Track{{Lat: 1, Lon: 2}, {Lat: 1, Lon: 2.01}}
	p := NewMapPayload("5K", track, route.Summarize(track), testStyle, RouteColors{Line: "#d97706"})

	html, err := NewMapRenderer(testStyle).Embed("map-0", p)
	require.NoError(t, err)
	assert.Contains(t, string(html), "mountRouteMap(mapContainer, mapData)")
	assert.Contains(t, string(html), `"name":"5K"`)
}

func TestDescription(t *testing.T) {
	html, err := Description("Flat course, **one** water station.")
	require.NoError(t, err)
	assert.Equal(t, "<p>Flat course, <strong>one</strong> water station.</p>\n", string(html))

	html, err = Description("")
	require.NoError(t, err)
	assert.Empty(t, html)
}

func TestSlug(t *testing.T) {
	for in, want := range map[string]string{
		"10K":               "10k",
		"10 KM":             "10-km",
		" Half  Marathon! ": "half-marathon",
		"3K/Fun-Run":        "3k-fun-run",
		"Läufe":             "laufe",
		"Öl":                "ol",
		"Ä":                 "a",
	} {
		assert.Equal(t, want, Slug(in), in)
	}
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "0.00 km", FormatDistance(0))
	assert.Equal(t, "10.05 km", FormatDistance(10.0488))
}
