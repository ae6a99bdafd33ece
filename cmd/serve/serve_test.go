package serve

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/bgraf/kmroute/config"
	"github.com/bgraf/kmroute/geotrack"
	"github.com/bgraf/kmroute/render"
	"github.com/bgraf/kmroute/routes"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fiveKGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="kmroute" xmlns="http://www.topografix.com/GPX/1/1">
  <trk><trkseg>
    <trkpt lat="18.6468" lon="73.7590"></trkpt>
    <trkpt lat="18.6568" lon="73.7590"></trkpt>
    <trkpt lat="18.6668" lon="73.7590"></trkpt>
  </trkseg></trk>
</gpx>
`

func newTestServer(t *testing.T) (*gin.Engine, *serveAPI) {
	t.Helper()

	r, api, _ := newTestServerIn(t, false)
	return r, api
}

func newTestServerIn(t *testing.T, live bool) (*gin.Engine, *serveAPI, string) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.SetDefaults()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "5K.gpx"), []byte(fiveKGPX), 0o666))

	loader := &geotrack.Loader{BaseDirectory: dir, GPXExtensions: []string{".gpx"}}
	store := routes.NewStore(context.Background(), []config.Route{
		{Name: "5K", File: "5K.gpx", Description: "Two laps around the **campus**."},
		{Name: "10K", File: "10 KM.gpx"},
	}, loader)

	style := render.StyleFromConfig()
	api, err := newServeAPI(store, style, live)
	require.NoError(t, err)

	r, err := newRouter(api)
	require.NoError(t, err)

	return r, api, dir
}

func get(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)

	return w
}

func TestServeRouteList(t *testing.T) {
	r, _ := newTestServer(t)

	w := get(t, r, "/api/routes")
	require.Equal(t, http.StatusOK, w.Code)

	var listing []routeListing
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	require.Len(t, listing, 2)

	assert.Equal(t, "5K", listing[0].Name)
	assert.True(t, listing[0].Available)
	assert.Equal(t, 2, listing[0].Markers)
	assert.Equal(t, "/api/route/5K", listing[0].DataURL)

	assert.Equal(t, "10K", listing[1].Name)
	assert.False(t, listing[1].Available)
}

func TestServeRouteData(t *testing.T) {
	r, _ := newTestServer(t)

	w := get(t, r, "/api/route/5k")
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Name         string      `json:"name"`
		Track        [][]float64 `json:"track"`
		Center       []float64   `json:"center"`
		LineColor    string      `json:"lineColor"`
		TotalDisplay string      `json:"totalDisplay"`
		KmMarkers    []struct {
			Km       int       `json:"km"`
			Position []float64 `json:"position"`
			Popup    string    `json:"popup"`
		} `json:"kmMarkers"`
		Finish struct {
			Popup string `json:"popup"`
		} `json:"finish"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))

	assert.Equal(t, "5K", payload.Name)
	assert.Len(t, payload.Track, 3)
	assert.Equal(t, []float64{18.6568, 73.7590}, payload.Center)
	assert.Equal(t, "#d97706", payload.LineColor)
	assert.Equal(t, "2.22 km", payload.TotalDisplay)
	require.Len(t, payload.KmMarkers, 2)
	assert.Equal(t, 1, payload.KmMarkers[0].Km)
	assert.Equal(t, "2 km", payload.KmMarkers[1].Popup)
	assert.Contains(t, payload.Finish.Popup, "Total Distance: 2.22 km")
}

func TestServeRouteDataUnavailable(t *testing.T) {
	r, _ := newTestServer(t)

	assert.Equal(t, http.StatusNotFound, get(t, r, "/api/route/10K").Code)
	assert.Equal(t, http.StatusNotFound, get(t, r, "/api/route/42K").Code)
}

func TestServeRoutePage(t *testing.T) {
	r, _ := newTestServer(t)

	w := get(t, r, "/route/5K")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "loadAndMountRouteMap")
	assert.Contains(t, w.Body.String(), "/api/route/5K")
	assert.Contains(t, w.Body.String(), "<strong>campus</strong>")

	w = get(t, r, "/route/10K")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Loading map...")
	assert.NotContains(t, w.Body.String(), "loadAndMountRouteMap(")

	assert.Equal(t, http.StatusNotFound, get(t, r, "/route/42K").Code)
}

func TestServeIndex(t *testing.T) {
	r, _ := newTestServer(t)

	w := get(t, r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "5K Route")
	assert.Contains(t, w.Body.String(), "10K Route")
	assert.Contains(t, w.Body.String(), "2.22 km")
}

func TestServeTrack(t *testing.T) {
	r, api := newTestServer(t)

	guid := api.resources.IDFromName("5K")
	w := get(t, r, "/track/"+guid.String())
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Name  string      `json:"name"`
		Track [][]float64 `json:"track"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "5K", body.Name)
	assert.Len(t, body.Track, 3)

	assert.Equal(t, http.StatusNotFound, get(t, r, "/track/not-a-guid").Code)
	assert.Equal(t, http.StatusNotFound, get(t, r, "/track/"+api.resources.IDFromName("10K").String()).Code)
}

func TestServeDownload(t *testing.T) {
	r, api := newTestServer(t)

	w := get(t, r, "/route/5K")
	guid := api.resources.IDFromName("5K").String()
	assert.Contains(t, w.Body.String(), "/download/"+guid)

	w = get(t, r, "/download/"+guid)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, fiveKGPX, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="5K.gpx"`)

	assert.Equal(t, http.StatusNotFound, get(t, r, "/download/"+api.resources.IDFromName("10K").String()).Code)
}

func TestServeStatic(t *testing.T) {
	r, _ := newTestServer(t)

	w := get(t, r, "/static/map.js")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "function mountRouteMap")
}

func TestServeRouteListReloadsChangedTracks(t *testing.T) {
	r, _, dir := newTestServerIn(t, true)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "10 KM.gpx"), []byte(fiveKGPX), 0o666))

	w := get(t, r, "/api/routes")
	require.Equal(t, http.StatusOK, w.Code)

	var listing []routeListing
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	require.Len(t, listing, 2)

	assert.Equal(t, "10K", listing[1].Name)
	assert.True(t, listing[1].Available)
	assert.InDelta(t, 2.22, listing[1].TotalDistance, 0.01)

	w = get(t, r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "unavailable")
}

func TestServeRouteListWithoutLiveKeepsLoadedState(t *testing.T) {
	r, _, dir := newTestServerIn(t, false)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "10 KM.gpx"), []byte(fiveKGPX), 0o666))

	var listing []routeListing
	require.NoError(t, json.Unmarshal(get(t, r, "/api/routes").Body.Bytes(), &listing))
	require.Len(t, listing, 2)
	assert.False(t, listing[1].Available)
}
