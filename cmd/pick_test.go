package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/bgraf/kmroute/config"
	"github.com/bgraf/kmroute/geotrack"
	"github.com/bgraf/kmroute/route"
	"github.com/stretchr/testify/assert"
)

func TestPickResultsKeepsLatest(t *testing.T) {
	byName := map[string]config.Route{
		"3K": {Name: "3K", File: "3K.gpx"},
		"5K": {Name: "5K", File: "5K.gpx"},
	}
	track := geotrack.Track{
		{Lat: 18.6468, Lon: 73.7590},
		{Lat: 18.6568, Lon: 73.7590},
	}

	pending := newPickResults()
	pending.offer(route.Result{Key: "3K", Track: track, Summary: route.Summarize(track)})
	pending.offer(route.Result{Key: "5K", Track: track, Summary: route.Summarize(track)})

	var buf bytes.Buffer
	pending.flush(&buf, byName)
	assert.Contains(t, buf.String(), "5K (5K.gpx)")
	assert.NotContains(t, buf.String(), "3K")

	buf.Reset()
	pending.flush(&buf, byName)
	assert.Empty(t, buf.String())
}

func TestPickResultsHoldsSelectorOutputUntilFlushed(t *testing.T) {
	byName := map[string]config.Route{"3K": {Name: "3K", File: "3K.gpx"}}
	load := func(ctx context.Context, key string) (geotrack.Track, error) {
		return geotrack.Track{
			{Lat: 18.6468, Lon: 73.7590},
			{Lat: 18.6568, Lon: 73.7590},
		}, nil
	}

	pending := newPickResults()
	selector := route.NewSelector(load, pending.offer)
	selector.Select(context.Background(), "3K")
	selector.Wait()

	var buf bytes.Buffer
	pending.flush(&buf, byName)
	assert.Contains(t, buf.String(), "Total distance: 1.11 km over 2 points")
}
