// Package routes keeps the configured routes together with their loaded
// tracks and summaries.
package routes

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/bgraf/kmroute/config"
	"github.com/bgraf/kmroute/filesystem"
	"github.com/bgraf/kmroute/geotrack"
	"github.com/bgraf/kmroute/route"
)

// Route is a configured route after loading. Values are not modified once
// stored; a reload replaces the whole Route.
type Route struct {
	config.Route

	Track   geotrack.Track
	Summary route.Summary
	// Err is set when the track could not be loaded. Such a route is shown as
	// unavailable.
	Err error

	modTime time.Time
}

func (r *Route) Available() bool {
	return r.Err == nil
}

type Loader interface {
	Load(ctx context.Context, resource string) (geotrack.Track, error)
	Path(resource string) string
}

type Store struct {
	loader Loader

	mu     sync.Mutex
	routes []*Route
}

// NewStore loads every configured route. Load failures are logged and leave
// the route unavailable; they do not fail the store.
func NewStore(ctx context.Context, configured []config.Route, loader Loader) *Store {
	s := &Store{loader: loader}

	for _, cr := range configured {
		s.routes = append(s.routes, s.load(ctx, cr))
	}

	return s
}

func (s *Store) load(ctx context.Context, cr config.Route) *Route {
	r := &Route{Route: cr}

	if mod, err := filesystem.FileModifiedTime(s.loader.Path(cr.File)); err == nil {
		r.modTime = mod
	}

	track, err := s.loader.Load(ctx, cr.File)
	if err != nil {
		log.Printf("route %s unavailable: %s", cr.Name, err)
		r.Err = err
		return r
	}

	r.Track = track
	r.Summary = route.Summarize(track)

	return r
}

// Path returns where the route's track is read from: a file path or a URL.
func (s *Store) Path(r *Route) string {
	return s.loader.Path(r.File)
}

// Routes returns the routes in configuration order.
func (s *Store) Routes() []*Route {
	s.mu.Lock()
	defer s.mu.Unlock()

	routes := make([]*Route, len(s.routes))
	copy(routes, s.routes)

	return routes
}

// RouteByName finds a route ignoring case.
func (s *Store) RouteByName(name string) (*Route, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, r := s.find(name)
	return r, r != nil
}

func (s *Store) find(name string) (int, *Route) {
	for i, r := range s.routes {
		if strings.EqualFold(r.Name, name) {
			return i, r
		}
	}

	return -1, nil
}

// Reload loads the named route again if its track file changed on disk since
// the last load. Remote tracks are never reloaded.
func (s *Store) Reload(ctx context.Context, name string) (*Route, bool) {
	s.mu.Lock()
	_, current := s.find(name)
	s.mu.Unlock()

	if current == nil {
		return nil, false
	}

	mod, err := filesystem.FileModifiedTime(s.loader.Path(current.File))
	if err != nil || !mod.After(current.modTime) {
		return current, true
	}

	log.Printf("reloading route %s", current.Name)
	fresh := s.load(ctx, current.Route)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another reload may have won the race in the meantime; keep the newer one.
	i, latest := s.find(name)
	if latest == nil {
		return fresh, true
	}
	if latest.modTime.After(fresh.modTime) {
		return latest, true
	}
	s.routes[i] = fresh

	return fresh, true
}
