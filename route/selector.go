package route

import (
	"context"
	"sync"

	"github.com/bgraf/kmroute/geotrack"
)

// LoadFunc loads the track selected by key.
type LoadFunc func(ctx context.Context, key string) (geotrack.Track, error)

// Result is delivered for the most recent selection only.
type Result struct {
	Key     string
	Track   geotrack.Track
	Summary Summary
	Err     error
}

// Selector loads tracks for a changing selection. Each Select supersedes the
// previous one: the older load is cancelled and its result, should it still
// arrive, is dropped. The deliver callback runs with the selector locked and
// must not call Select.
type Selector struct {
	load    LoadFunc
	deliver func(Result)

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSelector(load LoadFunc, deliver func(Result)) *Selector {
	return &Selector{load: load, deliver: deliver}
}

// Select starts loading key in the background and returns its sequence number.
func (s *Selector) Select(ctx context.Context, key string) uint64 {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.seq++
	seq := s.seq
	loadCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()

		track, err := s.load(loadCtx, key)
		res := Result{Key: key, Track: track, Err: err}
		if err == nil {
			res.Summary = Summarize(track)
		}

		// Deliver under the lock so a newer Select cannot slip in between the
		// staleness check and the callback.
		s.mu.Lock()
		defer s.mu.Unlock()
		if seq != s.seq {
			return
		}
		s.deliver(res)
	}()

	return seq
}

// Current returns the sequence number of the latest selection.
func (s *Selector) Current() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq
}

// Wait blocks until every load started so far has finished.
func (s *Selector) Wait() {
	s.wg.Wait()
}
