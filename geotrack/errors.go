package geotrack

import (
	"errors"
	"fmt"
)

var (
	ErrResourceUnavailable = errors.New("track resource unavailable")
	ErrMalformedTrack      = errors.New("malformed track")
)

// LoadError reports why a track resource could not be turned into a Track.
// Kind is one of ErrResourceUnavailable or ErrMalformedTrack.
type LoadError struct {
	Resource string
	Kind     error
	Err      error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("load track '%s': %s", e.Resource, e.Kind)
	}
	return fmt.Sprintf("load track '%s': %s: %s", e.Resource, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func unavailable(resource string, err error) error {
	return &LoadError{Resource: resource, Kind: ErrResourceUnavailable, Err: err}
}

func malformed(resource string, err error) error {
	return &LoadError{Resource: resource, Kind: ErrMalformedTrack, Err: err}
}
