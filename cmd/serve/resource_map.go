package serve

import (
	"strings"

	"github.com/google/uuid"
)

// resourceMap hands out opaque ids for route tracks so that file paths and
// remote URLs are not exposed to clients. It is filled before serving starts
// and only read afterwards.
type resourceMap struct {
	byName map[string]uuid.UUID
	byID   map[uuid.UUID]string
}

func newResourceMap() *resourceMap {
	return &resourceMap{
		byName: make(map[string]uuid.UUID),
		byID:   make(map[uuid.UUID]string),
	}
}

func (r *resourceMap) IDFromName(name string) uuid.UUID {
	key := strings.ToLower(name)
	if guid, ok := r.byName[key]; ok {
		return guid
	}

	guid, err := uuid.NewRandom()
	if err != nil {
		panic(err)
	}

	r.byName[key] = guid
	r.byID[guid] = name

	return guid
}

func (r *resourceMap) NameFromID(guid uuid.UUID) (string, bool) {
	if name, ok := r.byID[guid]; ok {
		return name, true
	}

	return "", false
}
