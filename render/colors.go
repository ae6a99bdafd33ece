package render

import (
	"fmt"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

var white = colorful.Color{R: 1, G: 1, B: 1}

// RouteColors are the hex colors of a route line and of its kilometer marker
// fill.
type RouteColors struct {
	Line string
	Fill string
}

// ColorSet resolves route colors, falling back to a shared base color for
// routes without one.
type ColorSet struct {
	base colorful.Color

	mu     sync.Mutex
	colors map[string]RouteColors
}

func NewColorSet(baseHex string) (*ColorSet, error) {
	base, err := colorful.Hex(baseHex)
	if err != nil {
		return nil, fmt.Errorf("invalid line color '%s': %w", baseHex, err)
	}

	return &ColorSet{
		base:   base,
		colors: make(map[string]RouteColors),
	}, nil
}

// Colors returns the colors of the named route. An empty hex selects the base color.
func (cs *ColorSet) Colors(name, hex string) (RouteColors, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if rc, ok := cs.colors[name]; ok {
		return rc, nil
	}

	c := cs.base
	if hex != "" {
		var err error
		if c, err = colorful.Hex(hex); err != nil {
			return RouteColors{}, fmt.Errorf("route '%s': invalid color '%s': %w", name, hex, err)
		}
	}

	rc := RouteColors{
		Line: c.Hex(),
		Fill: c.BlendLab(white, 0.9).Clamped().Hex(),
	}
	cs.colors[name] = rc

	return rc, nil
}
