package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Route is one entry of the configured route list.
type Route struct {
	Name        string `mapstructure:"name"`
	File        string `mapstructure:"file"`
	Color       string `mapstructure:"color"`
	Description string `mapstructure:"description"`
}

func Routes() ([]Route, error) {
	var routes []Route
	if err := viper.UnmarshalKey(KeyRoutes, &routes); err != nil {
		return nil, fmt.Errorf("read route list: %w", err)
	}

	for i, r := range routes {
		if r.Name == "" || r.File == "" {
			return nil, fmt.Errorf("route %d: name and file are required", i+1)
		}
	}

	return routes, nil
}

// RouteByName looks up a configured route, ignoring case.
func RouteByName(name string) (Route, bool, error) {
	routes, err := Routes()
	if err != nil {
		return Route{}, false, err
	}

	for _, r := range routes {
		if strings.EqualFold(r.Name, name) {
			return r, true, nil
		}
	}

	return Route{}, false, nil
}
