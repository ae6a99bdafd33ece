package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bgraf/kmroute/config"
	"github.com/bgraf/kmroute/filesystem"
)

// resolveRoute maps a command line argument to routes. Configured route names
// take precedence, directories expand to the track files they contain and
// anything else is taken as a track path or URL.
func resolveRoute(arg string) ([]config.Route, error) {
	r, ok, err := config.RouteByName(arg)
	if err != nil {
		return nil, err
	}
	if ok {
		return []config.Route{r}, nil
	}

	if filesystem.IsDirectory(arg) {
		extensions := append(config.GPXExtensions(), config.NMEAExtensions()...)
		files, err := filesystem.GatherTrackFiles([]string{arg}, extensions)
		if err != nil {
			return nil, err
		}

		var routes []config.Route
		for _, f := range files {
			name := strings.TrimSuffix(filepath.Base(f), filepath.Ext(f))
			routes = append(routes, config.Route{Name: name, File: filesystem.Abs(f)})
		}

		return routes, nil
	}

	// Existing local files are taken relative to the working directory, not
	// the routes directory.
	if _, err := os.Stat(arg); err == nil {
		return []config.Route{{Name: arg, File: filesystem.Abs(arg)}}, nil
	}

	return []config.Route{{Name: arg, File: arg}}, nil
}

func resolveRoutes(args []string) ([]config.Route, error) {
	if len(args) == 0 {
		return config.Routes()
	}

	var routes []config.Route
	for _, arg := range args {
		rs, err := resolveRoute(arg)
		if err != nil {
			return nil, fmt.Errorf("resolve '%s': %w", arg, err)
		}
		routes = append(routes, rs...)
	}

	return routes, nil
}
