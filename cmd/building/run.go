package building

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bgraf/kmroute/config"
	"github.com/bgraf/kmroute/filesystem"
	"github.com/bgraf/kmroute/geotrack"
	"github.com/bgraf/kmroute/render"
	"github.com/bgraf/kmroute/res"
	"github.com/bgraf/kmroute/routes"
	"github.com/spf13/cobra"
)

func RunBuildCmd(cmd *cobra.Command, args []string) error {
	configured, err := config.Routes()
	if err != nil {
		return err
	}

	buildDirectory := filesystem.Abs(config.BuildDirectory())

	log.Printf("routes directory: %s", config.RoutesDirectory())
	log.Printf("build directory:  %s", buildDirectory)

	store := routes.NewStore(context.Background(), configured, geotrack.NewLoader())

	if err := Build(store, render.StyleFromConfig(), buildDirectory); err != nil {
		return err
	}

	log.Println("done")

	return nil
}

// Build writes the index page, one page and one JSON payload per route and
// the static assets into buildDirectory. Unavailable routes get a page with a
// placeholder map and no payload.
func Build(store *routes.Store, style render.Style, buildDirectory string) error {
	if err := filesystem.CreateDirectoryIfNotExists(buildDirectory); err != nil {
		return fmt.Errorf("could not ensure build directory: %w", err)
	}

	linker := render.FileLinker{}

	templates, err := render.ReadTemplates(linker)
	if err != nil {
		return err
	}

	colors, err := render.NewColorSet(style.LineColor)
	if err != nil {
		return err
	}

	renderer := render.NewMapRenderer(style)
	rs := store.Routes()

	if err := checkSlugs(rs); err != nil {
		return err
	}

	tracksDirectory := filepath.Join(buildDirectory, "tracks")
	if err := filesystem.CreateDirectoryIfNotExists(tracksDirectory); err != nil {
		return fmt.Errorf("could not ensure tracks directory: %w", err)
	}

	for _, r := range rs {
		downloadURL, err := publishTrack(store.Path(r), r, tracksDirectory)
		if err != nil {
			return err
		}

		if err := writeRoute(r, downloadURL, templates, renderer, style, colors, buildDirectory); err != nil {
			return err
		}
	}

	index, err := render.NewIndexPage(rs)
	if err != nil {
		return err
	}

	if err := writeTemplate(templates, "index.html", index, filepath.Join(buildDirectory, "index.html")); err != nil {
		return err
	}

	if err := filesystem.InstallEmbedFS(res.Static, buildDirectory); err != nil {
		return fmt.Errorf("installation of static files failed: %w", err)
	}

	return nil
}

// checkSlugs rejects routes whose pages would be written to the same file.
func checkSlugs(rs []*routes.Route) error {
	seen := make(map[string]string, len(rs))

	for _, r := range rs {
		slug := render.Slug(r.Name)
		if slug == "" {
			return fmt.Errorf("route name '%s' yields an empty file name", r.Name)
		}

		if other, ok := seen[slug]; ok {
			return fmt.Errorf("routes '%s' and '%s' share the file name 'route-%s'", other, r.Name, slug)
		}
		seen[slug] = r.Name
	}

	return nil
}

// publishTrack copies the track file of an available route next to the pages.
// Remote tracks are linked to directly.
func publishTrack(trackPath string, r *routes.Route, tracksDirectory string) (string, error) {
	if !r.Available() {
		return "", nil
	}

	if geotrack.IsURL(trackPath) {
		return trackPath, nil
	}

	fileName := render.Slug(r.Name) + strings.ToLower(filepath.Ext(trackPath))
	if err := filesystem.Copy(trackPath, filepath.Join(tracksDirectory, fileName)); err != nil {
		return "", fmt.Errorf("could not publish track of route '%s': %w", r.Name, err)
	}

	return "./tracks/" + fileName, nil
}

func writeRoute(r *routes.Route, downloadURL string, templates *template.Template, renderer render.MapRenderer, style render.Style, colors *render.ColorSet, buildDirectory string) error {
	slug := render.Slug(r.Name)
	mapHTML := render.Unavailable(render.MapElementID)

	if r.Available() {
		payload, err := render.NewRoutePayload(r, style, colors)
		if err != nil {
			return err
		}

		// Pages opened from disk cannot fetch the payload, so it is inlined.
		mapHTML, err = renderer.Embed(render.MapElementID, payload)
		if err != nil {
			return err
		}

		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("could not serialize route '%s': %w", r.Name, err)
		}

		payloadFile := filepath.Join(buildDirectory, fmt.Sprintf("route-%s.json", slug))
		if err := os.WriteFile(payloadFile, payloadBytes, 0666); err != nil {
			return fmt.Errorf("could not write route data: %w", err)
		}
	} else {
		log.Printf("route %s is unavailable, writing placeholder page", r.Name)
	}

	page, err := render.NewRoutePage(r, mapHTML)
	if err != nil {
		return err
	}
	page.Route.DownloadURL = downloadURL

	return writeTemplate(templates, "route.html", page, filepath.Join(buildDirectory, fmt.Sprintf("route-%s.html", slug)))
}

func writeTemplate(templates *template.Template, name string, data interface{}, target string) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("could not execute template: %w", err)
	}

	if err := os.WriteFile(target, buf.Bytes(), 0666); err != nil {
		return fmt.Errorf("could not write file '%s': %w", target, err)
	}

	log.Printf("written '%s'", target)

	return nil
}
