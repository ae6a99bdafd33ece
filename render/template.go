package render

import (
	"fmt"
	"html/template"
	"net/url"

	"github.com/bgraf/kmroute/res"
	"github.com/gosimple/slug"
)

// Linker decides where pages and assets are reachable, which differs between
// the web server and a static build.
type Linker interface {
	IndexURL() string
	RouteURL(name string) string
	RouteDataURL(name string) string
	StaticURL(file string) string
}

// Slug turns a route name into a file and URL friendly token. Non-ASCII
// letters are transliterated.
func Slug(name string) string {
	return slug.Make(name)
}

// ServerLinker addresses the routes served by `kmroute serve`.
type ServerLinker struct{}

func (ServerLinker) IndexURL() string {
	return "/"
}

func (ServerLinker) RouteURL(name string) string {
	return "/route/" + url.PathEscape(name)
}

func (ServerLinker) RouteDataURL(name string) string {
	return "/api/route/" + url.PathEscape(name)
}

func (ServerLinker) StaticURL(file string) string {
	return "/static/" + file
}

// FileLinker addresses the files written by `kmroute build`.
type FileLinker struct{}

func (FileLinker) IndexURL() string {
	return "./index.html"
}

func (FileLinker) RouteURL(name string) string {
	return fmt.Sprintf("./route-%s.html", Slug(name))
}

func (FileLinker) RouteDataURL(name string) string {
	return fmt.Sprintf("./route-%s.json", Slug(name))
}

func (FileLinker) StaticURL(file string) string {
	return "./static/" + file
}

func ReadTemplates(l Linker) (*template.Template, error) {
	funcMap := makeTemplateFuncmap()

	funcMap["indexURL"] = func() template.URL {
		return template.URL(l.IndexURL())
	}

	funcMap["routeURL"] = func(name string) template.URL {
		return template.URL(l.RouteURL(name))
	}

	funcMap["staticURL"] = func(file string) template.URL {
		return template.URL(l.StaticURL(file))
	}

	templates, err := template.New("").Funcs(funcMap).ParseFS(res.Templates, "templates/*")
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return templates, nil
}
