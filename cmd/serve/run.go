package serve

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"net/http"

	"github.com/bgraf/kmroute/config"
	"github.com/bgraf/kmroute/geotrack"
	"github.com/bgraf/kmroute/render"
	"github.com/bgraf/kmroute/res"
	"github.com/bgraf/kmroute/routes"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func RunServeCmd(cmd *cobra.Command, args []string) error {
	configured, err := config.Routes()
	if err != nil {
		return err
	}

	live, err := cmd.Flags().GetBool("live")
	if err != nil {
		return err
	}

	log.Printf("routes directory: %s", config.RoutesDirectory())

	store := routes.NewStore(context.Background(), configured, geotrack.NewLoader())

	api, err := newServeAPI(store, render.StyleFromConfig(), live)
	if err != nil {
		return err
	}

	r, err := newRouter(api)
	if err != nil {
		return err
	}

	if err = r.Run(config.ServeAddress()); err != nil {
		log.Fatal(err)
	}

	return nil
}

type serveAPI struct {
	store     *routes.Store
	resources *resourceMap
	style     render.Style
	colors    *render.ColorSet
	renderer  render.MapRenderer
	linker    render.Linker
	// live reloads route tracks whose files changed on disk.
	live bool
}

func newServeAPI(store *routes.Store, style render.Style, live bool) (*serveAPI, error) {
	colors, err := render.NewColorSet(style.LineColor)
	if err != nil {
		return nil, err
	}

	api := &serveAPI{
		store:     store,
		resources: newResourceMap(),
		style:     style,
		colors:    colors,
		renderer:  render.NewMapRenderer(style),
		linker:    render.ServerLinker{},
		live:      live,
	}

	for _, r := range store.Routes() {
		api.resources.IDFromName(r.Name)
		if _, err := colors.Colors(r.Name, r.Color); err != nil {
			return nil, err
		}
	}

	return api, nil
}

func newRouter(api *serveAPI) (*gin.Engine, error) {
	templates, err := render.ReadTemplates(api.linker)
	if err != nil {
		return nil, err
	}

	staticFS, err := fs.Sub(res.Static, "static")
	if err != nil {
		return nil, fmt.Errorf("open static files: %w", err)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.SetHTMLTemplate(templates)
	r.StaticFS("/static", http.FS(staticFS))

	r.GET("/", api.ServeIndex)
	r.GET("/route/:name", api.ServeRoute)
	r.GET("/api/routes", api.ServeRouteList)
	r.GET("/api/route/:name", api.ServeRouteData)
	r.GET("/track/:GUID", api.ServeTrack)
	r.GET("/download/:GUID", api.ServeDownload)

	r.UseRawPath = true

	return r, nil
}

func (api *serveAPI) routeByName(c *gin.Context, name string) (*routes.Route, bool) {
	if api.live {
		return api.store.Reload(c.Request.Context(), name)
	}

	return api.store.RouteByName(name)
}


func (api *serveAPI) currentRoutes(c *gin.Context) []*routes.Route {
	rs := api.store.Routes()
	if !api.live {
		return rs
	}

	for i, r := range rs {
		if fresh, ok := api.store.Reload(c.Request.Context(), r.Name); ok {
			rs[i] = fresh
		}
	}

	return rs
}
