package serve

import (
	"net/http"

	"github.com/bgraf/kmroute/render"
	"github.com/gin-gonic/gin"
)

func (api *serveAPI) ServeIndex(c *gin.Context) {
	page, err := render.NewIndexPage(api.currentRoutes(c))
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "error")
		return
	}

	c.HTML(http.StatusOK, "index.html", page)
}

func (api *serveAPI) ServeRoute(c *gin.Context) {
	r, ok := api.routeByName(c, c.Param("name"))
	if !ok {
		c.String(http.StatusNotFound, "not found")
		return
	}

	mapHTML := render.Unavailable(render.MapElementID)
	if r.Available() {
		mapHTML = api.renderer.Deferred(render.MapElementID, api.linker.RouteDataURL(r.Name))
	}

	page, err := render.NewRoutePage(r, mapHTML)
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "error")
		return
	}

	if r.Available() {
		page.Route.DownloadURL = "/download/" + api.resources.IDFromName(r.Name).String()
	}

	c.HTML(http.StatusOK, "route.html", page)
}
