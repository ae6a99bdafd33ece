package serve

import (
	"net/http"

	"github.com/bgraf/kmroute/render"
	"github.com/gin-gonic/gin"
)

type routeListing struct {
	Name          string  `json:"name"`
	Available     bool    `json:"available"`
	TotalDistance float64 `json:"totalDistance"`
	Markers       int     `json:"markers"`
	URL           string  `json:"url"`
	DataURL       string  `json:"dataURL"`
	TrackURL      string  `json:"trackURL"`
}

func (api *serveAPI) ServeRouteList(c *gin.Context) {
	listing := []routeListing{}

	for _, r := range api.currentRoutes(c) {
		listing = append(listing, routeListing{
			Name:          r.Name,
			Available:     r.Available(),
			TotalDistance: r.Summary.TotalDistance,
			Markers:       len(r.Summary.Markers),
			URL:           api.linker.RouteURL(r.Name),
			DataURL:       api.linker.RouteDataURL(r.Name),
			TrackURL:      "/track/" + api.resources.IDFromName(r.Name).String(),
		})
	}

	c.JSON(http.StatusOK, listing)
}

func (api *serveAPI) ServeRouteData(c *gin.Context) {
	r, ok := api.routeByName(c, c.Param("name"))
	if !ok || !r.Available() {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
		return
	}

	payload, err := render.NewRoutePayload(r, api.style, api.colors)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "route could not be rendered"})
		return
	}

	c.JSON(http.StatusOK, payload)
}
