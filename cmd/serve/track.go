package serve

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/bgraf/kmroute/geotrack"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ServeTrack answers the raw points of a route track addressed by its
// resource id.
func (api *serveAPI) ServeTrack(c *gin.Context) {
	guid, err := uuid.Parse(c.Param("GUID"))
	if err != nil {
		c.String(http.StatusNotFound, "not found")
		return
	}

	name, ok := api.resources.NameFromID(guid)
	if !ok {
		c.String(http.StatusNotFound, "not found")
		return
	}

	r, ok := api.routeByName(c, name)
	if !ok || !r.Available() {
		c.String(http.StatusNotFound, "not found")
		return
	}

	c.JSON(
		http.StatusOK,
		gin.H{
			"name":  r.Name,
			"track": r.Track,
		},
	)
}

// ServeDownload answers the original track file of a route. Remote tracks are
// redirected to.
func (api *serveAPI) ServeDownload(c *gin.Context) {
	guid, err := uuid.Parse(c.Param("GUID"))
	if err != nil {
		c.String(http.StatusNotFound, "not found")
		return
	}

	name, ok := api.resources.NameFromID(guid)
	if !ok {
		c.String(http.StatusNotFound, "not found")
		return
	}

	r, ok := api.routeByName(c, name)
	if !ok || !r.Available() {
		c.String(http.StatusNotFound, "not found")
		return
	}

	trackPath := api.store.Path(r)
	if geotrack.IsURL(trackPath) {
		c.Redirect(http.StatusFound, trackPath)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(trackPath)))
	c.File(trackPath)
}
