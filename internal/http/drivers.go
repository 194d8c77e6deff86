package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wingmanapp/wingman/internal/entities"
)

// DriverStore defines database operations for the driver roster.
type DriverStore interface {
	GetAllDrivers() ([]entities.Driver, error)
	SearchDrivers(term string) ([]entities.Driver, error)
	FilterDriversByStatus(status entities.DriverStatus) ([]entities.Driver, error)
}

type DriversController struct {
	store DriverStore
}

func NewDriversController(store DriverStore) *DriversController {
	return &DriversController{store: store}
}

// ListDrivers returns the roster. A `search` query narrows by name or
// display code; a `status` query filters exactly. Search wins when both
// are supplied, matching the tracking page's behavior.
// GET /api/drivers
func (dc *DriversController) ListDrivers(c *gin.Context) {
	var (
		drivers []entities.Driver
		err     error
	)

	switch {
	case c.Query("search") != "":
		drivers, err = dc.store.SearchDrivers(c.Query("search"))
	case c.Query("status") != "":
		drivers, err = dc.store.FilterDriversByStatus(entities.DriverStatus(c.Query("status")))
	default:
		drivers, err = dc.store.GetAllDrivers()
	}
	if err != nil {
		respondInternalError(c, err, "list drivers")
		return
	}
	c.JSON(http.StatusOK, drivers)
}
