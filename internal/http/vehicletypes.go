package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wingmanapp/wingman/internal/entities"
)

// VehicleTypeStore defines database operations for fare reference data.
type VehicleTypeStore interface {
	GetVehicleTypes() ([]entities.VehicleType, error)
}

type VehicleTypesController struct {
	store VehicleTypeStore
}

func NewVehicleTypesController(store VehicleTypeStore) *VehicleTypesController {
	return &VehicleTypesController{store: store}
}

// ListVehicleTypes returns the fare table, cheapest base fare first.
// GET /api/vehicle-types
func (vc *VehicleTypesController) ListVehicleTypes(c *gin.Context) {
	types, err := vc.store.GetVehicleTypes()
	if err != nil {
		respondInternalError(c, err, "list vehicle types")
		return
	}
	c.JSON(http.StatusOK, types)
}
