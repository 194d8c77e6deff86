package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wingmanapp/wingman/internal/database"
	"github.com/wingmanapp/wingman/internal/database/riderequests"
	"github.com/wingmanapp/wingman/internal/entities"
	"github.com/wingmanapp/wingman/internal/observability"
)

// RideRequestStore defines database operations for the ride request
// lifecycle.
type RideRequestStore interface {
	CreateRideRequest(riderID uint, pickup, destination, vehicleTypeName string) (*entities.RideRequest, error)
	GetRideRequest(id uint) (*entities.RideRequest, error)
	UpdateRideRequest(id uint, fields riderequests.UpdateFields) (*entities.RideRequest, error)
	DeleteRideRequest(id uint) error
}

type RideRequestsController struct {
	store RideRequestStore
}

func NewRideRequestsController(store RideRequestStore) *RideRequestsController {
	return &RideRequestsController{store: store}
}

type createRideRequest struct {
	RiderID        uint   `json:"rider_id"`
	PickupLocation string `json:"pickup_location"`
	Destination    string `json:"destination"`
	VehicleType    string `json:"vehicle_type"`
}

// Pointer fields distinguish "absent" from "set to empty"; only supplied
// fields reach the update.
type updateRideRequest struct {
	Status         *string `json:"status"`
	PickupLocation *string `json:"pickup_location"`
	Destination    *string `json:"destination"`
}

// CreateRideRequest files a new ride request with a fare estimate.
// POST /api/ride-requests
func (rc *RideRequestsController) CreateRideRequest(c *gin.Context) {
	var req createRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if req.RiderID == 0 {
		respondBadRequest(c, "rider_id is required")
		return
	}
	if req.PickupLocation == "" || req.Destination == "" {
		respondBadRequest(c, "pickup_location and destination are required")
		return
	}
	if req.VehicleType == "" {
		respondBadRequest(c, "vehicle_type is required")
		return
	}

	request, err := rc.store.CreateRideRequest(req.RiderID, req.PickupLocation, req.Destination, req.VehicleType)
	if err != nil {
		if database.IsInvalidVehicleType(err) {
			respondBadRequest(c, "Invalid vehicle type")
			return
		}
		respondWriteError(c, err, "ride request")
		return
	}

	observability.RideRequestsCreated.Inc()
	c.JSON(http.StatusCreated, request)
}

// GetRideRequest returns a ride request by id.
// GET /api/ride-requests/:id
func (rc *RideRequestsController) GetRideRequest(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	request, err := rc.store.GetRideRequest(id)
	if err != nil {
		respondReadError(c, err, "Ride request")
		return
	}
	c.JSON(http.StatusOK, request)
}

// UpdateRideRequest applies a partial update. Any subset of status,
// pickup_location and destination may be supplied; an empty body still
// refreshes updated_at.
// PUT /api/ride-requests/:id
func (rc *RideRequestsController) UpdateRideRequest(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	request, err := rc.store.UpdateRideRequest(id, riderequests.UpdateFields{
		Status:         req.Status,
		PickupLocation: req.PickupLocation,
		Destination:    req.Destination,
	})
	if err != nil {
		respondWriteError(c, err, "Ride request")
		return
	}
	c.JSON(http.StatusOK, request)
}

// DeleteRideRequest removes a ride request. A second delete of the same id
// reports 404.
// DELETE /api/ride-requests/:id
func (rc *RideRequestsController) DeleteRideRequest(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := rc.store.DeleteRideRequest(id); err != nil {
		respondReadError(c, err, "Ride request")
		return
	}
	c.Status(http.StatusNoContent)
}
