// Package riderequests provides database operations for the ride request
// lifecycle: create with fare estimation, read, partial update, delete.
package riderequests

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/wingmanapp/wingman/internal/database"
	"github.com/wingmanapp/wingman/internal/entities"
)

// assumedDistanceMiles stands in for a routing engine. Fare estimation
// charges every ride as a 10-mile trip until real distances are wired in.
const assumedDistanceMiles = 10

// UpdateFields carries the mutable subset of a ride request. Nil fields
// are left untouched by UpdateRideRequest.
type UpdateFields struct {
	Status         *string
	PickupLocation *string
	Destination    *string
}

// Repository handles all ride request database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new ride requests repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateRideRequest validates the vehicle type, computes the fare estimate
// and inserts a pending request. The row is re-read after the insert so
// the caller sees the generated id and timestamps. An unknown vehicle
// type fails with ErrInvalidVehicleType and inserts nothing.
func (r *Repository) CreateRideRequest(riderID uint, pickup, destination, vehicleTypeName string) (*entities.RideRequest, error) {
	var vt entities.VehicleType
	if err := r.db.Where("name = ?", vehicleTypeName).First(&vt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, database.ErrInvalidVehicleType
		}
		return nil, database.ClassifyError("get vehicle type", err)
	}

	request := &entities.RideRequest{
		RiderID:        riderID,
		PickupLocation: pickup,
		Destination:    destination,
		VehicleType:    vt.Name,
		EstimatedFare:  vt.BaseFare + assumedDistanceMiles*vt.PerMileRate,
		Status:         entities.RideStatusPending,
	}
	if err := r.db.Create(request).Error; err != nil {
		return nil, database.ClassifyError("create ride request", err)
	}
	return r.GetRideRequest(request.ID)
}

// GetRideRequest retrieves a ride request by id.
func (r *Repository) GetRideRequest(id uint) (*entities.RideRequest, error) {
	var request entities.RideRequest
	err := r.db.First(&request, id).Error
	if err != nil {
		return nil, database.ClassifyError("get ride request", err)
	}
	return &request, nil
}

// UpdateRideRequest applies any subset of status, pickup_location and
// destination, always refreshing updated_at. An empty subset is a valid
// timestamp-only update, not an error. The fare estimate is never
// recomputed. Zero matched rows fail with ErrNotFound.
func (r *Repository) UpdateRideRequest(id uint, fields UpdateFields) (*entities.RideRequest, error) {
	updates := map[string]any{}
	if fields.Status != nil {
		updates["status"] = *fields.Status
	}
	if fields.PickupLocation != nil {
		updates["pickup_location"] = *fields.PickupLocation
	}
	if fields.Destination != nil {
		updates["destination"] = *fields.Destination
	}
	// Touch updated_at even when no fields were supplied.
	updates["updated_at"] = time.Now()

	result := r.db.Model(&entities.RideRequest{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, database.ClassifyError("update ride request", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, database.ErrNotFound
	}
	return r.GetRideRequest(id)
}

// DeleteRideRequest removes a ride request by id. Zero affected rows fail
// with ErrNotFound, so deleting twice reports the second call as missing.
func (r *Repository) DeleteRideRequest(id uint) error {
	result := r.db.Delete(&entities.RideRequest{}, id)
	if result.Error != nil {
		return database.ClassifyError("delete ride request", result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}
