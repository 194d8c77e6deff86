package riderequests

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wingmanapp/wingman/internal/database"
	"github.com/wingmanapp/wingman/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_riderequests_" + t.Name() + ".db"

	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	repo := NewRepository(db.DB)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func strptr(s string) *string { return &s }

func TestRepository_CreateRideRequest(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	request, err := repo.CreateRideRequest(1, "123 Main St", "456 Market St", "standard")

	require.NoError(t, err)
	assert.NotZero(t, request.ID)
	assert.Equal(t, uint(1), request.RiderID)
	assert.Equal(t, "123 Main St", request.PickupLocation)
	assert.Equal(t, "456 Market St", request.Destination)
	assert.Equal(t, "standard", request.VehicleType)
	// standard: base 5.00 + 10 miles x 1.50
	assert.Equal(t, 20.00, request.EstimatedFare)
	assert.Equal(t, entities.RideStatusPending, request.Status)
	assert.False(t, request.CreatedAt.IsZero())
}

func TestRepository_CreateRideRequest_InvalidVehicleType(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.CreateRideRequest(1, "123 Main St", "456 Market St", "hovercraft")

	assert.True(t, database.IsInvalidVehicleType(err))

	// No row was inserted
	var count int64
	require.NoError(t, repo.db.Model(&entities.RideRequest{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRepository_GetRideRequest_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetRideRequest(999)

	assert.True(t, database.IsNotFound(err))
}

func TestRepository_UpdateRideRequest_StatusOnly(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.CreateRideRequest(1, "123 Main St", "456 Market St", "standard")
	require.NoError(t, err)

	updated, err := repo.UpdateRideRequest(created.ID, UpdateFields{Status: strptr("accepted")})
	require.NoError(t, err)

	// Only status and updated_at change
	assert.Equal(t, "accepted", updated.Status)
	assert.Equal(t, created.PickupLocation, updated.PickupLocation)
	assert.Equal(t, created.Destination, updated.Destination)
	assert.Equal(t, created.EstimatedFare, updated.EstimatedFare)
}

func TestRepository_UpdateRideRequest_AllFields(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.CreateRideRequest(1, "123 Main St", "456 Market St", "premium")
	require.NoError(t, err)

	updated, err := repo.UpdateRideRequest(created.ID, UpdateFields{
		Status:         strptr("accepted"),
		PickupLocation: strptr("789 Mission St"),
		Destination:    strptr("1 Ferry Building"),
	})
	require.NoError(t, err)
	assert.Equal(t, "accepted", updated.Status)
	assert.Equal(t, "789 Mission St", updated.PickupLocation)
	assert.Equal(t, "1 Ferry Building", updated.Destination)

	// Relocating the ride never recomputes the fare
	assert.Equal(t, created.EstimatedFare, updated.EstimatedFare)
}

func TestRepository_UpdateRideRequest_NoFields(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.CreateRideRequest(1, "123 Main St", "456 Market St", "standard")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	// An empty update is a timestamp-only touch, not an error
	updated, err := repo.UpdateRideRequest(created.ID, UpdateFields{})
	require.NoError(t, err)
	assert.Equal(t, created.Status, updated.Status)
	assert.Equal(t, created.PickupLocation, updated.PickupLocation)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestRepository_UpdateRideRequest_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.UpdateRideRequest(999, UpdateFields{Status: strptr("accepted")})

	assert.True(t, database.IsNotFound(err))
}

func TestRepository_DeleteRideRequest_Twice(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.CreateRideRequest(1, "123 Main St", "456 Market St", "standard")
	require.NoError(t, err)

	require.NoError(t, repo.DeleteRideRequest(created.ID))

	err = repo.DeleteRideRequest(created.ID)
	assert.True(t, database.IsNotFound(err))
}
