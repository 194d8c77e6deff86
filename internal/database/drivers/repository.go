// Package drivers provides read-only database operations for the driver
// roster. Drivers are managed out of band; the API only lists, searches
// and filters them.
package drivers

import (
	"gorm.io/gorm"

	"github.com/wingmanapp/wingman/internal/database"
	"github.com/wingmanapp/wingman/internal/entities"
)

// Repository handles all driver database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new drivers repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAllDrivers returns every driver ordered by status, then full name.
func (r *Repository) GetAllDrivers() ([]entities.Driver, error) {
	var drivers []entities.Driver
	err := r.db.Order("status, full_name").Find(&drivers).Error
	if err != nil {
		return nil, database.ClassifyError("get all drivers", err)
	}
	return drivers, nil
}

// SearchDrivers returns drivers whose full name or display code contains
// the term, in the same ordering as GetAllDrivers.
func (r *Repository) SearchDrivers(term string) ([]entities.Driver, error) {
	var drivers []entities.Driver
	pattern := "%" + term + "%"
	err := r.db.
		Where("full_name LIKE ? OR driver_id LIKE ?", pattern, pattern).
		Order("status, full_name").
		Find(&drivers).Error
	if err != nil {
		return nil, database.ClassifyError("search drivers", err)
	}
	return drivers, nil
}

// FilterDriversByStatus returns drivers with the exact status, ordered by
// full name.
func (r *Repository) FilterDriversByStatus(status entities.DriverStatus) ([]entities.Driver, error) {
	var drivers []entities.Driver
	err := r.db.
		Where("status = ?", status).
		Order("full_name").
		Find(&drivers).Error
	if err != nil {
		return nil, database.ClassifyError("filter drivers", err)
	}
	return drivers, nil
}
