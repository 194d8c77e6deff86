// Package vehicletypes provides lookups over the fare reference table.
package vehicletypes

import (
	"gorm.io/gorm"

	"github.com/wingmanapp/wingman/internal/database"
	"github.com/wingmanapp/wingman/internal/entities"
)

// Repository handles vehicle type database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new vehicle types repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetVehicleTypes returns all vehicle types, cheapest base fare first.
func (r *Repository) GetVehicleTypes() ([]entities.VehicleType, error) {
	var types []entities.VehicleType
	err := r.db.Order("base_fare").Find(&types).Error
	if err != nil {
		return nil, database.ClassifyError("get vehicle types", err)
	}
	return types, nil
}

// GetVehicleType retrieves a vehicle type by its name key.
func (r *Repository) GetVehicleType(name string) (*entities.VehicleType, error) {
	var vt entities.VehicleType
	err := r.db.Where("name = ?", name).First(&vt).Error
	if err != nil {
		return nil, database.ClassifyError("get vehicle type", err)
	}
	return &vt, nil
}
