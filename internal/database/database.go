package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wingmanapp/wingman/internal/entities"
)

// defaultVehicleTypes is the reference fare table seeded on first start.
// Ride requests reference these rows by name.
var defaultVehicleTypes = []entities.VehicleType{
	{Name: "standard", BaseFare: 5.00, PerMileRate: 1.50, PerMinuteRate: 0.25},
	{Name: "xl", BaseFare: 7.00, PerMileRate: 2.00, PerMinuteRate: 0.35},
	{Name: "premium", BaseFare: 8.00, PerMileRate: 2.50, PerMinuteRate: 0.40},
}

// Database owns the single storage handle. It is opened once at process
// start, closed at shutdown, and passed to every repository rather than
// referenced as ambient global state.
type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate all entities
	err = db.AutoMigrate(
		&entities.Account{},
		&entities.AccountPreferences{},
		&entities.PaymentMethod{},
		&entities.Driver{},
		&entities.VehicleType{},
		&entities.RideRequest{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db}

	// Seed reference fare data
	if err := database.seedVehicleTypes(); err != nil {
		return nil, fmt.Errorf("failed to seed vehicle types: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) seedVehicleTypes() error {
	for _, vt := range defaultVehicleTypes {
		var existing entities.VehicleType
		result := d.DB.Where("name = ?", vt.Name).First(&existing)
		if result.Error == gorm.ErrRecordNotFound {
			if err := d.DB.Create(&vt).Error; err != nil {
				return fmt.Errorf("failed to create vehicle type %s: %w", vt.Name, err)
			}
			log.Printf("Created vehicle type: %s", vt.Name)
		}
	}
	return nil
}
