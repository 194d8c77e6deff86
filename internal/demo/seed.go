// Package demo seeds and resets sample data so the app can be shown
// without a live fleet behind it.
package demo

import (
	"fmt"

	"github.com/wingmanapp/wingman/internal/database"
	"github.com/wingmanapp/wingman/internal/entities"
)

var sampleDrivers = []entities.Driver{
	{DriverID: "DRV-001", FullName: "Alex Chen", Status: entities.DriverStatusActive, ServiceType: "standard"},
	{DriverID: "DRV-002", FullName: "Brianna Lopez", Status: entities.DriverStatusAvailable, ServiceType: "premium"},
	{DriverID: "DRV-003", FullName: "Chris Novak", Status: entities.DriverStatusBreak, ServiceType: "standard"},
	{DriverID: "DRV-004", FullName: "Dana Whitfield", Status: entities.DriverStatusActive, ServiceType: "xl"},
	{DriverID: "DRV-005", FullName: "Elena Petrova", Status: entities.DriverStatusAvailable, ServiceType: "standard"},
	{DriverID: "DRV-006", FullName: "Marcus Reed", Status: entities.DriverStatusBreak, ServiceType: "premium"},
}

type sampleAccount struct {
	account     entities.Account
	preferences *entities.AccountPreferences
	payments    []entities.PaymentMethod
}

var sampleAccounts = []sampleAccount{
	{
		account:     entities.Account{Email: "rider@example.com", FullName: "Jordan Baker", Phone: "+1-415-555-0101"},
		preferences: &entities.AccountPreferences{NotificationsEnabled: true, PreferredLanguage: "en"},
		payments: []entities.PaymentMethod{
			{Type: entities.PaymentMethodCard, LastFour: "4242", IsPrimary: true},
			{Type: entities.PaymentMethodPayPal, Email: "jordan.baker@example.com"},
		},
	},
	{
		account: entities.Account{Email: "sam.ortiz@example.com", FullName: "Sam Ortiz", Phone: "+1-415-555-0102"},
		payments: []entities.PaymentMethod{
			{Type: entities.PaymentMethodCard, LastFour: "1881", IsPrimary: true},
		},
	},
	{
		account:     entities.Account{Email: "priya.k@example.com", FullName: "Priya Krishnan", Phone: "+1-415-555-0103"},
		preferences: &entities.AccountPreferences{NotificationsEnabled: false, PreferredLanguage: "en"},
	},
}

// Pickup/destination pairs lifted from the tracking page's sample feed.
var sampleRides = []entities.RideRequest{
	{PickupLocation: "Financial District, 101 California St", Destination: "SoMa, 123 4th Street", VehicleType: "standard"},
	{PickupLocation: "Union Square, 333 Post St", Destination: "Marina District, 2100 Chestnut St", VehicleType: "premium"},
	{PickupLocation: "Hayes Valley, 450 Hayes St", Destination: "Mission District, 2500 Mission St", VehicleType: "standard"},
}

// Seed fills an initialized database with the sample fleet, accounts and
// pending ride requests. Vehicle types are already seeded by NewDatabase.
func Seed(db *database.Database) error {
	for _, driver := range sampleDrivers {
		if err := db.DB.Create(&driver).Error; err != nil {
			return fmt.Errorf("failed to seed driver %s: %w", driver.DriverID, err)
		}
	}

	accountIDs := make([]uint, 0, len(sampleAccounts))
	for _, sa := range sampleAccounts {
		account := sa.account
		if err := db.DB.Create(&account).Error; err != nil {
			return fmt.Errorf("failed to seed account %s: %w", account.Email, err)
		}
		accountIDs = append(accountIDs, account.ID)
		if sa.preferences != nil {
			prefs := *sa.preferences
			prefs.AccountID = account.ID
			if err := db.DB.Create(&prefs).Error; err != nil {
				return fmt.Errorf("failed to seed preferences for %s: %w", account.Email, err)
			}
		}
		for _, pm := range sa.payments {
			pm.AccountID = account.ID
			if err := db.DB.Create(&pm).Error; err != nil {
				return fmt.Errorf("failed to seed payment method for %s: %w", account.Email, err)
			}
		}
	}

	for i, ride := range sampleRides {
		var vt entities.VehicleType
		if err := db.DB.Where("name = ?", ride.VehicleType).First(&vt).Error; err != nil {
			return fmt.Errorf("failed to look up vehicle type %s: %w", ride.VehicleType, err)
		}
		ride.RiderID = accountIDs[i%len(accountIDs)]
		ride.EstimatedFare = vt.BaseFare + 10*vt.PerMileRate
		ride.Status = entities.RideStatusPending
		if err := db.DB.Create(&ride).Error; err != nil {
			return fmt.Errorf("failed to seed ride request: %w", err)
		}
	}

	return nil
}

// Reset wipes all mutable tables and reseeds the sample data. Vehicle
// types are reference data and stay put.
func Reset(db *database.Database) error {
	tables := []string{
		"ride_requests",
		"payment_methods",
		"account_preferences",
		"accounts",
		"drivers",
	}
	for _, table := range tables {
		if err := db.DB.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return Seed(db)
}
