package entities

import "time"

type DriverStatus string

const (
	DriverStatusActive    DriverStatus = "active"
	DriverStatusAvailable DriverStatus = "available"
	DriverStatusBreak     DriverStatus = "break"
)

type PaymentMethodType string

const (
	PaymentMethodCard   PaymentMethodType = "card"
	PaymentMethodPayPal PaymentMethodType = "paypal"
)

// Ride request status is free-form text on the wire; these are the values
// the shipped front-ends use.
const (
	RideStatusPending   = "pending"
	RideStatusAccepted  = "accepted"
	RideStatusDeclined  = "declined"
	RideStatusCompleted = "completed"
)

type Account struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	Email       string              `gorm:"uniqueIndex;size:255" json:"email"`
	FullName    string              `gorm:"size:255" json:"full_name"`
	Phone       string              `gorm:"size:32" json:"phone"`
	Preferences *AccountPreferences `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"preferences"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// AccountPreferences is optional per account; accounts created through the
// API start without a row here, which is not an error.
type AccountPreferences struct {
	ID                   uint   `gorm:"primaryKey" json:"-"`
	AccountID            uint   `gorm:"index" json:"-"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	PreferredLanguage    string `gorm:"size:16" json:"preferred_language"`
}

func (AccountPreferences) TableName() string {
	return "account_preferences"
}

type PaymentMethod struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	AccountID uint              `gorm:"index" json:"account_id"`
	Type      PaymentMethodType `gorm:"size:16" json:"type"`
	LastFour  string            `gorm:"size:4" json:"last_four,omitempty"` // card only
	Email     string            `gorm:"size:255" json:"email,omitempty"`   // paypal only
	IsPrimary bool              `json:"is_primary"`
}

type Driver struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	DriverID    string       `gorm:"uniqueIndex;size:16" json:"driver_id"` // display code, e.g. "DRV-042"
	FullName    string       `gorm:"size:255" json:"full_name"`
	Status      DriverStatus `gorm:"index;size:16" json:"status"`
	ServiceType string       `gorm:"size:32" json:"service_type"`
}

// VehicleType is read-only reference data; ride requests point at it by name.
type VehicleType struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"uniqueIndex;size:32" json:"name"`
	BaseFare      float64 `json:"base_fare"`
	PerMileRate   float64 `json:"per_mile_rate"`
	PerMinuteRate float64 `json:"per_minute_rate"`
}

type RideRequest struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	RiderID        uint      `gorm:"index" json:"rider_id"`
	PickupLocation string    `gorm:"size:512" json:"pickup_location"`
	Destination    string    `gorm:"size:512" json:"destination"`
	VehicleType    string    `gorm:"size:32" json:"vehicle_type"` // vehicle_types.name
	EstimatedFare  float64   `json:"estimated_fare"`              // computed once at creation
	Status         string    `gorm:"size:32" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
