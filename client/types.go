package client

import "time"

// Response shapes mirror the API's JSON rows. They are declared here
// rather than shared with the server so the package stays importable on
// its own.

type Account struct {
	ID          uint                `json:"id"`
	Email       string              `json:"email"`
	FullName    string              `json:"full_name"`
	Phone       string              `json:"phone"`
	Preferences *AccountPreferences `json:"preferences"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type AccountPreferences struct {
	NotificationsEnabled bool   `json:"notifications_enabled"`
	PreferredLanguage    string `json:"preferred_language"`
}

type PaymentMethod struct {
	ID        uint   `json:"id"`
	AccountID uint   `json:"account_id"`
	Type      string `json:"type"`
	LastFour  string `json:"last_four,omitempty"`
	Email     string `json:"email,omitempty"`
	IsPrimary bool   `json:"is_primary"`
}

type VehicleType struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	BaseFare      float64 `json:"base_fare"`
	PerMileRate   float64 `json:"per_mile_rate"`
	PerMinuteRate float64 `json:"per_minute_rate"`
}

type RideRequest struct {
	ID             uint      `json:"id"`
	RiderID        uint      `json:"rider_id"`
	PickupLocation string    `json:"pickup_location"`
	Destination    string    `json:"destination"`
	VehicleType    string    `json:"vehicle_type"`
	EstimatedFare  float64   `json:"estimated_fare"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
