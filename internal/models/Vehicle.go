package models

import "time"

// Vehicle is owned by exactly one account. The VIN is immutable after
// creation and globally unique across all accounts.
type Vehicle struct {
	ID           string    `json:"id"`
	AccountID    string    `json:"account_id"`
	VIN          string    `json:"vin"`
	ModelID      string    `json:"model_id"`
	LicensePlate string    `json:"license_plate"`
	BatterySoH   float64   `json:"battery_soh"` // state of health, percent
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
