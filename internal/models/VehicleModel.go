package models

// VehicleModel is read-only reference data describing a motorbike model.
type VehicleModel struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Brand          string  `json:"brand"`
	BatteryTypeID  string  `json:"battery_type_id"`
	BatterySlots   int     `json:"battery_slots"`
	AvgEnergyUsage float64 `json:"avg_energy_usage"` // kWh per 100km
}
