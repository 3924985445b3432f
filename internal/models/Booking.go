package models

import "time"

const (
	BookingPending   = "pending"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Booking references exactly one station and is valid for use only at that
// station and only before its scheduled end time. Created by the backend,
// validated here at kiosk scan time, terminal once completed or cancelled.
type Booking struct {
	ID             string     `json:"id"`
	StationID      string     `json:"station_id"`
	StationName    string     `json:"station_name"`
	AccountID      string     `json:"account_id"`
	VehicleID      string     `json:"vehicle_id"`
	BatteryCount   int        `json:"battery_count"`
	ScheduledStart time.Time  `json:"scheduled_start"`
	ScheduledEnd   *time.Time `json:"scheduled_end,omitempty"`
	Status         string     `json:"status"`
}
