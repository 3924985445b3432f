package models

const (
	StationOperational = "operational"
	StationMaintenance = "maintenance"
)

// Station is a swap station. Read-only from the client's perspective;
// coordinates feed the map layer and distance sorting.
type Station struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Status    string  `json:"status"`
}
