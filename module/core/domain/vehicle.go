package domain

import "time"

type VehiclePosition struct {
	ID           int64     `json:"id"`
	LicensePlate string    `json:"license_plate"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	LastUpdated  time.Time `json:"last_updated"`
}
