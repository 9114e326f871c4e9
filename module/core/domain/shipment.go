package domain

import "time"

type ShipmentRecord struct {
	ID          int64     `json:"id"`
	CompletedAt time.Time `json:"completed_at"`
	Revenue     float64   `json:"revenue"`
}

type RevenueBucket struct {
	Timeframe string  `json:"timeframe"`
	Total     float64 `json:"total"`
	Shipments int     `json:"shipments"`
}
