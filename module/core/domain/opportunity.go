package domain

import "time"

type Opportunity struct {
	ID          int64     `json:"id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	OriginLat   float64   `json:"origin_latitude"`
	OriginLng   float64   `json:"origin_longitude"`
	Payload     string    `json:"payload"`
	Revenue     float64   `json:"revenue"`
	Expiry      time.Time `json:"expiry"`
}

type OpportunityMatch struct {
	Opportunity Opportunity `json:"opportunity"`
	DistanceKm  float64     `json:"distance_km"`
}
