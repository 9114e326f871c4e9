package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pwlogicon/pwlogicon/module/core/domain"
	"github.com/pwlogicon/pwlogicon/module/core/service"
)

type opportunityService interface {
	FindNearby(ctx context.Context, lat, lng, maxDistanceKm float64) ([]domain.OpportunityMatch, error)
}

type opportunityResponse struct {
	ID          int64   `json:"id"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	OriginLat   float64 `json:"origin_latitude"`
	OriginLng   float64 `json:"origin_longitude"`
	Payload     string  `json:"payload"`
	Revenue     float64 `json:"revenue"`
	Expiry      int64   `json:"expiry"`
	DistanceKm  float64 `json:"distance_km"`
}

type OpportunityHandler struct {
	opportunitySvc opportunityService
}

func NewOpportunityHandler(opportunitySvc opportunityService) *OpportunityHandler {
	return &OpportunityHandler{opportunitySvc: opportunitySvc}
}

func (h *OpportunityHandler) Register(r *gin.RouterGroup) {
	r.GET("/opportunities", h.FindNearby)
}

func (h *OpportunityHandler) FindNearby(c *gin.Context) {
	lat, ok := requiredFloat(c, "lat")
	if !ok {
		return
	}
	lng, ok := requiredFloat(c, "lng")
	if !ok {
		return
	}

	maxDistance := service.DefaultMaxDistanceKm
	if raw := c.Query("max_distance_km"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_distance_km parameter"})
			return
		}
		maxDistance = parsed
	}

	matches, err := h.opportunitySvc.FindNearby(c.Request.Context(), lat, lng, maxDistance)
	if err != nil {
		respondError(c, err)
		return
	}

	results := make([]opportunityResponse, len(matches))
	for i, m := range matches {
		results[i] = toOpportunityResponse(m)
	}
	c.JSON(http.StatusOK, results)
}

func requiredFloat(c *gin.Context, name string) (float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing " + name + " parameter"})
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " parameter"})
		return 0, false
	}
	return v, true
}

func toOpportunityResponse(m domain.OpportunityMatch) opportunityResponse {
	return opportunityResponse{
		ID:          m.Opportunity.ID,
		Origin:      m.Opportunity.Origin,
		Destination: m.Opportunity.Destination,
		OriginLat:   m.Opportunity.OriginLat,
		OriginLng:   m.Opportunity.OriginLng,
		Payload:     m.Opportunity.Payload,
		Revenue:     m.Opportunity.Revenue,
		Expiry:      m.Opportunity.Expiry.Unix(),
		DistanceKm:  m.DistanceKm,
	}
}
