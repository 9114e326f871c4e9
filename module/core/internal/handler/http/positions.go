package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pwlogicon/pwlogicon/module/core/domain"
	"github.com/pwlogicon/pwlogicon/module/core/service"
)

type positionService interface {
	ListRecent(ctx context.Context, windowMinutes int) ([]domain.VehiclePosition, error)
}

type positionResponse struct {
	ID           int64   `json:"id"`
	LicensePlate string  `json:"license_plate"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	LastUpdated  int64   `json:"last_updated"`
}

type PositionHandler struct {
	positionSvc positionService
}

func NewPositionHandler(positionSvc positionService) *PositionHandler {
	return &PositionHandler{positionSvc: positionSvc}
}

func (h *PositionHandler) Register(r *gin.RouterGroup) {
	r.GET("/positions", h.GetRecent)
}

func (h *PositionHandler) GetRecent(c *gin.Context) {
	window := service.DefaultWindowMinutes
	if raw := c.Query("window_minutes"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid window_minutes parameter"})
			return
		}
		window = parsed
	}

	positions, err := h.positionSvc.ListRecent(c.Request.Context(), window)
	if err != nil {
		respondError(c, err)
		return
	}

	results := make([]positionResponse, len(positions))
	for i, p := range positions {
		results[i] = toPositionResponse(p)
	}
	c.JSON(http.StatusOK, results)
}

func toPositionResponse(p domain.VehiclePosition) positionResponse {
	return positionResponse{
		ID:           p.ID,
		LicensePlate: p.LicensePlate,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		LastUpdated:  p.LastUpdated.Unix(),
	}
}
