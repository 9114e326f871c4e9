package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pwlogicon/pwlogicon/module/core/domain"
	"github.com/pwlogicon/pwlogicon/module/core/service"
)

type revenueService interface {
	RevenueByPeriod(ctx context.Context, period domain.Period) ([]domain.RevenueBucket, error)
}

type revenueBucketResponse struct {
	Timeframe string  `json:"timeframe"`
	Total     float64 `json:"total"`
	Shipments int     `json:"shipments"`
}

type RevenueHandler struct {
	revenueSvc revenueService
}

func NewRevenueHandler(revenueSvc revenueService) *RevenueHandler {
	return &RevenueHandler{revenueSvc: revenueSvc}
}

func (h *RevenueHandler) Register(r *gin.RouterGroup) {
	r.GET("/revenue", h.GetRevenue)
}

func (h *RevenueHandler) GetRevenue(c *gin.Context) {
	period := service.DefaultPeriod
	if raw := c.Query("period"); raw != "" {
		parsed, err := domain.ParsePeriod(raw)
		if err != nil {
			respondError(c, err)
			return
		}
		period = parsed
	}

	buckets, err := h.revenueSvc.RevenueByPeriod(c.Request.Context(), period)
	if err != nil {
		respondError(c, err)
		return
	}

	results := make([]revenueBucketResponse, len(buckets))
	for i, b := range buckets {
		results[i] = revenueBucketResponse{
			Timeframe: b.Timeframe,
			Total:     b.Total,
			Shipments: b.Shipments,
		}
	}
	c.JSON(http.StatusOK, results)
}
