package core

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	handler "github.com/pwlogicon/pwlogicon/module/core/internal/handler/http"
	"github.com/pwlogicon/pwlogicon/module/core/internal/repository/database/postgres"
	"github.com/pwlogicon/pwlogicon/module/core/service"
)

type Module struct {
	PositionSvc    *service.PositionService
	OpportunitySvc *service.OpportunityService
	RevenueSvc     *service.RevenueService

	positionHandler    *handler.PositionHandler
	opportunityHandler *handler.OpportunityHandler
	revenueHandler     *handler.RevenueHandler
}

func Build(db *sql.DB) *Module {
	positionSvc := service.NewPositionService(postgres.NewPositionRepo(db))
	opportunitySvc := service.NewOpportunityService(postgres.NewOpportunityRepo(db))
	revenueSvc := service.NewRevenueService(postgres.NewShipmentRepo(db))

	return &Module{
		PositionSvc:    positionSvc,
		OpportunitySvc: opportunitySvc,
		RevenueSvc:     revenueSvc,

		positionHandler:    handler.NewPositionHandler(positionSvc),
		opportunityHandler: handler.NewOpportunityHandler(opportunitySvc),
		revenueHandler:     handler.NewRevenueHandler(revenueSvc),
	}
}

func (m *Module) RegisterRoutes(r *gin.RouterGroup) {
	m.positionHandler.Register(r)
	m.opportunityHandler.Register(r)
	m.revenueHandler.Register(r)
}
