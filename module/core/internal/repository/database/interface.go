package database

import (
	"context"
	"time"

	"github.com/pwlogicon/pwlogicon/module/core/domain"
)

type PositionRepository interface {
	ListUpdatedSince(ctx context.Context, cutoff time.Time) ([]domain.VehiclePosition, error)
}

type OpportunityRepository interface {
	ListUnexpired(ctx context.Context, now time.Time) ([]domain.Opportunity, error)
}

type ShipmentRepository interface {
	ListCompletedSince(ctx context.Context, cutoff time.Time) ([]domain.ShipmentRecord, error)
}
