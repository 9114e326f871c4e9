package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pwlogicon/pwlogicon/module/core/domain"
	"github.com/pwlogicon/pwlogicon/module/core/internal/repository/database"
)

const DefaultWindowMinutes = 5

type PositionService struct {
	repo database.PositionRepository
	now  func() time.Time
}

func NewPositionService(repo database.PositionRepository) *PositionService {
	return &PositionService{repo: repo, now: time.Now}
}

func (s *PositionService) ListRecent(ctx context.Context, windowMinutes int) ([]domain.VehiclePosition, error) {
	if windowMinutes <= 0 {
		return nil, fmt.Errorf("%w: window_minutes must be positive", domain.ErrInvalidArgument)
	}

	cutoff := s.now().Add(-time.Duration(windowMinutes) * time.Minute)
	positions, err := s.repo.ListUpdatedSince(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return positions, nil
}
