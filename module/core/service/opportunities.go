package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/pwlogicon/pwlogicon/module/core/domain"
	"github.com/pwlogicon/pwlogicon/module/core/internal/repository/database"
)

const (
	DefaultMaxDistanceKm = 100.0
	MaxMatches           = 50

	earthRadiusKm = 6371
)

type OpportunityService struct {
	repo database.OpportunityRepository
	now  func() time.Time
}

func NewOpportunityService(repo database.OpportunityRepository) *OpportunityService {
	return &OpportunityService{repo: repo, now: time.Now}
}

func (s *OpportunityService) FindNearby(ctx context.Context, lat, lng, maxDistanceKm float64) ([]domain.OpportunityMatch, error) {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return nil, fmt.Errorf("%w: lat must be between -90 and 90", domain.ErrInvalidArgument)
	}
	if math.IsNaN(lng) || lng < -180 || lng > 180 {
		return nil, fmt.Errorf("%w: lng must be between -180 and 180", domain.ErrInvalidArgument)
	}
	if math.IsNaN(maxDistanceKm) || maxDistanceKm <= 0 {
		return nil, fmt.Errorf("%w: max_distance_km must be positive", domain.ErrInvalidArgument)
	}

	candidates, err := s.repo.ListUnexpired(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	var matches []domain.OpportunityMatch
	for _, opp := range candidates {
		d := greatCircleKm(lat, lng, opp.OriginLat, opp.OriginLng)
		if d < maxDistanceKm {
			matches = append(matches, domain.OpportunityMatch{Opportunity: opp, DistanceKm: d})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Opportunity.Revenue != matches[j].Opportunity.Revenue {
			return matches[i].Opportunity.Revenue > matches[j].Opportunity.Revenue
		}
		if matches[i].DistanceKm != matches[j].DistanceKm {
			return matches[i].DistanceKm < matches[j].DistanceKm
		}
		return matches[i].Opportunity.ID < matches[j].Opportunity.ID
	})

	if len(matches) > MaxMatches {
		matches = matches[:MaxMatches]
	}
	return matches, nil
}

func greatCircleKm(lat1, lng1, lat2, lng2 float64) float64 {
	a := math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Cos(toRad(lng2)-toRad(lng1)) +
		math.Sin(toRad(lat1))*math.Sin(toRad(lat2))
	// rounding can push a just outside the acos domain for identical or
	// near-antipodal points
	if a > 1 {
		a = 1
	} else if a < -1 {
		a = -1
	}
	return earthRadiusKm * math.Acos(a)
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
