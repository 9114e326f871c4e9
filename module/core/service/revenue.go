package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pwlogicon/pwlogicon/module/core/domain"
	"github.com/pwlogicon/pwlogicon/module/core/internal/repository/database"
)

const DefaultPeriod = domain.PeriodMonth

type RevenueService struct {
	repo database.ShipmentRepository
	now  func() time.Time
}

func NewRevenueService(repo database.ShipmentRepository) *RevenueService {
	return &RevenueService{repo: repo, now: time.Now}
}

func (s *RevenueService) RevenueByPeriod(ctx context.Context, period domain.Period) ([]domain.RevenueBucket, error) {
	now := s.now()

	var cutoff time.Time
	switch period {
	case domain.PeriodDay:
		cutoff = now.AddDate(0, 0, -1)
	case domain.PeriodWeek:
		cutoff = now.AddDate(0, 0, -7)
	case domain.PeriodMonth:
		cutoff = now.AddDate(0, -1, 0)
	case domain.PeriodYear:
		cutoff = now.AddDate(-1, 0, 0)
	default:
		return nil, fmt.Errorf("%w: period must be one of day, week, month, year", domain.ErrInvalidArgument)
	}

	records, err := s.repo.ListCompletedSince(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	byTimeframe := make(map[string]*domain.RevenueBucket)
	for _, rec := range records {
		label := bucketLabel(period, rec.CompletedAt)
		bucket, ok := byTimeframe[label]
		if !ok {
			bucket = &domain.RevenueBucket{Timeframe: label}
			byTimeframe[label] = bucket
		}
		bucket.Total += rec.Revenue
		bucket.Shipments++
	}

	buckets := make([]domain.RevenueBucket, 0, len(byTimeframe))
	for _, bucket := range byTimeframe {
		buckets = append(buckets, *bucket)
	}
	// labels are zero-padded, so lexicographic order is chronological order
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Timeframe < buckets[j].Timeframe })

	return buckets, nil
}

func bucketLabel(period domain.Period, t time.Time) string {
	t = t.UTC()
	switch period {
	case domain.PeriodDay:
		return t.Format("2006-01-02")
	case domain.PeriodWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case domain.PeriodMonth:
		return t.Format("2006-01")
	default:
		return t.Format("2006")
	}
}
