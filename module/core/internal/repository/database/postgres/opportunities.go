package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/pwlogicon/pwlogicon/module/core/domain"
	"github.com/pwlogicon/pwlogicon/module/core/internal/repository/database"
)

var _ database.OpportunityRepository = (*OpportunityRepo)(nil)

type OpportunityRepo struct {
	db *sql.DB
}

func NewOpportunityRepo(db *sql.DB) *OpportunityRepo {
	return &OpportunityRepo{db: db}
}

func (r *OpportunityRepo) ListUnexpired(ctx context.Context, now time.Time) ([]domain.Opportunity, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, origin, destination, origin_latitude, origin_longitude, payload, revenue, expiry FROM opportunities WHERE expiry > $1`,
		now,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []domain.Opportunity
	for rows.Next() {
		var o domain.Opportunity
		if err := rows.Scan(&o.ID, &o.Origin, &o.Destination, &o.OriginLat, &o.OriginLng, &o.Payload, &o.Revenue, &o.Expiry); err != nil {
			return nil, err
		}
		results = append(results, o)
	}
	return results, rows.Err()
}
