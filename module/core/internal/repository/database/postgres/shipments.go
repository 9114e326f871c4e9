package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/pwlogicon/pwlogicon/module/core/domain"
	"github.com/pwlogicon/pwlogicon/module/core/internal/repository/database"
)

var _ database.ShipmentRepository = (*ShipmentRepo)(nil)

type ShipmentRepo struct {
	db *sql.DB
}

func NewShipmentRepo(db *sql.DB) *ShipmentRepo {
	return &ShipmentRepo{db: db}
}

func (r *ShipmentRepo) ListCompletedSince(ctx context.Context, cutoff time.Time) ([]domain.ShipmentRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, completed_at, revenue FROM shipments WHERE completed_at > $1`,
		cutoff,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []domain.ShipmentRecord
	for rows.Next() {
		var s domain.ShipmentRecord
		if err := rows.Scan(&s.ID, &s.CompletedAt, &s.Revenue); err != nil {
			return nil, err
		}
		results = append(results, s)
	}
	return results, rows.Err()
}
