package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/pwlogicon/pwlogicon/module/core/domain"
	"github.com/pwlogicon/pwlogicon/module/core/internal/repository/database"
)

var _ database.PositionRepository = (*PositionRepo)(nil)

type PositionRepo struct {
	db *sql.DB
}

func NewPositionRepo(db *sql.DB) *PositionRepo {
	return &PositionRepo{db: db}
}

func (r *PositionRepo) ListUpdatedSince(ctx context.Context, cutoff time.Time) ([]domain.VehiclePosition, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, license_plate, latitude, longitude, last_updated FROM vehicle_positions WHERE last_updated > $1 ORDER BY last_updated DESC`,
		cutoff,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []domain.VehiclePosition
	for rows.Next() {
		var p domain.VehiclePosition
		if err := rows.Scan(&p.ID, &p.LicensePlate, &p.Latitude, &p.Longitude, &p.LastUpdated); err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	return results, rows.Err()
}
