package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vburkalo/city-temperature-api/internal/domain"
)

type temperatureRepository struct {
	db *sqlx.DB
}

func newTemperatureRepository(db *sqlx.DB) *temperatureRepository {
	return &temperatureRepository{
		db: db,
	}
}

// InsertBatch writes all records in a single transaction. Either every record
// commits or none does.
func (r *temperatureRepository) InsertBatch(ctx context.Context, records []domain.TemperatureRecord) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	const query = `
	INSERT INTO temperatures (city_id, date_time, temperature) VALUES (?, ?, ?);
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx failed: %w", err)
	}

	for _, record := range records {
		if _, err := tx.ExecContext(ctx, query, record.CityID, record.DateTime, record.TemperatureC); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				return 0, fmt.Errorf("rollback failed: %v, after insert failed: %w", rbErr, err)
			}
			return 0, fmt.Errorf("insert into temperatures failed: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit failed: %w", err)
	}

	return int64(len(records)), nil
}

func (r *temperatureRepository) GetAll(ctx context.Context, cityID *int64) ([]domain.Temperature, error) {
	temperatures := make([]domain.Temperature, 0)

	if cityID != nil {
		const query = `
		SELECT id, city_id, date_time, temperature FROM temperatures WHERE city_id = ? ORDER BY date_time DESC;
		`
		if err := r.db.SelectContext(ctx, &temperatures, query, *cityID); err != nil {
			return nil, fmt.Errorf("select temperatures by city failed: %w", err)
		}
		return temperatures, nil
	}

	const query = `
	SELECT id, city_id, date_time, temperature FROM temperatures ORDER BY date_time DESC;
	`
	if err := r.db.SelectContext(ctx, &temperatures, query); err != nil {
		return nil, fmt.Errorf("select all temperatures failed: %w", err)
	}
	return temperatures, nil
}
