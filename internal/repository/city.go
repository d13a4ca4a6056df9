package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vburkalo/city-temperature-api/internal/db"
	"github.com/vburkalo/city-temperature-api/internal/domain"

	"github.com/go-sql-driver/mysql"
)

type cityRepository struct {
	db *sqlx.DB
}

func newCityRepository(db *sqlx.DB) *cityRepository {
	return &cityRepository{
		db: db,
	}
}

func (r *cityRepository) Create(ctx context.Context, city *domain.City) (*domain.City, error) {
	const query = `
	INSERT INTO cities (name, additional_info) VALUES (?, ?);
	`

	result, err := r.db.ExecContext(ctx, query, city.Name, city.AdditionalInfo)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return nil, domain.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("insert into cities failed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id failed: %w", err)
	}

	return r.GetOneByID(ctx, id)
}

func (r *cityRepository) GetOneByID(ctx context.Context, id int64) (*domain.City, error) {
	const query = `
	SELECT id, name, additional_info FROM cities WHERE id = ?;
	`
	var city domain.City
	if err := r.db.GetContext(ctx, &city, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from cities by id failed: %w", err)
	}
	return &city, nil
}

func (r *cityRepository) GetAll(ctx context.Context) ([]domain.City, error) {
	const query = `
	SELECT id, name, additional_info FROM cities ORDER BY id ASC;
	`
	cities := make([]domain.City, 0)
	if err := r.db.SelectContext(ctx, &cities, query); err != nil {
		return nil, fmt.Errorf("select all cities failed: %w", err)
	}
	return cities, nil
}

func (r *cityRepository) Update(ctx context.Context, city *domain.City) error {
	const query = `
	UPDATE cities SET name = ?, additional_info = ? WHERE id = ?;
	`
	_, err := r.db.ExecContext(ctx, query, city.Name, city.AdditionalInfo, city.ID)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("update cities by id failed: %w", err)
	}
	return nil
}

func (r *cityRepository) Delete(ctx context.Context, id int64) error {
	const query = `
	DELETE FROM cities WHERE id = ?;
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete from cities by id failed: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
