package repository

import (
	"context"

	"github.com/vburkalo/city-temperature-api/internal/domain"

	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Cities       Cities
	Temperatures Temperatures
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Cities:       newCityRepository(db),
		Temperatures: newTemperatureRepository(db),
	}
}

type Cities interface {
	Create(ctx context.Context, city *domain.City) (*domain.City, error)
	GetOneByID(ctx context.Context, id int64) (*domain.City, error)
	GetAll(ctx context.Context) ([]domain.City, error)
	Update(ctx context.Context, city *domain.City) error
	Delete(ctx context.Context, id int64) error
}

type Temperatures interface {
	InsertBatch(ctx context.Context, records []domain.TemperatureRecord) (int64, error)
	GetAll(ctx context.Context, cityID *int64) ([]domain.Temperature, error)
}
