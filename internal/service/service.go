package service

import (
	"context"

	"github.com/vburkalo/city-temperature-api/internal/config"
	"github.com/vburkalo/city-temperature-api/internal/domain"
	"github.com/vburkalo/city-temperature-api/internal/repository"
	"github.com/vburkalo/city-temperature-api/internal/weather"
)

type Services struct {
	Cities       Cities
	Temperatures Temperatures
}

type Deps struct {
	Config  *config.Config
	Repos   *repository.Repositories
	Weather WeatherProvider
}

func NewServices(deps Deps) *Services {
	return &Services{
		Cities: newCityService(deps.Repos.Cities),
		Temperatures: newTemperatureService(
			deps.Repos.Cities,
			deps.Repos.Temperatures,
			deps.Weather,
		),
	}
}

// WeatherProvider fans out one concurrent fetch per city name and returns
// results positionally aligned with the input.
type WeatherProvider interface {
	FetchMany(ctx context.Context, cityNames []string) []weather.Result
}

type CityUpdateInput struct {
	Name           *string
	AdditionalInfo *string
}

type Cities interface {
	Create(ctx context.Context, name string, additionalInfo *string) (*domain.City, error)
	GetOneByID(ctx context.Context, id int64) (*domain.City, error)
	GetAll(ctx context.Context) ([]domain.City, error)
	Update(ctx context.Context, id int64, input CityUpdateInput) (*domain.City, error)
	Delete(ctx context.Context, id int64) error
}

// RefreshSummary aggregates the per-city outcomes of one refresh pass.
type RefreshSummary struct {
	Inserted int
	Failed   int
	Skipped  int
	Message  string
}

type Temperatures interface {
	List(ctx context.Context, cityID *int64) ([]domain.Temperature, error)
	Refresh(ctx context.Context) (*RefreshSummary, error)
}
