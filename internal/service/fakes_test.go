package service

import (
	"context"

	"github.com/vburkalo/city-temperature-api/internal/domain"
	"github.com/vburkalo/city-temperature-api/internal/weather"
)

type fakeCityRepo struct {
	cities []domain.City
	nextID int64
}

func newFakeCityRepo(cities ...domain.City) *fakeCityRepo {
	repo := &fakeCityRepo{cities: cities, nextID: 1}
	for _, c := range cities {
		if c.ID >= repo.nextID {
			repo.nextID = c.ID + 1
		}
	}
	return repo
}

func (r *fakeCityRepo) Create(_ context.Context, city *domain.City) (*domain.City, error) {
	for _, existing := range r.cities {
		if existing.Name == city.Name {
			return nil, domain.ErrDuplicateEntry
		}
	}
	created := *city
	created.ID = r.nextID
	r.nextID++
	r.cities = append(r.cities, created)
	return &created, nil
}

func (r *fakeCityRepo) GetOneByID(_ context.Context, id int64) (*domain.City, error) {
	for _, c := range r.cities {
		if c.ID == id {
			city := c
			return &city, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeCityRepo) GetAll(_ context.Context) ([]domain.City, error) {
	out := make([]domain.City, len(r.cities))
	copy(out, r.cities)
	return out, nil
}

func (r *fakeCityRepo) Update(_ context.Context, city *domain.City) error {
	for _, existing := range r.cities {
		if existing.Name == city.Name && existing.ID != city.ID {
			return domain.ErrDuplicateEntry
		}
	}
	for i, existing := range r.cities {
		if existing.ID == city.ID {
			r.cities[i] = *city
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeCityRepo) Delete(_ context.Context, id int64) error {
	for i, existing := range r.cities {
		if existing.ID == id {
			r.cities = append(r.cities[:i], r.cities[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeTemperatureRepo struct {
	stored    []domain.Temperature
	inserted  []domain.TemperatureRecord
	insertErr error
}

func (r *fakeTemperatureRepo) InsertBatch(_ context.Context, records []domain.TemperatureRecord) (int64, error) {
	if r.insertErr != nil {
		return 0, r.insertErr
	}
	r.inserted = append(r.inserted, records...)
	return int64(len(records)), nil
}

func (r *fakeTemperatureRepo) GetAll(_ context.Context, cityID *int64) ([]domain.Temperature, error) {
	if cityID == nil {
		return r.stored, nil
	}
	out := make([]domain.Temperature, 0)
	for _, t := range r.stored {
		if t.CityID == *cityID {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeWeatherProvider struct {
	results      []weather.Result
	requestedFor []string
}

func (p *fakeWeatherProvider) FetchMany(_ context.Context, cityNames []string) []weather.Result {
	p.requestedFor = cityNames
	return p.results
}

func value(v float64) weather.Result {
	return weather.Result{Value: &v}
}
