package v1

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/vburkalo/city-temperature-api/internal/config"
	"github.com/vburkalo/city-temperature-api/internal/domain"
	"github.com/vburkalo/city-temperature-api/internal/service"
)

func setupRouter(services *service.Services) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewHandler(services, &config.Config{})
	handler.Init(router.Group("/"))

	return router
}

type stubCities struct {
	cities []domain.City
	err    error
}

func (s *stubCities) Create(_ context.Context, name string, additionalInfo *string) (*domain.City, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.City{ID: 1, Name: name, AdditionalInfo: additionalInfo}, nil
}

func (s *stubCities) GetOneByID(_ context.Context, id int64) (*domain.City, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, c := range s.cities {
		if c.ID == id {
			city := c
			return &city, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubCities) GetAll(_ context.Context) ([]domain.City, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.cities, nil
}

func (s *stubCities) Update(_ context.Context, id int64, input service.CityUpdateInput) (*domain.City, error) {
	if s.err != nil {
		return nil, s.err
	}
	city, err := s.GetOneByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		city.Name = *input.Name
	}
	if input.AdditionalInfo != nil {
		city.AdditionalInfo = input.AdditionalInfo
	}
	return city, nil
}

func (s *stubCities) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	for _, c := range s.cities {
		if c.ID == id {
			return nil
		}
	}
	return domain.ErrNotFound
}

type stubTemperatures struct {
	records    []domain.Temperature
	knownCity  int64
	summary    *service.RefreshSummary
	refreshErr error
}

func (s *stubTemperatures) List(_ context.Context, cityID *int64) ([]domain.Temperature, error) {
	if cityID != nil && *cityID != s.knownCity {
		return nil, domain.ErrNotFound
	}
	return s.records, nil
}

func (s *stubTemperatures) Refresh(_ context.Context) (*service.RefreshSummary, error) {
	if s.refreshErr != nil {
		return nil, s.refreshErr
	}
	return s.summary, nil
}
