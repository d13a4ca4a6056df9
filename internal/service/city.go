package service

import (
	"context"

	"github.com/vburkalo/city-temperature-api/internal/domain"
	"github.com/vburkalo/city-temperature-api/internal/repository"
)

type cityService struct {
	cityRepository repository.Cities
}

func newCityService(cityRepository repository.Cities) *cityService {
	return &cityService{
		cityRepository: cityRepository,
	}
}

func (s *cityService) Create(ctx context.Context, name string, additionalInfo *string) (*domain.City, error) {
	return s.cityRepository.Create(ctx, &domain.City{
		Name:           name,
		AdditionalInfo: additionalInfo,
	})
}

func (s *cityService) GetOneByID(ctx context.Context, id int64) (*domain.City, error) {
	return s.cityRepository.GetOneByID(ctx, id)
}

func (s *cityService) GetAll(ctx context.Context) ([]domain.City, error) {
	return s.cityRepository.GetAll(ctx)
}

// Update changes only the fields supplied in input. Renaming a city to its
// current name is a no-op; renaming it to another city's name surfaces as
// domain.ErrDuplicateEntry from the store's unique index.
func (s *cityService) Update(ctx context.Context, id int64, input CityUpdateInput) (*domain.City, error) {
	city, err := s.cityRepository.GetOneByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != city.Name {
		city.Name = *input.Name
	}
	if input.AdditionalInfo != nil {
		city.AdditionalInfo = input.AdditionalInfo
	}

	if err := s.cityRepository.Update(ctx, city); err != nil {
		return nil, err
	}

	return city, nil
}

func (s *cityService) Delete(ctx context.Context, id int64) error {
	return s.cityRepository.Delete(ctx, id)
}
