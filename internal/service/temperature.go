package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vburkalo/city-temperature-api/internal/domain"
	"github.com/vburkalo/city-temperature-api/internal/repository"
	"github.com/vburkalo/city-temperature-api/pkg/logger"
)

type temperatureService struct {
	cityRepository        repository.Cities
	temperatureRepository repository.Temperatures
	weather               WeatherProvider
}

func newTemperatureService(
	cityRepository repository.Cities,
	temperatureRepository repository.Temperatures,
	weather WeatherProvider,
) *temperatureService {
	return &temperatureService{
		cityRepository:        cityRepository,
		temperatureRepository: temperatureRepository,
		weather:               weather,
	}
}

func (s *temperatureService) List(ctx context.Context, cityID *int64) ([]domain.Temperature, error) {
	if cityID != nil {
		if _, err := s.cityRepository.GetOneByID(ctx, *cityID); err != nil {
			return nil, err
		}
	}
	return s.temperatureRepository.GetAll(ctx, cityID)
}

// Refresh fetches a fresh reading for every known city concurrently and
// persists the successful ones in one transaction. Individual fetch failures
// never abort the pass; they only show up in the summary counts. All staged
// readings share a single batch timestamp.
func (s *temperatureService) Refresh(ctx context.Context) (*RefreshSummary, error) {
	cities, err := s.cityRepository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cities failed: %w", err)
	}
	if len(cities) == 0 {
		return nil, domain.ErrNoCities
	}

	names := make([]string, len(cities))
	for i, city := range cities {
		names[i] = city.Name
	}

	results := s.weather.FetchMany(ctx, names)
	now := time.Now().UTC()

	summary := &RefreshSummary{}
	records := make([]domain.TemperatureRecord, 0, len(cities))

	for i, city := range cities {
		result := results[i]
		switch {
		case result.Failed():
			summary.Failed++
			logger.Warn("temperature fetch failed",
				zap.String("city", city.Name),
				zap.Error(result.Err),
			)
		case result.NoData():
			summary.Skipped++
		default:
			records = append(records, domain.TemperatureRecord{
				CityID:       city.ID,
				DateTime:     now,
				TemperatureC: *result.Value,
			})
			summary.Inserted++
		}
	}

	if _, err := s.temperatureRepository.InsertBatch(ctx, records); err != nil {
		return nil, fmt.Errorf("insert temperature batch failed: %w", err)
	}

	summary.Message = refreshMessage(summary.Failed, summary.Skipped)
	return summary, nil
}

func refreshMessage(failed, skipped int) string {
	message := "Temperature update completed."
	if failed > 0 {
		message += fmt.Sprintf(" %d cities failed during fetch.", failed)
	}
	if skipped > 0 {
		message += fmt.Sprintf(" %d cities were skipped.", skipped)
	}
	return message
}
