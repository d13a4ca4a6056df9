package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vburkalo/city-temperature-api/internal/domain"
	"github.com/vburkalo/city-temperature-api/internal/weather"
)

func testCities(names ...string) []domain.City {
	cities := make([]domain.City, len(names))
	for i, name := range names {
		cities[i] = domain.City{ID: int64(i + 1), Name: name}
	}
	return cities
}

func TestRefreshAggregatesCounts(t *testing.T) {
	cityRepo := newFakeCityRepo(testCities("A", "B", "C", "D", "E")...)
	tempRepo := &fakeTemperatureRepo{}
	provider := &fakeWeatherProvider{results: []weather.Result{
		value(11.1),
		{Err: errors.New("fetch blew up")},
		value(22.2),
		{}, // no data
		value(33.3),
	}}

	svc := newTemperatureService(cityRepo, tempRepo, provider)

	summary, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Inserted)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Skipped)
	assert.Contains(t, summary.Message, "Temperature update completed.")
	assert.Contains(t, summary.Message, "1 cities failed during fetch.")
	assert.Contains(t, summary.Message, "1 cities were skipped.")

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, provider.requestedFor)

	require.Len(t, tempRepo.inserted, 3)
	assert.Equal(t, int64(1), tempRepo.inserted[0].CityID)
	assert.Equal(t, int64(3), tempRepo.inserted[1].CityID)
	assert.Equal(t, int64(5), tempRepo.inserted[2].CityID)
	assert.Equal(t, 11.1, tempRepo.inserted[0].TemperatureC)
	assert.Equal(t, 22.2, tempRepo.inserted[1].TemperatureC)
	assert.Equal(t, 33.3, tempRepo.inserted[2].TemperatureC)

	// all readings of one pass carry the same batch timestamp
	assert.Equal(t, tempRepo.inserted[0].DateTime, tempRepo.inserted[1].DateTime)
	assert.Equal(t, tempRepo.inserted[0].DateTime, tempRepo.inserted[2].DateTime)
}

func TestRefreshAllSuccessfulMessage(t *testing.T) {
	cityRepo := newFakeCityRepo(testCities("A", "B")...)
	tempRepo := &fakeTemperatureRepo{}
	provider := &fakeWeatherProvider{results: []weather.Result{value(20.0), value(21.0)}}

	svc := newTemperatureService(cityRepo, tempRepo, provider)

	summary, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Inserted)
	assert.Zero(t, summary.Failed)
	assert.Zero(t, summary.Skipped)
	assert.Equal(t, "Temperature update completed.", summary.Message)
}

func TestRefreshWithNoCities(t *testing.T) {
	cityRepo := newFakeCityRepo()
	tempRepo := &fakeTemperatureRepo{}
	provider := &fakeWeatherProvider{}

	svc := newTemperatureService(cityRepo, tempRepo, provider)

	summary, err := svc.Refresh(context.Background())
	require.ErrorIs(t, err, domain.ErrNoCities)
	assert.Nil(t, summary)
	assert.Empty(t, tempRepo.inserted)
	assert.Nil(t, provider.requestedFor, "no fetch should be attempted")
}

func TestRefreshCommitFailureReportsNothing(t *testing.T) {
	cityRepo := newFakeCityRepo(testCities("A")...)
	tempRepo := &fakeTemperatureRepo{insertErr: errors.New("deadlock")}
	provider := &fakeWeatherProvider{results: []weather.Result{value(20.0)}}

	svc := newTemperatureService(cityRepo, tempRepo, provider)

	summary, err := svc.Refresh(context.Background())
	require.Error(t, err)
	assert.Nil(t, summary, "no partial counts on a failed commit")
	assert.Empty(t, tempRepo.inserted)
}

func TestListRejectsUnknownCityFilter(t *testing.T) {
	cityRepo := newFakeCityRepo(testCities("A")...)
	tempRepo := &fakeTemperatureRepo{}

	svc := newTemperatureService(cityRepo, tempRepo, &fakeWeatherProvider{})

	missing := int64(99)
	_, err := svc.List(context.Background(), &missing)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListFiltersByCity(t *testing.T) {
	cityRepo := newFakeCityRepo(testCities("A", "B")...)
	tempRepo := &fakeTemperatureRepo{stored: []domain.Temperature{
		{ID: 1, CityID: 1, TemperatureC: 20.0},
		{ID: 2, CityID: 2, TemperatureC: 21.0},
	}}

	svc := newTemperatureService(cityRepo, tempRepo, &fakeWeatherProvider{})

	cityID := int64(2)
	records, err := svc.List(context.Background(), &cityID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(2), records[0].CityID)
}
