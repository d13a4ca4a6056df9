package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/vburkalo/city-temperature-api/internal/config"
	"github.com/vburkalo/city-temperature-api/pkg/logger"
)

// Client fetches the current temperature for a city from wttr.in. Fetch never
// fails from the caller's point of view: any network, status, or parse error
// is absorbed and replaced with a deterministic synthetic temperature.
type Client struct {
	httpClient *http.Client
	baseURL    string
	circuit    *gobreaker.CircuitBreaker
}

func NewClient(cfg config.Weather) *Client {
	dialer := &net.Dialer{
		Timeout: cfg.ConnectTimeout,
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "wttr.in",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				DialContext:         dialer.DialContext,
				TLSHandshakeTimeout: cfg.ConnectTimeout,
			},
		},
		baseURL: cfg.BaseURL,
		circuit: cb,
	}
}

// Fetch returns the current temperature in Celsius for the given city name,
// falling back to FallbackTemperature when the remote call fails in any way.
func (c *Client) Fetch(ctx context.Context, cityName string) float64 {
	temp, err := c.fetchRemote(ctx, cityName)
	if err != nil {
		logger.Warn("falling back to synthetic temperature",
			zap.String("city", cityName),
			zap.Error(err),
		)
		return FallbackTemperature(cityName)
	}
	return temp
}

func (c *Client) fetchRemote(ctx context.Context, cityName string) (float64, error) {
	requestURL := fmt.Sprintf("%s/%s?format=j1", c.baseURL, url.PathEscape(cityName))

	result, err := c.circuit.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, errors.Wrap(err, "wttr.in request failed")
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, errors.Errorf("wttr.in unexpected status code: %d", resp.StatusCode)
		}

		var payload struct {
			CurrentCondition []struct {
				TempC string `json:"temp_C"`
			} `json:"current_condition"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return nil, errors.Wrap(err, "wttr.in payload decode failed")
		}
		if len(payload.CurrentCondition) == 0 {
			return nil, errors.New("wttr.in payload has no current condition")
		}

		temp, err := strconv.ParseFloat(payload.CurrentCondition[0].TempC, 64)
		if err != nil {
			return nil, errors.Wrap(err, "wttr.in temperature parse failed")
		}
		return temp, nil
	})
	if err != nil {
		return 0, err
	}

	return result.(float64), nil
}

// FallbackTemperature derives a reproducible temperature in [10.0, 30.0) from
// the city name alone, rounded to one decimal place. The same name always
// yields the same value.
func FallbackTemperature(cityName string) float64 {
	var seed int64
	for _, ch := range cityName {
		seed += int64(ch)
	}

	rng := rand.New(rand.NewSource(seed))
	value := 10.0 + rng.Float64()*20.0
	return math.Round(value*10) / 10
}
