package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

const kelvinOffset = 273.15

var ErrWeatherFetch = errors.New("weather fetch failed")

// errProviderFault marks failures on the provider side. Only these count
// towards opening the circuit breaker; a caller's bad location or cancelled
// request must not stop lookups for everyone else.
var errProviderFault = errors.New("provider fault")

type WeatherReading struct {
	CloudCoveragePercent float64
	WindSpeed            float64
	TemperatureCelsius   float64
}

type WeatherClient interface {
	FetchWeather(ctx context.Context, location string) (WeatherReading, error)
	GetHTTPClient() *http.Client
}

type openWeatherClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewOpenWeatherClient(apiKey, baseURL string, timeout time.Duration) WeatherClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "openweathermap",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return !errors.Is(err, errProviderFault)
		},
	})

	return &openWeatherClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		circuit: cb,
	}
}

type openWeatherResponse struct {
	Clouds *struct {
		All float64 `json:"all"`
	} `json:"clouds"`
	Wind *struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Main *struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

// FetchWeather makes a single request for the location. Every failure comes
// back wrapped in ErrWeatherFetch.
func (c *openWeatherClient) FetchWeather(ctx context.Context, location string) (WeatherReading, error) {
	if c.apiKey == "" {
		return WeatherReading{}, fmt.Errorf("%w: api key is not configured", ErrWeatherFetch)
	}

	result, err := c.circuit.Execute(func() (interface{}, error) {
		return c.fetch(ctx, location)
	})
	if err != nil {
		if errors.Is(err, ErrWeatherFetch) {
			return WeatherReading{}, err
		}
		return WeatherReading{}, fmt.Errorf("%w: %v", ErrWeatherFetch, err)
	}

	return result.(WeatherReading), nil
}

func (c *openWeatherClient) fetch(ctx context.Context, location string) (WeatherReading, error) {
	values := url.Values{}
	values.Set("q", location)
	values.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather?"+values.Encode(), nil)
	if err != nil {
		return WeatherReading{}, fmt.Errorf("%w: building request: %v", ErrWeatherFetch, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return WeatherReading{}, fmt.Errorf("%w: request canceled: %v", ErrWeatherFetch, err)
		}
		return WeatherReading{}, fmt.Errorf("%w: %w: request failed: %v", ErrWeatherFetch, errProviderFault, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return WeatherReading{}, fmt.Errorf("%w: %w: provider returned status code: %d", ErrWeatherFetch, errProviderFault, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return WeatherReading{}, fmt.Errorf("%w: provider returned status code: %d", ErrWeatherFetch, resp.StatusCode)
	}

	var apiResp openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return WeatherReading{}, fmt.Errorf("%w: %w: provider returned malformed JSON: %v", ErrWeatherFetch, errProviderFault, err)
	}

	if apiResp.Clouds == nil || apiResp.Wind == nil || apiResp.Main == nil {
		return WeatherReading{}, fmt.Errorf("%w: %w: provider response is missing clouds, wind or main", ErrWeatherFetch, errProviderFault)
	}

	return WeatherReading{
		CloudCoveragePercent: apiResp.Clouds.All,
		WindSpeed:            apiResp.Wind.Speed,
		TemperatureCelsius:   apiResp.Main.Temp - kelvinOffset,
	}, nil
}

func (c *openWeatherClient) GetHTTPClient() *http.Client {
	return c.client
}
