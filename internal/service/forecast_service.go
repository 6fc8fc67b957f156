package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"ulascansenturk/energy-forecast/internal/auth"
	"ulascansenturk/energy-forecast/internal/db/forecastrecord"
	"ulascansenturk/energy-forecast/internal/energy"
	"ulascansenturk/energy-forecast/internal/metrics"
	"ulascansenturk/energy-forecast/internal/providers"

	"github.com/rs/zerolog/log"
)

var (
	ErrWeatherUnavailable = errors.New("failed to fetch weather data")
	ErrForecastNotSaved   = errors.New("failed to save forecast")
)

type ForecastService interface {
	Generate(ctx context.Context, identity auth.Identity) (energy.Result, error)
	History(ctx context.Context, identity auth.Identity, limit int) ([]forecastrecord.ForecastRecord, error)
}

type forecastService struct {
	weather   providers.WeatherClient
	forecasts forecastrecord.Repository
	now       func() time.Time
}

func NewForecastService(weather providers.WeatherClient, forecasts forecastrecord.Repository, now func() time.Time) ForecastService {
	if now == nil {
		now = time.Now
	}
	return &forecastService{
		weather:   weather,
		forecasts: forecasts,
		now:       now,
	}
}

// Generate fetches the weather for the caller's location, estimates output
// and stores exactly one record. Nothing is stored if the fetch fails.
func (s *forecastService) Generate(ctx context.Context, identity auth.Identity) (energy.Result, error) {
	reading, err := s.weather.FetchWeather(ctx, identity.Location)
	if err != nil {
		metrics.IncWeatherFetchFailures()
		log.Error().Err(err).
			Uint("account_id", identity.AccountID).
			Str("location", identity.Location).
			Msg("failed to fetch weather data")
		return energy.Result{}, fmt.Errorf("%w: %v", ErrWeatherUnavailable, err)
	}

	result := energy.Estimate(reading.CloudCoveragePercent, reading.WindSpeed)

	record := &forecastrecord.ForecastRecord{
		AccountID:   identity.AccountID,
		Date:        s.now().Format(forecastrecord.DateLayout),
		SolarEnergy: result.SolarEnergy,
		WindEnergy:  result.WindEnergy,
	}
	if err := s.forecasts.Create(ctx, record); err != nil {
		log.Error().Err(err).Uint("account_id", identity.AccountID).Msg("failed to save forecast record")
		return energy.Result{}, fmt.Errorf("%w: %v", ErrForecastNotSaved, err)
	}

	metrics.IncForecastsGenerated()
	log.Debug().
		Uint("account_id", identity.AccountID).
		Float64("temperature_c", reading.TemperatureCelsius).
		Float64("solar_energy", result.SolarEnergy).
		Float64("wind_energy", result.WindEnergy).
		Msg("forecast generated")

	return result, nil
}

func (s *forecastService) History(ctx context.Context, identity auth.Identity, limit int) ([]forecastrecord.ForecastRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.forecasts.ListByAccount(ctx, identity.AccountID, limit)
}
