package config

import (
	"errors"
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"time"
)

var ErrMissingSessionSecret = errors.New("SESSION_SECRET must be set outside development")

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
	WeatherTimeout     time.Duration

	SessionSecret string
	SessionTTL    time.Duration
	CookieSecure  bool
	BcryptCost    int
	HistoryLimit  int
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "energy-forecast")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("ENV", "development")
	v.SetDefault("HTTP_TIMEOUT", 30)
	v.SetDefault("OPENWEATHER_BASE_URL", "http://api.openweathermap.org/data/2.5")
	v.SetDefault("WEATHER_TIMEOUT", 10*time.Second)
	v.SetDefault("SESSION_TTL", 24*time.Hour)
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("HISTORY_LIMIT", 10)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:        v.GetString("SERVICE_NAME"),
		ServerAddress:      v.GetString("SERVER_ADDRESS"),
		DBName:             v.GetString("DATABASE_NAME"),
		DBPassword:         v.GetString("DATABASE_PASSWORD"),
		DBUser:             v.GetString("DATABASE_USER"),
		DBPort:             v.GetString("DATABASE_PORT"),
		DBHost:             v.GetString("DATABASE_HOST"),
		Env:                v.GetString("ENV"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		HTTPTimeout:        v.GetInt32("HTTP_TIMEOUT"),
		OpenWeatherAPIKey:  v.GetString("OPENWEATHER_API_KEY"),
		OpenWeatherBaseURL: v.GetString("OPENWEATHER_BASE_URL"),
		WeatherTimeout:     v.GetDuration("WEATHER_TIMEOUT"),
		SessionSecret:      v.GetString("SESSION_SECRET"),
		SessionTTL:         v.GetDuration("SESSION_TTL"),
		CookieSecure:       v.GetBool("COOKIE_SECURE"),
		BcryptCost:         v.GetInt("BCRYPT_COST"),
		HistoryLimit:       v.GetInt("HISTORY_LIMIT"),
	}

	return config, nil
}

// Validate reports settings the server cannot start with. A development
// environment falls back to a fixed session secret.
func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		if c.Env != "development" {
			return ErrMissingSessionSecret
		}
		log.Warn().Msg("SESSION_SECRET not set, using insecure development secret")
		c.SessionSecret = "development-only-secret"
	}
	if c.OpenWeatherAPIKey == "" {
		log.Warn().Msg("OPENWEATHER_API_KEY not set, forecasts will fail")
	}
	return nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
