package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"ulascansenturk/energy-forecast/config"
	"ulascansenturk/energy-forecast/internal/api/v1/handlers"
	"ulascansenturk/energy-forecast/internal/auth"
	"ulascansenturk/energy-forecast/internal/db"
	"ulascansenturk/energy-forecast/internal/db/account"
	"ulascansenturk/energy-forecast/internal/db/forecastrecord"
	"ulascansenturk/energy-forecast/internal/db/session"
	"ulascansenturk/energy-forecast/internal/providers"
	"ulascansenturk/energy-forecast/internal/service"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil || conf.LogLevel == "" {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
	log.Logger = logger

	if err := conf.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	ctx, mainCtxStop := context.WithCancel(context.Background())

	database, dbErr := initializeDatabase(conf)
	if dbErr != nil {
		logger.Fatal().Err(dbErr).Msg("failed to initialize database")
	}

	accountRepo := account.NewRepository(database)
	forecastRepo := forecastrecord.NewRepository(database)
	sessionRepo := session.NewRepository(database)

	sessionManager := auth.NewSessionManager(conf.SessionSecret, conf.SessionTTL, sessionRepo, accountRepo, time.Now)

	authService, err := service.NewAuthService(accountRepo, auth.NewBcryptHasher(conf.BcryptCost))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize auth service")
	}

	weatherClient := providers.NewOpenWeatherClient(conf.OpenWeatherAPIKey, conf.OpenWeatherBaseURL, conf.WeatherTimeout)
	forecastService := service.NewForecastService(weatherClient, forecastRepo, time.Now)

	handler := handlers.NewHandler(authService, forecastService, sessionManager, handlers.Options{
		Timeout:      conf.HTTPTimeoutDuration(),
		CookieSecure: conf.CookieSecure,
		HistoryLimit: conf.HistoryLimit,
	})

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func(shutdownCtx context.Context) {
		shutdownErr := httpServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}

		if sqlDB, err := database.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close database")
			}
		}
	})

	log.Info().Str("env", conf.Env).Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && !errors.Is(serverErr, http.ErrServerClosed) {
		log.Err(serverErr).Msg("server stopped")
		mainCtxStop()
	}
	<-ctx.Done()
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName,
	)

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(database); err != nil {
		return nil, err
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return database, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func(shutdownCtx context.Context)) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback(shutdownCtx)

		cancel()
		cancelCtx()
	}()
}
