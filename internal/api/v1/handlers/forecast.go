package handlers

import (
	"errors"
	"net/http"
	"ulascansenturk/energy-forecast/internal/auth"
	"ulascansenturk/energy-forecast/internal/db/forecastrecord"
	"ulascansenturk/energy-forecast/internal/service"

	"github.com/rs/zerolog/log"
)

const (
	msgFetchFailed = "Failed to fetch data"
	msgSaveFailed  = "Failed to save forecast"
)

func (h *Handler) GetForecast(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	result, err := h.forecastService.Generate(r.Context(), identity)
	if err != nil {
		log.Error().Err(err).Uint("account_id", identity.AccountID).Msg("failed to generate forecast")
		if errors.Is(err, service.ErrForecastNotSaved) {
			respondWithError(w, http.StatusInternalServerError, msgSaveFailed)
			return
		}
		respondWithError(w, http.StatusInternalServerError, msgFetchFailed)
		return
	}

	respondWithJSON(w, http.StatusOK, ForecastResponse{
		SolarEnergy: result.SolarEnergy,
		WindEnergy:  result.WindEnergy,
	})
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	history, err := h.forecastService.History(r.Context(), identity, h.historyLimit)
	if err != nil {
		log.Error().Err(err).Uint("account_id", identity.AccountID).Msg("failed to load forecast history")
		history = []forecastrecord.ForecastRecord{}
	}

	renderPage(w, http.StatusOK, "dashboard.html", dashboardPage{
		Username: identity.Username,
		Location: identity.Location,
		History:  history,
	})
}
