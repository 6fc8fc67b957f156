package handlers

import "ulascansenturk/energy-forecast/internal/db/forecastrecord"

type ForecastResponse struct {
	SolarEnergy float64 `json:"solar_energy"`
	WindEnergy  float64 `json:"wind_energy"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type registerPage struct {
	Error    string
	Username string
	Location string
}

type dashboardPage struct {
	Username string
	Location string
	History  []forecastrecord.ForecastRecord
}
