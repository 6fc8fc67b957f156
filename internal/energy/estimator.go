// Package energy turns a weather reading into solar and wind output figures.
//
// The formula is a placeholder, not a predictive model. It is kept exactly as
// is so stored history stays comparable; do not tune the coefficients.
package energy

import "math"

const (
	SolarCoefficient = 0.2
	WindCoefficient  = 0.5
)

type Result struct {
	SolarEnergy float64 `json:"solar_energy"`
	WindEnergy  float64 `json:"wind_energy"`
}

// Estimate maps cloud coverage (percent) and wind speed (m/s) to rounded
// solar and wind figures.
func Estimate(cloudCoveragePercent, windSpeed float64) Result {
	return Result{
		SolarEnergy: round2((100 - cloudCoveragePercent) * SolarCoefficient),
		WindEnergy:  round2(windSpeed * WindCoefficient),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
