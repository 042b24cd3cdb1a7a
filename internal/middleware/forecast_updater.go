package middleware

import (
	"github.com/AgusMolinaCode/Forecast_Api.git/internal/services"
)

// Variable global para almacenar la instancia del actualizador de pronósticos
var forecastUpdaterInstance *services.ForecastUpdater

// SetForecastUpdater establece la instancia del actualizador de pronósticos
func SetForecastUpdater(updater *services.ForecastUpdater) {
	forecastUpdaterInstance = updater
}

// GetForecastUpdater obtiene la instancia del actualizador de pronósticos
func GetForecastUpdater() *services.ForecastUpdater {
	return forecastUpdaterInstance
}
