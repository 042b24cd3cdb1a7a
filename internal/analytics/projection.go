package analytics

import (
	"github.com/AgusMolinaCode/Forecast_Api.git/internal/models"
)

// Horizonte permitido para la proyección de inversión, en días
const (
	MinHorizonDays = 1
	MaxHorizonDays = 7
)

// HoursPerDay pasos horarios por día del pronóstico
const HoursPerDay = 24

// ProjectInvestment proyecta una inversión sobre el pronóstico horario.
// El índice objetivo es horizonDays*24-1; si el pronóstico es más corto se usa
// el último punto disponible. Ese recorte es política deliberada: ante datos
// insuficientes la proyección degrada al punto más lejano conocido en lugar de
// fallar, aunque sub-proyecta el horizonte pedido.
func ProjectInvestment(principal float64, horizonDays int, data *models.ForecastResponse) models.ProjectionResult {
	if data == nil || principal <= 0 || data.CurrentPrice <= 0 {
		return models.ProjectionResult{}
	}

	currentPrice := data.CurrentPrice
	targetIndex := horizonDays*HoursPerDay - 1
	if targetIndex > len(data.Forecast)-1 {
		targetIndex = len(data.Forecast) - 1
	}

	futurePrice := currentPrice
	if targetIndex >= 0 {
		futurePrice = data.Forecast[targetIndex].Price
	}

	percentChange := (futurePrice - currentPrice) / currentPrice
	profit := principal * percentChange

	return models.ProjectionResult{
		FinalValue: principal + profit,
		Profit:     profit,
		Percent:    percentChange * 100,
	}
}
