package analytics

import (
	"github.com/AgusMolinaCode/Forecast_Api.git/internal/models"
)

// DerivePredictionMetrics calcula las métricas del próximo paso del pronóstico.
// Si el pronóstico viene vacío devuelve el resultado en cero con Available=false:
// los consumidores deben tratarlo como "sin predicción", no como cambio nulo.
func DerivePredictionMetrics(currentPrice float64, forecast []models.PricePoint) models.PredictionMetrics {
	if len(forecast) == 0 || currentPrice <= 0 {
		return models.PredictionMetrics{IsPositive: true, Available: false}
	}

	nextPrice := forecast[0].Price
	change := nextPrice - currentPrice
	changePercent := change / currentPrice * 100

	return models.PredictionMetrics{
		NextPrice:     nextPrice,
		Change:        change,
		ChangePercent: changePercent,
		IsPositive:    change >= 0,
		Available:     true,
	}
}

// ForecastSteps devuelve las primeras limit filas del pronóstico con el cambio
// porcentual de cada paso respecto al anterior. El primer paso se compara contra
// el precio actual.
func ForecastSteps(currentPrice float64, forecast []models.PricePoint, limit int) []models.ForecastStep {
	if limit > len(forecast) {
		limit = len(forecast)
	}

	steps := make([]models.ForecastStep, 0, limit)
	prev := currentPrice
	for i := 0; i < limit; i++ {
		base := prev
		if base <= 0 {
			base = 1 // evita NaN si el precio base viene en cero
		}
		change := (forecast[i].Price - prev) / base * 100
		steps = append(steps, models.ForecastStep{
			Time:          forecast[i].Time,
			Price:         forecast[i].Price,
			ChangePercent: change,
			IsPositive:    change >= 0,
		})
		prev = forecast[i].Price
	}
	return steps
}
