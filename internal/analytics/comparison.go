package analytics

import (
	"github.com/AgusMolinaCode/Forecast_Api.git/internal/models"
)

// Compare normaliza dos pronósticos a cambio porcentual respecto a su primer
// punto (histórico + pronóstico concatenados) para poder graficarlos en un
// mismo eje. La serie se trunca al largo de la más corta; los puntos sobrantes
// de la otra se descartan, es una degradación conocida, no un error.
func Compare(a, b *models.ForecastResponse) models.ComparisonResult {
	result := models.ComparisonResult{}
	if a == nil || b == nil {
		return result
	}
	result.CoinA = a.Coin
	result.CoinB = b.Coin

	combinedA := append(append([]models.PricePoint{}, a.History...), a.Forecast...)
	combinedB := append(append([]models.PricePoint{}, b.History...), b.Forecast...)

	baseA := firstPrice(combinedA)
	baseB := firstPrice(combinedB)

	length := len(combinedA)
	if len(combinedB) < length {
		length = len(combinedB)
	}

	points := make([]models.ComparisonPoint, 0, length)
	for i := 0; i < length; i++ {
		points = append(points, models.ComparisonPoint{
			Time:       combinedA[i].Time,
			PctA:       (combinedA[i].Price - baseA) / baseA * 100,
			PctB:       (combinedB[i].Price - baseB) / baseB * 100,
			IsForecast: i >= len(a.History),
		})
	}
	result.Points = points

	result.GrowthA = Growth(a)
	result.GrowthB = Growth(b)

	// Empate a favor del primer activo: el veredicto debe ser determinista
	if result.GrowthA >= result.GrowthB {
		result.Winner = a.Coin
	} else {
		result.Winner = b.Coin
	}

	return result
}

// Growth calcula el crecimiento porcentual desde el último punto histórico
// hasta el último punto del pronóstico. Sin datos suficientes devuelve 0.
func Growth(data *models.ForecastResponse) float64 {
	if data == nil || len(data.History) == 0 || len(data.Forecast) == 0 {
		return 0
	}
	currentPrice := data.History[len(data.History)-1].Price
	if currentPrice <= 0 {
		currentPrice = 1
	}
	futurePrice := data.Forecast[len(data.Forecast)-1].Price
	return (futurePrice - currentPrice) / currentPrice * 100
}

// firstPrice devuelve el precio base de una serie; 1 si la serie está vacía o
// el primer precio es cero, para no propagar NaN al rebasar.
func firstPrice(points []models.PricePoint) float64 {
	if len(points) == 0 || points[0].Price == 0 {
		return 1
	}
	return points[0].Price
}
