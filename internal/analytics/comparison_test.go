package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AgusMolinaCode/Forecast_Api.git/internal/models"
)

func forecastData(coin string, historyPrices, forecastPrices []float64) *models.ForecastResponse {
	return &models.ForecastResponse{
		Coin:     coin,
		History:  pricePoints(historyPrices...),
		Forecast: pricePoints(forecastPrices...),
	}
}

func rampPrices(start float64, count int, step float64) []float64 {
	prices := make([]float64, count)
	for i := range prices {
		prices[i] = start + float64(i)*step
	}
	return prices
}

func TestCompare_FirstPointRebasedToZero(t *testing.T) {
	a := forecastData("BTC", []float64{50000, 50500}, []float64{51000, 51500})
	b := forecastData("ETH", []float64{3000, 3050}, []float64{3100, 3200})

	result := Compare(a, b)

	assert.NotEmpty(t, result.Points)
	assert.Equal(t, 0.0, result.Points[0].PctA)
	assert.Equal(t, 0.0, result.Points[0].PctB)
}

func TestCompare_TruncatesToShorterSeries(t *testing.T) {
	// A: 20 history + 40 forecast = 60, B: 10 history + 40 forecast = 50
	a := forecastData("BTC", rampPrices(50000, 20, 10), rampPrices(50200, 40, 10))
	b := forecastData("ETH", rampPrices(3000, 10, 1), rampPrices(3010, 40, 1))

	result := Compare(a, b)

	assert.Len(t, result.Points, 50)
	// forecast segment starts at len(historyA)
	for i, p := range result.Points {
		assert.Equal(t, i >= 20, p.IsForecast, "index %d", i)
	}
}

func TestCompare_ZeroBaseDoesNotProduceNaN(t *testing.T) {
	a := forecastData("BTC", []float64{0, 10}, []float64{20})
	b := forecastData("ETH", []float64{100, 101}, []float64{102})

	result := Compare(a, b)

	for _, p := range result.Points {
		assert.False(t, math.IsNaN(p.PctA) || math.IsInf(p.PctA, 0))
		assert.False(t, math.IsNaN(p.PctB) || math.IsInf(p.PctB, 0))
	}
}

func TestCompare_EmptySeriesDoesNotPanic(t *testing.T) {
	result := Compare(&models.ForecastResponse{Coin: "BTC"}, &models.ForecastResponse{Coin: "ETH"})

	assert.Empty(t, result.Points)
	assert.Equal(t, "BTC", result.Winner)
}

func TestCompare_WinnerByTerminalGrowth(t *testing.T) {
	// A grows 2%, B grows 5% -> B wins
	a := forecastData("BTC", []float64{100}, []float64{101, 102})
	b := forecastData("ETH", []float64{100}, []float64{103, 105})

	result := Compare(a, b)

	assert.InDelta(t, 2.0, result.GrowthA, 1e-9)
	assert.InDelta(t, 5.0, result.GrowthB, 1e-9)
	assert.Equal(t, "ETH", result.Winner)
}

func TestCompare_TieFavorsFirstAsset(t *testing.T) {
	a := forecastData("BTC", []float64{100}, []float64{105})
	b := forecastData("ETH", []float64{200}, []float64{210})

	result := Compare(a, b)

	assert.Equal(t, result.GrowthA, result.GrowthB)
	assert.Equal(t, "BTC", result.Winner)
}

func TestGrowth_LastHistoryToLastForecast(t *testing.T) {
	data := forecastData("BTC", []float64{90, 100}, []float64{105, 110})
	assert.InDelta(t, 10.0, Growth(data), 1e-9)
}

func TestGrowth_MissingData(t *testing.T) {
	assert.Equal(t, 0.0, Growth(nil))
	assert.Equal(t, 0.0, Growth(forecastData("BTC", nil, []float64{110})))
	assert.Equal(t, 0.0, Growth(forecastData("BTC", []float64{100}, nil)))
}
