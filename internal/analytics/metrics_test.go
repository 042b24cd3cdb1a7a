package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AgusMolinaCode/Forecast_Api.git/internal/models"
)

func pricePoints(prices ...float64) []models.PricePoint {
	points := make([]models.PricePoint, len(prices))
	for i, p := range prices {
		points[i] = models.PricePoint{Time: "2024-01-01T00:00:00", Price: p}
	}
	return points
}

func TestDerivePredictionMetrics_Basic(t *testing.T) {
	// current 50000, next 50500 -> +500, +1.00%
	metrics := DerivePredictionMetrics(50000, pricePoints(50500, 51000))

	assert.True(t, metrics.Available)
	assert.Equal(t, 50500.0, metrics.NextPrice)
	assert.Equal(t, 500.0, metrics.Change)
	assert.InDelta(t, 1.00, metrics.ChangePercent, 1e-9)
	assert.True(t, metrics.IsPositive)
}

func TestDerivePredictionMetrics_NegativeChange(t *testing.T) {
	metrics := DerivePredictionMetrics(100, pricePoints(95))

	assert.True(t, metrics.Available)
	assert.Equal(t, -5.0, metrics.Change)
	assert.InDelta(t, -5.0, metrics.ChangePercent, 1e-9)
	assert.False(t, metrics.IsPositive)
}

func TestDerivePredictionMetrics_ExactFormula(t *testing.T) {
	cases := []struct {
		current float64
		next    float64
	}{
		{100, 110},
		{43250.75, 43100.10},
		{0.085, 0.091},
	}

	for _, tc := range cases {
		metrics := DerivePredictionMetrics(tc.current, pricePoints(tc.next))
		want := (tc.next - tc.current) / tc.current * 100
		assert.Equal(t, want, metrics.ChangePercent)
	}
}

func TestDerivePredictionMetrics_EmptyForecast(t *testing.T) {
	// Empty forecast must come back as an explicit "unavailable" result, never panic
	metrics := DerivePredictionMetrics(50000, nil)

	assert.False(t, metrics.Available)
	assert.Equal(t, 0.0, metrics.NextPrice)
	assert.Equal(t, 0.0, metrics.Change)
	assert.Equal(t, 0.0, metrics.ChangePercent)
	assert.True(t, metrics.IsPositive)
}

func TestForecastSteps_StepOverStepChange(t *testing.T) {
	// current 100, steps 110, 99, 99
	steps := ForecastSteps(100, pricePoints(110, 99, 99), 4)

	assert.Len(t, steps, 3)
	assert.InDelta(t, 10.0, steps[0].ChangePercent, 1e-9)
	assert.True(t, steps[0].IsPositive)
	assert.InDelta(t, -10.0, steps[1].ChangePercent, 1e-9)
	assert.False(t, steps[1].IsPositive)
	assert.InDelta(t, 0.0, steps[2].ChangePercent, 1e-9)
	assert.True(t, steps[2].IsPositive)
}

func TestForecastSteps_LimitCapsOutput(t *testing.T) {
	steps := ForecastSteps(100, pricePoints(101, 102, 103, 104, 105, 106), 4)
	assert.Len(t, steps, 4)
}
