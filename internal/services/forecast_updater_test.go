package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AgusMolinaCode/Forecast_Api.git/internal/models"
)

func TestForecastUpdater_AppliesCurrentGeneration(t *testing.T) {
	updater := NewForecastUpdater(time.Minute)

	gen := updater.beginCycle()
	applied := updater.applyForecast(gen, "BTC", &models.ForecastResponse{Coin: "BTC", CurrentPrice: 50000})

	assert.True(t, applied)
	data, ok := updater.Latest("BTC")
	assert.True(t, ok)
	assert.Equal(t, 50000.0, data.CurrentPrice)
}

func TestForecastUpdater_DiscardsSupersededGeneration(t *testing.T) {
	updater := NewForecastUpdater(time.Minute)

	oldGen := updater.beginCycle()
	newGen := updater.beginCycle()

	// a late result from the superseded cycle must not overwrite anything
	applied := updater.applyForecast(oldGen, "BTC", &models.ForecastResponse{Coin: "BTC", CurrentPrice: 1})
	assert.False(t, applied)
	_, ok := updater.Latest("BTC")
	assert.False(t, ok)

	applied = updater.applyForecast(newGen, "BTC", &models.ForecastResponse{Coin: "BTC", CurrentPrice: 2})
	assert.True(t, applied)
	data, ok := updater.Latest("BTC")
	assert.True(t, ok)
	assert.Equal(t, 2.0, data.CurrentPrice)
}

func TestForecastUpdater_StartStopIdempotent(t *testing.T) {
	updater := NewForecastUpdater(time.Hour)
	updater.fetcher = stubFetcher{}

	updater.Start()
	updater.Start()
	updater.Stop()
	updater.Stop()
}

type stubFetcher struct{}

func (stubFetcher) Fetch(symbol string, steps int) (*models.ForecastResponse, error) {
	return &models.ForecastResponse{Coin: symbol, CurrentPrice: 100}, nil
}
