package services

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const forecastPayload = `{
	"coin": "BTC",
	"current_price": 50000,
	"history": [{"time": "2024-01-01T00:00:00", "price": 49500}],
	"forecast": [{"time": "2024-01-01T01:00:00", "price": 50500}],
	"technical_indicators": {"rsi": 62.1, "volatility": 0.012, "macd_hist": 1.3, "bb_width": 0.04}
}`

func TestGetForecast_ParsesUpstreamPayload(t *testing.T) {
	clearForecastCache()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/predict/BTC/forecast", r.URL.Path)
		assert.Equal(t, "24", r.URL.Query().Get("steps"))
		w.Write([]byte(forecastPayload))
	}))
	defer server.Close()
	t.Setenv("FORECAST_API_URL", server.URL)

	data, err := GetForecast("btc", 24)
	require.NoError(t, err)

	assert.Equal(t, "BTC", data.Coin)
	assert.Equal(t, 50000.0, data.CurrentPrice)
	require.Len(t, data.Forecast, 1)
	assert.Equal(t, 50500.0, data.Forecast[0].Price)
	assert.Equal(t, 62.1, data.TechnicalIndicators.RSI)
}

func TestGetForecast_CachesBySymbolAndSteps(t *testing.T) {
	clearForecastCache()

	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(forecastPayload))
	}))
	defer server.Close()
	t.Setenv("FORECAST_API_URL", server.URL)

	_, err := GetForecast("BTC", 24)
	require.NoError(t, err)
	_, err = GetForecast("BTC", 24)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	// distinct steps miss the cache
	_, err = GetForecast("BTC", 48)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestGetForecast_ClampsStepsToMax(t *testing.T) {
	clearForecastCache()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "168", r.URL.Query().Get("steps"))
		w.Write([]byte(forecastPayload))
	}))
	defer server.Close()
	t.Setenv("FORECAST_API_URL", server.URL)

	_, err := GetForecast("BTC", 500)
	require.NoError(t, err)
}

func TestGetForecast_RejectsUnsupportedCoin(t *testing.T) {
	_, err := GetForecast("SHIB", 24)
	assert.Error(t, err)
}

func TestGetForecast_UpstreamErrorSurfaces(t *testing.T) {
	clearForecastCache()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "Model for BTC not found"}`, http.StatusNotFound)
	}))
	defer server.Close()
	t.Setenv("FORECAST_API_URL", server.URL)

	_, err := GetForecast("BTC", 24)
	assert.Error(t, err)
}

func TestGetForecastPair_BothMustComplete(t *testing.T) {
	clearForecastCache()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/predict/ETH/forecast" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(forecastPayload))
	}))
	defer server.Close()
	t.Setenv("FORECAST_API_URL", server.URL)

	_, _, err := GetForecastPair("BTC", "ETH", 48)
	assert.Error(t, err)

	clearForecastCache()
	okServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(forecastPayload))
	}))
	defer okServer.Close()
	t.Setenv("FORECAST_API_URL", okServer.URL)

	dataA, dataB, err := GetForecastPair("BTC", "ETH", 48)
	require.NoError(t, err)
	assert.NotNil(t, dataA)
	assert.NotNil(t, dataB)
}
