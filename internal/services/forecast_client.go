package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/AgusMolinaCode/Forecast_Api.git/internal/models"
)

// Monedas soportadas por el servicio de predicción
var SupportedCoins = []string{"BTC", "ETH", "BNB", "ADA", "DOGE"}

// Pasos de pronóstico: por defecto 24 horas, máximo una semana (igual que el
// tope del servicio externo)
const (
	DefaultForecastSteps = 24
	MaxForecastSteps     = 168
)

const forecastCacheTTL = 5 * time.Minute

var httpClient = &http.Client{Timeout: 15 * time.Second}

// Caché para reducir llamadas al servicio de predicción
var (
	forecastCache      = make(map[string]cachedForecast)
	forecastCacheMutex sync.RWMutex
)

type cachedForecast struct {
	Data      *models.ForecastResponse
	Timestamp time.Time
}

// IsSupportedCoin indica si el símbolo pertenece al conjunto fijo de monedas
func IsSupportedCoin(symbol string) bool {
	symbol = strings.ToUpper(symbol)
	for _, coin := range SupportedCoins {
		if coin == symbol {
			return true
		}
	}
	return false
}

func forecastAPIURL() string {
	if url := os.Getenv("FORECAST_API_URL"); url != "" {
		return strings.TrimRight(url, "/")
	}
	return "http://127.0.0.1:8000"
}

// GetForecast obtiene el pronóstico de una moneda desde el servicio de
// predicción externo. Los resultados se cachean por (moneda, pasos).
func GetForecast(symbol string, steps int) (*models.ForecastResponse, error) {
	symbol = strings.ToUpper(symbol)
	if !IsSupportedCoin(symbol) {
		return nil, fmt.Errorf("moneda no soportada: %s", symbol)
	}
	if steps <= 0 {
		steps = DefaultForecastSteps
	}
	if steps > MaxForecastSteps {
		steps = MaxForecastSteps
	}

	cacheKey := fmt.Sprintf("%s:%d", symbol, steps)

	forecastCacheMutex.RLock()
	if cached, exists := forecastCache[cacheKey]; exists {
		if time.Since(cached.Timestamp) < forecastCacheTTL {
			forecastCacheMutex.RUnlock()
			return cached.Data, nil
		}
	}
	forecastCacheMutex.RUnlock()

	url := fmt.Sprintf("%s/predict/%s/forecast?steps=%d", forecastAPIURL(), symbol, steps)

	resp, err := httpClient.Get(url)
	if err != nil {
		log.Printf("Error al obtener pronóstico de %s: %v", symbol, err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("Error al leer respuesta de pronóstico para %s: %v", symbol, err)
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("el servicio de predicción respondió %d para %s", resp.StatusCode, symbol)
	}

	var data models.ForecastResponse
	if err := json.Unmarshal(body, &data); err != nil {
		log.Printf("Error al parsear pronóstico para %s: %v", symbol, err)
		return nil, err
	}

	forecastCacheMutex.Lock()
	forecastCache[cacheKey] = cachedForecast{
		Data:      &data,
		Timestamp: time.Now(),
	}
	forecastCacheMutex.Unlock()

	return &data, nil
}

// GetForecastPair obtiene los pronósticos de dos monedas en paralelo. Ambas
// peticiones deben completarse antes de devolver; si cualquiera falla, la
// comparación falla completa.
func GetForecastPair(symbolA, symbolB string, steps int) (*models.ForecastResponse, *models.ForecastResponse, error) {
	var (
		wg           sync.WaitGroup
		dataA, dataB *models.ForecastResponse
		errA, errB   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		dataA, errA = GetForecast(symbolA, steps)
	}()
	go func() {
		defer wg.Done()
		dataB, errB = GetForecast(symbolB, steps)
	}()
	wg.Wait()

	if errA != nil {
		return nil, nil, errA
	}
	if errB != nil {
		return nil, nil, errB
	}
	return dataA, dataB, nil
}

// clearForecastCache vacía la caché (solo para tests)
func clearForecastCache() {
	forecastCacheMutex.Lock()
	forecastCache = make(map[string]cachedForecast)
	forecastCacheMutex.Unlock()
}
