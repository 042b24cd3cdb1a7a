package services

import (
	"log"
	"sync"
	"time"

	"github.com/AgusMolinaCode/Forecast_Api.git/internal/models"
)

// forecastFetcher define la operación que el actualizador necesita del cliente
// de pronósticos
type forecastFetcher interface {
	Fetch(symbol string, steps int) (*models.ForecastResponse, error)
}

type forecastClientAdapter struct{}

func (forecastClientAdapter) Fetch(symbol string, steps int) (*models.ForecastResponse, error) {
	return GetForecast(symbol, steps)
}

// ForecastUpdater refresca periódicamente los pronósticos de las monedas
// soportadas. Cada ciclo de refresco lleva un número de generación: si un nuevo
// ciclo comienza antes de que termine el anterior, los resultados del ciclo
// viejo se descartan en lugar de pisar datos más recientes.
type ForecastUpdater struct {
	interval    time.Duration
	fetcher     forecastFetcher
	isRunning   bool
	stopChan    chan struct{}
	mutex       sync.Mutex
	generation  uint64
	latest      map[string]*models.ForecastResponse
	lastUpdated time.Time
}

// NewForecastUpdater crea un nuevo actualizador de pronósticos
func NewForecastUpdater(interval time.Duration) *ForecastUpdater {
	return &ForecastUpdater{
		interval: interval,
		fetcher:  forecastClientAdapter{},
		latest:   make(map[string]*models.ForecastResponse),
	}
}

// Start inicia el ciclo de refresco en segundo plano
func (u *ForecastUpdater) Start() {
	u.mutex.Lock()
	defer u.mutex.Unlock()

	if u.isRunning {
		return
	}

	u.isRunning = true
	u.stopChan = make(chan struct{})

	go func() {
		ticker := time.NewTicker(u.interval)
		defer ticker.Stop()

		// Refrescar inmediatamente al iniciar
		u.Refresh()

		for {
			select {
			case <-ticker.C:
				u.Refresh()
			case <-u.stopChan:
				return
			}
		}
	}()

	log.Printf("Actualizador de pronósticos iniciado con intervalo de %v", u.interval)
}

// Stop detiene el ciclo de refresco
func (u *ForecastUpdater) Stop() {
	u.mutex.Lock()
	defer u.mutex.Unlock()

	if !u.isRunning {
		return
	}

	u.isRunning = false
	close(u.stopChan)
	log.Printf("Actualizador de pronósticos detenido")
}

// Refresh lanza un ciclo de refresco para todas las monedas soportadas.
// Supersede cualquier ciclo anterior que siga en vuelo.
func (u *ForecastUpdater) Refresh() {
	gen := u.beginCycle()

	for _, coin := range SupportedCoins {
		go func(symbol string) {
			data, err := u.fetcher.Fetch(symbol, DefaultForecastSteps)
			if err != nil {
				log.Printf("Error al refrescar pronóstico de %s: %v", symbol, err)
				return
			}
			u.applyForecast(gen, symbol, data)
		}(coin)
	}
}

// beginCycle abre una nueva generación de refresco e invalida las anteriores
func (u *ForecastUpdater) beginCycle() uint64 {
	u.mutex.Lock()
	defer u.mutex.Unlock()

	u.generation++
	return u.generation
}

// applyForecast guarda el resultado de un fetch solo si su generación sigue
// vigente. Devuelve false cuando el resultado llegó tarde y fue descartado.
func (u *ForecastUpdater) applyForecast(gen uint64, symbol string, data *models.ForecastResponse) bool {
	u.mutex.Lock()
	defer u.mutex.Unlock()

	if gen != u.generation {
		log.Printf("Descartando pronóstico obsoleto de %s (generación %d, actual %d)", symbol, gen, u.generation)
		return false
	}

	u.latest[symbol] = data
	u.lastUpdated = time.Now()
	return true
}

// Latest devuelve el último pronóstico conocido de una moneda
func (u *ForecastUpdater) Latest(symbol string) (*models.ForecastResponse, bool) {
	u.mutex.Lock()
	defer u.mutex.Unlock()

	data, exists := u.latest[symbol]
	return data, exists
}

// GetLastUpdated devuelve el instante del último refresco aplicado
func (u *ForecastUpdater) GetLastUpdated() time.Time {
	u.mutex.Lock()
	defer u.mutex.Unlock()

	return u.lastUpdated
}
