package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/AgusMolinaCode/Forecast_Api.git/internal/analytics"
	"github.com/AgusMolinaCode/Forecast_Api.git/internal/services"
	"github.com/gin-gonic/gin"
)

// UsdToInrRate es el multiplicador fijo USD→INR usado solo para presentación.
// Nunca se persiste ni entra en los cálculos.
const UsdToInrRate = 90.0

// Filas de la tabla de próximos pasos incluidas en la respuesta de métricas
const forecastStepRows = 10

// GetForecast devuelve el pronóstico crudo del servicio de predicción
func GetForecast(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	if !services.IsSupportedCoin(symbol) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Moneda no soportada"})
		return
	}

	steps, _ := strconv.Atoi(c.DefaultQuery("steps", strconv.Itoa(services.DefaultForecastSteps)))

	data, err := services.GetForecast(symbol, steps)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error al obtener el pronóstico"})
		return
	}

	c.JSON(http.StatusOK, data)
}

// GetForecastMetrics devuelve el pronóstico junto con las métricas derivadas:
// próximo precio, cambio porcentual, etiquetas de indicadores y la tabla de
// próximos pasos. Los campos *_inr son solo para presentación.
func GetForecastMetrics(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	if !services.IsSupportedCoin(symbol) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Moneda no soportada"})
		return
	}

	steps, _ := strconv.Atoi(c.DefaultQuery("steps", strconv.Itoa(services.DefaultForecastSteps)))

	data, err := services.GetForecast(symbol, steps)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error al obtener el pronóstico"})
		return
	}

	metrics := analytics.DerivePredictionMetrics(data.CurrentPrice, data.Forecast)
	indicators := analytics.SummarizeIndicators(data.TechnicalIndicators)
	stepTable := analytics.ForecastSteps(data.CurrentPrice, data.Forecast, forecastStepRows)

	c.JSON(http.StatusOK, gin.H{
		"coin":              data.Coin,
		"current_price":     data.CurrentPrice,
		"current_price_inr": data.CurrentPrice * UsdToInrRate,
		"history":           data.History,
		"forecast":          data.Forecast,
		"metrics":           metrics,
		"next_price_inr":    metrics.NextPrice * UsdToInrRate,
		"indicators":        indicators,
		"steps":             stepTable,
	})
}

// GetProjection proyecta una inversión sobre el pronóstico de una moneda.
// El resultado se recalcula en cada petición: depende del monto, el horizonte
// y el pronóstico vigente, así que no se cachea.
func GetProjection(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	if !services.IsSupportedCoin(symbol) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Moneda no soportada"})
		return
	}

	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil || amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El monto debe ser un número mayor a cero"})
		return
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < analytics.MinHorizonDays || days > analytics.MaxHorizonDays {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El horizonte debe estar entre 1 y 7 días"})
		return
	}

	// Pedir la semana completa para cubrir cualquier horizonte permitido
	data, err := services.GetForecast(symbol, services.MaxForecastSteps)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error al obtener el pronóstico"})
		return
	}

	result := analytics.ProjectInvestment(amount, days, data)

	c.JSON(http.StatusOK, gin.H{
		"coin":            symbol,
		"amount":          amount,
		"days":            days,
		"projection":      result,
		"final_value_inr": result.FinalValue * UsdToInrRate,
	})
}

// CompareCoins compara el crecimiento pronosticado de dos monedas sobre una
// serie rebasada a porcentaje. Los dos pronósticos se piden en paralelo y
// ambos deben llegar antes de calcular.
func CompareCoins(c *gin.Context) {
	coinA := strings.ToUpper(c.DefaultQuery("coin_a", "BTC"))
	coinB := strings.ToUpper(c.DefaultQuery("coin_b", "ETH"))

	if !services.IsSupportedCoin(coinA) || !services.IsSupportedCoin(coinB) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Moneda no soportada"})
		return
	}

	steps, _ := strconv.Atoi(c.DefaultQuery("steps", "48"))

	dataA, dataB, err := services.GetForecastPair(coinA, coinB, steps)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error al obtener los pronósticos"})
		return
	}

	c.JSON(http.StatusOK, analytics.Compare(dataA, dataB))
}

// GetNews devuelve las últimas noticias de una moneda
func GetNews(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))

	news, err := services.GetNews(symbol)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error al obtener noticias"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"coin": symbol,
		"news": news,
	})
}

// GetTicker devuelve un resumen de precio y cambio pronosticado de todas las
// monedas soportadas, servido desde la caché del actualizador en segundo plano
func GetTicker(c *gin.Context) {
	updater := GetForecastUpdater()
	if updater == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Actualizador no disponible"})
		return
	}

	items := []gin.H{}
	for _, coin := range services.SupportedCoins {
		data, exists := updater.Latest(coin)
		if !exists {
			continue
		}
		metrics := analytics.DerivePredictionMetrics(data.CurrentPrice, data.Forecast)
		items = append(items, gin.H{
			"symbol":         coin,
			"price":          data.CurrentPrice,
			"price_inr":      data.CurrentPrice * UsdToInrRate,
			"change_percent": metrics.ChangePercent,
			"is_positive":    metrics.IsPositive,
			"available":      metrics.Available,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"ticker":       items,
		"last_updated": updater.GetLastUpdated(),
	})
}
