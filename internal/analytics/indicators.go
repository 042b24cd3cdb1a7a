package analytics

import (
	"github.com/AgusMolinaCode/Forecast_Api.git/internal/models"
)

// Umbrales de clasificación de indicadores. Son política fija del producto:
// ajustarlos no debe requerir tocar la lógica de clasificación.
const (
	RSIOverboughtThreshold = 70.0
	RSIOversoldThreshold   = 30.0
	BBWidthVolatileThreshold = 0.1
)

// Etiquetas cualitativas de los indicadores
const (
	LabelOverbought     = "Overbought"
	LabelOversold       = "Oversold"
	LabelNeutral        = "Neutral"
	LabelBullish        = "Bullish"
	LabelBearish        = "Bearish"
	LabelHighVolatility = "High Volatility"
	LabelStable         = "Stable"
)

// ClassifyRSI clasifica el RSI. Los umbrales son estrictos: exactamente 70 o 30
// sigue siendo Neutral.
func ClassifyRSI(rsi float64) string {
	if rsi > RSIOverboughtThreshold {
		return LabelOverbought
	}
	if rsi < RSIOversoldThreshold {
		return LabelOversold
	}
	return LabelNeutral
}

// ClassifyMACD clasifica el histograma MACD. Cero cuenta como Bearish (<= 0),
// a diferencia de los umbrales estrictos de RSI y BB width.
func ClassifyMACD(hist float64) string {
	if hist > 0 {
		return LabelBullish
	}
	return LabelBearish
}

// ClassifyBBWidth clasifica el ancho de las bandas de Bollinger como régimen de volatilidad
func ClassifyBBWidth(width float64) string {
	if width > BBWidthVolatileThreshold {
		return LabelHighVolatility
	}
	return LabelStable
}

// SummarizeIndicators devuelve los valores crudos junto con sus etiquetas
func SummarizeIndicators(ind models.IndicatorSet) models.IndicatorSummary {
	return models.IndicatorSummary{
		RSI:        ind.RSI,
		RSILabel:   ClassifyRSI(ind.RSI),
		MACDHist:   ind.MACDHist,
		MACDLabel:  ClassifyMACD(ind.MACDHist),
		BBWidth:    ind.BBWidth,
		Volatility: ind.Volatility,
		VolLabel:   ClassifyBBWidth(ind.BBWidth),
	}
}
