package models

// PricePoint representa un punto de la serie de precios (histórico o pronóstico)
type PricePoint struct {
	Time  string  `json:"time"`
	Price float64 `json:"price"`
}

// IndicatorSet contiene los indicadores técnicos calculados por el servicio de predicción.
// El RSI ya viene acotado a [0,100] por el servicio externo.
type IndicatorSet struct {
	RSI        float64 `json:"rsi"`
	Volatility float64 `json:"volatility"`
	MACDHist   float64 `json:"macd_hist"`
	BBWidth    float64 `json:"bb_width"`
}

// ForecastResponse es la respuesta del servicio de predicción para una moneda
type ForecastResponse struct {
	Coin                string       `json:"coin"`
	CurrentPrice        float64      `json:"current_price"`
	History             []PricePoint `json:"history"`
	Forecast            []PricePoint `json:"forecast"`
	TechnicalIndicators IndicatorSet `json:"technical_indicators"`
}
