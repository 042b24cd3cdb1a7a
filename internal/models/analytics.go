package models

// PredictionMetrics contiene las métricas derivadas del próximo paso del pronóstico.
// Available es false cuando el pronóstico viene vacío: los valores en cero no
// significan "sin cambio" sino "sin predicción disponible".
type PredictionMetrics struct {
	NextPrice     float64 `json:"next_price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	IsPositive    bool    `json:"is_positive"`
	Available     bool    `json:"available"`
}

// ProjectionResult es el resultado de proyectar una inversión sobre el pronóstico
type ProjectionResult struct {
	FinalValue float64 `json:"final_value"`
	Profit     float64 `json:"profit"`
	Percent    float64 `json:"percent"`
}

// ComparisonPoint es un punto de la serie normalizada de comparación entre dos monedas
type ComparisonPoint struct {
	Time       string  `json:"time"`
	PctA       float64 `json:"pct_a"`
	PctB       float64 `json:"pct_b"`
	IsForecast bool    `json:"is_forecast"`
}

// ComparisonResult contiene la serie rebasada y el veredicto de la comparación
type ComparisonResult struct {
	CoinA   string            `json:"coin_a"`
	CoinB   string            `json:"coin_b"`
	Points  []ComparisonPoint `json:"points"`
	GrowthA float64           `json:"growth_a"`
	GrowthB float64           `json:"growth_b"`
	Winner  string            `json:"winner"`
}

// ForecastStep es una fila de la tabla de próximos pasos del pronóstico,
// con el cambio porcentual respecto al paso anterior
type ForecastStep struct {
	Time          string  `json:"time"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"change_percent"`
	IsPositive    bool    `json:"is_positive"`
}

// IndicatorSummary contiene las etiquetas cualitativas de los indicadores técnicos
type IndicatorSummary struct {
	RSI        float64 `json:"rsi"`
	RSILabel   string  `json:"rsi_label"`
	MACDHist   float64 `json:"macd_hist"`
	MACDLabel  string  `json:"macd_label"`
	BBWidth    float64 `json:"bb_width"`
	Volatility float64 `json:"volatility"`
	VolLabel   string  `json:"volatility_label"`
}
