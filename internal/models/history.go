package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Tipos de entrada de historial soportados
const (
	HistoryTypePrediction  = "prediction"
	HistoryTypeCalculation = "calculation"
	HistoryTypeCompare     = "compare"
)

// HistoryEntry es una entrada del historial de actividad del usuario.
// Details varía según Type: PredictionDetails, CalculationDetails o CompareDetails.
type HistoryEntry struct {
	ID        string          `json:"id"`
	UserID    string          `json:"-"`
	Type      string          `json:"type"`
	Details   json.RawMessage `json:"details"`
	Timestamp time.Time       `json:"timestamp"`
}

// PredictionDetails es el payload de una entrada de tipo "prediction"
type PredictionDetails struct {
	Coin           string  `json:"coin"`
	CurrentPrice   float64 `json:"current_price"`
	PredictedPrice float64 `json:"predicted_price"`
}

// CalculationDetails es el payload de una entrada de tipo "calculation"
type CalculationDetails struct {
	Coin       string  `json:"coin"`
	Amount     float64 `json:"amount"`
	Days       int     `json:"days"`
	Investment float64 `json:"investment"`
}

// CompareDetails es el payload de una entrada de tipo "compare"
type CompareDetails struct {
	Coin1 string `json:"coin1"`
	Coin2 string `json:"coin2"`
}

// ValidateDetails verifica que Details tenga la forma que corresponde al tipo de entrada
func (e *HistoryEntry) ValidateDetails() error {
	switch e.Type {
	case HistoryTypePrediction:
		var d PredictionDetails
		if err := json.Unmarshal(e.Details, &d); err != nil {
			return fmt.Errorf("detalles de predicción inválidos: %w", err)
		}
		if d.Coin == "" {
			return fmt.Errorf("detalles de predicción sin moneda")
		}
	case HistoryTypeCalculation:
		var d CalculationDetails
		if err := json.Unmarshal(e.Details, &d); err != nil {
			return fmt.Errorf("detalles de cálculo inválidos: %w", err)
		}
		if d.Coin == "" {
			return fmt.Errorf("detalles de cálculo sin moneda")
		}
	case HistoryTypeCompare:
		var d CompareDetails
		if err := json.Unmarshal(e.Details, &d); err != nil {
			return fmt.Errorf("detalles de comparación inválidos: %w", err)
		}
		if d.Coin1 == "" || d.Coin2 == "" {
			return fmt.Errorf("detalles de comparación incompletos")
		}
	default:
		return fmt.Errorf("tipo de historial desconocido: %s", e.Type)
	}
	return nil
}
