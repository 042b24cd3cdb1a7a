package repository

import (
	"database/sql"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/AgusMolinaCode/Forecast_Api.git/internal/models"
)

// Máximo de entradas de historial conservadas por usuario
const maxHistoryEntries = 50

type HistoryRepository struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// SaveEntry guarda una entrada de historial y recorta las más antiguas para
// mantener como máximo maxHistoryEntries por usuario
func (r *HistoryRepository) SaveEntry(entry *models.HistoryEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	insertQuery := `
		INSERT INTO user_history (id, user_id, type, details, timestamp)
		VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.Exec(
		insertQuery,
		entry.ID,
		entry.UserID,
		entry.Type,
		string(entry.Details),
		entry.Timestamp,
	)
	if err != nil {
		return err
	}

	// Recortar el historial: conservar solo las entradas más recientes
	trimQuery := `
		DELETE FROM user_history
		WHERE user_id = ? AND id NOT IN (
			SELECT id FROM user_history
			WHERE user_id = ?
			ORDER BY timestamp DESC
			LIMIT ?
		)`

	if _, err := r.db.Exec(trimQuery, entry.UserID, entry.UserID, maxHistoryEntries); err != nil {
		log.Printf("Error al recortar historial del usuario %s: %v", entry.UserID, err)
	}

	return nil
}

// GetUserHistory devuelve las entradas del usuario, las más recientes primero
func (r *HistoryRepository) GetUserHistory(userID string) ([]models.HistoryEntry, error) {
	query := `
		SELECT id, user_id, type, details, timestamp
		FROM user_history
		WHERE user_id = ?
		ORDER BY timestamp DESC
		LIMIT ?`

	rows, err := r.db.Query(query, userID, maxHistoryEntries)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.HistoryEntry{}
	for rows.Next() {
		var entry models.HistoryEntry
		var details string
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Type,
			&details,
			&entry.Timestamp,
		)
		if err != nil {
			return nil, err
		}
		entry.Details = []byte(details)
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
