package database

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

func InitDB() error {
	// Crear el directorio database si no existe
	if err := os.MkdirAll("database", 0755); err != nil {
		return err
	}

	var err error
	DB, err = sql.Open("sqlite3", filepath.Join("database", "forecast.db"))
	if err != nil {
		return err
	}

	return CreateSchema(DB)
}

// CreateSchema crea las tablas si no existen. Separado de InitDB para poder
// usarlo sobre bases en memoria en los tests.
func CreateSchema(db *sql.DB) error {
	// Crear tabla de usuarios
	createUsersTableSQL := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	_, err := db.Exec(createUsersTableSQL)
	if err != nil {
		return err
	}

	// Crear tabla de historial de actividad del usuario.
	// details guarda el payload JSON que varía según type.
	createHistoryTableSQL := `
	CREATE TABLE IF NOT EXISTS user_history (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		type TEXT NOT NULL,
		details TEXT NOT NULL,
		timestamp DATETIME NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
	);`

	_, err = db.Exec(createHistoryTableSQL)
	if err != nil {
		return err
	}

	createHistoryIndexSQL := `
	CREATE INDEX IF NOT EXISTS idx_user_history_user_time
	ON user_history(user_id, timestamp DESC);`

	_, err = db.Exec(createHistoryIndexSQL)
	return err
}
