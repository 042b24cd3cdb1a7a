package middleware

import (
	"net/http"
	"time"

	"github.com/AgusMolinaCode/Forecast_Api.git/internal/database"
	"github.com/AgusMolinaCode/Forecast_Api.git/internal/models"
	"github.com/AgusMolinaCode/Forecast_Api.git/internal/repository"
	"github.com/gin-gonic/gin"
)

var historyRepo *repository.HistoryRepository

func InitHistory() {
	historyRepo = repository.NewHistoryRepository(database.DB)
}

// AddHistoryEntry registra una entrada de actividad del usuario autenticado.
// El payload de details se valida contra el tipo de entrada antes de guardar.
func AddHistoryEntry(c *gin.Context) {
	var entry models.HistoryEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// El ID del usuario viene del contexto (establecido por el middleware de auth)
	entry.UserID = c.GetString("userId")
	entry.ID = ""

	if err := entry.ValidateDetails(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	if err := historyRepo.SaveEntry(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar el historial"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Historial guardado",
		"entry":   entry,
	})
}

// GetUserHistory devuelve el historial del usuario autenticado, lo más
// reciente primero
func GetUserHistory(c *gin.Context) {
	userID := c.GetString("userId")

	entries, err := historyRepo.GetUserHistory(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener el historial"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": entries})
}
