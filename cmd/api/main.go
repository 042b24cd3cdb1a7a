package main

import (
	"log"
	"os"
	"time"

	"github.com/AgusMolinaCode/Forecast_Api.git/internal/database"
	"github.com/AgusMolinaCode/Forecast_Api.git/internal/middleware"
	routes "github.com/AgusMolinaCode/Forecast_Api.git/internal/server"
	"github.com/AgusMolinaCode/Forecast_Api.git/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Instancia global del actualizador de pronósticos
var forecastUpdater *services.ForecastUpdater

func main() {
	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Printf("No se pudo cargar el archivo .env: %v", err)
	}

	// Crear el router de Gin
	router := gin.Default()

	// Configurar CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "Admin-Key"}
	config.AllowCredentials = true
	config.ExposeHeaders = []string{"Content-Length"}
	router.Use(cors.New(config))

	// Configurar las rutas (inicializa la base de datos y los repositorios)
	routes.RegisterRoutes(router)
	defer database.DB.Close()

	// Iniciar el servicio de actualización de pronósticos (cada 5 minutos)
	forecastUpdater = services.NewForecastUpdater(5 * time.Minute)
	forecastUpdater.Start()
	defer forecastUpdater.Stop()

	// Hacer disponible el actualizador para los handlers
	middleware.SetForecastUpdater(forecastUpdater)

	// Iniciar el servidor
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Error al iniciar el servidor: %v", err)
	}
}
