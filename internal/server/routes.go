package routes

import (
	"net/http"

	"github.com/AgusMolinaCode/Forecast_Api.git/internal/database"
	"github.com/AgusMolinaCode/Forecast_Api.git/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine) {
	// Inicializar base de datos primero
	if err := database.InitDB(); err != nil {
		panic(err)
	}

	// Luego inicializar repositorios y clientes
	middleware.InitAuth()
	middleware.InitHistory()
	middleware.InitClerk()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Service is running"})
	})

	// Autenticación local
	router.POST("/signup", middleware.Signup)
	router.POST("/login", middleware.Login)
	router.POST("/logout", middleware.CombinedAuthMiddleware(), middleware.Logout)

	// Webhook de Clerk para sincronizar usuarios
	router.POST("/webhook/clerk", middleware.ClerkWebhookHandler)

	// Pronósticos y analítica: rutas públicas, igual que el servicio de predicción
	router.GET("/predict/:symbol/forecast", middleware.GetForecast)
	router.GET("/predict/:symbol/metrics", middleware.GetForecastMetrics)
	router.GET("/predict/:symbol/projection", middleware.GetProjection)
	router.GET("/compare", middleware.CompareCoins)
	router.GET("/news/:symbol", middleware.GetNews)
	router.GET("/ticker", middleware.GetTicker)

	// Rutas protegidas: aceptan token local o de Clerk
	protected := router.Group("/")
	protected.Use(middleware.CombinedAuthMiddleware())
	{
		protected.PUT("/users", middleware.UpdateUser)
		protected.DELETE("/users", middleware.DeleteUser)

		protected.POST("/history", middleware.AddHistoryEntry)
		protected.GET("/history", middleware.GetUserHistory)

		protected.GET("/me/clerk", middleware.GetUserFromClerk)
	}

	// Rutas de admin
	admin := router.Group("/admin")
	admin.Use(middleware.AdminAuth())
	{
		admin.GET("/users", middleware.GetUsers)
		admin.GET("/users/:id", middleware.GetUser)
		admin.DELETE("/users/:id", middleware.DeleteUserByAdmin)
		admin.GET("/users/email/:email", middleware.GetUserByEmail)
	}

	router.POST("/request-reset-password", middleware.RequestResetPassword)
	router.POST("/reset-password", middleware.ResetPassword)
}
