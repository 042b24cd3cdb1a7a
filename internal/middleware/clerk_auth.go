package middleware

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/AgusMolinaCode/Forecast_Api.git/internal/models"
	"github.com/AgusMolinaCode/Forecast_Api.git/internal/repository"
	"github.com/clerk/clerk-sdk-go/v2"
	clerkjwt "github.com/clerk/clerk-sdk-go/v2/jwt"
	"github.com/clerk/clerk-sdk-go/v2/user"
	"github.com/gin-gonic/gin"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	svix "github.com/svix/svix-webhooks/go"
)

var userClient *user.Client

// InitClerk initializes the Clerk client using the recommended pattern
func InitClerk() {
	secretKey := os.Getenv("CLERK_SECRET_KEY")
	if secretKey == "" {
		log.Printf("WARNING: CLERK_SECRET_KEY environment variable is not set. Clerk features will be disabled.")
		return
	}

	// Set global Clerk key (recommended approach)
	clerk.SetKey(secretKey)

	// Also initialize user client for API operations
	config := &clerk.ClientConfig{}
	config.Key = &secretKey
	userClient = user.NewClient(config)

	log.Printf("Clerk initialized successfully")
}

// ClerkAuthMiddleware validates Clerk JWT tokens using the proper SDK approach
func ClerkAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Check if Clerk is initialized
		if userClient == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Clerk authentication not available"})
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token no proporcionado"})
			c.Abort()
			return
		}

		tokenString := strings.Replace(authHeader, "Bearer ", "", 1)

		// Verify the JWT token with Clerk using proper SDK method
		claims, err := clerkjwt.Verify(c.Request.Context(), &clerkjwt.VerifyParams{
			Token: tokenString,
		})

		if err != nil {
			log.Printf("JWT verification failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
			c.Abort()
			return
		}

		// Extract user ID from claims (Subject contains the user ID)
		userID := claims.Subject
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido: no se pudo extraer el ID del usuario"})
			c.Abort()
			return
		}

		c.Set("userId", userID)
		c.Set("clerkClaims", claims)
		c.Next()
	}
}

// CombinedAuthMiddleware accepts either a local JWT or a Clerk session token.
// The frontend can authenticate through whichever provider signed the user in.
func CombinedAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token no proporcionado"})
			c.Abort()
			return
		}

		tokenString := strings.Replace(authHeader, "Bearer ", "", 1)

		// Try the local JWT first
		token, err := jwtv5.Parse(tokenString, func(token *jwtv5.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err == nil && token.Valid {
			claims := token.Claims.(jwtv5.MapClaims)
			c.Set("userId", claims["userId"])
			c.Next()
			return
		}

		// Fall back to Clerk verification
		if userClient != nil {
			claims, err := clerkjwt.Verify(c.Request.Context(), &clerkjwt.VerifyParams{
				Token: tokenString,
			})
			if err == nil && claims.Subject != "" {
				c.Set("userId", claims.Subject)
				c.Set("clerkClaims", claims)
				c.Next()
				return
			}
		}

		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
		c.Abort()
	}
}

// GetUserFromClerk retrieves user information from Clerk
func GetUserFromClerk(c *gin.Context) {
	// Check if Clerk is initialized
	if userClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Clerk authentication not available"})
		return
	}

	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "ID de usuario no encontrado"})
		return
	}

	clerkUser, err := userClient.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener información del usuario"})
		return
	}

	var email string
	if len(clerkUser.EmailAddresses) > 0 {
		email = clerkUser.EmailAddresses[0].EmailAddress
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         clerkUser.ID,
			"email":      email,
			"first_name": clerkUser.FirstName,
			"last_name":  clerkUser.LastName,
			"created_at": clerkUser.CreatedAt,
			"updated_at": clerkUser.UpdatedAt,
		},
	})
}

// ClerkWebhookHandler handles Clerk webhooks for user events using Svix
func ClerkWebhookHandler(c *gin.Context) {
	// Get the webhook signing secret from environment
	webhookSecret := os.Getenv("CLERK_WEBHOOK_SECRET")
	if webhookSecret == "" {
		log.Printf("ERROR: CLERK_WEBHOOK_SECRET environment variable is not set")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook secret not configured"})
		return
	}

	// Read the raw body
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("ERROR: reading request body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read request body"})
		return
	}

	// Initialize Svix webhook with secret
	wh, err := svix.NewWebhook(webhookSecret)
	if err != nil {
		log.Printf("ERROR: creating Svix webhook: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize webhook verification"})
		return
	}

	// Verify the webhook using Svix
	err = wh.Verify(body, c.Request.Header)
	if err != nil {
		log.Printf("ERROR: Svix webhook verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid webhook signature"})
		return
	}

	// Parse the webhook payload from the body we already read
	var webhookData map[string]interface{}
	if err := json.Unmarshal(body, &webhookData); err != nil {
		log.Printf("ERROR: parsing JSON payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}

	// Extract the event type
	eventType, ok := webhookData["type"].(string)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing event type"})
		return
	}

	log.Printf("Processing webhook event: %s", eventType)

	// Handle different event types
	switch eventType {
	case "user.created":
		handleUserCreated(c, webhookData)
	case "user.updated":
		handleUserUpdated(c, webhookData)
	case "user.deleted":
		handleUserDeleted(c, webhookData)
	default:
		// For other events, just return success
		log.Printf("Event type %s not handled", eventType)
		c.JSON(http.StatusOK, gin.H{"message": "Event received but not handled"})
	}
}

// extractWebhookUser pulls id, primary email and full name out of a Clerk
// user event payload
func extractWebhookUser(webhookData map[string]interface{}) (userID, email, name string, ok bool) {
	data, ok := webhookData["data"].(map[string]interface{})
	if !ok {
		return "", "", "", false
	}

	userID, ok = data["id"].(string)
	if !ok {
		return "", "", "", false
	}

	emailAddresses, _ := data["email_addresses"].([]interface{})
	for _, emailAddr := range emailAddresses {
		if emailMap, ok := emailAddr.(map[string]interface{}); ok {
			if emailMap["email_address"] != nil {
				email = emailMap["email_address"].(string)
				break
			}
		}
	}

	firstName, _ := data["first_name"].(string)
	lastName, _ := data["last_name"].(string)
	name = strings.TrimSpace(firstName + " " + lastName)
	if name == "" && email != "" {
		name = strings.Split(email, "@")[0] // Use email username as fallback
	}

	return userID, email, name, true
}

// handleUserCreated creates a new user in the database when they sign up through Clerk
func handleUserCreated(c *gin.Context, webhookData map[string]interface{}) {
	userID, email, name, ok := extractWebhookUser(webhookData)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook data structure"})
		return
	}
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid email found"})
		return
	}

	newUser := &models.User{
		ID:        userID,
		Email:     email,
		Name:      name,
		Password:  "", // No password needed for Clerk users
		CreatedAt: time.Now(),
	}

	if err := repository.NewUserRepository().CreateUser(newUser); err != nil {
		log.Printf("ERROR: creating user in database: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	log.Printf("User created successfully: ID=%s, Email=%s, Name=%s", userID, email, name)
	c.JSON(http.StatusOK, gin.H{"message": "User created successfully"})
}

// handleUserUpdated updates user information in the database
func handleUserUpdated(c *gin.Context, webhookData map[string]interface{}) {
	userID, email, name, ok := extractWebhookUser(webhookData)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook data structure"})
		return
	}
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid email found"})
		return
	}

	updated := &models.User{
		ID:    userID,
		Email: email,
		Name:  name,
	}

	if err := repository.NewUserRepository().UpdateUser(updated); err != nil {
		log.Printf("Error updating user in database: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	log.Printf("User updated successfully: ID=%s, Email=%s", userID, email)
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

// handleUserDeleted removes user from the database
func handleUserDeleted(c *gin.Context, webhookData map[string]interface{}) {
	data, ok := webhookData["data"].(map[string]interface{})
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook data structure"})
		return
	}

	userID, ok := data["id"].(string)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user ID"})
		return
	}

	if err := repository.NewUserRepository().DeleteUser(userID); err != nil {
		log.Printf("Error deleting user from database: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	log.Printf("User deleted successfully: ID=%s", userID)
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
