package middleware

import (
	"net/http"
	"strings"

	"letterbox/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// RequireAuth is a Gin middleware that authenticates requests with a
// Supabase access token from the Authorization header.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		// Format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		tokenString := parts[1]

		user, err := authService.ResolveUser(c.Request.Context(), tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("userID", user.ID)
		c.Set("email", user.Email)
		c.Set("token", tokenString)
		c.Set("user", user)

		c.Next()
	}
}

// OptionalAuth resolves the caller when a valid bearer token is present
// and otherwise lets the request through anonymously. It never rejects.
func OptionalAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		tokenString := parts[1]

		user, err := authService.ResolveUser(c.Request.Context(), tokenString)
		if err != nil {
			c.Next()
			return
		}

		c.Set("userID", user.ID)
		c.Set("email", user.Email)
		c.Set("token", tokenString)
		c.Set("user", user)

		c.Next()
	}
}
