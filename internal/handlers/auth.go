package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/HWANGJEONGHYEON1/duty-out/internal/auth"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/logger"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/models"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/store"
)

// Login authenticates a user and returns a JWT token
func Login(users *store.UserStore, jwtService *auth.JWTService, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "code": "COMMON_001", "details": err.Error()})
			return
		}

		// Normalize username to lowercase
		username := strings.ToLower(strings.TrimSpace(req.Username))

		user, err := users.GetByUsername(c.Request.Context(), username)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password", "code": "AUTH_001"})
			return
		}

		// Verify password
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password", "code": "AUTH_001"})
			return
		}

		token, err := jwtService.GenerateToken(user.ID, user.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token", "code": "COMMON_002"})
			return
		}

		if err := users.TouchLastLogin(c.Request.Context(), user.ID.String()); err != nil {
			log.Warn("failed to update last login", "user_id", user.ID, "error", err)
		}

		c.JSON(http.StatusOK, models.LoginResponse{
			Token: token,
			User:  user.ToResponse(),
		})
	}
}
