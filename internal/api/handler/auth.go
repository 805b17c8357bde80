package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"laporpak/backend/internal/config"
	"laporpak/backend/internal/models"
	"laporpak/backend/internal/storage"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
)

// generateJWT issues a signed token carrying the staff id and role.
func (h *Handler) generateJWT(admin *models.Admin) (string, error) {
	claims := jwt.MapClaims{
		"id":   admin.ID,
		"role": string(admin.Role),
		"exp":  time.Now().Add(config.TokenTTL).Unix(),
		"iss":  "laporpak-api",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.JWTSecret))
}

// Login authenticates a staff account and returns a JWT plus the profile.
func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	admin, err := h.Storage.GetAdminByUsername(input.Username)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("ERROR: Login lookup failed for %q: %v", input.Username, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid username or password"})
		return
	}
	if !admin.ComparePassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid username or password"})
		return
	}

	token, err := h.generateJWT(admin)
	if err != nil {
		log.Printf("ERROR: Failed to sign token for %q: %v", input.Username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"admin": gin.H{
			"id":           admin.ID,
			"nama_lengkap": admin.FullName,
			"username":     admin.Username,
			"role":         admin.Role,
		},
	})
}
