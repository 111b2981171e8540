package userControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/circuitshelf/componentstore-api/models"
	"github.com/circuitshelf/componentstore-api/session"
)

type RegisterInput struct {
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill username, nickname, and password"})
			return
		}

		username := strings.TrimSpace(input.Username)
		nickname := strings.TrimSpace(input.Nickname)
		password := strings.TrimSpace(input.Password)
		if username == "" || nickname == "" || password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill username, nickname, and password"})
			return
		}

		user := models.User{Username: username, Nickname: nickname}
		if err := user.SetPassword(password); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
			return
		}

		// The unique index on username is the only arbiter, so two
		// concurrent registrations cannot both slip past a pre-check.
		if err := db.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Username already exists, choose another"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Registered successfully, please log in"})
	}
}

// POST /login
// One generic failure message for unknown user and wrong password alike.
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Enter username and password"})
			return
		}

		username := strings.TrimSpace(input.Username)
		password := strings.TrimSpace(input.Password)
		if username == "" || password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Enter username and password"})
			return
		}

		var user models.User
		err := db.Where("username = ?", username).First(&user).Error
		if err != nil || !user.CheckPassword(password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong username or password"})
			return
		}

		if err := session.SetUser(c, user.Username); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Welcome back, " + user.Nickname, "nickname": user.Nickname})
	}
}

// GET /logout
// Drops the identity but leaves the rest of the session (the cart) alone.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := session.ClearUser(c); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}
