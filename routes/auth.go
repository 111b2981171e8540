package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/circuitshelf/componentstore-api/controllers/user"
)

// SetupAuthRoutes registers the account endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/register", userControllers.Register(db))
	r.POST("/login", userControllers.Login(db))
	r.GET("/logout", userControllers.Logout())
}
