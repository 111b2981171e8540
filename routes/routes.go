package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the storefront, auth,
// order and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public storefront: catalog + cart
	SetupStorefrontRoutes(r, db)

	// Register / login / logout
	SetupAuthRoutes(r, db)

	// Checkout, receipt and order history (session-protected)
	SetupOrderRoutes(r, db)

	// Catalog management (API-key-protected)
	SetupAdminRoutes(r, db)
}
