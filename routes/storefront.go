package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/circuitshelf/componentstore-api/controllers/cart"
	productcontroller "github.com/circuitshelf/componentstore-api/controllers/product"
)

// SetupStorefrontRoutes registers the unauthenticated catalog and the
// session-cart endpoints.
func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/", productcontroller.GetProducts(db))               // catalog + search
	r.GET("/product/:id", productcontroller.GetProductByID(db)) // detail + variations

	r.POST("/add_to_cart/:id", cartControllers.AddToCart(db))

	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartControllers.GetCart)
		cartGroup.GET("/increase/:key", cartControllers.IncreaseQuantity)
		cartGroup.GET("/decrease/:key", cartControllers.DecreaseQuantity)
		cartGroup.GET("/remove/:key", cartControllers.RemoveItem)
		cartGroup.GET("/clear", cartControllers.ClearCart)
	}
}
