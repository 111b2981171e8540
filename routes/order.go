package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/circuitshelf/componentstore-api/controllers/order"
	receiptControllers "github.com/circuitshelf/componentstore-api/controllers/receipt"
	"github.com/circuitshelf/componentstore-api/middleware"
)

// SetupOrderRoutes registers checkout, receipt export and order history.
// Checkout and history require a session identity.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	checkout := r.Group("/checkout")
	checkout.Use(middleware.RequireLogin)
	{
		checkout.GET("", orderControllers.ReviewCheckout)
		checkout.POST("", orderControllers.ConfirmCheckout(db))
	}

	// Consumes the receipt the client got back from checkout.
	r.POST("/download_receipt", receiptControllers.DownloadReceipt())

	orders := r.Group("/orders")
	{
		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		orders.GET("", middleware.RequireLogin, orderControllers.GetUserOrders(db))
		orders.GET("/delete/:id", middleware.RequireLogin, orderControllers.DeleteOrder(db))
	}
}
