package orderControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/circuitshelf/componentstore-api/models"
	"github.com/circuitshelf/componentstore-api/session"
)

// generateOrderRef tags every row of one checkout with a shared reference.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

type ReceiptLine struct {
	Name     string  `json:"name"`
	Quantity int     `json:"qty"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
	Image    string  `json:"image"`
}

type Receipt struct {
	OrderRef string        `json:"order_ref"`
	Orders   []ReceiptLine `json:"orders"`
	Total    float64       `json:"total"`
	Nickname string        `json:"nickname"`
	Username string        `json:"username"`
}

// GET /checkout
// Cart review before confirmation.
func ReviewCheckout(c *gin.Context) {
	cart := session.Cart(c)
	if cart.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		return
	}

	lines, total := cart.Lines()
	c.JSON(http.StatusOK, gin.H{"items": lines, "total": total})
}

// POST /checkout
// All order rows commit in a single transaction; the session cart is reset
// only after the commit succeeds, so a failed insert leaves both the orders
// table and the cart untouched.
func ConfirmCheckout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")

		cart := session.Cart(c)
		if cart.Empty() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
			return
		}

		lines, total := cart.Lines()
		ref := generateOrderRef()

		rows := make([]models.Order, 0, len(lines))
		for _, line := range lines {
			rows = append(rows, models.Order{
				Username:     username,
				OrderRef:     ref,
				ProductID:    line.ProductID,
				ProductName:  line.Name,
				ProductImage: line.Image,
				UnitPrice:    line.Price,
				Quantity:     line.Quantity,
			})
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&rows).Error
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		if err := session.SaveCart(c, models.NewCart()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Order placed but failed to reset cart"})
			return
		}

		nickname := username
		var user models.User
		if err := db.Where("username = ?", username).First(&user).Error; err == nil {
			nickname = user.Nickname
		}

		receipt := Receipt{
			OrderRef: ref,
			Total:    total,
			Nickname: nickname,
			Username: username,
		}
		for _, line := range lines {
			receipt.Orders = append(receipt.Orders, ReceiptLine{
				Name:     line.Name,
				Quantity: line.Quantity,
				Price:    line.Price,
				Subtotal: line.Subtotal,
				Image:    line.Image,
			})
		}

		broadcastOrders(rows)

		c.JSON(http.StatusOK, gin.H{"message": "Order placed successfully", "receipt": receipt})
	}
}

// GET /orders
// The authenticated user's order history, most recent first, served from the
// purchase-time snapshot columns.
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")

		var orders []models.Order
		if err := db.
			Where("username = ?", username).
			Order("order_time DESC, id DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/delete/:id
// The delete predicate carries the username, so another user's row is never
// touched.
func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")

		result := db.Where("id = ? AND username = ?", c.Param("id"), username).Delete(&models.Order{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order removed successfully"})
	}
}

// GET /admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Order("order_time DESC, id DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}
