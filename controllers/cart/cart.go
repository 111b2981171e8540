package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/circuitshelf/componentstore-api/models"
	"github.com/circuitshelf/componentstore-api/session"
)

// POST /add_to_cart/:id
// Inserts a new cart line or bumps an existing one. The selected_image and
// selected_name form fields override the catalog defaults; the unit price is
// snapshotted from the catalog here and never re-read.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		image := c.PostForm("selected_image")
		if image == "" {
			image = product.Image
		}
		name := c.PostForm("selected_name")
		if name == "" {
			name = product.Name
		}

		cart := session.Cart(c)
		key := cart.Add(product.ID, name, image, product.Price)
		if err := session.SaveCart(c, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": name + " added to cart", "cart_key": key})
	}
}

// GET /cart/increase/:key
func IncreaseQuantity(c *gin.Context) {
	adjustCart(c, models.Cart.Increase)
}

// GET /cart/decrease/:key
// Decreasing a quantity-1 line removes it entirely.
func DecreaseQuantity(c *gin.Context) {
	adjustCart(c, models.Cart.Decrease)
}

// GET /cart/remove/:key
func RemoveItem(c *gin.Context) {
	adjustCart(c, models.Cart.Remove)
}

// An absent cart key is an explicit not-found, not a silent no-op.
func adjustCart(c *gin.Context, op func(models.Cart, string) bool) {
	cart := session.Cart(c)
	if !op(cart, c.Param("key")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}
	if err := session.SaveCart(c, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}
	respondCart(c, cart)
}

// GET /cart/clear
func ClearCart(c *gin.Context) {
	if err := session.SaveCart(c, models.NewCart()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully", "items": []models.CartLine{}, "total": 0.0})
}

// GET /cart
func GetCart(c *gin.Context) {
	respondCart(c, session.Cart(c))
}

func respondCart(c *gin.Context, cart models.Cart) {
	lines, total := cart.Lines()
	c.JSON(http.StatusOK, gin.H{"items": lines, "total": total})
}
