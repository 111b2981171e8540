package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/circuitshelf/componentstore-api/models"
	"github.com/circuitshelf/componentstore-api/session"
)

// GET /
// Catalog listing with optional search (case-insensitive substring on name)
// and category (exact match) filters. The distinct category list rides along
// for the filter UI, and the visitor's nickname when a session identity
// exists.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		category := c.Query("category")

		query := db.Model(&models.Product{})
		if search != "" {
			query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
		}
		if category != "" {
			query = query.Where("category = ?", category)
		}

		var products []models.Product
		if err := query.Order("id").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		var categories []string
		if err := db.Model(&models.Product{}).
			Distinct("category").
			Order("category").
			Pluck("category", &categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		resp := gin.H{
			"products":          products,
			"categories":        categories,
			"search_query":      search,
			"selected_category": category,
		}
		if username, ok := session.CurrentUser(c); ok {
			var user models.User
			if err := db.Where("username = ?", username).First(&user).Error; err == nil {
				resp["nickname"] = user.Nickname
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}
