package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shopsphere/ecommerce-api/middleware"
	"github.com/shopsphere/ecommerce-api/models"
	"github.com/shopsphere/ecommerce-api/utils"
)

// GET /products/list/
// Sellers see only their own catalog; everyone else sees all active products.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		query := db.Preload("Category").Preload("Images").Where("is_active = ?", true)
		if user.Role == models.RoleSeller {
			query = query.Where("created_by_id = ?", user.ID)
		}

		var products []models.Product
		if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
			utils.Fail(c, http.StatusBadRequest, "No products found")
			return
		}

		utils.Success(c, http.StatusOK, "Products retrieved successfully", products)
	}
}
