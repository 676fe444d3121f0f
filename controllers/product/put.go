package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shopsphere/ecommerce-api/middleware"
	"github.com/shopsphere/ecommerce-api/models"
	"github.com/shopsphere/ecommerce-api/policy"
	"github.com/shopsphere/ecommerce-api/utils"
)

// GET /products/update/:id/
func GetProductForUpdate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.Preload("Category").Preload("Images").
			First(&product, "id = ?", c.Param("id")).Error; err != nil {
			utils.Fail(c, http.StatusBadRequest, "Product not found")
			return
		}
		utils.Success(c, http.StatusOK, "Product retrieved successfully", product)
	}
}

// PUT /products/update/:id/
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			utils.Fail(c, http.StatusBadRequest, "Product not found")
			return
		}

		if !policy.Allow(user, policy.ActionModifyProduct, product.CreatedByID) {
			utils.Fail(c, http.StatusForbidden, "You do not have permission to update this product.")
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}
		if !input.Price.IsPositive() {
			utils.Fail(c, http.StatusBadRequest, "Enter a valid price.")
			return
		}

		var category models.Category
		if err := db.First(&category, "id = ?", input.Category).Error; err != nil {
			utils.Fail(c, http.StatusBadRequest, "Category not found")
			return
		}

		product.Name = input.Name
		product.Description = input.Description
		product.Price = input.Price
		product.Quantity = input.Quantity
		product.CategoryID = category.ID
		product.Category = category

		if err := db.Save(&product).Error; err != nil {
			utils.Fail(c, http.StatusBadRequest, "Failed to update product")
			return
		}

		utils.Success(c, http.StatusOK, "Product updated successfully", product)
	}
}
