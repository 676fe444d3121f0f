package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shopsphere/ecommerce-api/models"
	"github.com/shopsphere/ecommerce-api/utils"
)

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// GET /products/categories/list/
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			utils.Fail(c, http.StatusBadRequest, "No categories found")
			return
		}
		utils.Success(c, http.StatusOK, "Categories retrieved successfully", categories)
	}
}

// POST /products/categories/create/
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Name is required")
			return
		}

		category := models.Category{Name: input.Name, Description: input.Description}
		if err := db.Create(&category).Error; err != nil {
			utils.Fail(c, http.StatusBadRequest, "Failed to create category")
			return
		}

		utils.Success(c, http.StatusCreated, "Category created successfully", category)
	}
}
