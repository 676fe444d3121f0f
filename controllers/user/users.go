package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shopsphere/ecommerce-api/middleware"
	"github.com/shopsphere/ecommerce-api/models"
	"github.com/shopsphere/ecommerce-api/policy"
	"github.com/shopsphere/ecommerce-api/utils"
)

// GET /auth/me/
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		utils.Success(c, http.StatusOK, "Profile retrieved successfully", user)
	}
}

// GET /auth/users/
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if !policy.Allow(user, policy.ActionListUsers, 0) {
			utils.Fail(c, http.StatusForbidden, "Only admins can list users.")
			return
		}

		var users []models.User
		if err := db.
			Select("id", "email", "role", "is_active", "created_at").
			Order("created_at desc").
			Find(&users).Error; err != nil {
			utils.Fail(c, http.StatusBadRequest, "Failed to fetch users")
			return
		}

		utils.Success(c, http.StatusOK, "Users retrieved successfully", users)
	}
}
