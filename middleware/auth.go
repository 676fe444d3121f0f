package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shopsphere/ecommerce-api/auth"
	"github.com/shopsphere/ecommerce-api/models"
	"github.com/shopsphere/ecommerce-api/utils"
)

// ValidateToken authenticates the bearer token and loads the user into the
// context under "user".
func ValidateToken(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.Fail(c, http.StatusUnauthorized, "Authorization header is missing")
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims, err := auth.ParseToken(tokenString)
		if err != nil {
			utils.Fail(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}
		if typ, _ := claims["typ"].(string); typ != "access" {
			utils.Fail(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		id, ok := auth.UserID(claims)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Invalid token claims")
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", id).Error; err != nil || !user.IsActive {
			utils.Fail(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// CurrentUser returns the user stored by ValidateToken.
func CurrentUser(c *gin.Context) models.User {
	val, _ := c.Get("user")
	user, _ := val.(models.User)
	return user
}
