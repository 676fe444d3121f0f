package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/shopsphere/ecommerce-api/models"
	"github.com/shopsphere/ecommerce-api/utils"
)

type RegisterInput struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	Role            string `json:"role" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshInput struct {
	Refresh string `json:"refresh" binding:"required"`
}

// POST /auth/register/
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Email, password, confirm_password and role are required.")
			return
		}

		if len(input.Password) < 6 {
			utils.Fail(c, http.StatusBadRequest, "Password must be at least 6 characters long.")
			return
		}
		if input.Password != input.ConfirmPassword {
			utils.Fail(c, http.StatusBadRequest, "Passwords do not match.")
			return
		}

		role := models.Role(strings.ToLower(input.Role))
		if role != models.RoleCustomer && role != models.RoleSeller {
			utils.Fail(c, http.StatusBadRequest, "Role must be either 'customer' or 'seller'.")
			return
		}

		var existing models.User
		if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			utils.Fail(c, http.StatusBadRequest, "This email is already registered.")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(c, http.StatusBadRequest, "Something went wrong")
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Something went wrong")
			return
		}

		user := models.User{
			Email:    input.Email,
			Password: string(hashed),
			Role:     role,
			IsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			utils.Fail(c, http.StatusBadRequest, "Something went wrong")
			return
		}

		utils.Success(c, http.StatusCreated, "User registered successfully", gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		})
	}
}

// POST /auth/login/
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Email and password are required")
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			utils.Fail(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		if !user.IsActive {
			utils.Fail(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			utils.Fail(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		access, err := IssueAccessToken(user)
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Something went wrong")
			return
		}
		refresh, err := IssueRefreshToken(user)
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Something went wrong")
			return
		}

		utils.Success(c, http.StatusOK, "Login successful", gin.H{
			"user":    user,
			"refresh": refresh,
			"access":  access,
			"email":   user.Email,
			"role":    user.Role,
		})
	}
}

// POST /auth/logout/ — revokes the presented refresh token.
func LogoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RefreshInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Refresh token is required")
			return
		}

		claims, err := ParseToken(input.Refresh)
		if err != nil || claims["typ"] != "refresh" {
			utils.Fail(c, http.StatusBadRequest, "Invalid refresh token")
			return
		}

		revoked := models.RevokedToken{Token: input.Refresh, RevokedAt: time.Now()}
		if err := db.Create(&revoked).Error; err != nil {
			// Already revoked is fine; logout is idempotent.
			var existing models.RevokedToken
			if db.Where("token = ?", input.Refresh).First(&existing).Error != nil {
				utils.Fail(c, http.StatusBadRequest, "Something went wrong")
				return
			}
		}

		utils.Success(c, http.StatusOK, "Logout successful", nil)
	}
}

// POST /auth/refresh/ — exchanges a live refresh token for a new access token.
func RefreshHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RefreshInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Refresh token is required")
			return
		}

		claims, err := ParseToken(input.Refresh)
		if err != nil || claims["typ"] != "refresh" {
			utils.Fail(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		var revoked models.RevokedToken
		if err := db.Where("token = ?", input.Refresh).First(&revoked).Error; err == nil {
			utils.Fail(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		id, ok := UserID(claims)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Invalid token claims")
			return
		}
		var user models.User
		if err := db.First(&user, "id = ?", id).Error; err != nil || !user.IsActive {
			utils.Fail(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		access, err := IssueAccessToken(user)
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Something went wrong")
			return
		}

		utils.Success(c, http.StatusOK, "Token refreshed", gin.H{"access": access})
	}
}
