package productControllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopsphere/ecommerce-api/middleware"
	"github.com/shopsphere/ecommerce-api/models"
	"github.com/shopsphere/ecommerce-api/utils"
)

func uploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

// POST /products/:id/images/
// Accepts one or more files under the multipart field "images".
func UploadProductImages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			utils.Fail(c, http.StatusNotFound, "Product not found")
			return
		}
		if product.CreatedByID != user.ID {
			utils.Fail(c, http.StatusForbidden, "Not allowed")
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "No images uploaded")
			return
		}
		files := form.File["images"]
		if len(files) == 0 {
			utils.Fail(c, http.StatusBadRequest, "No images uploaded")
			return
		}

		dir := filepath.Join(uploadDir(), "products", strconv.Itoa(int(product.ID)))
		if err := os.MkdirAll(dir, 0755); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Failed to store images")
			return
		}

		for _, file := range files {
			name := uuid.NewString() + filepath.Ext(file.Filename)
			dest := filepath.Join(dir, name)
			if err := c.SaveUploadedFile(file, dest); err != nil {
				utils.Fail(c, http.StatusBadRequest, "Failed to store images")
				return
			}
			image := models.ProductImage{ProductID: product.ID, Image: dest}
			if err := db.Create(&image).Error; err != nil {
				utils.Fail(c, http.StatusBadRequest, "Failed to store images")
				return
			}
		}

		utils.Success(c, http.StatusCreated, "Images uploaded successfully", nil)
	}
}
