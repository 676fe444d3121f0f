package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/shopsphere/ecommerce-api/controllers/product"
	"github.com/shopsphere/ecommerce-api/middleware"
)

func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	products.Use(middleware.ValidateToken(db))
	{
		products.POST("/create/", productControllers.CreateProduct(db))
		products.GET("/list/", productControllers.GetProducts(db))
		products.GET("/:id/", productControllers.GetProduct(db))
		products.GET("/update/:id/", productControllers.GetProductForUpdate(db))
		products.PUT("/update/:id/", productControllers.UpdateProduct(db))
		products.GET("/delete/:id/", productControllers.GetProductForDelete(db))
		products.DELETE("/delete/:id/", productControllers.DeleteProduct(db))
		products.POST("/:id/images/", productControllers.UploadProductImages(db))
		products.GET("/categories/list/", productControllers.GetAllCategories(db))
		products.POST("/categories/create/", productControllers.CreateCategory(db))
		products.GET("/export-excel/", productControllers.ExportProductsToExcel(db))
	}
}
