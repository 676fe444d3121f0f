package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/shopsphere/ecommerce-api/middleware"
	"github.com/shopsphere/ecommerce-api/models"
	"github.com/shopsphere/ecommerce-api/utils"
)

// GET /products/export-excel/
// Sellers export their own catalog; admins export everything.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user.Role != models.RoleSeller && user.Role != models.RoleAdmin {
			utils.Fail(c, http.StatusForbidden, "Only sellers can export products.")
			return
		}

		query := db.Preload("Category")
		if user.Role == models.RoleSeller {
			query = query.Where("created_by_id = ?", user.ID)
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			utils.Fail(c, http.StatusBadRequest, "Failed to fetch products")
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Failed to create Excel sheet")
			return
		}

		headers := []string{
			"ID", "Name", "Description", "Price", "Quantity",
			"Category", "Active", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price.String())
			row.AddCell().SetValue(p.Quantity)
			row.AddCell().SetValue(p.Category.Name)
			row.AddCell().SetValue(p.IsActive)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Failed to write Excel file")
			return
		}
	}
}
