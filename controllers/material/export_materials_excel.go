package materialControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jsnacademy/trb-prep-api/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /admin/materials/export-excel
func ExportMaterialsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var materials []models.Material
		if err := db.Order("created_at DESC").Find(&materials).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch materials"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Materials")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Title", "Category", "Price", "Pages", "Format",
			"IsActive", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, m := range materials {
			row := sheet.AddRow()
			row.AddCell().SetValue(m.ID)
			row.AddCell().SetValue(m.Title)
			row.AddCell().SetValue(string(m.Category))
			row.AddCell().SetValue(m.Price)
			row.AddCell().SetValue(m.Pages)
			row.AddCell().SetValue(m.Format)
			row.AddCell().SetValue(m.IsActive)
			row.AddCell().SetValue(m.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(m.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=materials.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
