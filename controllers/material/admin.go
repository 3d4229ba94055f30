package materialControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jsnacademy/trb-prep-api/cache"
	"github.com/jsnacademy/trb-prep-api/models"
	"gorm.io/gorm"
)

type MaterialInput struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Pages       int     `json:"pages"`
	Format      string  `json:"format"`
	IsActive    *bool   `json:"is_active"`
}

func mapCategory(category string) (models.MaterialCategory, bool) {
	switch category {
	case string(models.CategoryUGTRB):
		return models.CategoryUGTRB, true
	case string(models.CategoryPGTRB):
		return models.CategoryPGTRB, true
	case string(models.CategoryGeneral):
		return models.CategoryGeneral, true
	default:
		return "", false
	}
}

// POST /admin/materials
func CreateMaterial(db *gorm.DB, catalog cache.CatalogCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input MaterialInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category, ok := mapCategory(input.Category)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}

		material := models.Material{
			Title:       input.Title,
			Description: input.Description,
			Price:       input.Price,
			Category:    category,
			Pages:       input.Pages,
			Format:      input.Format,
			IsActive:    true,
		}
		if input.IsActive != nil {
			material.IsActive = *input.IsActive
		}

		if err := db.Create(&material).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create material"})
			return
		}

		_ = catalog.Invalidate(c.Request.Context())
		c.JSON(http.StatusCreated, material)
	}
}

// PUT /admin/materials/:id
func UpdateMaterial(db *gorm.DB, catalog cache.CatalogCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material ID"})
			return
		}

		var material models.Material
		if err := db.First(&material, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
			return
		}

		var input MaterialInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category, ok := mapCategory(input.Category)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}

		material.Title = input.Title
		material.Description = input.Description
		material.Price = input.Price
		material.Category = category
		material.Pages = input.Pages
		material.Format = input.Format
		if input.IsActive != nil {
			material.IsActive = *input.IsActive
		}

		if err := db.Save(&material).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update material"})
			return
		}

		_ = catalog.Invalidate(c.Request.Context())
		c.JSON(http.StatusOK, material)
	}
}

// DELETE /admin/materials/:id
func DeleteMaterial(db *gorm.DB, catalog cache.CatalogCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Material ID is required"})
			return
		}

		var material models.Material
		if err := db.First(&material, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
			return
		}

		if err := db.Delete(&material).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete material"})
			return
		}

		_ = catalog.Invalidate(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"message": "Material deleted"})
	}
}

// GET /admin/materials
// Includes inactive entries.
func GetAllMaterialsAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var materials []models.Material
		if err := db.Order("created_at DESC").Find(&materials).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch materials"})
			return
		}
		c.JSON(http.StatusOK, materials)
	}
}
