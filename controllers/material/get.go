package materialControllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jsnacademy/trb-prep-api/cache"
	"github.com/jsnacademy/trb-prep-api/models"
	"gorm.io/gorm"
)

// GetMaterials lists active catalog materials with optional filters.
// The unfiltered per-category listing is served from the cache when
// one is configured.
func GetMaterials(db *gorm.DB, catalog cache.CatalogCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		category := c.Query("category")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		switch sortBy {
		case "created_at", "price", "title":
		default:
			sortBy = "created_at"
		}
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}

		// Cache only the plain listing; filtered queries go to the DB
		cacheable := search == "" && minPriceStr == "" && maxPriceStr == "" &&
			sortBy == "created_at" && sortOrder == "desc"
		if cacheable {
			if materials, err := catalog.GetMaterials(c.Request.Context(), category); err == nil {
				c.JSON(http.StatusOK, materials)
				return
			}
		}

		query := db.Model(&models.Material{}).Where("is_active = ?", true)

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("title ILIKE ? OR description ILIKE ?", likePattern, likePattern)
		}
		if category != "" {
			query = query.Where("category = ?", category)
		}
		if minPriceStr != "" {
			if mp, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
				query = query.Where("price >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if maxPriceStr != "" {
			if mp, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
				query = query.Where("price <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}

		orderClause := fmt.Sprintf("%s %s", sortBy, sortOrder)
		var materials []models.Material
		if err := query.Order(orderClause).Find(&materials).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch materials"})
			return
		}

		if cacheable {
			_ = catalog.SetMaterials(c.Request.Context(), category, materials)
		}
		c.JSON(http.StatusOK, materials)
	}
}

// GetMaterialByID returns a single active material.
// URL param: /materials/:id
func GetMaterialByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		id, err := strconv.Atoi(idParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material ID"})
			return
		}

		var material models.Material
		if err := db.First(&material, "id = ? AND is_active = ?", id, true).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve material"})
			}
			return
		}
		c.JSON(http.StatusOK, material)
	}
}
