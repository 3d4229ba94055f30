package materialControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jsnacademy/trb-prep-api/models"
	"gorm.io/gorm"
)

type SampleInput struct {
	Title      string `json:"title" binding:"required"`
	Category   string `json:"category" binding:"required"`
	FileURL    string `json:"file_url" binding:"required"`
	MaterialID *uint  `json:"material_id"`
}

// GET /samples
// Public listing; file URLs are stripped so unverified users only see
// what exists.
func GetSamples(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.SampleMaterial{})
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}

		var samples []models.SampleMaterial
		if err := query.Order("created_at DESC").Find(&samples).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch samples"})
			return
		}

		for i := range samples {
			samples[i].FileURL = ""
		}
		c.JSON(http.StatusOK, samples)
	}
}

// GET /user/samples/:id/file
// Verified profiles only (RequireVerified runs before this).
func GetSampleFile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sample models.SampleMaterial
		if err := db.First(&sample, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sample not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"file_url": sample.FileURL})
	}
}

// POST /admin/samples
func CreateSample(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SampleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category, ok := mapCategory(input.Category)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}

		sample := models.SampleMaterial{
			Title:      input.Title,
			Category:   category,
			FileURL:    input.FileURL,
			MaterialID: input.MaterialID,
		}
		if err := db.Create(&sample).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sample"})
			return
		}
		c.JSON(http.StatusCreated, sample)
	}
}

// DELETE /admin/samples/:id
func DeleteSample(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("id")).Delete(&models.SampleMaterial{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sample"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sample not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Sample deleted"})
	}
}
