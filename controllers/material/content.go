package materialControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jsnacademy/trb-prep-api/models"
	"gorm.io/gorm"
)

type TestInput struct {
	Title           string `json:"title" binding:"required"`
	Category        string `json:"category" binding:"required"`
	DurationMinutes int    `json:"duration_minutes"`
	Questions       int    `json:"questions"`
	IsActive        *bool  `json:"is_active"`
}

type VideoInput struct {
	Title    string `json:"title" binding:"required"`
	VideoID  string `json:"video_id" binding:"required"`
	Category string `json:"category"`
}

// GET /tests
// Public listing of active mock tests.
func GetTests(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Where("is_active = ?", true)
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}

		var tests []models.Test
		if err := query.Order("created_at DESC").Find(&tests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tests"})
			return
		}
		c.JSON(http.StatusOK, tests)
	}
}

// GET /user/tests/:id
// Verified profiles only (RequireVerified runs before this).
func GetTestByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var test models.Test
		if err := db.First(&test, "id = ? AND is_active = ?", c.Param("id"), true).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Test not found"})
			return
		}
		c.JSON(http.StatusOK, test)
	}
}

// GET /videos
func GetVideos(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.YoutubeVideo{})
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}

		var videos []models.YoutubeVideo
		if err := query.Order("created_at DESC").Find(&videos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch videos"})
			return
		}
		c.JSON(http.StatusOK, videos)
	}
}

// POST /admin/tests
func CreateTest(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input TestInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		category, ok := mapCategory(input.Category)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}
		test := models.Test{
			Title:           input.Title,
			Category:        category,
			DurationMinutes: input.DurationMinutes,
			Questions:       input.Questions,
			IsActive:        true,
		}
		if input.IsActive != nil {
			test.IsActive = *input.IsActive
		}
		if err := db.Create(&test).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create test"})
			return
		}
		c.JSON(http.StatusCreated, test)
	}
}

// DELETE /admin/tests/:id
func DeleteTest(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("id")).Delete(&models.Test{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete test"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Test not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Test deleted"})
	}
}

// POST /admin/videos
func CreateVideo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VideoInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		video := models.YoutubeVideo{
			Title:   input.Title,
			VideoID: input.VideoID,
		}
		if input.Category != "" {
			category, ok := mapCategory(input.Category)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
				return
			}
			video.Category = category
		}
		if err := db.Create(&video).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create video"})
			return
		}
		c.JSON(http.StatusCreated, video)
	}
}

// DELETE /admin/videos/:id
func DeleteVideo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("id")).Delete(&models.YoutubeVideo{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete video"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Video deleted"})
	}
}
