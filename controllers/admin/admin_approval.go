package adminController

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jsnacademy/trb-prep-api/models"
	"gorm.io/gorm"
)

type VerificationInput struct {
	UserID string `json:"user_id" binding:"required"`
}

// GET /admin/verifications/pending
func ListPendingVerifications(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var profiles []models.Profile
		if err := db.
			Where("verification_status = ?", models.VerificationPending).
			Order("created_at ASC").
			Find(&profiles).Error; err != nil {
			log.Println("❌ Failed to fetch pending verifications:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending verifications"})
			return
		}
		c.JSON(http.StatusOK, profiles)
	}
}

// POST /admin/verifications/approve
func ApproveVerification(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		setVerificationStatus(c, db, models.VerificationApproved, "User approved")
	}
}

// POST /admin/verifications/reject
func RejectVerification(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		setVerificationStatus(c, db, models.VerificationRejected, "User rejected")
	}
}

func setVerificationStatus(c *gin.Context, db *gorm.DB, status models.VerificationStatus, message string) {
	var input VerificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	result := db.Model(&models.Profile{}).
		Where("id = ?", input.UserID).
		Update("verification_status", status)
	if result.Error != nil {
		log.Println("❌ Failed to update verification status:", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update verification status"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}
