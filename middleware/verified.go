package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jsnacademy/trb-prep-api/models"
	"gorm.io/gorm"
)

// RequireVerified allows only profiles whose verification has been
// approved by an admin. Runs after ValidateToken.
func RequireVerified(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		var profile models.Profile
		if err := db.First(&profile, "id = ?", userIDVal).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Profile not found"})
			c.Abort()
			return
		}

		if profile.VerificationStatus != models.VerificationApproved {
			c.JSON(http.StatusForbidden, gin.H{"error": "Your account is not verified yet. Please wait for approval."})
			c.Abort()
			return
		}

		c.Next()
	}
}
