package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jsnacademy/trb-prep-api/auth"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", func(c *gin.Context) {
			auth.RegisterHandler(c.Writer, c.Request, db)
		})

		authGroup.POST("/login", func(c *gin.Context) {
			auth.LoginHandler(c.Writer, c.Request, db)
		})
	}
}
