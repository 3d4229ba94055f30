package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/jsnacademy/trb-prep-api/controllers/cart"
	materialControllers "github.com/jsnacademy/trb-prep-api/controllers/material"
	paymentControllers "github.com/jsnacademy/trb-prep-api/controllers/payment"
	userControllers "github.com/jsnacademy/trb-prep-api/controllers/user"
	"github.com/jsnacademy/trb-prep-api/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(db)) // PUT /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))                        // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(db))                       // POST /user/cart
			cartGroup.PUT("/:item_id", cartControllers.UpdateCartItemQuantity(db))     // PUT /user/cart/:item_id
			cartGroup.DELETE("/:item_id", cartControllers.DeleteCartItem(db))          // DELETE /user/cart/:item_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))                   // DELETE /user/cart
		}

		// ──────────────── Payments ────────────────
		userGroup.GET("/payments", paymentControllers.GetUserPaymentsHandler(db)) // GET /user/payments

		// ──────────────── Verified-only Content ────────────────
		verified := userGroup.Group("/")
		verified.Use(middleware.RequireVerified(db))
		{
			verified.GET("/samples/:id/file", materialControllers.GetSampleFile(db)) // GET /user/samples/:id/file
			verified.GET("/tests/:id", materialControllers.GetTestByID(db))          // GET /user/tests/:id
		}
	}
}
