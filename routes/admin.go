package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jsnacademy/trb-prep-api/cache"
	adminController "github.com/jsnacademy/trb-prep-api/controllers/admin"
	cartControllers "github.com/jsnacademy/trb-prep-api/controllers/cart"
	materialControllers "github.com/jsnacademy/trb-prep-api/controllers/material"
	orderControllers "github.com/jsnacademy/trb-prep-api/controllers/order"
	paymentControllers "github.com/jsnacademy/trb-prep-api/controllers/payment"
	userControllers "github.com/jsnacademy/trb-prep-api/controllers/user"
	"github.com/jsnacademy/trb-prep-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API‐Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, catalog cache.CatalogCache) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// ─────────── Verification Workflow ───────────
		verifications := adminGroup.Group("/verifications")
		{
			verifications.GET("/pending", adminController.ListPendingVerifications(db))
			verifications.POST("/approve", adminController.ApproveVerification(db))
			verifications.POST("/reject", adminController.RejectVerification(db))
		}

		// ─────────── Material Management ───────────
		materialAdmin := adminGroup.Group("/materials")
		{
			materialAdmin.POST("", materialControllers.CreateMaterial(db, catalog))
			materialAdmin.PUT("/:id", materialControllers.UpdateMaterial(db, catalog))
			materialAdmin.GET("", materialControllers.GetAllMaterialsAdmin(db))
			materialAdmin.DELETE("/:id", materialControllers.DeleteMaterial(db, catalog))
			materialAdmin.GET("/export-excel", materialControllers.ExportMaterialsToExcel(db))
		}

		// ─────────── Sample / Test / Video Management ───────────
		adminGroup.POST("/samples", materialControllers.CreateSample(db))
		adminGroup.DELETE("/samples/:id", materialControllers.DeleteSample(db))
		adminGroup.POST("/tests", materialControllers.CreateTest(db))
		adminGroup.DELETE("/tests/:id", materialControllers.DeleteTest(db))
		adminGroup.POST("/videos", materialControllers.CreateVideo(db))
		adminGroup.DELETE("/videos/:id", materialControllers.DeleteVideo(db))

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(db))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
		}

		// ─────────── Payments ───────────
		adminGroup.GET("/payments", paymentControllers.GetAllPaymentsHandler(db))

		// ─────────── Customer Carts ───────────
		adminGroup.GET("/user-cart/:user_id", cartControllers.GetAdminUserCart(db))
	}
}
