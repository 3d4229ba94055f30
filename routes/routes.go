package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jsnacademy/trb-prep-api/cache"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry‐point that wires up Auth, Catalog,
// User, Admin, Order and Payment route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, catalog cache.CatalogCache) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// 2️⃣ Public catalog routes
	SetupCatalogRoutes(r, db, catalog)

	// 3️⃣ User routes (JWT‐protected)
	SetupUserRoutes(r, db)

	// 4️⃣ Admin routes (API‐Key‐protected)
	SetupAdminRoutes(r, db, catalog)

	// order routes
	SetupOrderRoutes(r, db)

	// razorpay payment routes
	SetupPaymentRoutes(r, db)
}
