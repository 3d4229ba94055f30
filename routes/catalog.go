package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jsnacademy/trb-prep-api/cache"
	materialControllers "github.com/jsnacademy/trb-prep-api/controllers/material"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers the public storefront listings.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB, catalog cache.CatalogCache) {
	r.GET("/materials", materialControllers.GetMaterials(db, catalog))
	r.GET("/materials/:id", materialControllers.GetMaterialByID(db))
	r.GET("/samples", materialControllers.GetSamples(db))
	r.GET("/tests", materialControllers.GetTests(db))
	r.GET("/videos", materialControllers.GetVideos(db))
}
