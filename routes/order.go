package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/jsnacademy/trb-prep-api/controllers/order"
	"github.com/jsnacademy/trb-prep-api/middleware"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Create a new order (cash-on-delivery style placement)
		orders.POST("/place", orderControllers.PlaceOrderHandler(db))

		// Fetch the caller's orders
		orders.GET("/", orderControllers.GetUserOrdersHandler(db))

		// Fetch a single order by its reference
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
	}
}
