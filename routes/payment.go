package routes

import (
	"github.com/gin-gonic/gin"
	paymentControllers "github.com/jsnacademy/trb-prep-api/controllers/payment"
	"github.com/jsnacademy/trb-prep-api/middleware"
	"gorm.io/gorm"
)

func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB) {
	provider := paymentControllers.NewRazorpayProvider()

	payment := r.Group("/payment")
	payment.Use(middleware.ValidateToken)
	{
		// Raw payment-order creation (amount already in paise)
		payment.POST("/create-order", paymentControllers.CreateOrderHandler(provider))

		// Checkout: validate shipping details, create provider order,
		// record payment + pending shipping order, return widget options
		payment.POST("/checkout", paymentControllers.CheckoutHandler(db, provider))

		// Widget outcome: success payloads are signature-verified here
		payment.POST("/callback", paymentControllers.CheckoutCallbackHandler(db))

		// Standalone signature verification
		payment.POST("/verify", paymentControllers.VerifyPaymentHandler(db))
	}
}
