package paymentControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jsnacademy/trb-prep-api/models"
	"gorm.io/gorm"
)

type CreateOrderRequest struct {
	Amount   int    `json:"amount" binding:"required"` // Minor units (paise)
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// POST /payment/create-order
// Thin pass-through to the gateway; no retry, caller may re-invoke.
func CreateOrderHandler(provider Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
			return
		}
		if req.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid amount"})
			return
		}
		if req.Currency == "" {
			req.Currency = "INR"
		}
		if req.Receipt == "" {
			req.Receipt = fmt.Sprintf("receipt_%d", time.Now().Unix())
		}

		order, err := provider.CreateOrder(req.Amount, req.Currency, req.Receipt)
		if err != nil {
			log.Println("❌ Payment order creation failed:", err)
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "could not create payment order, please try again"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}

// MarkPaymentPaid sets a payment record to paid and attaches the
// provider payment id. A repeat call with the same identifiers is a
// no-op status set, never a duplicate row.
func MarkPaymentPaid(db *gorm.DB, razorpayOrderID, razorpayPaymentID string) error {
	var payment models.Payment
	if err := db.Where("razorpay_order_id = ?", razorpayOrderID).First(&payment).Error; err != nil {
		return err
	}

	if err := db.Model(&payment).Updates(map[string]interface{}{
		"status":              models.PaymentStatusPaid,
		"razorpay_payment_id": razorpayPaymentID,
	}).Error; err != nil {
		return err
	}

	// Confirm the shipping order joined by the receipt ref, if any
	if payment.OrderRef != "" {
		if err := db.Model(&models.Order{}).
			Where("order_ref = ? AND status = ?", payment.OrderRef, models.OrderStatusPending).
			Update("status", models.OrderStatusConfirmed).Error; err != nil {
			return err
		}
	}
	return nil
}

// CreatePaymentRecord inserts the created-state payment row referencing
// the provider order. Called only after the provider order exists.
func CreatePaymentRecord(db *gorm.DB, userID, orderRef, razorpayOrderID string, amount float64, currency string) (*models.Payment, error) {
	if razorpayOrderID == "" {
		return nil, errors.New("provider order id is required")
	}
	payment := models.Payment{
		UserID:          userID,
		OrderRef:        orderRef,
		RazorpayOrderID: razorpayOrderID,
		Amount:          amount,
		Currency:        currency,
		Status:          models.PaymentStatusCreated,
	}
	if err := db.Create(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// GET /user/payments
func GetUserPaymentsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var payments []models.Payment
		if err := db.Where("user_id = ?", userIDVal).
			Order("created_at DESC").
			Find(&payments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
			return
		}
		c.JSON(http.StatusOK, payments)
	}
}

// GET /admin/payments
func GetAllPaymentsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payments []models.Payment
		if err := db.Order("created_at DESC").Find(&payments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
			return
		}
		c.JSON(http.StatusOK, payments)
	}
}

// newReceipt builds the receipt/join ref sent to the provider.
func newReceipt() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
