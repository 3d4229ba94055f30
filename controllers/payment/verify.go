package paymentControllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VerifyRequest struct {
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}

// VerifySignature recomputes the Razorpay callback signature:
// HMAC-SHA256 over "order_id|payment_id" with the key secret,
// hex-encoded, compared in constant time.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// POST /payment/verify
// A mismatch is a negative answer, not an error; only a missing secret
// is a server fault.
func VerifyPaymentHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
			return
		}

		_, secret, err := getRazorpayConfig()
		if err != nil {
			log.Println("❌ Razorpay credentials missing for verification")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "payment verification unavailable"})
			return
		}

		if !VerifySignature(req.OrderID, req.PaymentID, req.Signature, secret) {
			c.JSON(http.StatusOK, gin.H{"success": false})
			return
		}

		// Signature proven: mark the payment record paid
		if err := MarkPaymentPaid(db, req.OrderID, req.PaymentID); err != nil {
			log.Println("❌ Failed to mark payment paid:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to update payment"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
