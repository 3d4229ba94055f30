package paymentControllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jsnacademy/trb-prep-api/models"
	"gorm.io/gorm"
)

type CheckoutRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	Notes    string `json:"notes"`
}

// CallbackRequest is the provider widget outcome, parsed into a tagged
// result at the boundary: success carries the signed identifiers,
// failed/dismissed carry at most the provider order id.
type CallbackRequest struct {
	Status          string `json:"status" binding:"required"` // success | failed | dismissed
	RazorpayOrderID string `json:"razorpay_order_id"`
	PaymentID       string `json:"razorpay_payment_id"`
	Signature       string `json:"razorpay_signature"`
	Reason          string `json:"reason"`
}

var (
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe   = regexp.MustCompile(`^[0-9]{10}$`)
	pincodeRe = regexp.MustCompile(`^[0-9]{6}$`)
)

// ValidateCheckout checks the shipping/contact fields and returns
// per-field messages. Nothing reaches the network while any field is
// invalid.
func ValidateCheckout(req CheckoutRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(req.FullName) == "" {
		errs["full_name"] = "Full name is required"
	}
	if !emailRe.MatchString(strings.TrimSpace(req.Email)) {
		errs["email"] = "Enter a valid email address"
	}
	phone := strings.Join(strings.Fields(req.Phone), "")
	if !phoneRe.MatchString(phone) {
		errs["phone"] = "Phone number must be exactly 10 digits"
	}
	if strings.TrimSpace(req.Address) == "" {
		errs["address"] = "Address is required"
	}
	if strings.TrimSpace(req.City) == "" {
		errs["city"] = "City is required"
	}
	if strings.TrimSpace(req.State) == "" {
		errs["state"] = "State is required"
	}
	if !pincodeRe.MatchString(strings.TrimSpace(req.Pincode)) {
		errs["pincode"] = "Pincode must be exactly 6 digits"
	}

	return errs
}

// POST /payment/checkout
// Sequence: validate fields, snapshot the cart total, create the
// provider order (amount in paise), record the payment row referencing
// it, write the pending shipping order, return the widget options.
func CheckoutHandler(db *gorm.DB, provider Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		if fieldErrs := ValidateCheckout(req); len(fieldErrs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please correct the highlighted fields", "fields": fieldErrs})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// No cart row yet is the same as an empty cart
				c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if len(cart.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
			return
		}

		subtotal := cart.Subtotal()
		total := subtotal + models.DeliveryChargeFor(subtotal)
		amountPaise := int(math.Round(total * 100))

		// The order ref doubles as the provider receipt, so the
		// shipping order and the payment-intent stay queryable from
		// either side.
		orderRef := newReceipt()

		providerOrder, err := provider.CreateOrder(amountPaise, "INR", orderRef)
		if err != nil {
			log.Println("❌ Provider order creation failed:", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Could not start payment, please try again"})
			return
		}

		if _, err := CreatePaymentRecord(db, userID, orderRef, providerOrder.ID, total, "INR"); err != nil {
			log.Println("❌ Failed to record payment:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start payment, please try again"})
			return
		}

		if err := createPendingOrder(db, userID, cart, orderRef, req); err != nil {
			log.Println("❌ Failed to write shipping order:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start payment, please try again"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"key":         os.Getenv("RAZORPAY_KEY_ID"),
			"amount":      providerOrder.Amount,
			"currency":    providerOrder.Currency,
			"name":        "JSN Academy",
			"description": "TRB study materials",
			"order_id":    providerOrder.ID,
			"prefill": gin.H{
				"name":    req.FullName,
				"email":   req.Email,
				"contact": strings.Join(strings.Fields(req.Phone), ""),
			},
			"theme": gin.H{"color": "#0f766e"},
		})
	}
}

// POST /payment/callback
func CheckoutCallbackHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req CallbackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		switch req.Status {
		case "success":
			if req.RazorpayOrderID == "" || req.PaymentID == "" || req.Signature == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Incomplete payment details"})
				return
			}

			_, secret, err := getRazorpayConfig()
			if err != nil {
				log.Println("❌ Razorpay credentials missing for verification")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment verification unavailable"})
				return
			}

			if !VerifySignature(req.RazorpayOrderID, req.PaymentID, req.Signature, secret) {
				// Never mark paid on an unproven signature
				c.JSON(http.StatusBadRequest, gin.H{"error": "Payment verification failed. Please contact support."})
				return
			}

			if err := MarkPaymentPaid(db, req.RazorpayOrderID, req.PaymentID); err != nil {
				log.Println("❌ Failed to mark payment paid:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment verification failed. Please contact support."})
				return
			}

			// Checkout complete: the cart snapshot became the order
			clearCart(db, userIDVal.(string))

			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment successful"})

		case "failed":
			if req.RazorpayOrderID != "" {
				if err := db.Model(&models.Payment{}).
					Where("razorpay_order_id = ? AND status = ?", req.RazorpayOrderID, models.PaymentStatusCreated).
					Update("status", models.PaymentStatusFailed).Error; err != nil {
					log.Println("❌ Failed to record payment failure:", err)
				}
			}
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Payment failed. You can try again."})

		case "dismissed":
			// Widget closed before completion; the created payment row
			// stays for reconciliation and a retry gets a fresh
			// provider order.
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Payment cancelled. You can try again."})

		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown payment status"})
		}
	}
}

// createPendingOrder writes the shipping order and its item snapshot
// in one transaction, leaving the cart untouched until the payment is
// verified.
func createPendingOrder(db *gorm.DB, userID string, cart models.Cart, orderRef string, req CheckoutRequest) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var orderItems []models.OrderItem
		for _, item := range cart.Items {
			orderItems = append(orderItems, models.OrderItem{
				MaterialID: item.MaterialID,
				Title:      item.Title,
				Price:      item.Price,
				Quantity:   item.Quantity,
			})
		}

		subtotal := cart.Subtotal()
		deliveryCharge := models.DeliveryChargeFor(subtotal)

		order := models.Order{
			OrderRef:        orderRef,
			UserID:          userID,
			Items:           orderItems,
			Subtotal:        subtotal,
			DeliveryCharge:  deliveryCharge,
			TotalAmount:     subtotal + deliveryCharge,
			ShippingAddress: req.Address,
			City:            req.City,
			State:           req.State,
			Pincode:         strings.TrimSpace(req.Pincode),
			Phone:           strings.Join(strings.Fields(req.Phone), ""),
			Notes:           req.Notes,
			Status:          models.OrderStatusPending,
			CreatedAt:       time.Now(),
		}
		return tx.Create(&order).Error
	})
}

func clearCart(db *gorm.DB, userID string) {
	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return
	}
	if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
		log.Println("❌ Failed to clear cart after payment:", err)
	}
}
