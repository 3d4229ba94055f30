package paymentControllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jsnacademy/trb-prep-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubProvider struct {
	lastAmount  int
	lastReceipt string
	order       *ProviderOrder
	err         error
}

func (s *stubProvider) CreateOrder(amountMinor int, currency, receipt string) (*ProviderOrder, error) {
	s.lastAmount = amountMinor
	s.lastReceipt = receipt
	if s.err != nil {
		return nil, s.err
	}
	if s.order != nil {
		return s.order, nil
	}
	return &ProviderOrder{ID: "order_STUB1", Amount: amountMinor, Currency: currency, Receipt: receipt}, nil
}

func newTestContext(t *testing.T, method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func seedCart(t *testing.T, db *gorm.DB, userID string, price float64, qty int) models.Cart {
	t.Helper()
	material := models.Material{Title: "UG TRB Tamil Unit 1", Price: price, Category: models.CategoryUGTRB, IsActive: true}
	require.NoError(t, db.Create(&material).Error)

	cart := models.Cart{UserID: userID}
	require.NoError(t, db.Create(&cart).Error)
	require.NoError(t, db.Create(&models.CartItem{
		CartID:     cart.CartID,
		MaterialID: material.ID,
		Title:      material.Title,
		Price:      material.Price,
		Quantity:   qty,
	}).Error)
	return cart
}

func validCheckoutBody() string {
	return `{
		"full_name": "Kavitha R",
		"email": "kavitha@example.com",
		"phone": "98765 43210",
		"address": "12 North Street",
		"city": "Chennai",
		"state": "Tamil Nadu",
		"pincode": "600001"
	}`
}

func TestValidateCheckout(t *testing.T) {
	base := CheckoutRequest{
		FullName: "Kavitha R",
		Email:    "kavitha@example.com",
		Phone:    "9876543210",
		Address:  "12 North Street",
		City:     "Chennai",
		State:    "Tamil Nadu",
		Pincode:  "600001",
	}
	require.Empty(t, ValidateCheckout(base))

	t.Run("phone length", func(t *testing.T) {
		for phone, ok := range map[string]bool{
			"9876543210":   true,
			"98765 43210":  true, // whitespace stripped before counting
			"987654321":    false,
			"98765432109":  false,
			"98765abc10":   false,
			"            ": false,
		} {
			req := base
			req.Phone = phone
			errs := ValidateCheckout(req)
			if ok {
				assert.NotContains(t, errs, "phone", "phone %q", phone)
			} else {
				assert.Contains(t, errs, "phone", "phone %q", phone)
			}
		}
	})

	t.Run("pincode length", func(t *testing.T) {
		for pincode, ok := range map[string]bool{
			"600001":  true,
			"60001":   false,
			"6000011": false,
			"60000a":  false,
		} {
			req := base
			req.Pincode = pincode
			errs := ValidateCheckout(req)
			if ok {
				assert.NotContains(t, errs, "pincode", "pincode %q", pincode)
			} else {
				assert.Contains(t, errs, "pincode", "pincode %q", pincode)
			}
		}
	})

	t.Run("email shape", func(t *testing.T) {
		for email, ok := range map[string]bool{
			"kavitha@example.com": true,
			"kavitha.example.com": false, // no @
			"kavitha@example":     false, // no dot after @
			"":                    false,
		} {
			req := base
			req.Email = email
			errs := ValidateCheckout(req)
			if ok {
				assert.NotContains(t, errs, "email", "email %q", email)
			} else {
				assert.Contains(t, errs, "email", "email %q", email)
			}
		}
	})

	t.Run("blank required fields", func(t *testing.T) {
		req := CheckoutRequest{}
		errs := ValidateCheckout(req)
		for _, field := range []string{"full_name", "email", "phone", "address", "city", "state", "pincode"} {
			assert.Contains(t, errs, field)
		}
	})
}

func TestCheckoutScalesAmountToPaise(t *testing.T) {
	db := setupTestDB(t)
	seedCart(t, db, "user-1", 450, 1) // subtotal 450 + delivery 50 = 500

	provider := &stubProvider{}
	c, w := newTestContext(t, "POST", "/payment/checkout", validCheckoutBody())
	c.Set("user_id", "user-1")
	CheckoutHandler(db, provider)(c)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 50000, provider.lastAmount)

	// Payment row references the provider order and the shipping ref
	var payment models.Payment
	require.NoError(t, db.First(&payment, "razorpay_order_id = ?", "order_STUB1").Error)
	assert.Equal(t, models.PaymentStatusCreated, payment.Status)
	assert.Equal(t, 500.0, payment.Amount)
	assert.Equal(t, provider.lastReceipt, payment.OrderRef)

	// Pending shipping order shares the ref
	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order, "order_ref = ?", payment.OrderRef).Error)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 500.0, order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 450.0, order.Items[0].Price)

	// Widget options carry the provider order id
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "order_STUB1", resp["order_id"])
	assert.Equal(t, float64(50000), resp["amount"])
}

func TestCheckoutSnapshotsCartedPrice(t *testing.T) {
	db := setupTestDB(t)
	seedCart(t, db, "user-1", 450, 1)

	// A catalog price change after carting must not move the charge:
	// the provider amount and the order snapshot both carry the price
	// the user saw in the cart.
	require.NoError(t, db.Model(&models.Material{}).Where("1 = 1").Update("price", 999).Error)

	provider := &stubProvider{}
	c, w := newTestContext(t, "POST", "/payment/checkout", validCheckoutBody())
	c.Set("user_id", "user-1")
	CheckoutHandler(db, provider)(c)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 50000, provider.lastAmount)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order, "order_ref = ?", provider.lastReceipt).Error)
	assert.Equal(t, 500.0, order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 450.0, order.Items[0].Price)
}

func TestCheckoutRejectsInvalidFields(t *testing.T) {
	db := setupTestDB(t)
	seedCart(t, db, "user-1", 450, 1)

	provider := &stubProvider{}
	c, w := newTestContext(t, "POST", "/payment/checkout", `{"full_name":"K","email":"bad","phone":"123","address":"","city":"","state":"","pincode":"1"}`)
	c.Set("user_id", "user-1")
	CheckoutHandler(db, provider)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// Nothing reached the provider and nothing was written
	assert.Zero(t, provider.lastAmount)
	var count int64
	db.Model(&models.Payment{}).Count(&count)
	assert.Zero(t, count)
}

func TestCheckoutRequiresAuth(t *testing.T) {
	db := setupTestDB(t)
	c, w := newTestContext(t, "POST", "/payment/checkout", validCheckoutBody())
	CheckoutHandler(db, &stubProvider{})(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Cart{UserID: "user-1"}).Error)

	c, w := newTestContext(t, "POST", "/payment/checkout", validCheckoutBody())
	c.Set("user_id", "user-1")
	CheckoutHandler(db, &stubProvider{})(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutNoCartRow(t *testing.T) {
	db := setupTestDB(t)

	// A user who never touched the cart gets the empty-cart answer,
	// not a server error
	c, w := newTestContext(t, "POST", "/payment/checkout", validCheckoutBody())
	c.Set("user_id", "user-unseen")
	CheckoutHandler(db, &stubProvider{})(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cart is empty")
}

func TestCheckoutProviderFailure(t *testing.T) {
	db := setupTestDB(t)
	seedCart(t, db, "user-1", 450, 1)

	provider := &stubProvider{err: errors.New("gateway down")}
	c, w := newTestContext(t, "POST", "/payment/checkout", validCheckoutBody())
	c.Set("user_id", "user-1")
	CheckoutHandler(db, provider)(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	var count int64
	db.Model(&models.Payment{}).Count(&count)
	assert.Zero(t, count)
}

func TestCallbackSuccessMarksPaidAndClearsCart(t *testing.T) {
	db := setupTestDB(t)
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "test_secret")

	cart := seedCart(t, db, "user-1", 450, 1)
	_, err := CreatePaymentRecord(db, "user-1", "ref-cb", "order_CB1", 500, "INR")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Order{OrderRef: "ref-cb", UserID: "user-1", TotalAmount: 500, Status: models.OrderStatusPending}).Error)

	sig := signPayload("test_secret", "order_CB1", "pay_CB1")
	body := `{"status":"success","razorpay_order_id":"order_CB1","razorpay_payment_id":"pay_CB1","razorpay_signature":"` + sig + `"}`
	c, w := newTestContext(t, "POST", "/payment/callback", body)
	c.Set("user_id", "user-1")
	CheckoutCallbackHandler(db)(c)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var payment models.Payment
	require.NoError(t, db.First(&payment, "razorpay_order_id = ?", "order_CB1").Error)
	assert.Equal(t, models.PaymentStatusPaid, payment.Status)

	var order models.Order
	require.NoError(t, db.First(&order, "order_ref = ?", "ref-cb").Error)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)

	var items int64
	db.Model(&models.CartItem{}).Where("cart_id = ?", cart.CartID).Count(&items)
	assert.Zero(t, items)
}

func TestCallbackTamperedSignature(t *testing.T) {
	db := setupTestDB(t)
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "test_secret")

	_, err := CreatePaymentRecord(db, "user-1", "ref-t", "order_T1", 500, "INR")
	require.NoError(t, err)

	body := `{"status":"success","razorpay_order_id":"order_T1","razorpay_payment_id":"pay_T1","razorpay_signature":"deadbeef"}`
	c, w := newTestContext(t, "POST", "/payment/callback", body)
	c.Set("user_id", "user-1")
	CheckoutCallbackHandler(db)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "contact support")

	var payment models.Payment
	require.NoError(t, db.First(&payment, "razorpay_order_id = ?", "order_T1").Error)
	assert.Equal(t, models.PaymentStatusCreated, payment.Status)
}

func TestCallbackDismissedLeavesPaymentRetryable(t *testing.T) {
	db := setupTestDB(t)

	cart := seedCart(t, db, "user-1", 450, 1)
	_, err := CreatePaymentRecord(db, "user-1", "ref-d", "order_D1", 500, "INR")
	require.NoError(t, err)

	c, w := newTestContext(t, "POST", "/payment/callback", `{"status":"dismissed"}`)
	c.Set("user_id", "user-1")
	CheckoutCallbackHandler(db)(c)

	require.Equal(t, http.StatusOK, w.Code)

	// Payment stays created, cart untouched, nothing ever paid
	var payment models.Payment
	require.NoError(t, db.First(&payment, "razorpay_order_id = ?", "order_D1").Error)
	assert.Equal(t, models.PaymentStatusCreated, payment.Status)

	var items int64
	db.Model(&models.CartItem{}).Where("cart_id = ?", cart.CartID).Count(&items)
	assert.Equal(t, int64(1), items)

	var paid int64
	db.Model(&models.Payment{}).Where("status = ?", models.PaymentStatusPaid).Count(&paid)
	assert.Zero(t, paid)
}

func TestCallbackFailedMarksFailure(t *testing.T) {
	db := setupTestDB(t)

	_, err := CreatePaymentRecord(db, "user-1", "ref-f", "order_F1", 500, "INR")
	require.NoError(t, err)

	c, w := newTestContext(t, "POST", "/payment/callback", `{"status":"failed","razorpay_order_id":"order_F1"}`)
	c.Set("user_id", "user-1")
	CheckoutCallbackHandler(db)(c)

	require.Equal(t, http.StatusOK, w.Code)
	var payment models.Payment
	require.NoError(t, db.First(&payment, "razorpay_order_id = ?", "order_F1").Error)
	assert.Equal(t, models.PaymentStatusFailed, payment.Status)
}

func TestVerifyPaymentHandler(t *testing.T) {
	db := setupTestDB(t)
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "test_secret")

	_, err := CreatePaymentRecord(db, "user-1", "ref-v", "order_V1", 500, "INR")
	require.NoError(t, err)

	t.Run("valid signature", func(t *testing.T) {
		sig := signPayload("test_secret", "order_V1", "pay_V1")
		body := `{"razorpay_payment_id":"pay_V1","razorpay_order_id":"order_V1","razorpay_signature":"` + sig + `"}`
		c, w := newTestContext(t, "POST", "/payment/verify", body)
		VerifyPaymentHandler(db)(c)

		require.Equal(t, http.StatusOK, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["success"])
	})

	t.Run("tampered signature", func(t *testing.T) {
		body := `{"razorpay_payment_id":"pay_V1","razorpay_order_id":"order_V1","razorpay_signature":"deadbeef"}`
		c, w := newTestContext(t, "POST", "/payment/verify", body)
		VerifyPaymentHandler(db)(c)

		require.Equal(t, http.StatusOK, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, false, resp["success"])
	})
}

func TestCreateOrderHandler(t *testing.T) {
	t.Run("passes through to provider", func(t *testing.T) {
		provider := &stubProvider{}
		c, w := newTestContext(t, "POST", "/payment/create-order", `{"amount":50000,"currency":"INR","receipt":"r1"}`)
		CreateOrderHandler(provider)(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 50000, provider.lastAmount)
		assert.Equal(t, "r1", provider.lastReceipt)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		c, w := newTestContext(t, "POST", "/payment/create-order", `{"amount":-5}`)
		CreateOrderHandler(&stubProvider{})(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("provider failure surfaces as gateway error", func(t *testing.T) {
		c, w := newTestContext(t, "POST", "/payment/create-order", `{"amount":100}`)
		CreateOrderHandler(&stubProvider{err: errors.New("boom")})(c)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}
