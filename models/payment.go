package models

import "time"

type PaymentStatus string

const (
	PaymentStatusCreated PaymentStatus = "created" // Provider order issued, awaiting payment
	PaymentStatusPaid    PaymentStatus = "paid"    // Signature verified
	PaymentStatusFailed  PaymentStatus = "failed"  // Provider reported failure
)

// Payment tracks one provider payment-intent. Its lifecycle is
// independent of the Order row; OrderRef is the join key and is also
// sent to the provider as the receipt.
type Payment struct {
	ID                uint          `gorm:"primaryKey" json:"id"`
	UserID            string        `gorm:"not null;index" json:"user_id"`
	OrderRef          string        `gorm:"index" json:"order_ref"`
	RazorpayOrderID   string        `gorm:"uniqueIndex;not null" json:"razorpay_order_id"`
	RazorpayPaymentID string        `json:"razorpay_payment_id"`
	Amount            float64       `gorm:"not null" json:"amount"` // Major units (rupees)
	Currency          string        `gorm:"type:VARCHAR(10);default:'INR'" json:"currency"`
	Status            PaymentStatus `gorm:"type:VARCHAR(20);default:'created'" json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}
