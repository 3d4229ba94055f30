package models

import "time"

type OrderStatus string

const (
	// Order statuses (storefront flow)
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting payment/confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Payment done or placement confirmed
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the materials
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping
)

// Delivery pricing: orders at or under the free-delivery threshold pay
// a flat surcharge.
const (
	FreeDeliveryThreshold = 500.0
	DeliveryCharge        = 50.0
)

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	OrderRef        string      `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID          string      `gorm:"not null;index" json:"user_id"`
	User            Profile     `gorm:"foreignKey:UserID" json:"user"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal        float64     `json:"subtotal"`
	DeliveryCharge  float64     `json:"delivery_charge"`
	TotalAmount     float64     `json:"total_amount"`
	ShippingAddress string      `json:"shipping_address"`
	City            string      `json:"city"`
	State           string      `json:"state"`
	Pincode         string      `json:"pincode"`
	Phone           string      `json:"phone"`
	Notes           string      `json:"notes"`
	Status          OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderItem is an immutable snapshot of a cart line at order time.
type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	OrderID    uint    `gorm:"index" json:"order_id"`
	MaterialID uint    `json:"material_id"`
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// DeliveryChargeFor returns the surcharge applied to a subtotal.
func DeliveryChargeFor(subtotal float64) float64 {
	if subtotal > FreeDeliveryThreshold {
		return 0
	}
	return DeliveryCharge
}
