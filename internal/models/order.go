package models

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCancelled = "cancelled"
)

// Order is the authoritative record written by the order repository. Its
// Number and Total supersede any client-side pricing.
type Order struct {
	ID             int64     `json:"id" db:"id"`
	Number         string    `json:"number" db:"number"`
	CustomerName   string    `json:"customer_name" db:"customer_name"`
	CustomerPhone  string    `json:"customer_phone" db:"customer_phone"`
	DeliveryMethod string    `json:"delivery_method" db:"delivery_method"`
	CouponCode     string    `json:"coupon_code,omitempty" db:"coupon_code"`
	Subtotal       float64   `json:"subtotal" db:"subtotal"`
	Total          float64   `json:"total" db:"total"`
	Status         string    `json:"status" db:"status"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// OrderItem is one purchased line as persisted with its order.
type OrderItem struct {
	ID        int64   `json:"id" db:"id"`
	OrderID   int64   `json:"order_id" db:"order_id"`
	ProductID string  `json:"product_id" db:"product_id"`
	Name      string  `json:"name" db:"name"`
	Quantity  int     `json:"quantity" db:"quantity"`
	Price     float64 `json:"price" db:"price"`
}
