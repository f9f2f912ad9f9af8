package models

// CheckoutForm carries the customer data collected at checkout. Website is
// a honeypot: real submissions leave it empty, so a non-empty value marks
// the request as bot traffic.
type CheckoutForm struct {
	Name           string   `json:"name" binding:"required"`
	Phone          string   `json:"phone" binding:"required"`
	Street         string   `json:"street" binding:"required"`
	StreetNumber   string   `json:"street_number" binding:"required"`
	City           string   `json:"city" binding:"required"`
	Province       string   `json:"province" binding:"required"`
	PostalCode     string   `json:"postal_code" binding:"required"`
	Unit           string   `json:"unit"`
	Notes          string   `json:"notes"`
	DeliveryMethod string   `json:"delivery_method" binding:"required"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Website        string   `json:"website"`
	Token          string   `json:"token"`
}
