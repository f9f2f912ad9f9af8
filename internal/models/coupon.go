package models

import "strings"

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Coupon is a server-validated discount applied client-side for pricing
// display only. At most one coupon is active per cart.
type Coupon struct {
	Code         string  `json:"code"`
	DiscountType string  `json:"discount_type"`
	Value        float64 `json:"value"`
}

// NormalizeCouponCode produces the canonical upper-case form used for
// lookup and display.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
