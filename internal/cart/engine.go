package cart

import (
	"math"

	"github.com/velora-store/velora/internal/models"
)

// The functions in this file are pure: they never mutate their input slice
// and return a fresh one on every change, so a caller can hold the previous
// snapshot while the store swaps in the new one.

// AddItem merges the product into the cart. An existing line with the same
// product id gets its quantity incremented; otherwise a new line is
// appended. Quantities below 1 are treated as 1.
func AddItem(items []models.CartItem, product models.Product, quantity int) []models.CartItem {
	if quantity < 1 {
		quantity = 1
	}
	next := make([]models.CartItem, len(items))
	copy(next, items)
	for i := range next {
		if next[i].Product.ID == product.ID {
			next[i].Quantity += quantity
			return next
		}
	}
	return append(next, models.CartItem{Product: product, Quantity: quantity})
}

// RemoveItem drops the line with the given product id regardless of its
// quantity.
func RemoveItem(items []models.CartItem, productID string) []models.CartItem {
	next := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.Product.ID != productID {
			next = append(next, item)
		}
	}
	return next
}

// UpdateQuantity sets the quantity of an existing line. Quantities below 1
// make the call a no-op; there is no upper bound here, that belongs to
// order-creation validation.
func UpdateQuantity(items []models.CartItem, productID string, quantity int) []models.CartItem {
	if quantity < 1 {
		return items
	}
	next := make([]models.CartItem, len(items))
	copy(next, items)
	for i := range next {
		if next[i].Product.ID == productID {
			next[i].Quantity = quantity
		}
	}
	return next
}

// Subtotal is the sum of price times quantity over all lines.
func Subtotal(items []models.CartItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Product.Price * float64(item.Quantity)
	}
	return sum
}

// ItemCount is the total quantity across all lines.
func ItemCount(items []models.CartItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// Total applies the coupon, if any, to the subtotal. Fixed discounts floor
// at zero; percentage discounts are intentionally NOT clamped, so a value
// over 100 yields a negative total. That mirrors the production pricing
// rule as shipped; see DESIGN.md before changing it.
func Total(subtotal float64, coupon *models.Coupon) float64 {
	if coupon == nil {
		return subtotal
	}
	switch coupon.DiscountType {
	case models.DiscountPercentage:
		return subtotal * (1 - coupon.Value/100)
	case models.DiscountFixed:
		return math.Max(0, subtotal-coupon.Value)
	default:
		return subtotal
	}
}
