package models

// CartItem is one cart line. Identity key is the product id: adding a
// product already in the cart increments the existing line instead of
// appending a second one.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
