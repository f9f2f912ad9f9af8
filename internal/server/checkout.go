package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velora-store/velora/internal/cart"
	"github.com/velora-store/velora/internal/errx"
	"github.com/velora-store/velora/internal/logx"
	"github.com/velora-store/velora/internal/models"
)

type checkoutRequest struct {
	CartID string              `json:"cart_id" binding:"required"`
	Form   models.CheckoutForm `json:"form" binding:"required"`
}

// checkout creates the authoritative order and hands back the WhatsApp
// transport URL for the composed order message. The cart is cleared once
// the order is stored.
func (s *Server) checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkout payload"})
		return
	}

	// Honeypot: real submissions never fill this field.
	if req.Form.Website != "" {
		logx.Warn().Str("cart_id", req.CartID).Msg("checkout rejected by honeypot")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkout payload"})
		return
	}

	ctx := c.Request.Context()
	items := s.carts.Items(ctx, req.CartID)
	if len(items) == 0 {
		s.respondError(c, errx.BadRequest(nil, "cart is empty"))
		return
	}

	coupon := s.carts.Coupon(ctx, req.CartID)
	subtotal := cart.Subtotal(items)
	total := cart.Total(subtotal, coupon)

	stored, err := s.orders.Create(ctx, req.Form, items, coupon, subtotal, total)
	if err != nil {
		s.respondError(c, err)
		return
	}

	// The stored total supersedes the display pricing computed above.
	message, err := s.composer.Compose(req.Form, items, stored.Total, coupon, subtotal, stored.Number)
	if err != nil {
		s.respondError(c, err)
		return
	}

	s.carts.Clear(ctx, req.CartID)

	c.JSON(http.StatusCreated, gin.H{
		"order_number": stored.Number,
		"total":        stored.Total,
		"whatsapp_url": message.TransportURL,
	})
}
