package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/velora-store/velora/internal/database"
	"github.com/velora-store/velora/internal/errx"
	"github.com/velora-store/velora/internal/models"
)

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type applyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

func (s *Server) getCart(c *gin.Context) {
	cartID := c.Param("id")
	s.respondCart(c, cartID)
}

func (s *Server) addCartItem(c *gin.Context) {
	cartID := c.Param("id")

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	products, err := s.loadCatalog(c)
	if err != nil {
		s.respondError(c, err)
		return
	}

	var product *models.Product
	for i := range products {
		if products[i].ID == req.ProductID {
			product = &products[i]
			break
		}
	}
	if product == nil {
		s.respondError(c, errx.NotFound(nil, "product not found"))
		return
	}

	s.carts.AddItem(c.Request.Context(), cartID, *product, req.Quantity)
	s.respondCart(c, cartID)
}

func (s *Server) updateCartItem(c *gin.Context) {
	cartID := c.Param("id")
	productID := c.Param("productID")

	quantity, err := strconv.Atoi(c.DefaultQuery("quantity", ""))
	if err != nil {
		var body struct {
			Quantity int `json:"quantity"`
		}
		if bindErr := c.ShouldBindJSON(&body); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
			return
		}
		quantity = body.Quantity
	}

	s.carts.UpdateQuantity(c.Request.Context(), cartID, productID, quantity)
	s.respondCart(c, cartID)
}

func (s *Server) removeCartItem(c *gin.Context) {
	cartID := c.Param("id")
	s.carts.RemoveItem(c.Request.Context(), cartID, c.Param("productID"))
	s.respondCart(c, cartID)
}

func (s *Server) clearCart(c *gin.Context) {
	s.carts.Clear(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) applyCoupon(c *gin.Context) {
	cartID := c.Param("id")

	var req applyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}

	coupon, err := s.coupons.GetByCode(c.Request.Context(), req.Code)
	if err != nil {
		if errors.Is(err, database.ErrCouponNotFound) {
			s.respondError(c, errx.NotFound(err, "invalid coupon code"))
			return
		}
		s.respondError(c, err)
		return
	}

	s.carts.ApplyCoupon(c.Request.Context(), cartID, coupon)
	s.respondCart(c, cartID)
}

func (s *Server) removeCoupon(c *gin.Context) {
	cartID := c.Param("id")
	s.carts.RemoveCoupon(c.Request.Context(), cartID)
	s.respondCart(c, cartID)
}

// respondCart returns the full cart state: lines, coupon and pricing.
func (s *Server) respondCart(c *gin.Context, cartID string) {
	ctx := c.Request.Context()
	items := s.carts.Items(ctx, cartID)
	if items == nil {
		items = []models.CartItem{}
	}
	c.JSON(http.StatusOK, gin.H{
		"cart_id":    cartID,
		"items":      items,
		"coupon":     s.carts.Coupon(ctx, cartID),
		"subtotal":   s.carts.Subtotal(ctx, cartID),
		"total":      s.carts.Total(ctx, cartID),
		"item_count": s.carts.ItemCount(ctx, cartID),
	})
}
