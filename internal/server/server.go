package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velora-store/velora/internal/cart"
	"github.com/velora-store/velora/internal/catalog"
	"github.com/velora-store/velora/internal/database"
	"github.com/velora-store/velora/internal/errx"
	"github.com/velora-store/velora/internal/logx"
	"github.com/velora-store/velora/internal/models"
	"github.com/velora-store/velora/internal/order"
)

type Server struct {
	router   *gin.Engine
	db       *database.DB
	products *database.ProductRepository
	coupons  *database.CouponRepository
	orders   *database.OrderRepository
	carts    *cart.Store
	composer *order.Composer
}

// NewServer creates a new server instance
func NewServer(db *database.DB, carts *cart.Store, composer *order.Composer) *Server {
	router := gin.Default()

	server := &Server{
		router:   router,
		db:       db,
		products: database.NewProductRepository(db),
		coupons:  database.NewCouponRepository(db),
		orders:   database.NewOrderRepository(db),
		carts:    carts,
		composer: composer,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)
		api.GET("/products", s.listProducts)
		api.POST("/catalog/view", s.computeView)

		api.GET("/cart/:id", s.getCart)
		api.DELETE("/cart/:id", s.clearCart)
		api.POST("/cart/:id/items", s.addCartItem)
		api.PATCH("/cart/:id/items/:productID", s.updateCartItem)
		api.DELETE("/cart/:id/items/:productID", s.removeCartItem)
		api.POST("/cart/:id/coupon", s.applyCoupon)
		api.DELETE("/cart/:id/coupon", s.removeCoupon)

		api.POST("/checkout", s.checkout)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	if err := s.db.HealthCheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "velora",
		"version": "0.1.0",
	})
}

// loadCatalog fetches and normalizes the active catalog. Rows the
// normalizer skipped are logged, never fatal.
func (s *Server) loadCatalog(c *gin.Context) ([]models.Product, error) {
	rows, err := s.products.ListActive(c.Request.Context())
	if err != nil {
		return nil, err
	}
	products, errs := catalog.Normalize(rows)
	for _, nerr := range errs {
		logx.Warn().Err(nerr).Msg("skipped malformed product row")
	}
	return products, nil
}

// respondError maps an error to its HTTP status and safe message.
func (s *Server) respondError(c *gin.Context, err error) {
	status := errx.StatusOf(err)
	if status >= http.StatusInternalServerError {
		logx.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}
	c.JSON(status, gin.H{"error": errx.MessageOf(err)})
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
