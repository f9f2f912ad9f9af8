package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velora-store/velora/internal/catalog"
)

// viewRequest mirrors catalog.FilterState but keeps the price ceiling
// optional: a missing priceMax defaults to the catalog maximum, while an
// explicit value (zero included) is applied as-is.
type viewRequest struct {
	Categories []string        `json:"categories"`
	Sensations []string        `json:"sensations"`
	Filters    []string        `json:"filters"`
	Targets    []string        `json:"targets"`
	PriceMin   float64         `json:"priceMin"`
	PriceMax   *float64        `json:"priceMax"`
	Search     string          `json:"search"`
	Sort       catalog.SortKey `json:"sort"`
}

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.loadCatalog(c)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

func (s *Server) computeView(c *gin.Context) {
	var req viewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter state"})
		return
	}

	products, err := s.loadCatalog(c)
	if err != nil {
		s.respondError(c, err)
		return
	}

	state := catalog.FilterState{
		Categories: req.Categories,
		Sensations: req.Sensations,
		Filters:    req.Filters,
		Targets:    req.Targets,
		PriceMin:   req.PriceMin,
		Search:     req.Search,
		Sort:       req.Sort,
	}
	if req.PriceMax != nil {
		state.PriceMax = *req.PriceMax
	} else {
		state.PriceMax = catalog.DefaultState(products).PriceMax
	}

	view := catalog.ComputeView(products, state)

	// Selected sensations that fell out of the recomputed option list are
	// dropped and the view recomputed with the pruned state.
	pruned := catalog.PruneSensations(state, view.Sensations)
	if len(pruned.Sensations) != len(state.Sensations) {
		state = pruned
		view = catalog.ComputeView(products, state)
	}

	c.JSON(http.StatusOK, gin.H{
		"view":  view,
		"state": state,
	})
}
