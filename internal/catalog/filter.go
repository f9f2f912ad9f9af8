package catalog

import (
	"sort"
	"strings"

	"github.com/velora-store/velora/internal/models"
)

type SortKey string

const (
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
)

// FilterState is the full set of active selections driving a catalog view.
// The zero Search and empty selection slices mean "no constraint"; the
// price range is always applied with inclusive bounds.
type FilterState struct {
	Categories []string `json:"categories"`
	Sensations []string `json:"sensations"`
	Filters    []string `json:"filters"`
	Targets    []string `json:"targets"`
	PriceMin   float64  `json:"priceMin"`
	PriceMax   float64  `json:"priceMax"`
	Search     string   `json:"search"`
	Sort       SortKey  `json:"sort"`
}

// View is the outcome of running a FilterState over the catalog: the
// filtered, sorted product list plus the facet option lists the current
// selections make reachable.
type View struct {
	Products      []models.Product `json:"products"`
	Categories    []string         `json:"categories"`
	Sensations    []string         `json:"sensations"`
	UsageOptions  []string         `json:"usageOptions"`
	FlavorOptions []string         `json:"flavorOptions"`
	GameOptions   []string         `json:"gameOptions"`
	Targets       []string         `json:"targets"`
}

// DefaultState returns the state a fresh browsing session starts from: no
// selections, newest first, and a price ceiling covering the whole catalog.
func DefaultState(products []models.Product) FilterState {
	var max float64
	for _, p := range products {
		if p.Price > max {
			max = p.Price
		}
	}
	return FilterState{PriceMax: max, Sort: SortNewest}
}

// ComputeView derives the filtered product list and every facet option
// list from the catalog and the active state.
//
// Facet option lists are computed from the candidate set excluding the
// facet itself, so selecting an option never removes it from its own list.
// The game/flavor/usage facets are mutually exclusive: a selection in one
// domain collapses the other two option lists, and a product's filter
// value only ever populates the facet of its own domain.
func ComputeView(products []models.Product, state FilterState) View {
	view := View{
		Products:      []models.Product{},
		Categories:    []string{},
		Sensations:    []string{},
		UsageOptions:  []string{},
		FlavorOptions: []string{},
		GameOptions:   []string{},
		Targets:       []string{},
	}
	if len(products) == 0 {
		return view
	}

	// Categories always come from the full catalog.
	for _, p := range products {
		view.Categories = appendDistinct(view.Categories, p.Category)
	}

	selected := selectionDomains(products, state.Filters)
	gamesSelected := containsString(state.Categories, models.CategoryGames)

	// Sensations are meaningless once the games category or a flavor/game
	// value is selected; the facet is forced empty in that context.
	if !gamesSelected && !selected[models.DomainFlavor] && !selected[models.DomainGame] {
		for _, p := range products {
			if !matchesCategories(p, state.Categories) ||
				!matchesFilters(p, state.Filters) ||
				!matchesTargets(p, state.Targets) {
				continue
			}
			view.Sensations = appendDistinct(view.Sensations, p.Sensation)
		}
	}

	// Usage, flavor and game options share a common base narrowed by
	// categories and sensations, then split by domain.
	for _, p := range products {
		if !matchesCategories(p, state.Categories) || !matchesSensations(p, state.Sensations) {
			continue
		}
		switch p.Domain {
		case models.DomainUsage:
			if !selected[models.DomainFlavor] && !selected[models.DomainGame] {
				view.UsageOptions = appendDistinct(view.UsageOptions, p.Filter)
			}
		case models.DomainFlavor:
			if !selected[models.DomainUsage] && !selected[models.DomainGame] {
				view.FlavorOptions = appendDistinct(view.FlavorOptions, p.Filter)
			}
		case models.DomainGame:
			if !selected[models.DomainUsage] && !selected[models.DomainFlavor] {
				view.GameOptions = appendDistinct(view.GameOptions, p.Filter)
			}
		}
	}

	for _, p := range products {
		if !matchesCategories(p, state.Categories) ||
			!matchesSensations(p, state.Sensations) ||
			!matchesFilters(p, state.Filters) {
			continue
		}
		view.Targets = appendDistinct(view.Targets, p.Target)
	}

	for _, p := range products {
		if !matchesSearch(p, state.Search) {
			continue
		}
		if !matchesCategories(p, state.Categories) {
			continue
		}
		if !matchesSensations(p, state.Sensations) {
			continue
		}
		if !matchesFilters(p, state.Filters) {
			continue
		}
		if !matchesTargets(p, state.Targets) {
			continue
		}
		if p.Price < state.PriceMin || p.Price > state.PriceMax {
			continue
		}
		view.Products = append(view.Products, p)
	}

	sortProducts(view.Products, state.Sort)
	return view
}

// PruneSensations drops selected sensations that are no longer present in
// the freshly computed option list. Only the sensation facet self-prunes.
func PruneSensations(state FilterState, options []string) FilterState {
	if len(state.Sensations) == 0 {
		return state
	}
	kept := state.Sensations[:0:0]
	for _, s := range state.Sensations {
		if containsString(options, s) {
			kept = append(kept, s)
		}
	}
	state.Sensations = kept
	return state
}

// selectionDomains reports which domains the currently selected filter
// values belong to, resolved through the products that carry them.
func selectionDomains(products []models.Product, filters []string) map[models.Domain]bool {
	domains := make(map[models.Domain]bool, 3)
	if len(filters) == 0 {
		return domains
	}
	for _, p := range products {
		if p.Filter != "" && containsFold(filters, p.Filter) {
			domains[p.Domain] = true
		}
	}
	return domains
}

func matchesSearch(p models.Product, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	fields := []string{p.Name, p.Category, p.Brand, p.UsageArea, p.Target, p.Description}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func matchesCategories(p models.Product, categories []string) bool {
	return len(categories) == 0 || containsString(categories, p.Category)
}

func matchesSensations(p models.Product, sensations []string) bool {
	return len(sensations) == 0 || containsString(sensations, p.Sensation)
}

func matchesFilters(p models.Product, filters []string) bool {
	return len(filters) == 0 || containsFold(filters, p.Filter)
}

func matchesTargets(p models.Product, targets []string) bool {
	return len(targets) == 0 || containsFold(targets, p.Target)
}

// sortProducts orders in place with a stable sort so ties keep their
// catalog order.
func sortProducts(products []models.Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool { return products[i].CreatedAt.After(products[j].CreatedAt) })
	case SortOldest:
		sort.SliceStable(products, func(i, j int) bool { return products[i].CreatedAt.Before(products[j].CreatedAt) })
	}
}

// appendDistinct adds v unless empty or already present, preserving
// first-seen order.
func appendDistinct(list []string, v string) []string {
	if v == "" {
		return list
	}
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsFold(list []string, v string) bool {
	for _, s := range list {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
