package models

import "time"

// Domain is the filter-tag bucket a product belongs to. A product's single
// filter value populates exactly one of the game/flavor/usage facets.
type Domain string

const (
	DomainGame   Domain = "game"
	DomainFlavor Domain = "flavor"
	DomainUsage  Domain = "usage"
)

// Category labels that drive the domain partition.
const (
	CategoryGames  = "Giochi"
	CategoryEdible = "Commestibili"
)

// GameTypes is the closed set of labels a games-category product may carry
// as its filter value.
var GameTypes = []string{"Carte", "Dadi", "Gioco da tavolo", "Kit di coppia"}

// RawProduct is the wire shape returned by the product source. Numeric and
// date-like fields arrive as strings and are coerced by the normalizer;
// optional attributes are nullable.
type RawProduct struct {
	ID              string   `json:"id" db:"id"`
	CreatedAt       string   `json:"created_at" db:"created_at"`
	Name            string   `json:"name" db:"name"`
	Description     string   `json:"description" db:"description"`
	Price           string   `json:"price" db:"price"`
	Category        string   `json:"category" db:"category"`
	Slug            string   `json:"slug" db:"slug"`
	Stock           int      `json:"stock" db:"stock"`
	Brand           *string  `json:"brand" db:"brand"`
	Sensation       *string  `json:"sensation" db:"sensation"`
	SizeML          *string  `json:"size_ml" db:"size_ml"`
	SizeFlOz        *string  `json:"size_floz" db:"size_floz"`
	Format          *string  `json:"format" db:"format"`
	Image           *string  `json:"image" db:"image"`
	SecondaryImages []string `json:"secondary_images" db:"secondary_images"`
	ProductFilter   *string  `json:"product_filter" db:"product_filter"`
	UsageArea       *string  `json:"usage_area" db:"usage_area"`
	TargetAudience  *string  `json:"target_audience" db:"target_audience"`
}

// Product is the canonical in-memory shape used by the catalog, cart and
// order packages. Produced from RawProduct by catalog.Normalize.
type Product struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"createdAt"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	Category        string    `json:"category"`
	Slug            string    `json:"slug"`
	Stock           int       `json:"stock"`
	Brand           string    `json:"brand,omitempty"`
	Sensation       string    `json:"sensation,omitempty"`
	Size            string    `json:"size"`
	Image           string    `json:"image"`
	SecondaryImages []string  `json:"secondaryImages,omitempty"`
	Filter          string    `json:"filter,omitempty"`
	UsageArea       string    `json:"usageArea,omitempty"`
	Target          string    `json:"target,omitempty"`
	Domain          Domain    `json:"domain"`
}
