package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/velora-store/velora/internal/models"
)

// placeholderRule maps a category keyword to a fallback image. Rules are
// checked in order against the lower-cased category label; first match wins.
type placeholderRule struct {
	Keyword string
	Image   string
}

var placeholderRules = []placeholderRule{
	{"lubrificant", "/images/placeholders/lubrificanti.jpg"},
	{"fragranz", "/images/placeholders/fragranze.jpg"},
	{"profum", "/images/placeholders/fragranze.jpg"},
	{"candel", "/images/placeholders/candele.jpg"},
	{"commestib", "/images/placeholders/commestibili.jpg"},
	{"gioc", "/images/placeholders/giochi.jpg"},
	{"benessere", "/images/placeholders/benessere.jpg"},
}

const defaultPlaceholder = "/images/placeholders/default.jpg"

// brokenImagePattern matches the stale filename a batch import once wrote
// for products without photography. Those URLs 404 on the CDN, so they are
// treated as absent.
var brokenImagePattern = regexp.MustCompile(`products-coming-soon[^/]*\.jpg$`)

// sizeRule is one step of the size preference chain: first non-empty value
// wins and exactly one is used, never a concatenation.
type sizeRule struct {
	Value  func(r models.RawProduct) *string
	Suffix string
}

var sizeRules = []sizeRule{
	{func(r models.RawProduct) *string { return r.SizeML }, " ml"},
	{func(r models.RawProduct) *string { return r.SizeFlOz }, " fl oz"},
	{func(r models.RawProduct) *string { return r.Format }, ""},
}

const sizeUnknown = "N/A"

// createdAtLayouts are the timestamp formats the product source is known to
// emit, tried in order.
var createdAtLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Normalize maps raw product rows into canonical Products. Malformed rows
// are skipped, never fatal: each skip is reported in the returned error
// slice so callers can surface them without losing the rest of the catalog.
// Rows whose slug duplicates an earlier row are skipped too, keeping the
// slug unique across the result.
func Normalize(rows []models.RawProduct) ([]models.Product, []error) {
	products := make([]models.Product, 0, len(rows))
	var errs []error
	seenSlugs := make(map[string]bool, len(rows))

	for _, row := range rows {
		p, err := NormalizeProduct(row)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if seenSlugs[p.Slug] {
			errs = append(errs, fmt.Errorf("product %s: duplicate slug %q", row.ID, p.Slug))
			continue
		}
		seenSlugs[p.Slug] = true
		products = append(products, p)
	}

	return products, errs
}

// NormalizeProduct converts a single raw row. It returns an error instead
// of a Product when a required field cannot be coerced.
func NormalizeProduct(row models.RawProduct) (models.Product, error) {
	if row.ID == "" {
		return models.Product{}, fmt.Errorf("product row without id (slug %q)", row.Slug)
	}
	if row.Name == "" {
		return models.Product{}, fmt.Errorf("product %s: empty name", row.ID)
	}
	if row.Slug == "" {
		return models.Product{}, fmt.Errorf("product %s: empty slug", row.ID)
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(row.Price), 64)
	if err != nil {
		return models.Product{}, fmt.Errorf("product %s: invalid price %q: %w", row.ID, row.Price, err)
	}
	if price < 0 {
		return models.Product{}, fmt.Errorf("product %s: negative price %v", row.ID, price)
	}

	createdAt, err := parseCreatedAt(row.CreatedAt)
	if err != nil {
		return models.Product{}, fmt.Errorf("product %s: %w", row.ID, err)
	}

	stock := row.Stock
	if stock < 0 {
		stock = 0
	}

	filter, usageArea := resolveFilter(row.ProductFilter, row.UsageArea)

	domain := DomainFor(row.Category)
	if domain == models.DomainGame && filter != "" && !isKnownGameType(filter) {
		return models.Product{}, fmt.Errorf("product %s: unknown game type %q", row.ID, filter)
	}

	return models.Product{
		ID:              row.ID,
		CreatedAt:       createdAt,
		Name:            row.Name,
		Description:     row.Description,
		Price:           price,
		Category:        row.Category,
		Slug:            row.Slug,
		Stock:           stock,
		Brand:           deref(row.Brand),
		Sensation:       deref(row.Sensation),
		Size:            resolveSize(row),
		Image:           resolveImage(row.Image, row.Category),
		SecondaryImages: row.SecondaryImages,
		Filter:          filter,
		UsageArea:       usageArea,
		Target:          deref(row.TargetAudience),
		Domain:          domain,
	}, nil
}

// isKnownGameType checks the filter value of a games-category product
// against the closed game-type enumeration.
func isKnownGameType(value string) bool {
	for _, gt := range models.GameTypes {
		if strings.EqualFold(gt, value) {
			return true
		}
	}
	return false
}

// DomainFor buckets a category into the game/flavor/usage partition. It is
// computed once at normalization time so the filter engine never has to
// compare category labels again.
func DomainFor(category string) models.Domain {
	switch category {
	case models.CategoryGames:
		return models.DomainGame
	case models.CategoryEdible:
		return models.DomainFlavor
	default:
		return models.DomainUsage
	}
}

func resolveImage(raw *string, category string) string {
	if raw != nil && *raw != "" && !brokenImagePattern.MatchString(*raw) {
		return *raw
	}
	lower := strings.ToLower(category)
	for _, rule := range placeholderRules {
		if strings.Contains(lower, rule.Keyword) {
			return rule.Image
		}
	}
	return defaultPlaceholder
}

func resolveSize(row models.RawProduct) string {
	for _, rule := range sizeRules {
		if v := rule.Value(row); v != nil && *v != "" {
			return *v + rule.Suffix
		}
	}
	return sizeUnknown
}

// resolveFilter prefers the explicit product_filter field over the legacy
// usage_area one. Both outputs mirror whichever value is present so older
// consumers reading usageArea keep working.
func resolveFilter(productFilter, usageArea *string) (string, string) {
	if productFilter != nil && *productFilter != "" {
		return *productFilter, *productFilter
	}
	if usageArea != nil && *usageArea != "" {
		return *usageArea, *usageArea
	}
	return "", ""
}

func parseCreatedAt(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty created_at")
	}
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable created_at %q", raw)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
