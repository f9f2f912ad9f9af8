package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora-store/velora/internal/models"
)

func strPtr(s string) *string { return &s }

func validRow(id, slug string) models.RawProduct {
	return models.RawProduct{
		ID:        id,
		CreatedAt: "2024-03-01T10:00:00Z",
		Name:      "Prodotto " + id,
		Price:     "19.90",
		Category:  "Benessere",
		Slug:      slug,
		Stock:     10,
	}
}

func TestNormalizeProductCoercesFields(t *testing.T) {
	row := validRow("p1", "prodotto-p1")
	row.Brand = strPtr("Velora")

	p, err := NormalizeProduct(row)
	require.NoError(t, err)

	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, 19.90, p.Price)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), p.CreatedAt)
	assert.Equal(t, "Velora", p.Brand)
	assert.Equal(t, models.DomainUsage, p.Domain)
}

func TestNormalizeProductCreatedAtFormats(t *testing.T) {
	for _, raw := range []string{"2024-03-01T10:00:00Z", "2024-03-01 10:00:00", "2024-03-01"} {
		row := validRow("p1", "prodotto-p1")
		row.CreatedAt = raw
		_, err := NormalizeProduct(row)
		assert.NoError(t, err, "created_at %q", raw)
	}
}

func TestNormalizeProductSizePrecedence(t *testing.T) {
	tests := []struct {
		name   string
		ml     *string
		floz   *string
		format *string
		want   string
	}{
		{"ml wins over everything", strPtr("100"), strPtr("3.4"), strPtr("Flacone"), "100 ml"},
		{"floz wins over format", nil, strPtr("3.4"), strPtr("Flacone"), "3.4 fl oz"},
		{"format as last value", nil, nil, strPtr("Mazzo 54 carte"), "Mazzo 54 carte"},
		{"nothing present", nil, nil, nil, "N/A"},
		{"empty strings are absent", strPtr(""), strPtr(""), strPtr("Flacone"), "Flacone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validRow("p1", "prodotto-p1")
			row.SizeML = tt.ml
			row.SizeFlOz = tt.floz
			row.Format = tt.format

			p, err := NormalizeProduct(row)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Size)
		})
	}
}

func TestNormalizeProductImageResolution(t *testing.T) {
	t.Run("good url kept", func(t *testing.T) {
		row := validRow("p1", "s1")
		row.Image = strPtr("https://cdn.example.com/p1.jpg")
		p, err := NormalizeProduct(row)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/p1.jpg", p.Image)
	})

	t.Run("broken url falls back to category placeholder", func(t *testing.T) {
		row := validRow("p1", "s1")
		row.Category = "Lubrificanti Intimi"
		row.Image = strPtr("https://cdn.example.com/products-coming-soon-3.jpg")
		p, err := NormalizeProduct(row)
		require.NoError(t, err)
		assert.Equal(t, "/images/placeholders/lubrificanti.jpg", p.Image)
	})

	t.Run("first keyword match wins", func(t *testing.T) {
		row := validRow("p1", "s1")
		row.Category = "Fragranze"
		p, err := NormalizeProduct(row)
		require.NoError(t, err)
		assert.Equal(t, "/images/placeholders/fragranze.jpg", p.Image)
	})

	t.Run("unknown category gets default placeholder", func(t *testing.T) {
		row := validRow("p1", "s1")
		row.Category = "Accessori"
		p, err := NormalizeProduct(row)
		require.NoError(t, err)
		assert.Equal(t, defaultPlaceholder, p.Image)
	})
}

func TestNormalizeProductFilterPrecedence(t *testing.T) {
	t.Run("product_filter preferred", func(t *testing.T) {
		row := validRow("p1", "s1")
		row.ProductFilter = strPtr("Corpo")
		row.UsageArea = strPtr("Intimo")
		p, err := NormalizeProduct(row)
		require.NoError(t, err)
		assert.Equal(t, "Corpo", p.Filter)
		assert.Equal(t, "Corpo", p.UsageArea)
	})

	t.Run("legacy usage_area mirrored when product_filter absent", func(t *testing.T) {
		row := validRow("p1", "s1")
		row.UsageArea = strPtr("Intimo")
		p, err := NormalizeProduct(row)
		require.NoError(t, err)
		assert.Equal(t, "Intimo", p.Filter)
		assert.Equal(t, "Intimo", p.UsageArea)
	})
}

func TestDomainFor(t *testing.T) {
	assert.Equal(t, models.DomainGame, DomainFor(models.CategoryGames))
	assert.Equal(t, models.DomainFlavor, DomainFor(models.CategoryEdible))
	assert.Equal(t, models.DomainUsage, DomainFor("Fragranze"))
}

func TestNormalizeSkipsMalformedRows(t *testing.T) {
	bad := validRow("p2", "s2")
	bad.Price = "not-a-number"
	worse := validRow("p3", "s3")
	worse.CreatedAt = "yesterday"

	products, errs := Normalize([]models.RawProduct{validRow("p1", "s1"), bad, worse})

	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "p2")
	assert.Contains(t, errs[1].Error(), "p3")
}

func TestNormalizeRejectsNegativePrice(t *testing.T) {
	row := validRow("p1", "s1")
	row.Price = "-5"
	_, errs := Normalize([]models.RawProduct{row})
	require.Len(t, errs, 1)
}

func TestNormalizeRejectsUnknownGameType(t *testing.T) {
	row := validRow("p1", "s1")
	row.Category = models.CategoryGames
	row.ProductFilter = strPtr("Roulette")

	_, errs := Normalize([]models.RawProduct{row})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "unknown game type")

	row.ProductFilter = strPtr("carte")
	products, errs := Normalize([]models.RawProduct{row})
	assert.Empty(t, errs)
	require.Len(t, products, 1)
	assert.Equal(t, models.DomainGame, products[0].Domain)
}

func TestNormalizeSkipsDuplicateSlugs(t *testing.T) {
	products, errs := Normalize([]models.RawProduct{
		validRow("p1", "same-slug"),
		validRow("p2", "same-slug"),
	})

	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "duplicate slug")
}
