package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora-store/velora/internal/models"
)

func testProduct(id string, price float64) models.Product {
	return models.Product{ID: id, Name: "Prodotto " + id, Price: price}
}

func TestAddItemAppendsAndMerges(t *testing.T) {
	a := testProduct("a", 10)
	b := testProduct("b", 5)

	items := AddItem(nil, a, 2)
	items = AddItem(items, b, 1)
	require.Len(t, items, 2)

	// Adding an existing id increments the line instead of appending.
	items = AddItem(items, a, 3)
	require.Len(t, items, 2)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestAddItemRepeatedAdditionsAccumulate(t *testing.T) {
	a := testProduct("a", 10)

	split := AddItem(AddItem(nil, a, 2), a, 3)
	once := AddItem(nil, a, 5)

	assert.Equal(t, once, split)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	items := AddItem(nil, testProduct("a", 10), 0)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestAddItemDoesNotMutateInput(t *testing.T) {
	a := testProduct("a", 10)
	original := AddItem(nil, a, 1)

	AddItem(original, a, 5)
	assert.Equal(t, 1, original[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	items := AddItem(AddItem(nil, testProduct("a", 10), 4), testProduct("b", 5), 1)

	items = RemoveItem(items, "a")
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].Product.ID)

	// Removing an unknown id is a no-op.
	assert.Equal(t, items, RemoveItem(items, "missing"))
}

func TestUpdateQuantity(t *testing.T) {
	items := AddItem(nil, testProduct("a", 10), 2)

	updated := UpdateQuantity(items, "a", 7)
	assert.Equal(t, 7, updated[0].Quantity)

	// Quantities below 1 never change the stored quantity.
	assert.Equal(t, updated, UpdateQuantity(updated, "a", 0))
	assert.Equal(t, updated, UpdateQuantity(updated, "a", -3))
}

func TestSubtotalAndItemCount(t *testing.T) {
	items := AddItem(AddItem(nil, testProduct("a", 10), 2), testProduct("b", 5), 1)

	assert.InDelta(t, 25.0, Subtotal(items), 1e-9)
	assert.Equal(t, 3, ItemCount(items))
	assert.Zero(t, Subtotal(nil))
	assert.Zero(t, ItemCount(nil))
}

func TestTotal(t *testing.T) {
	items := AddItem(AddItem(nil, testProduct("a", 10), 2), testProduct("b", 5), 1)
	subtotal := Subtotal(items)

	t.Run("no coupon", func(t *testing.T) {
		assert.InDelta(t, 25.0, Total(subtotal, nil), 1e-9)
	})

	t.Run("fixed discount", func(t *testing.T) {
		coupon := &models.Coupon{Code: "ESTATE5", DiscountType: models.DiscountFixed, Value: 5}
		assert.InDelta(t, 20.0, Total(subtotal, coupon), 1e-9)
	})

	t.Run("fixed discount floors at zero", func(t *testing.T) {
		coupon := &models.Coupon{Code: "MEGA", DiscountType: models.DiscountFixed, Value: 100}
		assert.Zero(t, Total(subtotal, coupon))
	})

	t.Run("percentage discount", func(t *testing.T) {
		coupon := &models.Coupon{Code: "BENVENUTO10", DiscountType: models.DiscountPercentage, Value: 10}
		assert.InDelta(t, 22.5, Total(subtotal, coupon), 1e-9)
	})

	// Documents the shipped behavior: percentages are not clamped, so a
	// value over 100 drives the total negative instead of flooring at
	// zero like the fixed type does.
	t.Run("percentage over 100 goes negative", func(t *testing.T) {
		coupon := &models.Coupon{Code: "BROKEN", DiscountType: models.DiscountPercentage, Value: 150}
		assert.InDelta(t, -12.5, Total(subtotal, coupon), 1e-9)
	})

	t.Run("unknown discount type leaves subtotal", func(t *testing.T) {
		coupon := &models.Coupon{Code: "X", DiscountType: "mystery", Value: 10}
		assert.InDelta(t, subtotal, Total(subtotal, coupon), 1e-9)
	})
}
