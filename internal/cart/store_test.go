package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora-store/velora/internal/models"
)

// failingSnapshotStore errors on every operation, standing in for an
// unreachable Redis.
type failingSnapshotStore struct{}

func (failingSnapshotStore) Load(ctx context.Context, cartID string) ([]models.CartItem, error) {
	return nil, errors.New("connection refused")
}

func (failingSnapshotStore) Save(ctx context.Context, cartID string, items []models.CartItem) error {
	return errors.New("connection refused")
}

func (failingSnapshotStore) Delete(ctx context.Context, cartID string) error {
	return errors.New("connection refused")
}

func TestStoreMutationsAndPricing(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemorySnapshotStore(), nil)

	store.AddItem(ctx, "c1", testProduct("a", 10), 2)
	store.AddItem(ctx, "c1", testProduct("b", 5), 1)

	assert.InDelta(t, 25.0, store.Subtotal(ctx, "c1"), 1e-9)
	assert.InDelta(t, 25.0, store.Total(ctx, "c1"), 1e-9)
	assert.Equal(t, 3, store.ItemCount(ctx, "c1"))

	store.ApplyCoupon(ctx, "c1", models.Coupon{Code: "ESTATE5", DiscountType: models.DiscountFixed, Value: 5})
	assert.InDelta(t, 20.0, store.Total(ctx, "c1"), 1e-9)

	store.RemoveCoupon(ctx, "c1")
	assert.InDelta(t, 25.0, store.Total(ctx, "c1"), 1e-9)

	store.UpdateQuantity(ctx, "c1", "a", 1)
	assert.InDelta(t, 15.0, store.Subtotal(ctx, "c1"), 1e-9)

	store.RemoveItem(ctx, "c1", "b")
	require.Len(t, store.Items(ctx, "c1"), 1)
}

func TestStoreCartsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemorySnapshotStore(), nil)

	store.AddItem(ctx, "c1", testProduct("a", 10), 1)
	assert.Empty(t, store.Items(ctx, "c2"))
}

func TestStoreClearDropsItemsAndCoupon(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemorySnapshotStore(), nil)

	store.AddItem(ctx, "c1", testProduct("a", 10), 2)
	store.ApplyCoupon(ctx, "c1", models.Coupon{Code: "ESTATE5", DiscountType: models.DiscountFixed, Value: 5})

	store.Clear(ctx, "c1")

	assert.Empty(t, store.Items(ctx, "c1"))
	assert.Nil(t, store.Coupon(ctx, "c1"))
	assert.Zero(t, store.Total(ctx, "c1"))
}

func TestStorePersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	snapshots := NewMemorySnapshotStore()

	first := NewStore(snapshots, nil)
	first.AddItem(ctx, "c1", testProduct("a", 10), 2)
	first.ApplyCoupon(ctx, "c1", models.Coupon{Code: "ESTATE5", DiscountType: models.DiscountFixed, Value: 5})

	// A fresh store sees the persisted items but never the coupon.
	second := NewStore(snapshots, nil)
	items := second.Items(ctx, "c1")
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Nil(t, second.Coupon(ctx, "c1"))
}

func TestStoreCorruptSnapshotDegradesToEmptyCart(t *testing.T) {
	ctx := context.Background()
	snapshots := NewMemorySnapshotStore()
	snapshots.Put("c1", []byte("{definitely not json"))

	store := NewStore(snapshots, nil)
	assert.Empty(t, store.Items(ctx, "c1"))

	// The cart stays usable after recovery.
	store.AddItem(ctx, "c1", testProduct("a", 10), 1)
	assert.Len(t, store.Items(ctx, "c1"), 1)
}

func TestStoreSnapshotFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	store := NewStore(failingSnapshotStore{}, nil)

	// Mutations must not surface persistence errors.
	items := store.AddItem(ctx, "c1", testProduct("a", 10), 2)
	require.Len(t, items, 1)
	store.UpdateQuantity(ctx, "c1", "a", 5)
	store.Clear(ctx, "c1")
	assert.Empty(t, store.Items(ctx, "c1"))
}

func TestStoreNotifiesObserverOnAdd(t *testing.T) {
	ctx := context.Background()
	var notified []string
	store := NewStore(NewMemorySnapshotStore(), func(cartID string) {
		notified = append(notified, cartID)
	})

	store.AddItem(ctx, "c1", testProduct("a", 10), 1)
	store.RemoveItem(ctx, "c1", "a")

	// Only AddItem notifies.
	assert.Equal(t, []string{"c1"}, notified)
}
