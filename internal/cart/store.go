package cart

import (
	"context"
	"sync"

	"github.com/velora-store/velora/internal/logx"
	"github.com/velora-store/velora/internal/models"
)

// Store owns the in-memory cart state for every active session and wires
// persistence and observer notification around the pure engine functions.
// Each mutation builds a fresh item slice and swaps it in whole, then
// writes the snapshot fire-and-forget: a failed write is logged, never
// surfaced to the caller.
type Store struct {
	mu        sync.Mutex
	snapshots SnapshotStore
	onAdd     func(cartID string)
	carts     map[string]*cartState
}

type cartState struct {
	items  []models.CartItem
	coupon *models.Coupon
	loaded bool
}

// NewStore creates a Store backed by the given snapshot store. onAdd, if
// non-nil, is invoked after every successful AddItem (the UI uses it to
// open the cart panel).
func NewStore(snapshots SnapshotStore, onAdd func(cartID string)) *Store {
	return &Store{
		snapshots: snapshots,
		onAdd:     onAdd,
		carts:     make(map[string]*cartState),
	}
}

// Items returns the current lines of the cart, loading the persisted
// snapshot on first access. A missing or corrupt snapshot degrades to an
// empty cart.
func (s *Store) Items(ctx context.Context, cartID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(ctx, cartID).items
}

// Coupon returns the active coupon, or nil.
func (s *Store) Coupon(ctx context.Context, cartID string) *models.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(ctx, cartID).coupon
}

// AddItem merges the product into the cart and notifies the observer.
func (s *Store) AddItem(ctx context.Context, cartID string, product models.Product, quantity int) []models.CartItem {
	s.mu.Lock()
	st := s.state(ctx, cartID)
	st.items = AddItem(st.items, product, quantity)
	items := st.items
	s.persist(ctx, cartID, items)
	s.mu.Unlock()

	if s.onAdd != nil {
		s.onAdd(cartID)
	}
	return items
}

// RemoveItem drops the line for the given product id.
func (s *Store) RemoveItem(ctx context.Context, cartID, productID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(ctx, cartID)
	st.items = RemoveItem(st.items, productID)
	s.persist(ctx, cartID, st.items)
	return st.items
}

// UpdateQuantity sets a line's quantity; values below 1 leave the cart
// untouched.
func (s *Store) UpdateQuantity(ctx context.Context, cartID, productID string, quantity int) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(ctx, cartID)
	if quantity < 1 {
		return st.items
	}
	st.items = UpdateQuantity(st.items, productID, quantity)
	s.persist(ctx, cartID, st.items)
	return st.items
}

// Clear empties the cart and drops the active coupon along with the
// persisted snapshot.
func (s *Store) Clear(ctx context.Context, cartID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(ctx, cartID)
	st.items = nil
	st.coupon = nil
	if err := s.snapshots.Delete(ctx, cartID); err != nil {
		logx.Warn().Err(err).Str("cart_id", cartID).Msg("cart snapshot delete failed")
	}
}

// ApplyCoupon replaces the active coupon. The coupon is assumed to be
// already validated by the coupon collaborator and is never persisted.
func (s *Store) ApplyCoupon(ctx context.Context, cartID string, coupon models.Coupon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(ctx, cartID)
	st.coupon = &coupon
}

// RemoveCoupon clears the active coupon.
func (s *Store) RemoveCoupon(ctx context.Context, cartID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state(ctx, cartID).coupon = nil
}

// Subtotal prices the cart before any discount.
func (s *Store) Subtotal(ctx context.Context, cartID string) float64 {
	return Subtotal(s.Items(ctx, cartID))
}

// Total prices the cart with the active coupon applied.
func (s *Store) Total(ctx context.Context, cartID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(ctx, cartID)
	return Total(Subtotal(st.items), st.coupon)
}

// ItemCount counts quantities across all lines.
func (s *Store) ItemCount(ctx context.Context, cartID string) int {
	return ItemCount(s.Items(ctx, cartID))
}

// state returns the cart's in-memory state, hydrating it from the snapshot
// store on first access. Callers must hold s.mu.
func (s *Store) state(ctx context.Context, cartID string) *cartState {
	st, ok := s.carts[cartID]
	if !ok {
		st = &cartState{}
		s.carts[cartID] = st
	}
	if !st.loaded {
		items, err := s.snapshots.Load(ctx, cartID)
		if err != nil {
			logx.Warn().Err(err).Str("cart_id", cartID).Msg("cart snapshot load failed, starting empty")
			items = nil
		}
		st.items = items
		st.loaded = true
	}
	return st
}

// persist writes the snapshot best-effort. Callers must hold s.mu.
func (s *Store) persist(ctx context.Context, cartID string, items []models.CartItem) {
	if err := s.snapshots.Save(ctx, cartID, items); err != nil {
		logx.Warn().Err(err).Str("cart_id", cartID).Msg("cart snapshot save failed")
	}
}
