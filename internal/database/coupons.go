package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/velora-store/velora/internal/models"
)

// ErrCouponNotFound marks a code that does not resolve to an active,
// unexpired coupon. The handler maps it to a user-facing rejection.
var ErrCouponNotFound = errors.New("coupon not found")

// CouponRepository is the server-side coupon validation collaborator: it
// resolves a normalized code to a discount descriptor or rejects it.
type CouponRepository struct {
	db *DB
}

func NewCouponRepository(db *DB) *CouponRepository {
	return &CouponRepository{db: db}
}

// GetByCode validates a coupon code. The code is normalized to upper case
// before lookup; inactive and expired coupons are treated as not found.
func (r *CouponRepository) GetByCode(ctx context.Context, code string) (models.Coupon, error) {
	normalized := models.NormalizeCouponCode(code)
	if normalized == "" {
		return models.Coupon{}, ErrCouponNotFound
	}

	var coupon models.Coupon
	err := r.db.QueryRowContext(ctx, `
		SELECT code, discount_type, value
		FROM coupons
		WHERE code = ?
		  AND active = TRUE
		  AND (expires_at IS NULL OR expires_at > NOW())`,
		normalized,
	).Scan(&coupon.Code, &coupon.DiscountType, &coupon.Value)
	if err == sql.ErrNoRows {
		return models.Coupon{}, ErrCouponNotFound
	}
	if err != nil {
		return models.Coupon{}, fmt.Errorf("failed to look up coupon: %w", err)
	}

	return coupon, nil
}
