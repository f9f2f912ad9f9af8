package database

import (
	"context"
	"fmt"

	"github.com/velora-store/velora/internal/models"
)

// OrderRepository is the order-creation collaborator. The number and total
// it returns are authoritative: pricing computed upstream is display-only.
type OrderRepository struct {
	db *DB
}

func NewOrderRepository(db *DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists the order and its lines in a single transaction and
// returns the stored order with its assigned number.
func (r *OrderRepository) Create(ctx context.Context, form models.CheckoutForm, items []models.CartItem, coupon *models.Coupon, subtotal, total float64) (models.Order, error) {
	if len(items) == 0 {
		return models.Order{}, fmt.Errorf("cannot create an order from an empty cart")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	couponCode := ""
	if coupon != nil {
		couponCode = coupon.Code
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO orders (number, customer_name, customer_phone, delivery_method, coupon_code, subtotal, total, status)
		VALUES ('', ?, ?, ?, ?, ?, ?, ?)`,
		form.Name, form.Phone, form.DeliveryMethod, couponCode, subtotal, total, models.OrderStatusPending,
	)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to read order id: %w", err)
	}

	// The order number is derived from the row id so it is unique without
	// a second sequence.
	number := fmt.Sprintf("VLR-%05d", id)
	if _, err := tx.ExecContext(ctx, `UPDATE orders SET number = ? WHERE id = ?`, number, id); err != nil {
		return models.Order{}, fmt.Errorf("failed to assign order number: %w", err)
	}

	for _, item := range items {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, name, quantity, price)
			VALUES (?, ?, ?, ?, ?)`,
			id, item.Product.ID, item.Product.Name, item.Quantity, item.Product.Price,
		)
		if err != nil {
			return models.Order{}, fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Order{}, fmt.Errorf("failed to commit order: %w", err)
	}

	return models.Order{
		ID:             id,
		Number:         number,
		CustomerName:   form.Name,
		CustomerPhone:  form.Phone,
		DeliveryMethod: form.DeliveryMethod,
		CouponCode:     couponCode,
		Subtotal:       subtotal,
		Total:          total,
		Status:         models.OrderStatusPending,
	}, nil
}
