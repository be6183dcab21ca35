package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"foodloop-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	// CreateOrderTx reserves stock and inserts the order in one transaction.
	// Returns ErrConflict when the stock guard loses the race.
	CreateOrderTx(ctx context.Context, o Order) error

	// CancelOrderTx reverses the order's reservation and marks it CANCELLED
	// in one transaction. Returns ErrOrderNotPending when the order is no
	// longer pending at commit time.
	CancelOrderTx(ctx context.Context, o Order) error

	FindByID(ctx context.Context, id uuid.UUID) (Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status OrderStatus) (Order, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Order, error)
	FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]Order, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `id, user_id, item_id, restaurant_id, order_type,
	quantity, total_price, status, pickup_time, notes, created_at`

func scanOrder(row interface{ Scan(...any) error }) (Order, error) {
	var o Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.ItemID, &o.RestaurantID, &o.OrderType,
		&o.Quantity, &o.TotalPrice, &o.Status, &o.PickupTime, &o.Notes,
		&o.CreatedAt,
	)
	return o, err
}

// counterColumn is the cumulative counter the reservation moves units into.
func counterColumn(t OrderType) string {
	if t == TypeClaim {
		return "donated"
	}
	return "sold"
}

func (r *repository) CreateOrderTx(ctx context.Context, o Order) error {
	log := logger.FromCtx(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Guarded decrement: the WHERE clause is the serialization point that
	// keeps quantity from ever going negative under concurrent requests.
	counter := counterColumn(o.OrderType)
	res, err := tx.ExecContext(ctx, fmt.Sprintf(`
		UPDATE items
		SET quantity = quantity - $1, %s = %s + $1, last_updated = now()
		WHERE id = $2 AND quantity >= $1`, counter, counter),
		o.Quantity, o.ItemID,
	)
	if err != nil {
		return fmt.Errorf("reserve stock: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reserve stock: %w", err)
	}
	if rows == 0 {
		log.Warn("reservation lost stock race",
			zap.String("item_id", o.ItemID.String()),
			zap.Int("quantity", o.Quantity),
		)
		return ErrConflict
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (
			id, user_id, item_id, restaurant_id, order_type,
			quantity, total_price, status, pickup_time, notes, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		o.ID, o.UserID, o.ItemID, o.RestaurantID, o.OrderType,
		o.Quantity, o.TotalPrice, o.Status, o.PickupTime, o.Notes, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	return tx.Commit()
}

func (r *repository) CancelOrderTx(ctx context.Context, o Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// The status guard makes a concurrent double-cancel lose here instead of
	// restoring stock twice.
	res, err := tx.ExecContext(ctx, `
		UPDATE orders SET status = $1
		WHERE id = $2 AND status = $3`,
		StatusCancelled, o.ID, StatusPending,
	)
	if err != nil {
		return fmt.Errorf("cancel order: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cancel order: %w", err)
	}
	if rows == 0 {
		return ErrOrderNotPending
	}

	counter := counterColumn(o.OrderType)
	_, err = tx.ExecContext(ctx, fmt.Sprintf(`
		UPDATE items
		SET quantity = quantity + $1, %s = %s - $1, last_updated = now()
		WHERE id = $2`, counter, counter),
		o.Quantity, o.ItemID,
	)
	if err != nil {
		return fmt.Errorf("restore stock: %w", err)
	}

	return tx.Commit()
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (Order, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Order{}, ErrOrderNotFound
	}
	return o, err
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status OrderStatus) (Order, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2 RETURNING `+orderColumns,
		status, id)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Order{}, ErrOrderNotFound
	}
	return o, err
}

func (r *repository) queryOrders(ctx context.Context, query string, args ...any) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *repository) FindByUser(ctx context.Context, userID uuid.UUID) ([]Order, error) {
	return r.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`,
		userID)
}

func (r *repository) FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]Order, error) {
	return r.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE restaurant_id = $1 ORDER BY created_at DESC`,
		restaurantID)
}

func (r *repository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Order, error) {
	return r.queryOrders(ctx, `
		SELECT `+orderSelectAlias+` FROM orders o
		JOIN items i ON i.id = o.item_id
		WHERE i.owner_id = $1
		ORDER BY o.created_at DESC`,
		ownerID)
}

const orderSelectAlias = `o.id, o.user_id, o.item_id, o.restaurant_id, o.order_type,
	o.quantity, o.total_price, o.status, o.pickup_time, o.notes, o.created_at`
