package item

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, i Item) (Item, error)
	FindByID(ctx context.Context, id uuid.UUID) (Item, error)
	FindAvailable(ctx context.Context) ([]Item, error)
	FindForSale(ctx context.Context) ([]Item, error)
	FindFree(ctx context.Context) ([]Item, error)
	FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]Item, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Item, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateParams) (Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const itemColumns = `id, owner_id, restaurant_id, name, description, category,
	quantity, sold, donated, is_free, price, discounted_price, is_available,
	pickup_start_time, pickup_end_time, photo, low_stock_threshold,
	last_updated, created_at`

func scanItem(row interface{ Scan(...any) error }) (Item, error) {
	var i Item
	err := row.Scan(
		&i.ID, &i.OwnerID, &i.RestaurantID, &i.Name, &i.Description, &i.Category,
		&i.Quantity, &i.Sold, &i.Donated, &i.IsFree, &i.Price, &i.DiscountedPrice,
		&i.IsAvailable, &i.PickupStartTime, &i.PickupEndTime, &i.Photo,
		&i.LowStockThreshold, &i.LastUpdated, &i.CreatedAt,
	)
	return i, err
}

func (r *repository) Create(ctx context.Context, i Item) (Item, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO items (
			id, owner_id, restaurant_id, name, description, category,
			quantity, is_free, price, discounted_price, is_available,
			pickup_start_time, pickup_end_time, photo, low_stock_threshold
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		RETURNING `+itemColumns,
		i.ID, i.OwnerID, i.RestaurantID, i.Name, i.Description, i.Category,
		i.Quantity, i.IsFree, i.Price, i.DiscountedPrice, i.IsAvailable,
		i.PickupStartTime, i.PickupEndTime, i.Photo, i.LowStockThreshold,
	)
	return scanItem(row)
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (Item, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = $1`, id)

	i, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Item{}, ErrItemNotFound
	}
	return i, err
}

func (r *repository) queryItems(ctx context.Context, where string, args ...any) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items `+where+` ORDER BY created_at DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func (r *repository) FindAvailable(ctx context.Context) ([]Item, error) {
	return r.queryItems(ctx, `WHERE is_available = true AND quantity > 0`)
}

func (r *repository) FindForSale(ctx context.Context) ([]Item, error) {
	return r.queryItems(ctx, `WHERE is_available = true AND is_free = false AND quantity > 0`)
}

func (r *repository) FindFree(ctx context.Context) ([]Item, error) {
	return r.queryItems(ctx, `WHERE is_available = true AND is_free = true AND quantity > 0`)
}

func (r *repository) FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]Item, error) {
	return r.queryItems(ctx, `WHERE restaurant_id = $1`, restaurantID)
}

func (r *repository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Item, error) {
	return r.queryItems(ctx, `WHERE owner_id = $1`, ownerID)
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (Item, error) {
	sets := []string{"last_updated = now()"}
	args := []any{}
	arg := 1

	add := func(col string, val any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, arg))
		args = append(args, val)
		arg++
	}

	if params.Name != nil {
		add("name", *params.Name)
	}
	if params.Description != nil {
		add("description", *params.Description)
	}
	if params.Category != nil {
		add("category", *params.Category)
	}
	if params.Quantity != nil {
		add("quantity", *params.Quantity)
	}
	if params.IsFree != nil {
		add("is_free", *params.IsFree)
	}
	if params.Price != nil {
		add("price", *params.Price)
	}
	if params.DiscountedPrice != nil {
		add("discounted_price", *params.DiscountedPrice)
	}
	if params.IsAvailable != nil {
		add("is_available", *params.IsAvailable)
	}
	if params.PickupStartTime != nil {
		add("pickup_start_time", *params.PickupStartTime)
	}
	if params.PickupEndTime != nil {
		add("pickup_end_time", *params.PickupEndTime)
	}
	if params.Photo != nil {
		add("photo", *params.Photo)
	}
	if params.LowStockThreshold != nil {
		add("low_stock_threshold", *params.LowStockThreshold)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE items SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), arg, itemColumns,
	)

	i, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return Item{}, ErrItemNotFound
	}
	return i, err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrItemNotFound
	}
	return nil
}
