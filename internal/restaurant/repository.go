package restaurant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Repository interface {
	Create(ctx context.Context, r Restaurant) (Restaurant, error)
	FindAll(ctx context.Context) ([]Restaurant, error)
	FindByID(ctx context.Context, id uuid.UUID) (Restaurant, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Restaurant, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateParams) (Restaurant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const restaurantColumns = "id, owner_id, name, address, email, phone, categories, created_at, updated_at"

func scanRestaurant(row interface{ Scan(...any) error }) (Restaurant, error) {
	var r Restaurant
	err := row.Scan(
		&r.ID, &r.OwnerID, &r.Name, &r.Address, &r.Email, &r.Phone,
		pq.Array(&r.Categories), &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func (r *repository) Create(ctx context.Context, rest Restaurant) (Restaurant, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO restaurants (id, owner_id, name, address, email, phone, categories)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+restaurantColumns,
		rest.ID, rest.OwnerID, rest.Name, rest.Address, rest.Email, rest.Phone,
		pq.Array(rest.Categories),
	)
	return scanRestaurant(row)
}

func (r *repository) FindAll(ctx context.Context) ([]Restaurant, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rest)
	}
	return result, rows.Err()
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (Restaurant, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id)

	rest, err := scanRestaurant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Restaurant{}, ErrRestaurantNotFound
	}
	return rest, err
}

func (r *repository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Restaurant, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants WHERE owner_id = $1 ORDER BY created_at DESC`,
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rest)
	}
	return result, rows.Err()
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (Restaurant, error) {
	sets := []string{"updated_at = now()"}
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
	if params.Address != nil {
		add("address", *params.Address)
	}
	if params.Email != nil {
		add("email", *params.Email)
	}
	if params.Phone != nil {
		add("phone", *params.Phone)
	}
	if params.Categories != nil {
		add("categories", pq.Array(*params.Categories))
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE restaurants SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), arg, restaurantColumns,
	)

	rest, err := scanRestaurant(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return Restaurant{}, ErrRestaurantNotFound
	}
	return rest, err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRestaurantNotFound
	}
	return nil
}
