// Package catalog reads pizza types and prices and selects the pizza of the day.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/MikeMC777/pizzeria-api/internal/store"
)

type Repository interface {
	ListTypes(ctx context.Context) ([]PizzaType, error)
	ListPrices(ctx context.Context) ([]PriceEntry, error)
	PricesFor(ctx context.Context, pizzaTypeID string) ([]PriceEntry, error)
}

// DB is the part of *pgxpool.Pool the repository uses.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const (
	sqlListTypes = `
		SELECT pizza_type_id, name, category, ingredients
		FROM pizza_types
		ORDER BY pizza_type_id`

	sqlListPrices = `
		SELECT pizza_type_id, size, price::text
		FROM pizzas`

	sqlPricesFor = `
		SELECT pizza_type_id, size, price::text
		FROM pizzas
		WHERE pizza_type_id = $1`
)

type PGRepo struct {
	db      DB
	timeout time.Duration
}

func NewPGRepo(db DB, timeout time.Duration) *PGRepo {
	return &PGRepo{db: db, timeout: timeout}
}

func (r *PGRepo) ListTypes(ctx context.Context) ([]PizzaType, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, sqlListTypes)
	if err != nil {
		return nil, fmt.Errorf("query pizza types: %w", err)
	}
	defer rows.Close()

	var out []PizzaType
	for rows.Next() {
		var t PizzaType
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.Description); err != nil {
			return nil, fmt.Errorf("scan pizza type: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PGRepo) ListPrices(ctx context.Context) ([]PriceEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, sqlListPrices)
	if err != nil {
		return nil, fmt.Errorf("query prices: %w", err)
	}
	return scanPrices(rows)
}

func (r *PGRepo) PricesFor(ctx context.Context, pizzaTypeID string) ([]PriceEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, sqlPricesFor, pizzaTypeID)
	if err != nil {
		return nil, fmt.Errorf("query prices for %s: %w", pizzaTypeID, err)
	}
	return scanPrices(rows)
}

func scanPrices(rows pgx.Rows) ([]PriceEntry, error) {
	defer rows.Close()

	var out []PriceEntry
	for rows.Next() {
		var (
			p   PriceEntry
			raw string
		)
		if err := rows.Scan(&p.PizzaTypeID, &p.Size, &raw); err != nil {
			return nil, fmt.Errorf("scan price: %w", err)
		}
		price, err := store.Decimal(raw)
		if err != nil {
			return nil, err
		}
		p.Price = price
		out = append(out, p)
	}
	return out, rows.Err()
}
