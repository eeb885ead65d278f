package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/MikeMC777/pizzeria-api/internal/catalog"
	"github.com/MikeMC777/pizzeria-api/internal/store"
)

var ErrNotFound = errors.New("order not found")

type Repository interface {
	Create(ctx context.Context, o Order, lines []Line) (int64, error)
	GetByID(ctx context.Context, id int64) (*Order, []Item, error)
	List(ctx context.Context) ([]Order, error)
	ListRecent(ctx context.Context, limit, offset int) ([]Order, error)
}

// DB is the part of *pgxpool.Pool the repository uses.
type DB interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	sqlInsertOrder = `
		INSERT INTO orders (date, time)
		VALUES ($1, $2)
		RETURNING order_id`

	sqlInsertDetail = `
		INSERT INTO order_details (order_id, pizza_id, quantity)
		VALUES ($1, $2, $3)`

	sqlOrderHeader = `
		SELECT order_id, date::text, time::text
		FROM orders WHERE order_id = $1`

	sqlOrderItems = `
		SELECT t.pizza_type_id, t.name, t.category, t.ingredients, p.size, d.quantity, p.price::text
		FROM order_details d
		JOIN pizzas p ON p.pizza_type_id || '_' || lower(p.size) = d.pizza_id
		JOIN pizza_types t ON t.pizza_type_id = p.pizza_type_id
		WHERE d.order_id = $1
		ORDER BY d.pizza_id`

	sqlListOrders = `
		SELECT order_id, date::text, time::text
		FROM orders
		ORDER BY order_id`

	sqlListRecent = `
		SELECT order_id, date::text, time::text
		FROM orders
		ORDER BY order_id DESC
		LIMIT $1 OFFSET $2`
)

type PGRepo struct {
	db      DB
	timeout time.Duration
	log     *slog.Logger
}

func NewPGRepo(db DB, timeout time.Duration, log *slog.Logger) *PGRepo {
	return &PGRepo{db: db, timeout: timeout, log: log}
}

// Create writes the header and one detail row per line in a single transaction
// and returns the generated order id. Nothing is persisted unless every insert
// succeeds.
func (r *PGRepo) Create(ctx context.Context, o Order, lines []Line) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		if err := tx.Rollback(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			r.log.Error("rollback order insert", "error", err)
		}
	}()

	var id int64
	if err := tx.QueryRow(ctx, sqlInsertOrder, o.Date, o.Time).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	for _, l := range lines {
		if _, err := tx.Exec(ctx, sqlInsertDetail, id, l.PizzaID(), l.Quantity); err != nil {
			return 0, fmt.Errorf("insert detail %s: %w", l.PizzaID(), err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	committed = true
	return id, nil
}

// GetByID loads the header and the priced line items concurrently.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Order, []Item, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var (
		o     Order
		items []Item
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := r.db.QueryRow(gctx, sqlOrderHeader, id).Scan(&o.ID, &o.Date, &o.Time)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("select order %d: %w", id, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		items, err = r.items(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return &o, items, nil
}

func (r *PGRepo) items(ctx context.Context, id int64) ([]Item, error) {
	rows, err := r.db.Query(ctx, sqlOrderItems, id)
	if err != nil {
		return nil, fmt.Errorf("select items of %d: %w", id, err)
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		var (
			it  Item
			raw string
		)
		if err := rows.Scan(&it.PizzaTypeID, &it.Name, &it.Category, &it.Description, &it.Size, &it.Quantity, &raw); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		price, err := store.Decimal(raw)
		if err != nil {
			return nil, err
		}
		it.Price = price
		it.Total = price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		it.Image = catalog.ImagePath(it.PizzaTypeID)
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *PGRepo) List(ctx context.Context) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, sqlListOrders)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return scanOrders(rows)
}

func (r *PGRepo) ListRecent(ctx context.Context, limit, offset int) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, sqlListRecent, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list recent orders: %w", err)
	}
	return scanOrders(rows)
}

func scanOrders(rows pgx.Rows) ([]Order, error) {
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.Date, &o.Time); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
