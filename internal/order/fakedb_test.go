package order

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MikeMC777/pizzeria-api/internal/catalog"
)

// fakeDB is an in-memory stand-in for the pool. It answers the repository's
// SQL constants and keeps transaction writes private until Commit.
type fakeDB struct {
	mu      sync.Mutex
	nextID  int64
	orders  map[int64]Order
	details map[int64][]detailRow
	pizzas  []pizzaRow
	types   map[string]catalog.PizzaType

	failDetailAt int   // 1-based detail insert that fails inside a tx; 0 = never
	rollbackErr  error // returned by Rollback
	queryErr     error // returned by Query/QueryRow on reads

	commits   int
	rollbacks int
}

type detailRow struct {
	pizzaID string
	qty     int
}

type pizzaRow struct {
	typeID string
	size   string
	price  string
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		nextID:  100,
		orders:  map[int64]Order{},
		details: map[int64][]detailRow{},
		pizzas: []pizzaRow{
			{typeID: "1", size: "M", price: "16.75"},
			{typeID: "1", size: "L", price: "20.75"},
			{typeID: "2", size: "L", price: "20.50"},
			{typeID: "3", size: "S", price: "9.00"},
		},
		types: map[string]catalog.PizzaType{
			"1": {ID: "1", Name: "The Pepperoni Pizza", Category: "Classic", Description: "Mozzarella Cheese, Pepperoni"},
			"2": {ID: "2", Name: "The Hawaiian Pizza", Category: "Classic", Description: "Sliced Ham, Pineapple"},
			"3": {ID: "3", Name: "The Greek Pizza", Category: "Veggie", Description: "Kalamata Olives, Feta Cheese"},
		},
	}
}

func (db *fakeDB) BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	return &fakeTx{db: db}, nil
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.queryErr != nil {
		return fakeRow{err: db.queryErr}
	}
	if sql != sqlOrderHeader {
		return fakeRow{err: fmt.Errorf("unexpected QueryRow: %s", sql)}
	}
	o, ok := db.orders[args[0].(int64)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{vals: []any{o.ID, o.Date, o.Time}}
}

func (db *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.queryErr != nil {
		return nil, db.queryErr
	}
	switch sql {
	case sqlOrderItems:
		ds := append([]detailRow(nil), db.details[args[0].(int64)]...)
		sort.Slice(ds, func(i, j int) bool { return ds[i].pizzaID < ds[j].pizzaID })
		var rows [][]any
		for _, d := range ds {
			p, ok := db.pizzaFor(d.pizzaID)
			if !ok {
				continue
			}
			t := db.types[p.typeID]
			rows = append(rows, []any{t.ID, t.Name, t.Category, t.Description, p.size, d.qty, p.price})
		}
		return &fakeRows{rows: rows}, nil
	case sqlListOrders, sqlListRecent:
		ids := make([]int64, 0, len(db.orders))
		for id := range db.orders {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		if sql == sqlListRecent {
			sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
			limit, offset := args[0].(int), args[1].(int)
			if offset > len(ids) {
				offset = len(ids)
			}
			ids = ids[offset:]
			if len(ids) > limit {
				ids = ids[:limit]
			}
		}
		var rows [][]any
		for _, id := range ids {
			o := db.orders[id]
			rows = append(rows, []any{o.ID, o.Date, o.Time})
		}
		return &fakeRows{rows: rows}, nil
	}
	return nil, fmt.Errorf("unexpected Query: %s", sql)
}

// pizzaFor resolves a detail's pizza_id the way sqlOrderItems joins it:
// pizza_type_id || '_' || lower(size).
func (db *fakeDB) pizzaFor(pizzaID string) (pizzaRow, bool) {
	for _, p := range db.pizzas {
		if p.typeID+"_"+strings.ToLower(p.size) == pizzaID {
			return p, true
		}
	}
	return pizzaRow{}, false
}

// insertOrder seeds a committed order directly.
func (db *fakeDB) insertOrder(o Order, ds ...detailRow) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.orders[o.ID] = o
	if len(ds) > 0 {
		db.details[o.ID] = ds
	}
}

type fakeTx struct {
	pgx.Tx
	db      *fakeDB
	order   *Order
	details []detailRow
	inserts int
	closed  bool
}

func (tx *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if sql != sqlInsertOrder {
		return fakeRow{err: fmt.Errorf("unexpected tx QueryRow: %s", sql)}
	}
	tx.db.mu.Lock()
	tx.db.nextID++
	id := tx.db.nextID
	tx.db.mu.Unlock()

	tx.order = &Order{ID: id, Date: args[0].(string), Time: args[1].(string)}
	return fakeRow{vals: []any{id}}
}

func (tx *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if sql != sqlInsertDetail {
		return pgconn.CommandTag{}, fmt.Errorf("unexpected Exec: %s", sql)
	}
	tx.inserts++
	if tx.db.failDetailAt == tx.inserts {
		return pgconn.CommandTag{}, errors.New(`insert or update on table "order_details" violates foreign key constraint`)
	}
	tx.details = append(tx.details, detailRow{pizzaID: args[1].(string), qty: args[2].(int)})
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (tx *fakeTx) Commit(ctx context.Context) error {
	if tx.closed {
		return pgx.ErrTxClosed
	}
	tx.closed = true
	tx.db.mu.Lock()
	defer tx.db.mu.Unlock()
	tx.db.commits++
	if tx.order != nil {
		tx.db.orders[tx.order.ID] = *tx.order
		tx.db.details[tx.order.ID] = tx.details
	}
	return nil
}

func (tx *fakeTx) Rollback(ctx context.Context) error {
	if tx.closed {
		return pgx.ErrTxClosed
	}
	tx.closed = true
	tx.db.mu.Lock()
	defer tx.db.mu.Unlock()
	tx.db.rollbacks++
	return tx.db.rollbackErr
}

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(dest, r.vals)
}

type fakeRows struct {
	pgx.Rows
	rows [][]any
	i    int
}

func (r *fakeRows) Next() bool {
	r.i++
	return r.i <= len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error { return assign(dest, r.rows[r.i-1]) }
func (r *fakeRows) Close()                 {}
func (r *fakeRows) Err() error             { return nil }

func assign(dest, vals []any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("scan: %d targets for %d values", len(dest), len(vals))
	}
	for i := range dest {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(vals[i]))
	}
	return nil
}
