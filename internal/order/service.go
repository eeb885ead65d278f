// Package order normalizes carts, writes orders transactionally and reads
// them back with their priced line items.
package order

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// PageSize is the number of orders per page of past orders.
const PageSize = 20

var (
	ErrCreationFailed = errors.New("failed to create order")
	ErrInvalidPage    = errors.New("page must be a positive integer")
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create validates and normalizes the cart, then stores the order stamped
// with now. Validation errors are returned before the store is touched.
func (s *Service) Create(ctx context.Context, cart []CartLine, now time.Time) (int64, error) {
	lines, err := Normalize(cart)
	if err != nil {
		return 0, err
	}

	header := Order{Date: now.Format(dateLayout), Time: now.Format(timeLayout)}
	id, err := s.repo.Create(ctx, header, lines)
	if err != nil {
		s.log.ErrorContext(ctx, "create order", "error", err, "lines", len(lines))
		return 0, ErrCreationFailed
	}
	s.log.InfoContext(ctx, "order created", "order_id", id, "lines", len(lines))
	return id, nil
}

// Get returns the order with its items and total. An order without details
// is valid and has a zero total.
func (s *Service) Get(ctx context.Context, id int64) (*Receipt, error) {
	o, items, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.ErrorContext(ctx, "get order", "order_id", id, "error", err)
		}
		return nil, err
	}
	if items == nil {
		items = []Item{}
	}
	return &Receipt{
		Order: Summary{Order: *o, Total: Total(items)},
		Items: items,
	}, nil
}

// Total sums the line totals.
func Total(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Total)
	}
	return sum
}

func (s *Service) List(ctx context.Context) ([]Order, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "list orders", "error", err)
		return nil, err
	}
	return out, nil
}

// PastOrders returns page (1-based) of orders, newest first.
func (s *Service) PastOrders(ctx context.Context, page int) ([]Order, error) {
	if page < 1 || page > math.MaxInt/PageSize {
		return nil, ErrInvalidPage
	}
	out, err := s.repo.ListRecent(ctx, PageSize, (page-1)*PageSize)
	if err != nil {
		s.log.ErrorContext(ctx, "list past orders", "page", page, "error", err)
		return nil, err
	}
	return out, nil
}
