package catalog

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every pizza type with the prices of the sizes it is sold in.
// Types and prices are fetched concurrently and joined by pizza_type_id.
func (s *Service) List(ctx context.Context) ([]Pizza, error) {
	var (
		types  []PizzaType
		prices []PriceEntry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		types, err = s.repo.ListTypes(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		prices, err = s.repo.ListPrices(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byType := make(map[string]map[string]decimal.Decimal, len(types))
	for _, p := range prices {
		sizes, ok := byType[p.PizzaTypeID]
		if !ok {
			sizes = make(map[string]decimal.Decimal)
			byType[p.PizzaTypeID] = sizes
		}
		sizes[p.Size] = p.Price
	}

	out := make([]Pizza, 0, len(types))
	for _, t := range types {
		out = append(out, newPizza(t, byType[t.ID]))
	}
	return out, nil
}

// PizzaOfTheDay picks types[day mod len(types)] for the UTC day of now.
func (s *Service) PizzaOfTheDay(ctx context.Context, now time.Time) (Pizza, error) {
	types, err := s.repo.ListTypes(ctx)
	if err != nil {
		return Pizza{}, err
	}
	idx, err := PickIndex(DayNumber(now), len(types))
	if err != nil {
		return Pizza{}, err
	}
	pick := types[idx]

	prices, err := s.repo.PricesFor(ctx, pick.ID)
	if err != nil {
		return Pizza{}, err
	}
	sizes := make(map[string]decimal.Decimal, len(prices))
	for _, p := range prices {
		sizes[p.Size] = p.Price
	}
	return newPizza(pick, sizes), nil
}
