package order

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidOrder = errors.New("cart must be a non-empty list of pizzas")
	ErrInvalidItem  = errors.New("every cart item needs a pizza id and a size")
)

// Normalize collapses repeated cart lines into one Line per (pizza type, size).
// Sizes are compared case-insensitively. Lines come out in first-seen order.
func Normalize(cart []CartLine) ([]Line, error) {
	if len(cart) == 0 {
		return nil, ErrInvalidOrder
	}

	idx := make(map[string]int, len(cart))
	lines := make([]Line, 0, len(cart))
	for i, cl := range cart {
		id := strings.TrimSpace(string(cl.Pizza.ID))
		size := strings.ToLower(strings.TrimSpace(cl.Size))
		if id == "" || size == "" {
			return nil, fmt.Errorf("%w (item %d)", ErrInvalidItem, i)
		}

		l := Line{PizzaTypeID: id, Size: size, Quantity: 1}
		if at, ok := idx[l.PizzaID()]; ok {
			lines[at].Quantity++
			continue
		}
		idx[l.PizzaID()] = len(lines)
		lines = append(lines, l)
	}
	return lines, nil
}
