package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PizzaType is one row of pizza_types.
type PizzaType struct {
	ID          string
	Name        string
	Category    string
	Description string
}

// PriceEntry is one row of pizzas: the price of a pizza type in one size.
type PriceEntry struct {
	PizzaTypeID string
	Size        string
	Price       decimal.Decimal
}

// Pizza is a PizzaType with its size -> price mapping, as served to the storefront.
// swagger:model Pizza
type Pizza struct {
	ID          string                     `json:"id"          example:"bbq_ckn"`
	Name        string                     `json:"name"        example:"The Barbecue Chicken Pizza"`
	Category    string                     `json:"category"    example:"Chicken"`
	Description string                     `json:"description" example:"Barbecued Chicken, Red Peppers, Green Peppers, Tomatoes, Red Onions, Barbecue Sauce"`
	Image       string                     `json:"image"       example:"/public/pizzas/bbq_ckn.webp"`
	Sizes       map[string]decimal.Decimal `json:"sizes"`
}

// ImagePath is where the static server exposes the picture of a pizza type.
func ImagePath(pizzaTypeID string) string {
	return fmt.Sprintf("/public/pizzas/%s.webp", pizzaTypeID)
}

func newPizza(t PizzaType, sizes map[string]decimal.Decimal) Pizza {
	if sizes == nil {
		sizes = map[string]decimal.Decimal{}
	}
	return Pizza{
		ID:          t.ID,
		Name:        t.Name,
		Category:    t.Category,
		Description: t.Description,
		Image:       ImagePath(t.ID),
		Sizes:       sizes,
	}
}
