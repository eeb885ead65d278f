package order

import "github.com/shopspring/decimal"

// Order is the header row of orders.
type Order struct {
	ID   int64  `json:"orderId"`
	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM:SS, 24h
}

// Line is a normalized cart line: one pizza type in one size, with its quantity.
type Line struct {
	PizzaTypeID string
	Size        string // lowercase
	Quantity    int
}

// PizzaID is the order_details.pizza_id composite for the line.
func (l Line) PizzaID() string { return l.PizzaTypeID + "_" + l.Size }

// Item is an order detail joined with its price and pizza type.
type Item struct {
	PizzaTypeID string          `json:"pizzaTypeId"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"` // Quantity * Price
	Image       string          `json:"image"`
}

// Summary is an order header with the sum of its line totals.
type Summary struct {
	Order
	Total decimal.Decimal `json:"total"`
}

// Receipt is a full order as returned by the read endpoints.
type Receipt struct {
	Order Summary `json:"order"`
	Items []Item  `json:"orderItems"`
}
