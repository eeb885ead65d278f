package order

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

var errPizzaID = errors.New("pizza id must be a string or an integer")

// PizzaID accepts a pizza type id sent either as a JSON string or a JSON number.
type PizzaID string

func (p *PizzaID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*p = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*p = PizzaID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errPizzaID
	}
	id, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		return errPizzaID
	}
	*p = PizzaID(strconv.FormatInt(id, 10))
	return nil
}

// PizzaRef is the pizza selected by a cart line.
type PizzaRef struct {
	ID PizzaID `json:"id" swaggertype:"string" example:"bbq_ckn"`
}

// CartLine is one unit of a pizza the customer wants.
// swagger:model CartLine
type CartLine struct {
	Pizza PizzaRef `json:"pizza"`
	Size  string   `json:"size" example:"M"`
}

// CreateOrderRequest payload for checkout.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	Cart []CartLine `json:"cart"`
}

// CreateOrderResponse carries the id assigned by the store.
// swagger:model CreateOrderResponse
type CreateOrderResponse struct {
	OrderID int64 `json:"orderId" example:"21351"`
}
