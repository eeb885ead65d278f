package store

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// prices and totals leave the API as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Decimal converts a NUMERIC column read as text (price::text) into a decimal.
// Every repository reads money through here.
func Decimal(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("numeric %q: %w", raw, err)
	}
	return d, nil
}
