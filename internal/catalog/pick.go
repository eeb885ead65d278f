package catalog

import (
	"errors"
	"time"
)

var ErrEmptyCatalog = errors.New("no pizzas available")

// DayNumber counts whole UTC days since the Unix epoch.
func DayNumber(t time.Time) int64 {
	secs := t.UTC().Unix()
	day := secs / 86400
	if secs < 0 && secs%86400 != 0 {
		day--
	}
	return day
}

// PickIndex returns day mod n, always in [0, n).
func PickIndex(day int64, n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyCatalog
	}
	idx := day % int64(n)
	if idx < 0 {
		idx += int64(n)
	}
	return int(idx), nil
}
