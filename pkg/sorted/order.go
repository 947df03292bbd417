package sorted

import (
	"fmt"
	"strings"
)

const (
	// Ascending sorts smallest first.
	Ascending = 1
	// Descending sorts largest first.
	Descending = -1
)

// SortOrder names the key to sort on and the direction to sort in.
type SortOrder struct {
	Key       string `json:"key"`
	Direction int    `json:"direction"`
}

// By is shorthand for an ascending SortOrder on key.
func By(key string) SortOrder {
	return SortOrder{Key: key, Direction: Ascending}
}

// Reverse returns the order with its direction flipped.
func (o SortOrder) Reverse() SortOrder {
	o.Direction = -o.Direction
	return o
}

// Validate rejects orders without a key or with a direction other than
// Ascending or Descending.
func (o SortOrder) Validate() error {
	if strings.TrimSpace(o.Key) == "" {
		return fmt.Errorf("%w: key is required", ErrInvalidSortOrder)
	}
	if o.Direction != Ascending && o.Direction != Descending {
		return fmt.Errorf("%w: direction must be 1 or -1, got %d", ErrInvalidSortOrder, o.Direction)
	}
	return nil
}

// String renders the order as key:asc or key:desc.
func (o SortOrder) String() string {
	if o.Direction == Descending {
		return o.Key + ":desc"
	}
	return o.Key + ":asc"
}

// ParseSortOrder accepts "key", "key:asc", "key:desc", "+key" and "-key".
func ParseSortOrder(raw string) (SortOrder, error) {
	raw = strings.TrimSpace(raw)
	order := SortOrder{Direction: Ascending}
	switch {
	case strings.HasPrefix(raw, "-"):
		order.Direction = Descending
		raw = raw[1:]
	case strings.HasPrefix(raw, "+"):
		raw = raw[1:]
	}
	if key, dir, ok := strings.Cut(raw, ":"); ok {
		raw = key
		switch strings.ToLower(strings.TrimSpace(dir)) {
		case "asc", "ascending", "1", "+1":
			order.Direction = Ascending
		case "desc", "descending", "-1":
			order.Direction = Descending
		default:
			return SortOrder{}, fmt.Errorf("%w: unknown direction %q", ErrInvalidSortOrder, dir)
		}
	}
	order.Key = strings.TrimSpace(raw)
	if err := order.Validate(); err != nil {
		return SortOrder{}, err
	}
	return order, nil
}
