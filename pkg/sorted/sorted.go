// Package sorted provides an insertion-ordered container whose sorted view is
// built lazily and cached until the sort order changes.
package sorted

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	// ErrInvalidSortOrder is returned for malformed sort orders.
	ErrInvalidSortOrder = errors.New("sorted: invalid sort order")
	// ErrTypeMismatch is returned when two values of one key differ in type.
	ErrTypeMismatch = errors.New("sorted: key value types do not match")
	// ErrUnsupportedSortKey is returned when a key yields no comparable value.
	ErrUnsupportedSortKey = errors.New("sorted: do not know how to sort on key")
)

// Sortable is implemented by elements that expose named fields for sorting.
// Unknown keys return the zero Value.
type Sortable interface {
	SortValue(key string) Value
}

// Option customises a Container.
type Option func(*options)

type options struct {
	lang language.Tag
}

// WithLanguage selects the collation used for string keys.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.lang = tag
	}
}

// orderCache holds the sorted view. It is either unbuilt or built with the
// result of the last successful sort.
type orderCache[T any] struct {
	built bool
	items []T
}

// Container keeps items in insertion order and serves them sorted.
type Container[T Sortable] struct {
	items    []T
	order    SortOrder
	cache    orderCache[T]
	collator *collate.Collator
}

// New creates an empty container sorted by order.
func New[T Sortable](order SortOrder, opts ...Option) (*Container[T], error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}
	config := &options{lang: language.English}
	for _, opt := range opts {
		opt(config)
	}
	return &Container[T]{
		order:    order,
		collator: collate.New(config.lang),
	}, nil
}

// SortOrder returns the active order.
func (c *Container[T]) SortOrder() SortOrder {
	return c.order
}

// SetSortOrder replaces the active order. Setting an order equal to the
// current one keeps the cached view.
func (c *Container[T]) SetSortOrder(order SortOrder) error {
	if order == c.order {
		return nil
	}
	if err := order.Validate(); err != nil {
		return err
	}
	c.order = order
	c.Invalidate()
	return nil
}

// Add appends item to raw storage. The cached view is left alone.
func (c *Container[T]) Add(item T) {
	c.items = append(c.items, item)
}

// Invalidate drops the cached view so the next read rebuilds it.
func (c *Container[T]) Invalidate() {
	c.cache = orderCache[T]{}
}

// Built reports whether a cached view currently exists.
func (c *Container[T]) Built() bool {
	return c.cache.built
}

// Len returns the number of stored items.
func (c *Container[T]) Len() int {
	return len(c.items)
}

// Items returns a copy of raw storage in insertion order.
func (c *Container[T]) Items() []T {
	return append([]T(nil), c.items...)
}

// Find returns the first stored item, in insertion order, matching pred.
func (c *Container[T]) Find(pred func(T) bool) (T, bool) {
	for _, item := range c.items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns every stored item matching pred, in insertion order.
func (c *Container[T]) Filter(pred func(T) bool) []T {
	var out []T
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Sorted returns the cached sorted view, building it first if needed. The
// returned slice is shared with the cache and must not be modified. When the
// build fails the previous state is kept.
func (c *Container[T]) Sorted() ([]T, error) {
	if c.cache.built {
		return c.cache.items, nil
	}
	if err := c.checkKinds(); err != nil {
		return nil, err
	}
	out := make([]T, len(c.items))
	copy(out, c.items)
	sort.SliceStable(out, func(i, j int) bool {
		return c.compare(out[i], out[j]) < 0
	})
	c.cache = orderCache[T]{built: true, items: out}
	return out, nil
}

// checkKinds verifies every item yields a comparable value of one kind for
// the active key.
func (c *Container[T]) checkKinds() error {
	key := c.order.Key
	var first Value
	for i, item := range c.items {
		v := item.SortValue(key)
		if !v.IsValid() {
			return fmt.Errorf("%w `%s`", ErrUnsupportedSortKey, key)
		}
		if i == 0 {
			first = v
			continue
		}
		if v.kind != first.kind {
			return fmt.Errorf("%w: key %q has %s %s and %s %s", ErrTypeMismatch, key,
				first.kind, first.describe(), v.kind, v.describe())
		}
	}
	return nil
}

// ForEach calls fn for each item in sorted order.
func (c *Container[T]) ForEach(fn func(item T, index int)) error {
	items, err := c.Sorted()
	if err != nil {
		return err
	}
	for i, item := range items {
		fn(item, i)
	}
	return nil
}

// Map collects fn(item) for every item of c in sorted order.
func Map[T Sortable, R any](c *Container[T], fn func(T) R) ([]R, error) {
	items, err := c.Sorted()
	if err != nil {
		return nil, err
	}
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out, nil
}

func (c *Container[T]) compare(a, b T) int {
	key := c.order.Key
	va, vb := a.SortValue(key), b.SortValue(key)
	var r int
	switch va.kind {
	case KindString:
		r = c.collator.CompareString(va.str, vb.str)
	case KindNumber:
		switch d := va.num - vb.num; {
		case d < 0:
			r = -1
		case d > 0:
			r = 1
		}
	case KindTime:
		r = va.at.Compare(vb.at)
	}
	return r * c.order.Direction
}
