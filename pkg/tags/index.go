package tags

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"tableflip.dev/picklist/pkg/colorhash"
	"tableflip.dev/picklist/pkg/events"
	"tableflip.dev/picklist/pkg/sorted"
)

// DefaultSortOrder sorts tags by how many lists use them, least used first.
var DefaultSortOrder = sorted.SortOrder{Key: "count", Direction: sorted.Ascending}

// ErrUnknownTag is returned when a tag name is not in the index.
var ErrUnknownTag = errors.New("tags: unknown tag")

// Property names a boolean Tag field usable with AllSatisfy.
type Property string

const (
	// PropertyActive is the Tag.Active flag.
	PropertyActive Property = "active"
)

// Option customises an Index.
type Option func(*indexOptions)

type indexOptions struct {
	component events.ComponentID
	order     sorted.SortOrder
	lang      language.Tag
	hidden    []string
	newID     func() string
}

// WithHidden makes tags with the given names start out inactive.
func WithHidden(names ...string) Option {
	return func(o *indexOptions) {
		o.hidden = append(o.hidden, names...)
	}
}

// WithSortOrder overrides DefaultSortOrder.
func WithSortOrder(order sorted.SortOrder) Option {
	return func(o *indexOptions) {
		o.order = order
	}
}

// WithLanguage selects the collation used when sorting by name.
func WithLanguage(tag language.Tag) Option {
	return func(o *indexOptions) {
		o.lang = tag
	}
}

// WithIDs replaces the tag ID generator.
func WithIDs(fn func() string) Option {
	return func(o *indexOptions) {
		o.newID = fn
	}
}

// WithComponent sets the component ID stamped on emitted events.
func WithComponent(id events.ComponentID) Option {
	return func(o *indexOptions) {
		o.component = id
	}
}

// Index owns every Tag. Tags are looked up by exact, case-sensitive name.
type Index struct {
	component events.ComponentID
	bus       *events.Bus

	tags   *sorted.Container[*Tag]
	byName map[string]*Tag
	byID   map[string]*Tag
	hidden map[string]struct{}
	newID  func() string
}

// NewIndex creates an empty index publishing on bus.
func NewIndex(bus *events.Bus, opts ...Option) (*Index, error) {
	config := &indexOptions{
		component: events.ComponentID("tags"),
		order:     DefaultSortOrder,
		lang:      language.English,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(config)
	}
	container, err := sorted.New[*Tag](config.order, sorted.WithLanguage(config.lang))
	if err != nil {
		return nil, fmt.Errorf("tags: %w", err)
	}
	hidden := make(map[string]struct{}, len(config.hidden))
	for _, name := range config.hidden {
		hidden[name] = struct{}{}
	}
	return &Index{
		component: config.component,
		bus:       bus,
		tags:      container,
		byName:    make(map[string]*Tag),
		byID:      make(map[string]*Tag),
		hidden:    hidden,
		newID:     config.newID,
	}, nil
}

// AddOrBump returns the tag called name, creating it with a count of one or
// incrementing the count of the existing one.
func (x *Index) AddOrBump(name string) *Tag {
	if tag, ok := x.byName[name]; ok {
		tag.Count++
		x.tags.Invalidate()
		return mustCount(tag)
	}
	_, hidden := x.hidden[name]
	tag := &Tag{
		ID:     x.newID(),
		Name:   name,
		Count:  1,
		Active: !hidden,
		RGB:    colorhash.Colorize(name),
	}
	x.byName[name] = tag
	x.byID[tag.ID] = tag
	x.tags.Add(tag)
	x.tags.Invalidate()
	return tag
}

// Get returns the tag with the given ID.
func (x *Index) Get(id string) (*Tag, bool) {
	tag, ok := x.byID[id]
	return tag, ok
}

// Lookup returns the tag with the given name.
func (x *Index) Lookup(name string) (*Tag, bool) {
	tag, ok := x.byName[name]
	return tag, ok
}

// Len returns the number of tags.
func (x *Index) Len() int {
	return x.tags.Len()
}

// Active returns the active tags in the order they were first seen.
func (x *Index) Active() []*Tag {
	return x.tags.Filter(func(t *Tag) bool { return t.Active })
}

// AllSatisfy reports whether every tag has prop set to value.
func (x *Index) AllSatisfy(prop Property, value bool) bool {
	_, found := x.tags.Find(func(t *Tag) bool {
		return property(t, prop) != value
	})
	return !found
}

// SetAllActive sets every tag's active flag. One TagsChangedMsg is published
// when at least one tag changed, none otherwise.
func (x *Index) SetAllActive(active bool) {
	changed := false
	for _, tag := range x.tags.Items() {
		if tag.Active != active {
			tag.Active = active
			changed = true
		}
	}
	if changed {
		x.publish()
	}
}

// SetActive sets the active flag of the named tag, publishing a
// TagsChangedMsg if it changed.
func (x *Index) SetActive(name string, active bool) error {
	tag, ok := x.byName[name]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownTag, name)
	}
	if tag.Active == active {
		return nil
	}
	tag.Active = active
	x.publish()
	return nil
}

// Toggle flips the active flag of the named tag.
func (x *Index) Toggle(name string) error {
	tag, ok := x.byName[name]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownTag, name)
	}
	return x.SetActive(name, !tag.Active)
}

// SortOrder returns the active sort order.
func (x *Index) SortOrder() sorted.SortOrder {
	return x.tags.SortOrder()
}

// SetSortOrder changes how Sorted and JSON order the tags.
func (x *Index) SetSortOrder(order sorted.SortOrder) error {
	return x.tags.SetSortOrder(order)
}

// Sorted returns the tags in sort order.
func (x *Index) Sorted() ([]*Tag, error) {
	return x.tags.Sorted()
}

// ForEach calls fn for each tag in sort order.
func (x *Index) ForEach(fn func(tag *Tag, index int)) error {
	return x.tags.ForEach(fn)
}

// JSON serializes the tags in sort order.
func (x *Index) JSON() ([]JSON, error) {
	return sorted.Map(x.tags, func(t *Tag) JSON { return mustCount(t).JSON() })
}

func (x *Index) publish() {
	if x.bus == nil {
		return
	}
	x.bus.Publish(events.TagsChangedMsg{Component: x.component})
}

func property(t *Tag, prop Property) bool {
	switch prop {
	case PropertyActive:
		return t.Active
	default:
		panic(fmt.Sprintf("tags: unknown property %q", prop))
	}
}

func mustCount(t *Tag) *Tag {
	if t.Count < 1 {
		panic(fmt.Sprintf("tags: tag %q has count %d", t.Name, t.Count))
	}
	return t
}
