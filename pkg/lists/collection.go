// Package lists holds the selectable lists and serves them sorted, filtered by
// the active tags and paginated.
package lists

import (
	"fmt"

	"golang.org/x/text/language"

	"tableflip.dev/picklist/pkg/events"
	"tableflip.dev/picklist/pkg/paginator"
	"tableflip.dev/picklist/pkg/sorted"
	"tableflip.dev/picklist/pkg/tags"
)

// DefaultSortOrder shows the newest lists first.
var DefaultSortOrder = sorted.SortOrder{Key: "timestamp", Direction: sorted.Descending}

// Option customises a Collection.
type Option func(*collectionOptions)

type collectionOptions struct {
	component events.ComponentID
	pageSize  int
	order     sorted.SortOrder
	lang      language.Tag
}

// WithPageSize sets how many lists a page holds.
func WithPageSize(size int) Option {
	return func(o *collectionOptions) {
		o.pageSize = size
	}
}

// WithSortOrder overrides DefaultSortOrder.
func WithSortOrder(order sorted.SortOrder) Option {
	return func(o *collectionOptions) {
		o.order = order
	}
}

// WithLanguage selects the collation used for string keys.
func WithLanguage(tag language.Tag) Option {
	return func(o *collectionOptions) {
		o.lang = tag
	}
}

// WithComponent sets the component ID stamped on emitted events.
func WithComponent(id events.ComponentID) Option {
	return func(o *collectionOptions) {
		o.component = id
	}
}

// Collection owns every Item. At most one item is selected at a time when
// callers select with force.
type Collection struct {
	component events.ComponentID
	bus       *events.Bus
	index     *tags.Index

	items *sorted.Container[*Item]
	pager *paginator.Paginator

	// pending holds select requests that matched nothing yet. Each is
	// serviced by the first added item it matches, then dropped.
	pending []events.SelectMsg

	cancels []func()
}

// New creates an empty collection listening for selection and tag events on
// bus.
func New(bus *events.Bus, index *tags.Index, opts ...Option) (*Collection, error) {
	config := &collectionOptions{
		component: events.ComponentID("lists"),
		pageSize:  paginator.DefaultPageSize,
		order:     DefaultSortOrder,
		lang:      language.English,
	}
	for _, opt := range opts {
		opt(config)
	}
	container, err := sorted.New[*Item](config.order, sorted.WithLanguage(config.lang))
	if err != nil {
		return nil, fmt.Errorf("lists: %w", err)
	}
	pager, err := paginator.New(config.pageSize)
	if err != nil {
		return nil, fmt.Errorf("lists: %w", err)
	}
	c := &Collection{
		component: config.component,
		bus:       bus,
		index:     index,
		items:     container,
		pager:     pager,
	}
	pager.OnChange(func() {
		c.changed(events.ChangePage)
	})
	if bus != nil {
		c.cancels = append(c.cancels,
			events.On(bus, c.handleSelect),
			events.On(bus, func(events.TagsChangedMsg) {
				c.changed(events.ChangeTags)
			}),
		)
	}
	return c, nil
}

// Close stops listening on the bus.
func (c *Collection) Close() {
	for _, cancel := range c.cancels {
		cancel()
	}
	c.cancels = nil
}

// Tags returns the index the collection resolves tags against.
func (c *Collection) Tags() *tags.Index {
	return c.index
}

// Paginator exposes the page window of the last pass.
func (c *Collection) Paginator() *paginator.Paginator {
	return c.pager
}

// IsActive reports whether item has no tags or at least one active tag.
func (c *Collection) IsActive(item *Item) bool {
	if len(item.tagIDs) == 0 {
		return true
	}
	for _, id := range item.tagIDs {
		if tag, ok := c.index.Get(id); ok && tag.Active {
			return true
		}
	}
	return false
}

// Add appends item, services any pending selection it matches and announces
// the change.
func (c *Collection) Add(item *Item) {
	c.items.Add(item)
	c.items.Invalidate()
	c.servicePending(item)
	c.changed(events.ChangeAdd)
}

// AddRecord adapts rec and adds it.
func (c *Collection) AddRecord(rec Record) *Item {
	item := NewItem(rec, c.index)
	c.Add(item)
	return item
}

// Len returns the number of stored lists, active or not.
func (c *Collection) Len() int {
	return c.items.Len()
}

// Items returns every stored list in insertion order.
func (c *Collection) Items() []*Item {
	return c.items.Items()
}

// Get returns the list whose ID equals id.
func (c *Collection) Get(id string) (*Item, bool) {
	return c.items.Find(func(i *Item) bool { return i.id == id })
}

// Selected returns the selected list, if any.
func (c *Collection) Selected() (*Item, bool) {
	return c.items.Find(func(i *Item) bool { return i.selected })
}

// Pending returns the select requests still waiting for a match.
func (c *Collection) Pending() []events.SelectMsg {
	return append([]events.SelectMsg(nil), c.pending...)
}

// SortOrder returns the active sort order.
func (c *Collection) SortOrder() sorted.SortOrder {
	return c.items.SortOrder()
}

// SetSortOrder changes the sort order, announcing it if it changed.
func (c *Collection) SetSortOrder(order sorted.SortOrder) error {
	if order == c.items.SortOrder() {
		return nil
	}
	if err := c.items.SetSortOrder(order); err != nil {
		return fmt.Errorf("lists: %w", err)
	}
	c.changed(events.ChangeSort)
	return nil
}

// SetPage moves to the 1-based page.
func (c *Collection) SetPage(page int) {
	c.pager.SetCurrentPage(page)
}

// SetPageSize changes the number of lists per page.
func (c *Collection) SetPageSize(size int) error {
	return c.pager.SetPageSize(size)
}

// ForEach calls fn for each active list on the current page, in sort order,
// with its position on the page. Every active list is counted toward the
// paginator total. A failed sort leaves the paginator untouched.
func (c *Collection) ForEach(fn func(item *Item, index int)) error {
	items, err := c.items.Sorted()
	if err != nil {
		return fmt.Errorf("lists: %w", err)
	}
	c.pager.Reset()
	start := c.pager.WindowStart()
	skipped := 0
	for i, item := range items {
		if !c.IsActive(item) {
			skipped++
			continue
		}
		if i-skipped >= start && !c.pager.Full() {
			fn(item, c.pager.Emit())
		}
		c.pager.Match()
	}
	return nil
}

// Active returns every active list in sort order, ignoring pagination.
func (c *Collection) Active() ([]*Item, error) {
	items, err := c.items.Sorted()
	if err != nil {
		return nil, fmt.Errorf("lists: %w", err)
	}
	var out []*Item
	for _, item := range items {
		if c.IsActive(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

// Page returns the active lists on the current page.
func (c *Collection) Page() ([]*Item, error) {
	var out []*Item
	err := c.ForEach(func(item *Item, _ int) {
		out = append(out, item)
	})
	return out, err
}

// Snapshot serializes item with its tags expanded.
func (c *Collection) Snapshot(item *Item) Snapshot {
	return item.Snapshot(c.index)
}

// JSON serializes the current page.
func (c *Collection) JSON() ([]Snapshot, error) {
	out := []Snapshot{}
	err := c.ForEach(func(item *Item, _ int) {
		out = append(out, item.Snapshot(c.index))
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Select publishes a request to toggle the list whose key field equals value.
// Without a bus the request is handled directly.
func (c *Collection) Select(key, value string, force bool) {
	msg := events.SelectMsg{Component: c.component, Key: key, Value: value, Force: force}
	if c.bus == nil {
		c.handleSelect(msg)
		return
	}
	c.bus.Publish(msg)
}

// Submit publishes item as the final choice.
func (c *Collection) Submit(item *Item) {
	c.publish(events.SubmitMsg{
		Component: c.component,
		List:      events.ListRef{ID: item.id, Name: item.name},
	})
}

func (c *Collection) handleSelect(msg events.SelectMsg) {
	if msg.Force {
		c.clearOthers(msg)
	}
	if item, ok := c.items.Find(func(i *Item) bool { return i.Matches(msg.Key, msg.Value) }); ok {
		c.toggle(item)
		return
	}
	c.pending = append(c.pending, msg)
}

// clearOthers deselects every list not matching msg without announcing it.
func (c *Collection) clearOthers(msg events.SelectMsg) {
	for _, item := range c.items.Items() {
		if item.selected && !item.Matches(msg.Key, msg.Value) {
			item.selected = false
		}
	}
}

func (c *Collection) servicePending(item *Item) {
	if len(c.pending) == 0 {
		return
	}
	kept := c.pending[:0:0]
	var matched []events.SelectMsg
	for _, msg := range c.pending {
		if item.Matches(msg.Key, msg.Value) {
			matched = append(matched, msg)
			continue
		}
		kept = append(kept, msg)
	}
	c.pending = kept
	for _, msg := range matched {
		if msg.Force {
			c.clearOthers(msg)
		}
		c.toggle(item)
	}
}

func (c *Collection) toggle(item *Item) {
	item.selected = !item.selected
	count := 0
	if item.selected {
		count = 1
	}
	c.publish(events.SelectedCountMsg{Component: c.component, Count: count})
}

func (c *Collection) changed(reason events.ChangeReason) {
	c.publish(events.ListsChangedMsg{Component: c.component, Reason: reason})
}

func (c *Collection) publish(msg events.Msg) {
	if c.bus == nil {
		return
	}
	c.bus.Publish(msg)
}
