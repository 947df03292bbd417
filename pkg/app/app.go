// Package app wires the tag index and list collection to a data source and
// reports the chosen list through a callback.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/text/language"

	"tableflip.dev/picklist/pkg/events"
	"tableflip.dev/picklist/pkg/lists"
	"tableflip.dev/picklist/pkg/paginator"
	"tableflip.dev/picklist/pkg/sorted"
	"tableflip.dev/picklist/pkg/store"
	"tableflip.dev/picklist/pkg/tags"
)

var (
	// ErrNoCallback is returned by New when no callback is supplied.
	ErrNoCallback = errors.New("app: callback required")
	// ErrNoSource is returned by New when no data source is supplied.
	ErrNoSource = errors.New("app: no source configured")
	// ErrNothingSelected is returned by Submit when no list is selected.
	ErrNothingSelected = errors.New("app: no list selected")
)

// Callback receives progress and the final choice. working is true while
// lists are being fetched; list is set once a choice is submitted.
type Callback func(err error, working bool, list *lists.Snapshot)

// Provided carries caller supplied state.
type Provided struct {
	// Selected names a list to select once it is available.
	Selected string
	// Hidden names tags that start out inactive.
	Hidden []string
}

// Config configures a Chooser.
type Config struct {
	// Catalog labels the data source in logs.
	Catalog  string
	PerPage  int
	Sort     sorted.SortOrder
	Locale   language.Tag
	Provided Provided
	// Logger, when set, logs every message published on the bus.
	Logger *log.Logger
}

// Chooser owns the bus, the tag index and the list collection for one
// session. It is not safe for concurrent use.
type Chooser struct {
	cfg    Config
	source store.Source
	cb     Callback

	bus   *events.Bus
	tags  *tags.Index
	lists *lists.Collection

	seen         map[string]struct{}
	submitCancel func()
}

// New builds a Chooser reading from source.
func New(cfg Config, source store.Source, cb Callback) (*Chooser, error) {
	if cb == nil {
		return nil, ErrNoCallback
	}
	if source == nil {
		return nil, ErrNoSource
	}
	if cfg.PerPage == 0 {
		cfg.PerPage = paginator.DefaultPageSize
	}
	if cfg.Sort == (sorted.SortOrder{}) {
		cfg.Sort = lists.DefaultSortOrder
	}
	if cfg.Locale == language.Und {
		cfg.Locale = language.English
	}

	var busOpts []events.Option
	if cfg.Logger != nil {
		busOpts = append(busOpts, events.WithLogger(cfg.Logger))
	}
	bus := events.NewBus(busOpts...)

	index, err := tags.NewIndex(bus,
		tags.WithHidden(cfg.Provided.Hidden...),
		tags.WithLanguage(cfg.Locale),
	)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	collection, err := lists.New(bus, index,
		lists.WithPageSize(cfg.PerPage),
		lists.WithSortOrder(cfg.Sort),
		lists.WithLanguage(cfg.Locale),
	)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	return &Chooser{
		cfg:    cfg,
		source: source,
		cb:     cb,
		bus:    bus,
		tags:   index,
		lists:  collection,
		seen:   make(map[string]struct{}),
	}, nil
}

// Bus returns the session's event bus.
func (c *Chooser) Bus() *events.Bus { return c.bus }

// Tags returns the session's tag index.
func (c *Chooser) Tags() *tags.Index { return c.tags }

// Lists returns the session's list collection.
func (c *Chooser) Lists() *lists.Collection { return c.lists }

// Load fetches every list from the source. A provided selection is requested
// before the fetch so it is applied when the matching list arrives.
func (c *Chooser) Load(ctx context.Context) error {
	c.cb(nil, true, nil)
	if c.submitCancel == nil {
		c.submitCancel = events.On(c.bus, c.handleSubmit)
	}
	if c.cfg.Provided.Selected != "" {
		c.bus.Publish(events.SelectMsg{
			Component: events.ComponentID("app"),
			Key:       "name",
			Value:     c.cfg.Provided.Selected,
		})
	}
	if _, err := c.Refresh(ctx); err != nil {
		c.cb(err, false, nil)
		return err
	}
	c.cb(nil, false, nil)
	return nil
}

// Refresh adds every list the source returns that was not seen before and
// reports how many were added.
func (c *Chooser) Refresh(ctx context.Context) (int, error) {
	records, err := c.source.Lists(ctx)
	if err != nil {
		return 0, fmt.Errorf("app: fetch %s: %w", c.label(), err)
	}
	added := 0
	for _, rec := range records {
		key := rec.Key()
		if _, ok := c.seen[key]; ok {
			continue
		}
		c.seen[key] = struct{}{}
		c.lists.AddRecord(rec)
		added++
	}
	return added, nil
}

// Watch forwards the source's change events.
func (c *Chooser) Watch(ctx context.Context) (<-chan store.Event, error) {
	return c.source.Watch(ctx)
}

// Follow refreshes on every source change until ctx is done or the source
// stops watching. It must not run alongside other Chooser calls.
func (c *Chooser) Follow(ctx context.Context) error {
	ch, err := c.Watch(ctx)
	if err != nil {
		return fmt.Errorf("app: watch %s: %w", c.label(), err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ch:
			if !ok {
				return nil
			}
			if _, err := c.Refresh(ctx); err != nil {
				c.cb(err, false, nil)
			}
		}
	}
}

// Page moves to page n and returns its lists.
func (c *Chooser) Page(n int) ([]lists.Snapshot, error) {
	c.lists.SetPage(n)
	return c.lists.JSON()
}

// Select toggles the list called name. With force every other list is
// deselected first.
func (c *Chooser) Select(name string, force bool) {
	c.lists.Select("name", name, force)
}

// Submit reports the selected list through the callback.
func (c *Chooser) Submit() error {
	item, ok := c.lists.Selected()
	if !ok {
		return ErrNothingSelected
	}
	if c.submitCancel == nil {
		c.submitCancel = events.On(c.bus, c.handleSubmit)
	}
	c.lists.Submit(item)
	return nil
}

// Close detaches the collection and callback from the bus.
func (c *Chooser) Close() {
	if c.submitCancel != nil {
		c.submitCancel()
		c.submitCancel = nil
	}
	c.lists.Close()
}

func (c *Chooser) handleSubmit(msg events.SubmitMsg) {
	item, ok := c.lists.Get(msg.List.ID)
	if !ok {
		c.cb(fmt.Errorf("app: submitted list %q is unknown", msg.List.Label()), false, nil)
		return
	}
	snap := c.lists.Snapshot(item)
	c.cb(nil, false, &snap)
}

func (c *Chooser) label() string {
	if c.cfg.Catalog != "" {
		return c.cfg.Catalog
	}
	return "source"
}

// Open builds a Chooser and loads it. A nil cb discards progress reports.
func Open(ctx context.Context, cfg Config, source store.Source, cb Callback) (*Chooser, error) {
	if cb == nil {
		cb = func(error, bool, *lists.Snapshot) {}
	}
	c, err := New(cfg, source, cb)
	if err != nil {
		return nil, err
	}
	if err := c.Load(ctx); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}
