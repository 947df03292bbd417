// Package mcp exposes the list chooser to Model Context Protocol clients.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"tableflip.dev/picklist/pkg/app"
	"tableflip.dev/picklist/pkg/lists"
	"tableflip.dev/picklist/pkg/sorted"
	"tableflip.dev/picklist/pkg/store"
	"tableflip.dev/picklist/pkg/tags"
)

// ErrListNotFound is returned when no list carries the requested name.
var ErrListNotFound = errors.New("list not found")

// Service keeps one chooser session alive across tool calls.
type Service struct {
	Source store.Source
	Config app.Config

	mu       sync.Mutex
	chooser  *app.Chooser
	selected *lists.Snapshot
}

// Page is one page of lists.
type Page struct {
	Page    int              `json:"page"`
	Pages   int              `json:"pages"`
	Total   int              `json:"total"`
	Sort    string           `json:"sort"`
	Lists   []lists.Snapshot `json:"lists"`
	Pending int              `json:"pending,omitempty"`
}

// NewService creates a Service reading from source.
func NewService(source store.Source, cfg app.Config) *Service {
	return &Service{Source: source, Config: cfg}
}

func (s *Service) session(ctx context.Context) (*app.Chooser, error) {
	if s.chooser != nil {
		if _, err := s.chooser.Refresh(ctx); err != nil {
			return nil, err
		}
		return s.chooser, nil
	}
	c, err := app.Open(ctx, s.Config, s.Source, func(_ error, _ bool, list *lists.Snapshot) {
		if list != nil {
			s.selected = list
		}
	})
	if err != nil {
		return nil, err
	}
	s.chooser = c
	return c, nil
}

// ListPage returns page n, optionally changing the sort order first.
func (s *Service) ListPage(ctx context.Context, n int, sort string) (Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.session(ctx)
	if err != nil {
		return Page{}, err
	}
	if sort != "" {
		order, err := sorted.ParseSortOrder(sort)
		if err != nil {
			return Page{}, err
		}
		if err := c.Lists().SetSortOrder(order); err != nil {
			return Page{}, err
		}
	}
	if n < 1 {
		n = 1
	}
	snaps, err := c.Page(n)
	if err != nil {
		return Page{}, err
	}
	pager := c.Lists().Paginator()
	return Page{
		Page:    n,
		Pages:   pager.Pages(),
		Total:   pager.Total(),
		Sort:    c.Lists().SortOrder().String(),
		Lists:   snaps,
		Pending: len(c.Lists().Pending()),
	}, nil
}

// Tags returns the tag index in its default order.
func (s *Service) Tags(ctx context.Context) ([]tags.JSON, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.session(ctx)
	if err != nil {
		return nil, err
	}
	return c.Tags().JSON()
}

// SetTag activates or deactivates a tag.
func (s *Service) SetTag(ctx context.Context, name string, active bool) ([]tags.JSON, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.session(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.Tags().SetActive(name, active); err != nil {
		return nil, err
	}
	return c.Tags().JSON()
}

// Choose selects the named list, clearing any other, and submits it.
func (s *Service) Choose(ctx context.Context, name string) (lists.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.session(ctx)
	if err != nil {
		return lists.Snapshot{}, err
	}
	var target *lists.Item
	for _, item := range c.Lists().Items() {
		if item.Name() == name {
			target = item
			break
		}
	}
	if target == nil {
		return lists.Snapshot{}, fmt.Errorf("%w: %q", ErrListNotFound, name)
	}
	if !target.Selected() {
		c.Lists().Select("id", target.ID(), true)
	}
	s.selected = nil
	c.Lists().Submit(target)
	if s.selected == nil {
		return lists.Snapshot{}, app.ErrNothingSelected
	}
	return *s.selected, nil
}

// Selected returns the last submitted list.
func (s *Service) Selected() (lists.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return lists.Snapshot{}, false
	}
	return *s.selected, true
}

// Close ends the session.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chooser != nil {
		s.chooser.Close()
		s.chooser = nil
	}
}
