// Package paginator tracks the page window of one pass over a filtered
// sequence.
package paginator

import (
	"errors"
	"fmt"
)

// DefaultPageSize is the page size used when none is configured.
const DefaultPageSize = 10

// ErrInvalidPageSize is returned for page sizes below one.
var ErrInvalidPageSize = errors.New("paginator: page size must be positive")

// Paginator holds the page size, the current page (1-based) and the counters
// of the current pass. It does not know how many items exist until a pass has
// run, so it performs no bounds checking.
type Paginator struct {
	pageSize    int
	currentPage int

	total    int
	returned int

	listeners []func()
}

// New creates a Paginator positioned on page 1.
func New(pageSize int) (*Paginator, error) {
	if pageSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageSize, pageSize)
	}
	return &Paginator{pageSize: pageSize, currentPage: 1}, nil
}

// OnChange registers fn to run whenever the page or page size changes.
func (p *Paginator) OnChange(fn func()) {
	p.listeners = append(p.listeners, fn)
}

// Reset zeroes the pass counters.
func (p *Paginator) Reset() {
	p.total = 0
	p.returned = 0
}

// PageSize returns the number of items per page.
func (p *Paginator) PageSize() int {
	return p.pageSize
}

// SetPageSize changes the page size.
func (p *Paginator) SetPageSize(size int) error {
	if size < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPageSize, size)
	}
	if size == p.pageSize {
		return nil
	}
	p.pageSize = size
	p.changed()
	return nil
}

// CurrentPage returns the 1-based page number.
func (p *Paginator) CurrentPage() int {
	return p.currentPage
}

// SetCurrentPage moves to page.
func (p *Paginator) SetCurrentPage(page int) {
	if page == p.currentPage {
		return
	}
	p.currentPage = page
	p.changed()
}

// WindowStart is the filtered index of the first item on the current page.
func (p *Paginator) WindowStart() int {
	return p.pageSize * (p.currentPage - 1)
}

// Match counts one more item matched by the current pass.
func (p *Paginator) Match() {
	p.total++
}

// Full reports whether the current pass has returned a whole page.
func (p *Paginator) Full() bool {
	return p.returned == p.pageSize
}

// Emit counts one more item returned by the current pass and returns its
// position on the page.
func (p *Paginator) Emit() int {
	i := p.returned
	p.returned++
	return i
}

// Total is the number of items matched by the last pass.
func (p *Paginator) Total() int {
	return p.total
}

// Returned is the number of items handed out by the last pass.
func (p *Paginator) Returned() int {
	return p.returned
}

// Pages is the number of pages the last pass spans, at least one.
func (p *Paginator) Pages() int {
	if p.total == 0 {
		return 1
	}
	return (p.total + p.pageSize - 1) / p.pageSize
}

// HasNext reports whether a page follows the current one.
func (p *Paginator) HasNext() bool {
	return p.currentPage < p.Pages()
}

// HasPrev reports whether a page precedes the current one.
func (p *Paginator) HasPrev() bool {
	return p.currentPage > 1
}

func (p *Paginator) changed() {
	for _, fn := range p.listeners {
		fn()
	}
}
