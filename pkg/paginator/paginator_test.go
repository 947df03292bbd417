package paginator

import (
	"errors"
	"testing"
)

func TestNewRejectsEmptyPages(t *testing.T) {
	if _, err := New(0); !errors.Is(err, ErrInvalidPageSize) {
		t.Fatalf("expected ErrInvalidPageSize, got %v", err)
	}
	p, err := New(DefaultPageSize)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if p.CurrentPage() != 1 || p.PageSize() != 10 || p.WindowStart() != 0 {
		t.Fatalf("unexpected initial state page=%d size=%d start=%d", p.CurrentPage(), p.PageSize(), p.WindowStart())
	}
}

func TestWindowStart(t *testing.T) {
	p, _ := New(5)
	tests := []struct {
		page int
		want int
	}{
		{page: 1, want: 0},
		{page: 2, want: 5},
		{page: 7, want: 30},
	}
	for _, tt := range tests {
		p.SetCurrentPage(tt.page)
		if got := p.WindowStart(); got != tt.want {
			t.Fatalf("page %d: got %d, want %d", tt.page, got, tt.want)
		}
	}
}

func TestChangeNotifications(t *testing.T) {
	p, _ := New(5)
	changes := 0
	p.OnChange(func() { changes++ })

	p.SetCurrentPage(2)
	p.SetCurrentPage(2)
	if err := p.SetPageSize(20); err != nil {
		t.Fatalf("set page size: %v", err)
	}
	if err := p.SetPageSize(20); err != nil {
		t.Fatalf("set page size: %v", err)
	}
	if err := p.SetPageSize(-1); err == nil {
		t.Fatalf("expected invalid page size error")
	}
	if changes != 2 {
		t.Fatalf("expected 2 change notifications, got %d", changes)
	}
}

func TestPassCounters(t *testing.T) {
	p, _ := New(2)
	for i := 0; i < 5; i++ {
		p.Match()
		if !p.Full() {
			if got := p.Emit(); got != i {
				t.Fatalf("emit %d returned position %d", i, got)
			}
		}
	}
	if p.Total() != 5 || p.Returned() != 2 {
		t.Fatalf("unexpected counters total=%d returned=%d", p.Total(), p.Returned())
	}
	if p.Pages() != 3 || !p.HasNext() || p.HasPrev() {
		t.Fatalf("unexpected paging pages=%d next=%t prev=%t", p.Pages(), p.HasNext(), p.HasPrev())
	}
	p.Reset()
	if p.Total() != 0 || p.Returned() != 0 || p.Pages() != 1 {
		t.Fatalf("reset did not clear counters")
	}
}

func TestNoBoundsChecking(t *testing.T) {
	p, _ := New(10)
	p.SetCurrentPage(99)
	if p.CurrentPage() != 99 || p.WindowStart() != 980 {
		t.Fatalf("paginator should accept any page, got %d", p.CurrentPage())
	}
}
