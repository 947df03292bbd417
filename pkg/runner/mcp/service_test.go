package mcp

import (
	"context"
	"errors"
	"sync"
	"testing"

	"tableflip.dev/picklist/pkg/app"
	"tableflip.dev/picklist/pkg/lists"
	"tableflip.dev/picklist/pkg/store"
)

type memorySource struct {
	mu      sync.Mutex
	records []lists.Record
}

func (m *memorySource) Lists(context.Context) ([]lists.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]lists.Record(nil), m.records...), nil
}

func (m *memorySource) Watch(context.Context) (<-chan store.Event, error) {
	return make(chan store.Event), nil
}

func (m *memorySource) add(rec lists.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, rec)
}

func TestServicePagesAndRefreshes(t *testing.T) {
	src := &memorySource{records: []lists.Record{
		{ID: "1", Name: "b", Tags: []string{"x"}},
		{ID: "2", Name: "a"},
	}}
	svc := NewService(src, app.Config{PerPage: 1})
	defer svc.Close()

	page, err := svc.ListPage(context.Background(), 1, "name")
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if page.Total != 2 || page.Pages != 2 || page.Lists[0].Name != "a" || page.Sort != "name:asc" {
		t.Fatalf("unexpected page %+v", page)
	}

	src.add(lists.Record{ID: "3", Name: "0-first"})
	page, err = svc.ListPage(context.Background(), 1, "")
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if page.Total != 3 || page.Lists[0].Name != "0-first" {
		t.Fatalf("expected the new list after refresh, got %+v", page)
	}

	if _, err := svc.ListPage(context.Background(), 1, "name:sideways"); err == nil {
		t.Fatalf("expected a bad sort to fail")
	}
}

func TestServiceTagsAndChoose(t *testing.T) {
	src := &memorySource{records: []lists.Record{
		{ID: "1", Name: "a", Tags: []string{"x"}},
		{ID: "2", Name: "b", Tags: []string{"y"}},
	}}
	svc := NewService(src, app.Config{})
	defer svc.Close()

	all, err := svc.SetTag(context.Background(), "x", false)
	if err != nil {
		t.Fatalf("set tag: %v", err)
	}
	if len(all) != 2 || all[0].Name != "x" || all[0].Active {
		t.Fatalf("unexpected tags %+v", all)
	}
	page, err := svc.ListPage(context.Background(), 1, "")
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if page.Total != 1 || page.Lists[0].Name != "b" {
		t.Fatalf("expected x lists hidden, got %+v", page)
	}

	snap, err := svc.Choose(context.Background(), "a")
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if snap.ID != "1" || !snap.Selected {
		t.Fatalf("unexpected choice %+v", snap)
	}
	if snap, err = svc.Choose(context.Background(), "b"); err != nil || snap.Name != "b" {
		t.Fatalf("choose b: %+v %v", snap, err)
	}
	if got, ok := svc.Selected(); !ok || got.Name != "b" {
		t.Fatalf("expected b to be the last choice")
	}
	if _, err := svc.Choose(context.Background(), "zzz"); !errors.Is(err, ErrListNotFound) {
		t.Fatalf("expected ErrListNotFound, got %v", err)
	}
}
