package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/picklist/pkg/lists"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string  { return t.path }
func (t testConfig) PerPage() int      { return 10 }
func (t testConfig) SortOrder() string { return "timestamp:desc" }
func (t testConfig) Locale() string    { return "en" }
func (t testConfig) Selected() string  { return "" }
func (t testConfig) Hidden() []string  { return nil }

func newCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return c
}

func TestCatalogRoundTrip(t *testing.T) {
	c := newCatalog(t)
	base := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	newer := lists.Record{ID: "b-2", Name: "newer", Timestamp: lists.Timestamp{Time: base.Add(time.Hour)}, Tags: []string{"home"}}
	older := lists.Record{ID: "a/1", Name: "older", Timestamp: lists.Timestamp{Time: base}}
	for _, rec := range []*lists.Record{&newer, &older} {
		if err := c.Put(rec); err != nil {
			t.Fatalf("put %s: %v", rec.ID, err)
		}
	}

	got, err := c.Lists(context.Background())
	if err != nil {
		t.Fatalf("lists: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a/1" || got[1].ID != "b-2" {
		t.Fatalf("expected records oldest first, got %+v", got)
	}
	if len(got[1].Tags) != 1 || got[1].Tags[0] != "home" {
		t.Fatalf("tags lost: %+v", got[1])
	}

	rec, err := c.Get("b-2")
	if err != nil || rec.Name != "newer" {
		t.Fatalf("get: %+v %v", rec, err)
	}

	if err := c.Delete("a/1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := c.Get("a/1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := c.Delete("a/1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestCatalogPutDerivesID(t *testing.T) {
	c := newCatalog(t)
	rec := lists.Record{Name: "anonymous"}
	if err := c.Put(&rec); err != nil {
		t.Fatalf("put: %v", err)
	}
	if len(rec.ID) != 16 {
		t.Fatalf("expected a 16 char derived ID, got %q", rec.ID)
	}
	if _, err := c.Get(rec.ID); err != nil {
		t.Fatalf("get derived: %v", err)
	}
}

func TestKeyTransformRoundTrip(t *testing.T) {
	for _, id := range []string{"simple", "with-dash", "with/slash", ""} {
		key := toKey(id)
		pk := keyToPathTransform(key)
		if len(pk.Path) != 1 || pk.Path[0] != listsPrefix {
			t.Fatalf("%q: unexpected path %v", id, pk.Path)
		}
		if back := pathToKeyTransform(pk); back != key {
			t.Fatalf("%q: got key %q, want %q", id, back, key)
		}
		if got := fromFileName(pk.FileName); got != id {
			t.Fatalf("%q: decoded %q", id, got)
		}
	}
}
