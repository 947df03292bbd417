package tags

import (
	"errors"
	"fmt"
	"testing"

	"tableflip.dev/picklist/pkg/colorhash"
	"tableflip.dev/picklist/pkg/events"
	"tableflip.dev/picklist/pkg/sorted"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("t%d", n)
	}
}

func newIndex(t *testing.T, opts ...Option) (*Index, *int) {
	t.Helper()
	bus := events.NewBus()
	changes := 0
	events.On(bus, func(events.TagsChangedMsg) { changes++ })
	opts = append([]Option{WithIDs(sequentialIDs())}, opts...)
	idx, err := NewIndex(bus, opts...)
	if err != nil {
		t.Fatalf("new index: %v", err)
	}
	return idx, &changes
}

func TestAddOrBumpDeduplicates(t *testing.T) {
	idx, _ := newIndex(t)
	a := idx.AddOrBump("Gene")
	b := idx.AddOrBump("Gene")
	if a != b {
		t.Fatalf("expected the same tag object for repeated names")
	}
	if a.Count != 2 {
		t.Fatalf("expected count 2, got %d", a.Count)
	}
	c := idx.AddOrBump("gene")
	if c == a || c.Count != 1 {
		t.Fatalf("names are case-sensitive; got %+v", c)
	}
	if idx.Len() != 2 {
		t.Fatalf("expected 2 tags, got %d", idx.Len())
	}
}

func TestNewTagDefaults(t *testing.T) {
	idx, _ := newIndex(t)
	tag := idx.AddOrBump("Gene")
	if tag.ID != "t1" || !tag.Active || tag.Count != 1 {
		t.Fatalf("unexpected tag %+v", tag)
	}
	if tag.RGB != colorhash.Colorize("Gene") {
		t.Fatalf("expected color derived from name, got %v", tag.RGB)
	}
	if got, ok := idx.Get("t1"); !ok || got != tag {
		t.Fatalf("lookup by id failed")
	}
	if got, ok := idx.Lookup("Gene"); !ok || got != tag {
		t.Fatalf("lookup by name failed")
	}
}

func TestHiddenTagsStartInactive(t *testing.T) {
	idx, _ := newIndex(t, WithHidden("im:public"))
	if idx.AddOrBump("im:public").Active {
		t.Fatalf("hidden tag should start inactive")
	}
	if !idx.AddOrBump("Gene").Active {
		t.Fatalf("other tags should start active")
	}
	active := idx.Active()
	if len(active) != 1 || active[0].Name != "Gene" {
		t.Fatalf("unexpected active set %v", active)
	}
}

func TestSetAllActiveCoalesces(t *testing.T) {
	idx, changes := newIndex(t)
	idx.AddOrBump("a")
	idx.AddOrBump("b")
	idx.AddOrBump("c")

	idx.SetAllActive(false)
	if *changes != 1 {
		t.Fatalf("expected exactly one notification, got %d", *changes)
	}
	if !idx.AllSatisfy(PropertyActive, false) {
		t.Fatalf("expected every tag inactive")
	}

	idx.SetAllActive(false)
	if *changes != 1 {
		t.Fatalf("no-op bulk update must not notify, got %d", *changes)
	}

	if err := idx.SetActive("b", true); err != nil {
		t.Fatalf("set active: %v", err)
	}
	if *changes != 2 {
		t.Fatalf("expected single toggle notification, got %d", *changes)
	}
	if idx.AllSatisfy(PropertyActive, false) || idx.AllSatisfy(PropertyActive, true) {
		t.Fatalf("mixed index satisfies neither value")
	}

	idx.SetAllActive(true)
	if *changes != 3 {
		t.Fatalf("mixed bulk update should notify once, got %d", *changes)
	}
}

func TestAllSatisfyEmptyIndex(t *testing.T) {
	idx, _ := newIndex(t)
	if !idx.AllSatisfy(PropertyActive, true) || !idx.AllSatisfy(PropertyActive, false) {
		t.Fatalf("empty index satisfies any value")
	}
}

func TestToggle(t *testing.T) {
	idx, changes := newIndex(t)
	idx.AddOrBump("a")
	if err := idx.Toggle("a"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if tag, _ := idx.Lookup("a"); tag.Active {
		t.Fatalf("expected tag inactive after toggle")
	}
	if err := idx.SetActive("a", false); err != nil {
		t.Fatalf("set active: %v", err)
	}
	if *changes != 1 {
		t.Fatalf("expected 1 notification, got %d", *changes)
	}
	if err := idx.Toggle("missing"); !errors.Is(err, ErrUnknownTag) {
		t.Fatalf("expected ErrUnknownTag, got %v", err)
	}
}

func TestJSONSortedByCount(t *testing.T) {
	idx, _ := newIndex(t)
	for _, name := range []string{"b", "a", "b", "c", "b", "a"} {
		idx.AddOrBump(name)
	}
	out, err := idx.JSON()
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	want := []struct {
		name  string
		count int
	}{{"c", 1}, {"a", 2}, {"b", 3}}
	if len(out) != len(want) {
		t.Fatalf("expected %d tags, got %d", len(want), len(out))
	}
	for i, w := range want {
		if out[i].Name != w.name || out[i].Count != w.count {
			t.Fatalf("position %d: got %+v, want %s/%d", i, out[i], w.name, w.count)
		}
		if len(out[i].RGB) != 3 || out[i].ID == "" {
			t.Fatalf("incomplete tag json %+v", out[i])
		}
	}
}

func TestBumpInvalidatesOrder(t *testing.T) {
	idx, _ := newIndex(t)
	idx.AddOrBump("a")
	idx.AddOrBump("b")
	first, err := idx.Sorted()
	if err != nil {
		t.Fatalf("sorted: %v", err)
	}
	if first[0].Name != "a" {
		t.Fatalf("expected insertion order on ties, got %s", first[0].Name)
	}
	idx.AddOrBump("a")
	second, err := idx.Sorted()
	if err != nil {
		t.Fatalf("sorted: %v", err)
	}
	if second[0].Name != "b" {
		t.Fatalf("expected b first after bumping a, got %s", second[0].Name)
	}
}

func TestSortByName(t *testing.T) {
	idx, _ := newIndex(t, WithSortOrder(sorted.By("name")))
	for _, name := range []string{"zeta", "Alpha", "beta"} {
		idx.AddOrBump(name)
	}
	var got []string
	if err := idx.ForEach(func(tag *Tag, _ int) { got = append(got, tag.Name) }); err != nil {
		t.Fatalf("for each: %v", err)
	}
	if len(got) != 3 || got[0] != "Alpha" || got[1] != "beta" || got[2] != "zeta" {
		t.Fatalf("unexpected order %v", got)
	}
	if err := idx.SetSortOrder(sorted.By("active")); err != nil {
		t.Fatalf("set sort order: %v", err)
	}
	if _, err := idx.Sorted(); !errors.Is(err, sorted.ErrUnsupportedSortKey) {
		t.Fatalf("expected ErrUnsupportedSortKey, got %v", err)
	}
}

func TestCountInvariantPanics(t *testing.T) {
	idx, _ := newIndex(t)
	tag := idx.AddOrBump("a")
	tag.Count = 0
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for count below one")
		}
	}()
	_, _ = idx.JSON()
}
