package info

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/picklist/pkg/lists"
	"tableflip.dev/picklist/pkg/store"
)

type testConfig struct{ selected string }

func (t testConfig) BasePath() string  { return "/var/picklist" }
func (t testConfig) PerPage() int      { return 10 }
func (t testConfig) SortOrder() string { return "timestamp:desc" }
func (t testConfig) Locale() string    { return "en" }
func (t testConfig) Selected() string  { return t.selected }
func (t testConfig) Hidden() []string  { return nil }

type staticSource []lists.Record

func (s staticSource) Lists(context.Context) ([]lists.Record, error) { return s, nil }

func (s staticSource) Watch(context.Context) (<-chan store.Event, error) {
	return make(chan store.Event), nil
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	n := &Info{
		Config: testConfig{selected: "b"},
		Source: staticSource{
			{ID: "1", Name: "a", Tags: []string{"x", "y"}},
			{ID: "2", Name: "b", Tags: []string{"x"}},
		},
		Out: &buf,
	}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"/var/picklist", "Lists: 2", "Tags:  2", "Selected: b"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}
