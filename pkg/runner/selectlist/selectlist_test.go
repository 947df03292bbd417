package selectlist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"tableflip.dev/picklist/pkg/app"
	"tableflip.dev/picklist/pkg/lists"
	"tableflip.dev/picklist/pkg/store"
)

type staticSource []lists.Record

func (s staticSource) Lists(context.Context) ([]lists.Record, error) { return s, nil }

func (s staticSource) Watch(context.Context) (<-chan store.Event, error) {
	return make(chan store.Event), nil
}

var src = staticSource{
	{ID: "1", Name: "chores", Tags: []string{"home"}},
	{ID: "2", Name: "groceries", Tags: []string{"home", "food"}},
}

func TestSelectByName(t *testing.T) {
	var buf bytes.Buffer
	s := &Select{Source: src, Name: "groceries", Force: true, JSON: true, Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	var got lists.Snapshot
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != "2" || !got.Selected || len(got.Tags) != 2 {
		t.Fatalf("unexpected snapshot %+v", got)
	}
}

func TestSelectAlreadyProvided(t *testing.T) {
	var buf bytes.Buffer
	s := &Select{
		Source: src,
		Config: app.Config{Provided: app.Provided{Selected: "chores"}},
		Name:   "chores",
		Force:  true,
		JSON:   true,
		Out:    &buf,
	}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	var got lists.Snapshot
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != "chores" || !got.Selected {
		t.Fatalf("expected chores to stay selected, got %+v", got)
	}
}

func TestSelectPrompt(t *testing.T) {
	var buf bytes.Buffer
	var offered []string
	s := &Select{
		Source: src,
		Force:  true,
		Prompt: func(names []string) (string, error) {
			offered = names
			return names[len(names)-1], nil
		},
		JSON: true,
		Out:  &buf,
	}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if len(offered) != 2 {
		t.Fatalf("expected both lists to be offered, got %v", offered)
	}
	var got lists.Snapshot
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != offered[1] {
		t.Fatalf("expected %q, got %q", offered[1], got.Name)
	}
}

func TestSelectUnknown(t *testing.T) {
	s := &Select{Source: src, Name: "missing", Out: &bytes.Buffer{}}
	if err := s.Do(context.Background()); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
}
