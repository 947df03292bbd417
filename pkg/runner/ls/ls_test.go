package ls

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"tableflip.dev/picklist/pkg/app"
	"tableflip.dev/picklist/pkg/lists"
	"tableflip.dev/picklist/pkg/store"
)

type staticSource []lists.Record

func (s staticSource) Lists(context.Context) ([]lists.Record, error) { return s, nil }

func (s staticSource) Watch(context.Context) (<-chan store.Event, error) {
	return make(chan store.Event), nil
}

func source(n int) staticSource {
	out := make(staticSource, 0, n)
	for i := 0; i < n; i++ {
		tag := "even"
		if i%2 == 1 {
			tag = "odd"
		}
		out = append(out, lists.Record{
			ID:        fmt.Sprintf("%d", i),
			Name:      fmt.Sprintf("list-%02d", i),
			Timestamp: lists.Timestamp{Time: time.Unix(int64(i)*60, 0)},
			Tags:      []string{tag},
		})
	}
	return out
}

func TestLsJSON(t *testing.T) {
	var buf bytes.Buffer
	l := &Ls{
		Source: source(7),
		Config: app.Config{PerPage: 3},
		Page:   3,
		JSON:   true,
		Out:    &buf,
	}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	var res Result
	if err := json.Unmarshal(buf.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if res.Total != 7 || res.Pages != 3 || res.PerPage != 3 || len(res.Lists) != 1 {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Lists[0].Name != "list-00" {
		t.Fatalf("expected the oldest list last, got %q", res.Lists[0].Name)
	}
}

func TestLsHide(t *testing.T) {
	var buf bytes.Buffer
	l := &Ls{
		Source: source(6),
		Config: app.Config{},
		Hide:   []string{"odd", "unknown"},
		JSON:   true,
		Out:    &buf,
	}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	var res Result
	if err := json.Unmarshal(buf.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Total != 3 {
		t.Fatalf("expected 3 even lists, got %d", res.Total)
	}
	for _, s := range res.Lists {
		if s.Tags[0].Name != "even" {
			t.Fatalf("odd list leaked: %+v", s)
		}
	}
}
