package events

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestPublishDeliversToAllSubscribers(t *testing.T) {
	bus := NewBus()
	var got []string
	bus.Subscribe(func(msg Msg) { got = append(got, "a:"+msg.Describe()) })
	bus.Subscribe(func(msg Msg) { got = append(got, "b:"+msg.Describe()) })

	bus.Publish(SelectedCountMsg{Count: 1})

	want := []string{"a:count:1", "b:count:1"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNestedPublishIsQueued(t *testing.T) {
	bus := NewBus()
	var got []string
	bus.Subscribe(func(msg Msg) {
		got = append(got, "first:"+msg.Describe())
		if _, ok := msg.(TagsChangedMsg); ok {
			bus.Publish(ListsChangedMsg{Reason: ChangeTags})
		}
	})
	bus.Subscribe(func(msg Msg) {
		got = append(got, "second:"+msg.Describe())
	})

	bus.Publish(TagsChangedMsg{Component: "tags"})

	want := []string{
		`first:component:"tags"`,
		`second:component:"tags"`,
		`first:component:"" reason:"tags"`,
		`second:component:"" reason:"tags"`,
	}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestOnFiltersByType(t *testing.T) {
	bus := NewBus()
	var counts []int
	On(bus, func(m SelectedCountMsg) { counts = append(counts, m.Count) })

	bus.Publish(TagsChangedMsg{})
	bus.Publish(SelectedCountMsg{Count: 1})
	bus.Publish(SelectedCountMsg{Count: 0})

	if len(counts) != 2 || counts[0] != 1 || counts[1] != 0 {
		t.Fatalf("unexpected counts %v", counts)
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	bus := NewBus()
	calls := 0
	cancel := On(bus, func(TagsChangedMsg) { calls++ })
	bus.Publish(TagsChangedMsg{})
	cancel()
	cancel()
	bus.Publish(TagsChangedMsg{})
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestCancelFromHandler(t *testing.T) {
	bus := NewBus()
	calls := 0
	var cancel func()
	cancel = On(bus, func(SelectMsg) {
		calls++
		cancel()
	})
	bus.Publish(SelectMsg{Key: "name", Value: "a"})
	bus.Publish(SelectMsg{Key: "name", Value: "b"})
	if calls != 1 {
		t.Fatalf("expected a one-shot handler, got %d calls", calls)
	}
}

func TestLoggerTap(t *testing.T) {
	var buf bytes.Buffer
	bus := NewBus(WithLogger(log.New(&buf, "", 0)))
	bus.Publish(SubmitMsg{List: ListRef{ID: "7", Name: "Favourites"}})
	if !strings.Contains(buf.String(), `events.SubmitMsg list:"Favourites" id:"7"`) {
		t.Fatalf("unexpected log output %q", buf.String())
	}
}

func TestListRefLabel(t *testing.T) {
	if got := (ListRef{ID: "7"}).Label(); got != "7" {
		t.Fatalf("expected ID fallback, got %q", got)
	}
	if got := (ListRef{ID: "7", Name: "Favourites"}).Label(); got != "Favourites" {
		t.Fatalf("expected name, got %q", got)
	}
}

func TestPanickingHandlerDropsQueuedMessages(t *testing.T) {
	bus := NewBus()
	var got []string
	bus.Subscribe(func(msg Msg) {
		got = append(got, msg.Describe())
		if m, ok := msg.(SelectedCountMsg); ok && m.Count == 1 {
			bus.Publish(SelectedCountMsg{Count: 2})
			panic("boom")
		}
	})

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected the handler panic to reach the publisher")
			}
		}()
		bus.Publish(SelectedCountMsg{Count: 1})
	}()

	got = nil
	bus.Publish(SelectedCountMsg{Count: 3})
	if strings.Join(got, ",") != "count:3" {
		t.Fatalf("expected only the new message after a panic, got %v", got)
	}
}
