package events

import "log"

// Handler consumes messages published on a Bus.
type Handler func(Msg)

// Option customises a Bus.
type Option func(*Bus)

// WithLogger logs every dispatched message to l.
func WithLogger(l *log.Logger) Option {
	return func(b *Bus) {
		b.logger = l
	}
}

type subscription struct {
	fn        Handler
	cancelled bool
}

// Bus delivers messages synchronously to its subscribers. Messages are
// delivered in publish order: a message published from inside a handler is
// queued until the current message has reached every subscriber. A Bus is not
// safe for concurrent use.
type Bus struct {
	subs        []*subscription
	queue       []Msg
	dispatching bool
	logger      *log.Logger
}

// NewBus creates a Bus with no subscribers.
func NewBus(opts ...Option) *Bus {
	b := &Bus{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers fn for every message and returns a func that removes
// it again.
func (b *Bus) Subscribe(fn Handler) (cancel func()) {
	sub := &subscription{fn: fn}
	b.subs = append(b.subs, sub)
	return func() {
		if sub.cancelled {
			return
		}
		sub.cancelled = true
		kept := b.subs[:0:0]
		for _, s := range b.subs {
			if s != sub {
				kept = append(kept, s)
			}
		}
		b.subs = kept
	}
}

// On registers fn for messages of type M only.
func On[M Msg](b *Bus, fn func(M)) (cancel func()) {
	return b.Subscribe(func(msg Msg) {
		if m, ok := msg.(M); ok {
			fn(m)
		}
	})
}

// Publish delivers msg to every subscriber before returning, unless it is
// called from a handler, in which case msg is delivered after the message
// being handled.
func (b *Bus) Publish(msg Msg) {
	b.queue = append(b.queue, msg)
	if b.dispatching {
		return
	}
	b.dispatching = true
	defer func() {
		b.dispatching = false
		b.queue = nil
	}()
	for len(b.queue) > 0 {
		next := b.queue[0]
		b.queue = b.queue[1:]
		b.dispatch(next)
	}
}

func (b *Bus) dispatch(msg Msg) {
	if b.logger != nil {
		b.logger.Printf("%T %s", msg, msg.Describe())
	}
	subs := append([]*subscription(nil), b.subs...)
	for _, sub := range subs {
		if sub.cancelled {
			continue
		}
		sub.fn(msg)
	}
}
