package event

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryBus delivers events synchronously, in subscription order, on the
// publisher's goroutine.
type InMemoryBus struct {
	mu          sync.RWMutex
	seq         uint64
	subscribers map[string]subscriber
	now         func() time.Time
}

type subscriber struct {
	seq     uint64
	handler Handler
}

func NewBus() *InMemoryBus {
	return &InMemoryBus{
		subscribers: make(map[string]subscriber),
		now:         time.Now,
	}
}

func (b *InMemoryBus) Publish(e Event) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = b.now()
	}

	b.mu.RLock()
	handlers := make([]subscriber, 0, len(b.subscribers))
	for _, s := range b.subscribers {
		handlers = append(handlers, s)
	}
	b.mu.RUnlock()

	sort.Slice(handlers, func(i, j int) bool { return handlers[i].seq < handlers[j].seq })
	for _, s := range handlers {
		s.handler(e)
	}
}

func (b *InMemoryBus) Subscribe(h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.NewString()
	b.seq++
	b.subscribers[id] = subscriber{seq: b.seq, handler: h}

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subscribers, id)
	}
}

// Discard is a Bus that drops every event.
var Discard Bus = discard{}

type discard struct{}

func (discard) Publish(Event)            {}
func (discard) Subscribe(Handler) func() { return func() {} }
