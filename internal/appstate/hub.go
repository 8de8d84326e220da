package appstate

import "sync"

// Entity names one of the five cached collections.
type Entity string

const (
	EntityLedger    Entity = "ledger"
	EntityRepairs   Entity = "repairs"
	EntityInventory Entity = "inventory"
	EntityCustomers Entity = "customers"
	EntityMessages  Entity = "messages"
)

// Event announces that one collection was reloaded after a write. The
// fresh snapshot is read back from the State; the event only says which
// collection changed.
type Event struct {
	Entity Entity
}

const defaultSubscriberBuffer = 16

// Hub fans reload events out to subscribers. Publishing never blocks; a
// subscriber that falls behind misses events but can always pull the
// current snapshot.
type Hub struct {
	mu     sync.Mutex
	subs   map[uint64]chan Event
	nextID uint64
}

type Subscription struct {
	hub  *Hub
	id   uint64
	ch   chan Event
	once sync.Once
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uint64]chan Event)}
}

func (h *Hub) Publish(event Event) {
	h.mu.Lock()
	subs := make([]chan Event, 0, len(h.subs))
	for _, ch := range h.subs {
		subs = append(subs, ch)
	}
	h.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- event:
		default:
		}
	}
}

func (h *Hub) Subscribe() *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan Event, defaultSubscriberBuffer)
	h.subs[id] = ch

	return &Subscription{hub: h, id: id, ch: ch}
}

func (h *Hub) unsubscribe(id uint64) {
	h.mu.Lock()
	delete(h.subs, id)
	h.mu.Unlock()
}

func (s *Subscription) Events() <-chan Event {
	if s == nil {
		return nil
	}
	return s.ch
}

func (s *Subscription) Close() {
	if s == nil || s.hub == nil {
		return
	}
	s.once.Do(func() {
		s.hub.unsubscribe(s.id)
	})
}
