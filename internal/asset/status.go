package asset

import "sync"

// Status mirrors the wire-level status enumeration of §6/§7.
type Status int

const (
	StatusNone Status = iota
	StatusSuccess
	StatusNotFound
	StatusWouldLoop
	StatusError
	StatusInvalidHandle
	StatusNoResources
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusNotFound:
		return "NOTFOUND"
	case StatusWouldLoop:
		return "WOULD_LOOP"
	case StatusError:
		return "ERROR"
	case StatusInvalidHandle:
		return "INVALID_HANDLE"
	case StatusNoResources:
		return "NORESOURCES"
	default:
		return "NONE"
	}
}

// StatusEvent is what StoredAsset and the other asset kinds publish on their
// Subscribable status channel (§4.2 update_status, §6 Status event).
type StatusEvent struct {
	Size         int64 // -1 until known
	Status       Status
	Availability int
	TigerID      string // empty until the root hash is known
}

func (e StatusEvent) equal(o StatusEvent) bool {
	return e == o
}

// Subscribable is a mutable value with change notification, re-architected
// per §9's design note as a callback channel: callers observe by
// subscribing, the holder publishes old->new pairs, and publishing compares
// values first so no spurious events reach subscribers.
type Subscribable struct {
	mu       sync.Mutex
	value    StatusEvent
	subs     map[int]func(old, new StatusEvent)
	nextSubs int
}

// NewSubscribable creates a Subscribable seeded with the given initial
// value (no notification is sent for the initial value).
func NewSubscribable(initial StatusEvent) *Subscribable {
	return &Subscribable{value: initial, subs: make(map[int]func(old, new StatusEvent))}
}

// Subscribe registers fn to be called with (old, new) whenever Publish
// changes the value. It returns an unsubscribe function.
func (s *Subscribable) Subscribe(fn func(old, new StatusEvent)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubs
	s.nextSubs++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Publish updates the value and notifies subscribers iff it actually
// changed. Subscribers are invoked synchronously and in subscription order;
// callers on the controller goroutine get the ordering guarantee of §5
// ("status changes on one asset are delivered to subscribers in the order
// they occur").
func (s *Subscribable) Publish(next StatusEvent) {
	s.mu.Lock()
	old := s.value
	if old.equal(next) {
		s.mu.Unlock()
		return
	}
	s.value = next
	subs := make([]func(old, new StatusEvent), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(old, next)
	}
}

// Value returns the current value.
func (s *Subscribable) Value() StatusEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}
