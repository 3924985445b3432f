package events

import "sync"

// Auth event kinds published by the API layer.
const (
	KindUnauthorized = "auth.unauthorized"
	KindForbidden    = "auth.forbidden"
)

// AuthEvent carries enough for the session controller to act: on
// unauthorized the UI redirects to login, on forbidden it only notifies.
type AuthEvent struct {
	Kind    string `json:"kind"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Bus is the in-process replacement for ad-hoc browser CustomEvents.
// Publish never blocks: a subscriber that stopped draining loses events
// rather than stalling the API layer.
type Bus struct {
	mu   sync.Mutex
	subs []chan AuthEvent
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Subscribe() <-chan AuthEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan AuthEvent, 8)
	b.subs = append(b.subs, ch)
	return ch
}

func (b *Bus) Publish(e AuthEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}
