package cart

import "sync"

// Event describes one cart change, broadcast to every subscriber so
// mini-cart, counter and cart-page views stay consistent without polling.
type Event struct {
	Token  string `json:"token"`
	Count  int    `json:"count"`
	Totals Totals `json:"totals"`
}

// Bus is an in-process publish/subscribe channel for cart change events.
// Publishing never blocks; slow subscribers drop events (last write wins).
type Bus struct {
	mu   sync.RWMutex
	subs map[chan Event]struct{}
}

func NewBus() *Bus {
	return &Bus{subs: make(map[chan Event]struct{})}
}

// Subscribe registers a listener. The returned cancel func must be called
// when the listener goes away.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 8)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		delete(b.subs, ch)
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish fans the event out to all subscribers without blocking.
func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
