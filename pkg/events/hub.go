package events

import (
	"sync"
	"time"
)

// Subscriber is one connected feed client.
type Subscriber struct {
	ID   string
	Send chan Event    // Channel to deliver events to this client
	Done chan struct{} // Signal to stop writing
}

// Hub fans market events out to all connected subscribers.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]*Subscriber
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]*Subscriber),
	}
}

// Subscribe registers a new feed subscriber.
func (h *Hub) Subscribe(id string) *Subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Replace an existing subscription with the same id
	if existing, ok := h.subscribers[id]; ok {
		close(existing.Done)
	}

	sub := &Subscriber{
		ID:   id,
		Send: make(chan Event, 32), // Buffered to absorb bursts
		Done: make(chan struct{}),
	}

	h.subscribers[id] = sub
	return sub
}

// Unsubscribe removes a subscriber.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sub, ok := h.subscribers[id]; ok {
		close(sub.Done)
		delete(h.subscribers, id)
	}
}

// SubscriberCount returns the number of connected subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers)
}

// Broadcast delivers an event to every subscriber. Slow subscribers with a
// full queue miss the event rather than block the publisher.
func (h *Hub) Broadcast(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subscribers {
		select {
		case sub.Send <- event:
		case <-sub.Done:
		default:
		}
	}
}

// PublishNFTMinted implements nfts.Publisher.
func (h *Hub) PublishNFTMinted(id int64, ownerUUID, tokenURI string) {
	h.Broadcast(Event{Type: EventNFTMinted, NFTID: id, Owner: ownerUUID, TokenURI: tokenURI})
}

// PublishNFTListed implements market.Publisher.
func (h *Hub) PublishNFTListed(id int64, ownerUUID string, price int64) {
	h.Broadcast(Event{Type: EventNFTListed, NFTID: id, Owner: ownerUUID, Price: price})
}

// PublishNFTDelisted implements market.Publisher.
func (h *Hub) PublishNFTDelisted(id int64, ownerUUID string) {
	h.Broadcast(Event{Type: EventNFTDelisted, NFTID: id, Owner: ownerUUID})
}

// PublishNFTSold implements market.Publisher.
func (h *Hub) PublishNFTSold(id int64, sellerUUID, buyerUUID string, price, payment int64) {
	h.Broadcast(Event{Type: EventNFTSold, NFTID: id, Owner: sellerUUID, Buyer: buyerUUID, Price: price, Amount: payment})
}

// PublishFundsWithdrawn implements treasury.Publisher.
func (h *Hub) PublishFundsWithdrawn(adminUUID string, amount int64) {
	h.Broadcast(Event{Type: EventFundsWithdrawn, Owner: adminUUID, Amount: amount})
}
