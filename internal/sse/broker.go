// Package sse fans engine events out to connected browsers over
// Server-Sent Events. One shared session means one broadcast group.
package sse

import (
	"log"
	"maps"
	"os"
	"sync"
	"time"
)

// SendTimeoutSeconds bounds how long a broadcast waits on one slow
// client before skipping it.
const SendTimeoutSeconds = 2

// SSE event type constants
const (
	EventState  = "state-update"
	EventTick   = "timer-tick"
	EventNotice = "notice"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// Message is one wire-level SSE frame.
type Message struct {
	Event string
	Data  string
}

// Broker tracks connected clients and broadcasts to all of them.
type Broker struct {
	mu      sync.RWMutex
	clients map[chan Message]struct{}
}

// NewBroker returns an empty broadcast group.
func NewBroker() *Broker {
	return &Broker{clients: make(map[chan Message]struct{})}
}

// Subscribe registers a client channel. The caller owns the channel
// and must Unsubscribe when the connection closes.
func (b *Broker) Subscribe() chan Message {
	ch := make(chan Message, 16)
	b.mu.Lock()
	b.clients[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe drops a client.
func (b *Broker) Unsubscribe(ch chan Message) {
	b.mu.Lock()
	delete(b.clients, ch)
	n := len(b.clients)
	b.mu.Unlock()
	log.Printf("sse: client removed, now have %d total clients", n)
}

// ClientCount reports the number of connected clients.
func (b *Broker) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

// Broadcast sends a message to all connected clients. Slow clients are
// skipped after a timeout so one stalled browser cannot block the rest.
func (b *Broker) Broadcast(event, data string) {
	b.mu.RLock()
	clients := maps.Clone(b.clients)
	b.mu.RUnlock()

	if debug {
		log.Printf("sse: event=%s to %d clients", event, len(clients))
	}

	msg := Message{Event: event, Data: data}
	sent := 0
	for client := range clients {
		select {
		case client <- msg:
			sent++
		case <-time.After(SendTimeoutSeconds * time.Second):
			if debug {
				log.Printf("sse: timeout sending to client")
			}
		}
	}
	if debug {
		log.Printf("sse: sent to %d/%d clients", sent, len(clients))
	}
}
