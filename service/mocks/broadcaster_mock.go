package mocks

import (
	"sync"
)

// RecordingBroadcaster captures everything the service dispatches so tests
// can assert on recipients and payloads.
type RecordingBroadcaster struct {
	mu   sync.Mutex
	sent []Sent
}

type Sent struct {
	ConnIDs []string
	Message []byte
}

func NewRecordingBroadcaster() *RecordingBroadcaster {
	return &RecordingBroadcaster{}
}

func (b *RecordingBroadcaster) Send(connID string, message []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, Sent{ConnIDs: []string{connID}, Message: message})
}

func (b *RecordingBroadcaster) SendAll(connIDs []string, message []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, Sent{ConnIDs: connIDs, Message: message})
}

// Sent returns everything dispatched so far, in dispatch order.
func (b *RecordingBroadcaster) Sent() []Sent {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Sent, len(b.sent))
	copy(out, b.sent)
	return out
}

// Reset discards the recorded dispatches.
func (b *RecordingBroadcaster) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = nil
}
