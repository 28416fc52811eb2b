package notification

import (
	"context"
	"sync"
)

// SentMessage is a message captured by MockSender
type SentMessage struct {
	From    Account
	Message Message
}

// MockSender records messages instead of sending them. Recipients listed in
// FailFor get the configured error back.
type MockSender struct {
	mu      sync.Mutex
	Sent    []SentMessage
	FailFor map[string]error
}

func (m *MockSender) Send(ctx context.Context, from Account, msg Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.FailFor[msg.To]; ok {
		return err
	}
	m.Sent = append(m.Sent, SentMessage{From: from, Message: msg})
	return nil
}

// SentTo returns the recorded messages addressed to the given recipient
func (m *MockSender) SentTo(to string) []Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Message
	for _, s := range m.Sent {
		if s.Message.To == to {
			out = append(out, s.Message)
		}
	}
	return out
}

func (m *MockSender) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sent)
}
