// Package chat implements the conversational assistant: intent-routed talent
// searches, general replies, and conversation bookkeeping.
package chat

import (
	"sync"

	"github.com/jonathan/talent-scout/internal/llm"
)

// History holds the rolling conversation of one assistant. Safe for
// concurrent use.
type History struct {
	mu       sync.Mutex
	messages []llm.Message
}

// NewHistory creates an empty conversation history.
func NewHistory() *History {
	return &History{}
}

// Append records one turn.
func (h *History) Append(role, content string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, llm.Message{Role: role, Content: content})
}

// Tail returns a copy of the last n messages, oldest first.
func (h *History) Tail(n int) []llm.Message {
	h.mu.Lock()
	defer h.mu.Unlock()

	start := len(h.messages) - n
	if start < 0 {
		start = 0
	}
	tail := make([]llm.Message, len(h.messages)-start)
	copy(tail, h.messages[start:])
	return tail
}

// Counts reports the total number of messages and how many came from the user.
func (h *History) Counts() (total, user int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, m := range h.messages {
		if m.Role == llm.RoleUser {
			user++
		}
	}
	return len(h.messages), user
}

// Reset drops all recorded turns.
func (h *History) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = nil
}
