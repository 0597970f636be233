package models

import (
	"fmt"
	"sync"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
	// RelatedIndexes are the display indexes the parser validated against the
	// snapshot this message was produced from. They are a rendering hint only.
	RelatedIndexes []int `json:"related_indexes,omitempty"`
	// RelatedItemIDs carry the same references resolved to stable item IDs at
	// append time, so the references survive later store mutations.
	RelatedItemIDs []string `json:"related_item_ids,omitempty"`
}

// RelatedItem is the resolved rendering form of one reference.
type RelatedItem struct {
	ID        string `json:"id"`
	Category  string `json:"category,omitempty"`
	Available bool   `json:"available"`
	Label     string `json:"label"`
}

// ChatSession is an append-only ordered log of turns. The greeting is seeded
// locally so the chat never blocks on the network before the user says anything.
type ChatSession struct {
	mu       sync.RWMutex
	messages []ChatMessage
}

func NewChatSession(stylistName string) *ChatSession {
	s := &ChatSession{}
	s.messages = append(s.messages, ChatMessage{
		Role: RoleAssistant,
		Text: fmt.Sprintf("Hi! I'm %s. Fill your wardrobe and ask me what to wear.", stylistName),
	})
	return s
}

func (s *ChatSession) Append(msg ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// History returns a copy; callers cannot edit the log through it.
func (s *ChatSession) History() []ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *ChatSession) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// ResolveRelated maps a message's stable ID references onto the current store.
// Deleted items degrade to an unavailable placeholder instead of failing.
func ResolveRelated(msg ChatMessage, store *WardrobeStore) []RelatedItem {
	if len(msg.RelatedItemIDs) == 0 {
		return nil
	}
	out := make([]RelatedItem, 0, len(msg.RelatedItemIDs))
	for _, id := range msg.RelatedItemIDs {
		item, idx, ok := store.GetByID(id)
		if !ok {
			out = append(out, RelatedItem{ID: id, Available: false, Label: "item no longer available"})
			continue
		}
		out = append(out, RelatedItem{
			ID:        item.ID,
			Category:  item.Category,
			Available: true,
			Label:     fmt.Sprintf("ID: %d", idx),
		})
	}
	return out
}
