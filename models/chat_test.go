package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChatSessionSeedsGreeting(t *testing.T) {
	session := NewChatSession("Coco")
	history := session.History()

	require.Len(t, history, 1)
	assert.Equal(t, RoleAssistant, history[0].Role)
	assert.Contains(t, history[0].Text, "Coco")
}

func TestChatSessionAppendPreservesOrder(t *testing.T) {
	session := NewChatSession("Coco")
	session.Append(ChatMessage{Role: RoleUser, Text: "what to wear?"})
	session.Append(ChatMessage{Role: RoleAssistant, Text: "the blazer [ID: 0]"})

	history := session.History()
	require.Len(t, history, 3)
	assert.Equal(t, RoleUser, history[1].Role)
	assert.Equal(t, RoleAssistant, history[2].Role)
	assert.Equal(t, 3, session.Len())
}

func TestChatSessionHistoryIsACopy(t *testing.T) {
	session := NewChatSession("Coco")
	history := session.History()
	history[0].Text = "tampered"

	assert.NotEqual(t, "tampered", session.History()[0].Text)
}

func TestResolveRelatedMarksDeletedItemsUnavailable(t *testing.T) {
	store := NewWardrobeStore()
	kept, _ := store.Add(CategoryTops, SeasonAll, SizeAttributes{}, TransportImage{})
	removed, _ := store.Add(CategoryFootwear, SeasonAll, SizeAttributes{}, TransportImage{})

	msg := ChatMessage{
		Role:           RoleAssistant,
		Text:           "wear [ID: 0] with [ID: 1]",
		RelatedIndexes: []int{0, 1},
		RelatedItemIDs: []string{kept.ID, removed.ID},
	}

	require.True(t, store.Remove(removed.ID))
	related := ResolveRelated(msg, store)
	require.Len(t, related, 2)

	assert.True(t, related[0].Available)
	assert.Equal(t, CategoryTops, related[0].Category)
	assert.Equal(t, "ID: 0", related[0].Label)

	assert.False(t, related[1].Available)
	assert.Equal(t, "item no longer available", related[1].Label)
}

func TestResolveRelatedNoReferences(t *testing.T) {
	store := NewWardrobeStore()
	assert.Nil(t, ResolveRelated(ChatMessage{Role: RoleUser, Text: "hi"}, store))
}
