package services

import (
	"testing"

	"stylistapi/models"

	"github.com/stretchr/testify/assert"
)

func TestFallbackSuggestionPairsUpperAndLower(t *testing.T) {
	snapshot := models.WardrobeSnapshot{Items: []models.WardrobeItem{
		{ID: "a", Category: models.CategoryTops},
		{ID: "b", Category: models.CategoryBottomsPants},
	}}
	suggestion := FallbackSuggestion(snapshot)
	assert.Contains(t, suggestion, "[ID: 0]")
	assert.Contains(t, suggestion, "[ID: 1]")
}

func TestFallbackSuggestionOnePieceStandsAlone(t *testing.T) {
	snapshot := models.WardrobeSnapshot{Items: []models.WardrobeItem{
		{ID: "a", Category: models.CategoryOnePiece},
	}}
	suggestion := FallbackSuggestion(snapshot)
	assert.Contains(t, suggestion, "[ID: 0]")
	assert.NotContains(t, suggestion, "[ID: 1]")
}

func TestFallbackSuggestionEmptyWithoutUpperLayer(t *testing.T) {
	assert.Empty(t, FallbackSuggestion(models.WardrobeSnapshot{}))

	onlyShoes := models.WardrobeSnapshot{Items: []models.WardrobeItem{
		{ID: "a", Category: models.CategoryFootwear},
	}}
	assert.Empty(t, FallbackSuggestion(onlyShoes))
}
