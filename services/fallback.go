package services

import (
	"fmt"
	"math/rand"

	"stylistapi/models"
)

var upperCategories = map[string]bool{
	models.CategoryTops:     true,
	models.CategoryOnePiece: true,
}

var lowerCategories = map[string]bool{
	models.CategoryBottomsPants: true,
	models.CategoryBottomsSkirt: true,
}

// FallbackSuggestion synthesizes a plausible pairing from the snapshot alone,
// for when every model candidate is down. Returns "" when the wardrobe cannot
// produce one; the caller then renders the degraded message by itself.
func FallbackSuggestion(snapshot models.WardrobeSnapshot) string {
	var uppers, lowers []int
	for i, item := range snapshot.Items {
		if upperCategories[item.Category] {
			uppers = append(uppers, i)
		}
		if lowerCategories[item.Category] {
			lowers = append(lowers, i)
		}
	}
	if len(uppers) == 0 {
		return ""
	}

	upper := uppers[rand.Intn(len(uppers))]
	if snapshot.Items[upper].Category == models.CategoryOnePiece || len(lowers) == 0 {
		return fmt.Sprintf("In the meantime, the %s [ID: %d] works on its own.", snapshot.Items[upper].Category, upper)
	}
	lower := lowers[rand.Intn(len(lowers))]
	return fmt.Sprintf("In the meantime, try the %s [ID: %d] with the %s [ID: %d].",
		snapshot.Items[upper].Category, upper, snapshot.Items[lower].Category, lower)
}
