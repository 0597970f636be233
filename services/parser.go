package services

import (
	"regexp"
	"strconv"
)

// Matches the literal "ID" (any case) followed by a half- or full-width colon
// and an integer, the reference convention the prompt instructs the model to use.
var itemIDRegex = regexp.MustCompile(`(?i)ID[:：]\s*(\d+)`)

// ExtractItemIDs scans free model text for item references and validates them
// against the wardrobe size at parse time. Duplicates keep their first-seen
// position; out-of-range or malformed captures are silently dropped, because
// models hallucinate indexes and that must never surface as an error.
func ExtractItemIDs(text string, storeSize int) []int {
	matches := itemIDRegex.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[int]bool, len(matches))
	var out []int
	for _, m := range matches {
		value, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if value < 0 || value >= storeSize {
			continue
		}
		if seen[value] {
			continue
		}
		seen[value] = true
		out = append(out, value)
	}
	return out
}
