package services

import (
	"fmt"
	"strings"

	"stylistapi/models"
)

// ModelRequest is the transport-agnostic request the dispatcher hands to each
// backend: one instruction block plus the snapshot images in list order.
type ModelRequest struct {
	Text   string
	Images []models.TransportImage
}

// BuildPrompt assembles the instruction block: persona identity (persona text
// verbatim, never altered), user profile facts, the literal user message, the
// mandatory "[ID: n]" formatting rule, and one line per snapshot item paired
// positionally with its image. The backends do not tag images, so the listed
// order and the attached order must match exactly.
func BuildPrompt(turn string, persona models.StylistPersona, profile models.UserProfile, snapshot models.WardrobeSnapshot) (*ModelRequest, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "You are %s. %s\n", persona.Name, persona.Persona)
	fmt.Fprintf(&b, "User: %s, %s", profile.Name, profile.Location)
	if persona.Weather != "" {
		fmt.Fprintf(&b, " (%s)", persona.Weather)
	}
	b.WriteString(".\n")
	if profile.Gender != "" || profile.HeightCM > 0 {
		fmt.Fprintf(&b, "Gender: %s, height: %dcm", profile.Gender, profile.HeightCM)
		if profile.Bust > 0 || profile.Waist > 0 || profile.Hips > 0 {
			fmt.Fprintf(&b, ", measurements: %d/%d/%d", profile.Bust, profile.Waist, profile.Hips)
		}
		b.WriteString(".\n")
	}
	fmt.Fprintf(&b, "User asks: %s\n", turn)
	b.WriteString("IMPORTANT RULE: whenever you recommend an item you MUST tag it with its ID " +
		"in the exact format [ID: <number>], e.g. \"I suggest the white tee [ID: 0]\".\n")
	b.WriteString("The wardrobe is listed below; the attached images follow the same order:")

	images := make([]models.TransportImage, 0, snapshot.Len())
	lines := 0
	for i, item := range snapshot.Items {
		summary := item.Size.Summary()
		if summary != "" {
			fmt.Fprintf(&b, "\n- [ID: %d] %s (%s)", i, item.Category, summary)
		} else {
			fmt.Fprintf(&b, "\n- [ID: %d] %s", i, item.Category)
		}
		images = append(images, item.Image)
		lines++
	}

	// The model maps images to IDs purely by position. A drifted count here is
	// a bug in this builder, not a recoverable runtime condition.
	if lines != len(images) {
		return nil, fmt.Errorf("prompt invariant violated: %d item lines but %d images", lines, len(images))
	}

	return &ModelRequest{Text: b.String(), Images: images}, nil
}
