package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

func floatPointer(f float32) *float32 {
	return &f
}

// GeminiBackend talks to the Gemini API directly and can be appended to the
// candidate list when a Google key is configured, giving the dispatcher one
// more provider to fall through to.
type GeminiBackend struct {
	apiKey string
	model  string
}

func NewGeminiBackend(apiKey, model string) *GeminiBackend {
	return &GeminiBackend{apiKey: apiKey, model: model}
}

func (b *GeminiBackend) Name() string {
	return "gemini/" + b.model
}

func (b *GeminiBackend) Complete(ctx context.Context, req *ModelRequest) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  b.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("gemini client init failed: %w", err)
	}

	// Images first, instruction text last, mirroring the positional order the
	// prompt describes.
	var parts []*genai.Part
	for _, img := range req.Images {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: img.MIMEType,
				Data:     img.Data,
			},
		})
	}
	parts = append(parts, &genai.Part{Text: req.Text})

	result, err := client.Models.GenerateContent(ctx, b.model, []*genai.Content{{Parts: parts}}, &genai.GenerateContentConfig{
		CandidateCount:  1,
		MaxOutputTokens: 4096,
		Temperature:     floatPointer(1),
	})
	if err != nil {
		return "", fmt.Errorf("gemini request failed for %s: %w", b.model, err)
	}
	if result.PromptFeedback != nil {
		return "", fmt.Errorf("gemini blocked prompt: %s", result.PromptFeedback.BlockReasonMessage)
	}
	return result.Text(), nil
}
