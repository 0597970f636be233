package services

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterBackend is one OpenRouter-hosted model speaking the OpenAI
// chat-completions format. Each candidate model gets its own backend value so
// the dispatcher can walk them in priority order.
type OpenRouterBackend struct {
	client openai.Client
	model  string
}

func NewOpenRouterBackend(apiKey, model, referer, title string) *OpenRouterBackend {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(openRouterBaseURL),
		option.WithHeader("HTTP-Referer", referer),
		option.WithHeader("X-Title", title),
		// The dispatcher owns retries; the SDK must not add its own.
		option.WithMaxRetries(0),
	)
	return &OpenRouterBackend{client: client, model: model}
}

func (b *OpenRouterBackend) Name() string {
	return b.model
}

func (b *OpenRouterBackend) Complete(ctx context.Context, req *ModelRequest) (string, error) {
	parts := make([]openai.ChatCompletionContentPartUnionParam, 0, len(req.Images)+1)
	parts = append(parts, openai.ChatCompletionContentPartUnionParam{
		OfText: &openai.ChatCompletionContentPartTextParam{Text: req.Text},
	})
	for _, img := range req.Images {
		parts = append(parts, openai.ChatCompletionContentPartUnionParam{
			OfImageURL: &openai.ChatCompletionContentPartImageParam{
				ImageURL: openai.ChatCompletionContentPartImageImageURLParam{
					URL:    img.DataURI,
					Detail: "auto",
				},
			},
		})
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(b.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfArrayOfContentParts: parts,
					},
				},
			},
		},
	}

	response, err := b.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openrouter request failed for %s: %w", b.model, err)
	}
	if len(response.Choices) == 0 {
		// Valid HTTP response without a completion; soft failure territory.
		return "", nil
	}
	return response.Choices[0].Message.Content, nil
}
