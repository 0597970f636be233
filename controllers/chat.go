package controllers

import (
	"net/http"
	"strconv"

	"stylistapi/metrics"
	"stylistapi/models"
	"stylistapi/services"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type PostMessageIn struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type ChatMessageOut struct {
	Role     string               `json:"role"`
	Text     string               `json:"text"`
	Related  []models.RelatedItem `json:"related,omitempty"`
	Degraded bool                 `json:"degraded,omitempty"`
}

type ChatHistoryResponse struct {
	Messages []ChatMessageOut `json:"messages"`
}

type ChatController struct {
	Dispatcher *services.Dispatcher
	Weather    *services.WeatherCacheService
	Metrics    *metrics.Registry
}

func (controller *ChatController) ChatRoutes(g *echo.Group) {
	g.POST("", controller.PostMessage)
	g.GET("", controller.GetHistory)
}

// PostMessage runs one full styling turn synchronously: freeze the wardrobe,
// build the prompt against that snapshot, dispatch, parse the reply for item
// references, then append both sides of the exchange. The turn always yields
// an assistant message; dispatch exhaustion degrades, it does not fail.
func (controller *ChatController) PostMessage(c echo.Context) error {
	var req PostMessageIn
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	session, ok := SessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Session is not available"})
	}

	ctx := c.Request().Context()

	if controller.Weather != nil {
		weather, err := controller.Weather.Current(ctx, session.Profile().Location)
		if err != nil {
			log.Warn().Err(err).Msg("weather lookup failed, prompt goes out without it")
		} else if weather != "" {
			session.SetWeather(weather)
		}
	}

	snapshot := session.Wardrobe.Snapshot()
	prompt, err := services.BuildPrompt(req.Message, session.Persona(), session.Profile(), snapshot)
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to prepare the styling request"})
	}

	result := controller.Dispatcher.Dispatch(ctx, prompt)
	text := result.Text
	if result.Degraded {
		if suggestion := services.FallbackSuggestion(snapshot); suggestion != "" {
			text = text + " " + suggestion
		}
	}

	// References resolve against the snapshot the prompt was built from, not
	// against the live store; deletes during dispatch cannot skew them.
	indexes := services.ExtractItemIDs(text, snapshot.Len())
	ids := make([]string, 0, len(indexes))
	for _, idx := range indexes {
		ids = append(ids, snapshot.Items[idx].ID)
	}

	session.Chat.Append(models.ChatMessage{Role: models.RoleUser, Text: req.Message})
	assistant := models.ChatMessage{
		Role:           models.RoleAssistant,
		Text:           text,
		RelatedIndexes: indexes,
		RelatedItemIDs: ids,
	}
	session.Chat.Append(assistant)

	if controller.Metrics != nil {
		controller.Metrics.Inc(ctx, "chat_turns_total", map[string]string{
			"backend":  result.Backend,
			"degraded": strconv.FormatBool(result.Degraded),
		}, 1)
	}

	return c.JSON(http.StatusOK, ChatMessageOut{
		Role:     assistant.Role,
		Text:     assistant.Text,
		Related:  models.ResolveRelated(assistant, session.Wardrobe),
		Degraded: result.Degraded,
	})
}

// GetHistory renders the whole session log. Related references are resolved by
// stable ID at render time, so items deleted since a turn show up unavailable.
func (controller *ChatController) GetHistory(c echo.Context) error {
	session, ok := SessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Session is not available"})
	}

	history := session.Chat.History()
	messages := make([]ChatMessageOut, 0, len(history))
	for _, msg := range history {
		messages = append(messages, ChatMessageOut{
			Role:    msg.Role,
			Text:    msg.Text,
			Related: models.ResolveRelated(msg, session.Wardrobe),
		})
	}
	return c.JSON(http.StatusOK, ChatHistoryResponse{Messages: messages})
}
