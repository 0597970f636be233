package controllers

import (
	"io"
	"net/http"

	"stylistapi/models"
	"stylistapi/services"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// Request structs for validation
type CreateItemsIn struct {
	Category string `form:"category" validate:"required,category"`
	Season   string `form:"season" validate:"required,season"`
	Length   string `form:"length" validate:"omitempty,max=20"`
	Width    string `form:"width" validate:"omitempty,max=20"`
	Waist    string `form:"waist" validate:"omitempty,max=20"`
}

type UpdateItemIn struct {
	Category *string `json:"category" validate:"omitempty,category"`
	Season   *string `json:"season" validate:"omitempty,season"`
	Length   *string `json:"length" validate:"omitempty,max=20"`
	Width    *string `json:"width" validate:"omitempty,max=20"`
	Waist    *string `json:"waist" validate:"omitempty,max=20"`
}

// Response structs
type WardrobeItemResponse struct {
	ID           string                `json:"id"`
	DisplayIndex int                   `json:"display_index"`
	Category     string                `json:"category"`
	Season       string                `json:"season"`
	Size         models.SizeAttributes `json:"size"`
}

type ItemsCreatedResponse struct {
	Items   []WardrobeItemResponse `json:"items"`
	Skipped int                    `json:"skipped"`
}

type ItemsListResponse struct {
	Items []WardrobeItemResponse `json:"items"`
	Total int                    `json:"total"`
}

type WardrobeController struct {
	MaxImageEdge int
}

func (controller *WardrobeController) WardrobeRoutes(g *echo.Group) {
	g.POST("", controller.CreateItems)
	g.GET("", controller.ListItems)
	g.PUT("/:id", controller.UpdateItem)
	g.DELETE("/:id", controller.DeleteItem)
	g.DELETE("", controller.ClearItems)
}

func itemResponse(item models.WardrobeItem, displayIndex int) WardrobeItemResponse {
	return WardrobeItemResponse{
		ID:           item.ID,
		DisplayIndex: displayIndex,
		Category:     item.Category,
		Season:       item.Season,
		Size:         item.Size,
	}
}

// CreateItems ingests one or more photos under a shared category/season. Files
// that cannot be decoded are skipped and counted, never stored half-prepared.
func (controller *WardrobeController) CreateItems(c echo.Context) error {
	var req CreateItemsIn
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

	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Expected multipart form data"})
	}
	files := form.File["images"]
	if len(files) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "At least one image is required"})
	}

	size := models.SizeAttributes{Length: req.Length, Width: req.Width, Waist: req.Waist}
	created := []WardrobeItemResponse{}
	skipped := 0
	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			log.Warn().Err(err).Str("file", file.Filename).Msg("failed to open uploaded file")
			skipped++
			continue
		}
		raw, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			log.Warn().Err(err).Str("file", file.Filename).Msg("failed to read uploaded file")
			skipped++
			continue
		}

		image, err := services.PrepareImage(raw, controller.MaxImageEdge)
		if err != nil {
			log.Warn().Err(err).Str("file", file.Filename).Msg("skipping undecodable image")
			skipped++
			continue
		}

		item, displayIndex := session.Wardrobe.Add(req.Category, req.Season, size, image)
		created = append(created, itemResponse(item, displayIndex))
	}

	if len(created) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "None of the uploaded files could be decoded as images"})
	}
	return c.JSON(http.StatusCreated, ItemsCreatedResponse{Items: created, Skipped: skipped})
}

// ListItems returns the ordered wardrobe. The optional category filter keeps
// the display indexes of the unfiltered ordering, because those are the IDs the
// stylist talks about.
func (controller *WardrobeController) ListItems(c echo.Context) error {
	session, ok := SessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Session is not available"})
	}

	categoryFilter := c.QueryParam("category")
	snapshot := session.Wardrobe.Snapshot()

	items := []WardrobeItemResponse{}
	for i, item := range snapshot.Items {
		if categoryFilter != "" && item.Category != categoryFilter {
			continue
		}
		items = append(items, itemResponse(item, i))
	}
	return c.JSON(http.StatusOK, ItemsListResponse{Items: items, Total: snapshot.Len()})
}

func (controller *WardrobeController) UpdateItem(c echo.Context) error {
	var req UpdateItemIn
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

	id := c.Param("id")
	current, _, found := session.Wardrobe.GetByID(id)
	if !found {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Item not found"})
	}

	category, season := "", ""
	if req.Category != nil {
		category = *req.Category
	}
	if req.Season != nil {
		season = *req.Season
	}
	size := current.Size
	if req.Length != nil {
		size.Length = *req.Length
	}
	if req.Width != nil {
		size.Width = *req.Width
	}
	if req.Waist != nil {
		size.Waist = *req.Waist
	}

	updated, found := session.Wardrobe.Update(id, category, season, size)
	if !found {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Item not found"})
	}
	_, displayIndex, _ := session.Wardrobe.GetByID(updated.ID)
	return c.JSON(http.StatusOK, itemResponse(updated, displayIndex))
}

func (controller *WardrobeController) DeleteItem(c echo.Context) error {
	session, ok := SessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Session is not available"})
	}

	if !session.Wardrobe.Remove(c.Param("id")) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Item not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Item removed"})
}

func (controller *WardrobeController) ClearItems(c echo.Context) error {
	session, ok := SessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Session is not available"})
	}

	session.Wardrobe.Clear()
	return c.JSON(http.StatusOK, map[string]string{"message": "Wardrobe cleared"})
}
