package controllers

import (
	"io"
	"net/http"

	"stylistapi/models"
	"stylistapi/services"

	"github.com/labstack/echo/v4"
)

type UpdateProfileIn struct {
	Name     string `json:"name" validate:"required,max=50"`
	Location string `json:"location" validate:"required,max=100"`
	Gender   string `json:"gender" validate:"omitempty,max=20"`
	HeightCM int    `json:"height_cm" validate:"omitempty,min=50,max=250"`
	WeightKG int    `json:"weight_kg" validate:"omitempty,min=20,max=300"`
	Bust     int    `json:"bust" validate:"omitempty,min=30,max=200"`
	Waist    int    `json:"waist" validate:"omitempty,min=30,max=200"`
	Hips     int    `json:"hips" validate:"omitempty,min=30,max=200"`
}

type UpdatePersonaIn struct {
	Name    string `json:"name" validate:"required,max=50"`
	Persona string `json:"persona" validate:"required,max=2000"`
	Emoji   string `json:"emoji" validate:"omitempty,max=8"`
}

type SettingsResponse struct {
	Profile models.UserProfile    `json:"profile"`
	Persona models.StylistPersona `json:"persona"`
}

type SettingsController struct {
	MaxImageEdge int
}

func (controller *SettingsController) SettingsRoutes(g *echo.Group) {
	g.GET("", controller.GetSettings)
	g.PUT("/profile", controller.UpdateProfile)
	g.PUT("/persona", controller.UpdatePersona)
	g.POST("/persona/avatar", controller.UploadAvatar)
}

func (controller *SettingsController) GetSettings(c echo.Context) error {
	session, ok := SessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Session is not available"})
	}
	return c.JSON(http.StatusOK, SettingsResponse{
		Profile: session.Profile(),
		Persona: session.Persona(),
	})
}

func (controller *SettingsController) UpdateProfile(c echo.Context) error {
	var req UpdateProfileIn
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

	session.SetProfile(models.UserProfile{
		Name:     req.Name,
		Location: req.Location,
		Gender:   req.Gender,
		HeightCM: req.HeightCM,
		WeightKG: req.WeightKG,
		Bust:     req.Bust,
		Waist:    req.Waist,
		Hips:     req.Hips,
	})
	return c.JSON(http.StatusOK, session.Profile())
}

// UpdatePersona replaces name and persona text; an emoji, when present, also
// replaces the avatar. Uploaded-image avatars go through UploadAvatar instead.
func (controller *SettingsController) UpdatePersona(c echo.Context) error {
	var req UpdatePersonaIn
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

	persona := session.Persona()
	persona.Name = req.Name
	persona.Persona = req.Persona
	if req.Emoji != "" {
		persona.Avatar.SetEmoji(req.Emoji)
	}
	session.SetPersona(persona)
	return c.JSON(http.StatusOK, session.Persona())
}

// UploadAvatar accepts one multipart image. The same decode pipeline as
// wardrobe uploads guards it; an undecodable file rejects the whole request.
func (controller *SettingsController) UploadAvatar(c echo.Context) error {
	session, ok := SessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Session is not available"})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "An image file is required"})
	}
	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Failed to open uploaded file"})
	}
	defer src.Close()
	raw, err := io.ReadAll(src)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Failed to read uploaded file"})
	}

	image, err := services.PrepareImage(raw, controller.MaxImageEdge)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Uploaded file is not a decodable image"})
	}

	persona := session.Persona()
	persona.Avatar.SetImage(image.Data)
	session.SetPersona(persona)
	return c.JSON(http.StatusOK, session.Persona())
}
