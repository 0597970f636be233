package controllers

import (
	"net/http"

	"stylistapi/metrics"
	"stylistapi/models"
	"stylistapi/services"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		// Optionally, you could return the error to give each route more control over the status code
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func SetupServer(
	session *models.SessionContext,
	dispatcher *services.Dispatcher,
	weather *services.WeatherCacheService,
	registry *metrics.Registry,
	maxImageEdge int,
) *echo.Echo {

	e := echo.New()
	v := validator.New()
	v.RegisterValidation("category", models.ValidateCategory)
	v.RegisterValidation("season", models.ValidateSeason)
	e.Validator = &CustomValidator{validator: v}

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("__session", session)
			return next(c)
		}
	})
	e.Use(RequestLogger(registry))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	e.GET("/metrics", registry.EchoHandlerText)

	wardrobeController := WardrobeController{MaxImageEdge: maxImageEdge}
	wardrobeGroup := e.Group("/wardrobe/items")
	wardrobeController.WardrobeRoutes(wardrobeGroup)

	chatController := ChatController{Dispatcher: dispatcher, Weather: weather, Metrics: registry}
	chatGroup := e.Group("/chat/messages")
	chatController.ChatRoutes(chatGroup)

	settingsController := SettingsController{MaxImageEdge: maxImageEdge}
	settingsGroup := e.Group("/settings")
	settingsController.SettingsRoutes(settingsGroup)

	return e
}
