package controllers

import (
	"stylistapi/models"

	"github.com/labstack/echo/v4"
)

func SessionFromContext(c echo.Context) (*models.SessionContext, bool) {
	session, ok := c.Get("__session").(*models.SessionContext)
	return session, ok
}

func StrPointer(s string) *string {
	return &s
}

func IntPointer(i int) *int {
	return &i
}

func BoolPointer(b bool) *bool {
	return &b
}
