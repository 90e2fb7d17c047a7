package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blogcraft/blog-platform/internal/api/middleware"
)

// PageHandler serves the static about and contact pages.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) About(c echo.Context) error {
	return h.render(c, "about", "About")
}

func (h *PageHandler) Contact(c echo.Context) error {
	return h.render(c, "contact", "Contact")
}

func (h *PageHandler) render(c echo.Context, name, title string) error {
	return c.Render(http.StatusOK, name, map[string]any{
		"Title": title,
		"User":  middleware.CurrentUser(c),
	})
}
