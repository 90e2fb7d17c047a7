package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/blogcraft/blog-platform/internal/api/metrics"
	"github.com/blogcraft/blog-platform/internal/api/middleware"
	"github.com/blogcraft/blog-platform/internal/core/domain"
	"github.com/blogcraft/blog-platform/internal/core/ports"
)

// AuthHandler serves the register, login, and logout surfaces.
type AuthHandler struct {
	auth       ports.AuthService
	cookieName string
}

func NewAuthHandler(auth ports.AuthService, cookieName string) *AuthHandler {
	return &AuthHandler{auth: auth, cookieName: cookieName}
}

type registerForm struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type loginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// RegisterForm renders the signup page.
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return c.Render(http.StatusOK, "register", h.formData(c, "Register", registerForm{}, ""))
}

// Register creates an account and logs the new user straight in.
func (h *AuthHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "register", h.formData(c, "Register", form, "invalid form submission"))
	}
	if err := c.Validate(&form); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return c.Render(http.StatusBadRequest, "register", h.formData(c, "Register", form, err.Error()))
	}

	_, token, err := h.auth.Register(c.Request().Context(), form.Name, form.Email, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			metrics.RegistrationsTotal.WithLabelValues("duplicate_email").Inc()
			return c.Render(http.StatusConflict, "register", h.formData(c, "Register", form, "You've already signed up with that email, log in instead."))
		case errors.Is(err, domain.ErrValidation):
			metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
			return c.Render(http.StatusBadRequest, "register", h.formData(c, "Register", form, "All fields are required."))
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	h.setSessionCookie(c, token)
	return c.Redirect(http.StatusSeeOther, "/")
}

// LoginForm renders the login page.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login", h.formData(c, "Log In", loginForm{}, ""))
}

// Login authenticates and starts a session. Unknown email and wrong password
// take the exact same path out.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "login", h.formData(c, "Log In", form, "invalid form submission"))
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusBadRequest, "login", h.formData(c, "Log In", form, err.Error()))
	}

	_, token, err := h.auth.Login(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.Render(http.StatusUnauthorized, "login", h.formData(c, "Log In", loginForm{Email: form.Email}, "Invalid email or password."))
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.setSessionCookie(c, token)
	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout ends the current session and sends the visitor to the login page.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		if err := h.auth.Logout(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
		metrics.SessionsEndedTotal.Inc()
	}
	h.clearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}

func (h *AuthHandler) formData(c echo.Context, title string, form any, errMsg string) map[string]any {
	return map[string]any{
		"Title": title,
		"User":  middleware.CurrentUser(c),
		"Form":  form,
		"Error": errMsg,
		"CSRF":  csrfToken(c),
	}
}

// csrfToken returns the anti-forgery token the CSRF middleware put in
// context, or the empty string when the middleware is not active.
func csrfToken(c echo.Context) string {
	t, _ := c.Get("csrf").(string)
	return t
}
