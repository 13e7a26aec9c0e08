package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v5"

	"alumni-portal/internal/status"
	"alumni-portal/models"
	"alumni-portal/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type registerRequest struct {
	Email    string          `json:"email"`
	Name     string          `json:"name"`
	Password string          `json:"password"`
	Role     string          `json:"role"`
	Profile  *models.Profile `json:"profile"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "Invalid request body",
		})
	}

	user, err := h.auth.Register(c.Request().Context(), services.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     req.Role,
		Profile:  req.Profile,
	})
	if err != nil {
		switch {
		case errors.Is(err, status.ErrEmailTaken):
			return c.JSON(http.StatusConflict, map[string]string{"message": err.Error()})
		case errors.Is(err, status.ErrMissingFields):
			return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
		default:
			slog.Error("failed to register user", "email", req.Email, "error", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"message": "Error registering user",
			})
		}
	}
	return c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "Invalid request body",
		})
	}

	user, token, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, status.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": err.Error()})
		}
		slog.Error("failed to log in user", "email", req.Email, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Error logging in",
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"user":  user,
		"token": token,
	})
}
