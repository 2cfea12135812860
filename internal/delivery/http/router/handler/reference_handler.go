package handler

import (
	"log/slog"
	"net/http"

	"tetatete/internal/delivery/http/response"
	"tetatete/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReferenceHandler serves the static reference lists.
type ReferenceHandler struct {
	uc     usecase.ReferenceUsecase
	logger *slog.Logger
}

// NewReferenceHandler is the constructor for ReferenceHandler, injected by Fx.
func NewReferenceHandler(uc usecase.ReferenceUsecase, logger *slog.Logger) *ReferenceHandler {
	return &ReferenceHandler{
		uc:     uc,
		logger: logger,
	}
}

// Genders lists the gender reference entries.
func (h *ReferenceHandler) Genders(c echo.Context) error {
	genders, err := h.uc.ListGenders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, genders, "")
}

// Locations lists the location reference entries.
func (h *ReferenceHandler) Locations(c echo.Context) error {
	locations, err := h.uc.ListLocations(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, locations, "")
}

// Languages lists the language reference entries.
func (h *ReferenceHandler) Languages(c echo.Context) error {
	languages, err := h.uc.ListLanguages(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, languages, "")
}
