package handler

import (
	"log/slog"
	"net/http"

	"tetatete/internal/delivery/http/response"
	"tetatete/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MatchHandler holds dependencies for the matching feed handlers.
type MatchHandler struct {
	uc     usecase.MatchUsecase
	logger *slog.Logger
}

// NewMatchHandler is the constructor for MatchHandler, injected by Fx.
func NewMatchHandler(uc usecase.MatchUsecase, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{
		uc:     uc,
		logger: logger,
	}
}

// LikeRequest represents the body of a like request.
type LikeRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}

// DislikeRequest represents the body of a dislike request.
type DislikeRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}

// New returns up to five fresh same-category candidates.
func (h *MatchHandler) New(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	candidates, err := h.uc.NewCandidates(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, candidates, "")
}

// Unanswered returns the users still waiting for the caller's answer.
func (h *MatchHandler) Unanswered(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	candidates, err := h.uc.UnansweredCandidates(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, candidates, "")
}

// Existing returns the users the caller is matched with.
func (h *MatchHandler) Existing(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	candidates, err := h.uc.ExistingCandidates(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, candidates, "")
}

// Like records a like towards another user.
func (h *MatchHandler) Like(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	var req LikeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid like input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Like(c.Request().Context(), userID, req.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Like recorded"
	if output.Matched {
		message = "It is a match"
	}

	return response.Success(c, http.StatusOK, output, message)
}

// Dislike removes the pending proposal with another user.
func (h *MatchHandler) Dislike(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	var req DislikeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dislike input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.Dislike(c.Request().Context(), userID, req.UserID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Dislike recorded")
}
