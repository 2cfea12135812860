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

// NotificationHandler holds dependencies for notification handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// MarkReadRequest represents the body of a mark-read request.
type MarkReadRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required"`
}

// ListUnread returns the caller's newest unread notifications.
func (h *NotificationHandler) ListUnread(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	notifications, err := h.uc.ListUnread(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "")
}

// MarkRead acknowledges the given notifications.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	var req MarkReadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mark-read input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.MarkRead(c.Request().Context(), userID, req.IDs); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notifications marked as read")
}
