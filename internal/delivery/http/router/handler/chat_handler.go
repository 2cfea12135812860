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

// ChatHandler holds dependencies for chat handlers.
type ChatHandler struct {
	uc     usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(uc usecase.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		uc:     uc,
		logger: logger,
	}
}

// SendMessageRequest represents the body of a send message request.
type SendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// chatID reads the chat ID path parameter.
func chatID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("chatId"))
}

// Rooms lists the caller's chat rooms.
func (h *ChatHandler) Rooms(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	rooms, err := h.uc.ChatRooms(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rooms, "")
}

// Messages returns the message history of one chat.
func (h *ChatHandler) Messages(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	id, err := chatID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid chat ID")
	}

	messages, err := h.uc.Messages(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "")
}

// Join re-enters a chat the caller previously left.
func (h *ChatHandler) Join(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	id, err := chatID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid chat ID")
	}

	if err := h.uc.Join(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Joined the chat")
}

// Leave exits a chat.
func (h *ChatHandler) Leave(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	id, err := chatID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid chat ID")
	}

	if err := h.uc.Leave(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Left the chat")
}

// SendMessage appends a message to a chat.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	id, err := chatID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid chat ID")
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	message, err := h.uc.SendMessage(c.Request().Context(), userID, id, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent")
}
