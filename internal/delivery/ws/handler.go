package ws

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The frontend runs on a different origin; authentication happens
		// through the JWT, not the origin.
		return true
	},
}

// Handler upgrades authenticated HTTP requests to websocket connections.
type Handler struct {
	hub    *Hub
	logger *slog.Logger
}

// NewHandler is the constructor for the websocket Handler, injected by Fx.
func NewHandler(hub *Hub, logger *slog.Logger) *Handler {
	return &Handler{hub: hub, logger: logger}
}

// HandleChat upgrades the connection and registers it with the hub. The auth
// middleware has already placed the user ID on the context.
func (h *Handler) HandleChat(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing authenticated user"})
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Warn("Websocket upgrade failed", slog.Any("error", err))

		return nil
	}

	client := NewClient(h.hub, conn, userID, h.logger)
	h.hub.Register(client)
	go client.WritePump()
	go client.ReadPump()

	return nil
}
