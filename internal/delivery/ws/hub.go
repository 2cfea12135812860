// Package ws implements the websocket chat transport: a hub of connected
// users and per-connection clients with read and write pumps.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"tetatete/internal/domain/entity"
	"tetatete/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// MessageEvent is the JSON frame pushed to connected clients.
type MessageEvent struct {
	Type      string    `json:"type"`
	ChatID    uuid.UUID `json:"chatId"`
	MessageID uuid.UUID `json:"messageId"`
	SenderID  uuid.UUID `json:"senderId"`
	Content   string    `json:"content"`
	Timestamp string    `json:"timestamp"`
}

// Hub tracks the open connections of every user. One user can hold several
// connections, such as multiple browser tabs.
type Hub struct {
	clients    map[uuid.UUID]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	deliveries chan delivery
	logger     *slog.Logger
}

type delivery struct {
	userID  uuid.UUID
	payload []byte
}

// HubParams holds dependencies for the Hub, injected by Fx.
type HubParams struct {
	fx.In
	fx.Lifecycle

	Logger *slog.Logger
}

// NewHub builds the hub and starts its dispatch loop with the application.
func NewHub(params HubParams) *Hub {
	hub := &Hub{
		clients:    make(map[uuid.UUID]map[*Client]struct{}),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		deliveries: make(chan delivery, 1024),
		logger:     params.Logger,
	}

	ctx, cancel := context.WithCancel(context.Background())
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go hub.run(ctx)

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})

	return hub
}

// NewBroadcaster exposes the hub through the domain interface.
func NewBroadcaster(hub *Hub) service.MessageBroadcaster {
	return hub
}

func (h *Hub) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			conns, ok := h.clients[client.userID]
			if !ok {
				conns = make(map[*Client]struct{})
				h.clients[client.userID] = conns
			}
			conns[client] = struct{}{}
			h.logger.Debug("Websocket connected", slog.Any("userID", client.userID))

		case client := <-h.unregister:
			if conns, ok := h.clients[client.userID]; ok {
				if _, ok := conns[client]; ok {
					delete(conns, client)
					close(client.send)
					if len(conns) == 0 {
						delete(h.clients, client.userID)
					}
				}
			}
			h.logger.Debug("Websocket disconnected", slog.Any("userID", client.userID))

		case d := <-h.deliveries:
			for client := range h.clients[d.userID] {
				select {
				case client.send <- d.payload:
				default:
					// The client cannot keep up; drop the connection.
					delete(h.clients[d.userID], client)
					close(client.send)
				}
			}
		}
	}
}

// Register adds a freshly upgraded connection to the hub.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a connection from the hub.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// BroadcastMessage pushes a chat message to all connections of the user.
// Delivery is best effort; the message is dropped when the buffer is full.
func (h *Hub) BroadcastMessage(userID uuid.UUID, message *entity.Message) {
	event := MessageEvent{
		Type:      "message",
		ChatID:    message.ChatID,
		MessageID: message.ID,
		SenderID:  message.SenderID,
		Content:   message.Content,
		Timestamp: message.CreatedAt.UTC().Format(time.RFC3339),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("Failed to encode websocket event", slog.Any("error", err))

		return
	}

	select {
	case h.deliveries <- delivery{userID: userID, payload: payload}:
	default:
		h.logger.Warn("Websocket delivery dropped", slog.Any("userID", userID))
	}
}
