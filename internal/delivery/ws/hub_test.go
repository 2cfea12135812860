package ws

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"tetatete/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]struct{}),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		deliveries: make(chan delivery, 1024),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestHub_BroadcastMessage_EncodesEvent(t *testing.T) {
	hub := newTestHub()

	userID := uuid.New()
	message := &entity.Message{
		ID:        uuid.New(),
		ChatID:    uuid.New(),
		SenderID:  uuid.New(),
		Content:   "hello there",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	hub.BroadcastMessage(userID, message)

	select {
	case d := <-hub.deliveries:
		assert.Equal(t, userID, d.userID)

		var event MessageEvent
		require.NoError(t, json.Unmarshal(d.payload, &event))
		assert.Equal(t, "message", event.Type)
		assert.Equal(t, message.ChatID, event.ChatID)
		assert.Equal(t, message.ID, event.MessageID)
		assert.Equal(t, message.SenderID, event.SenderID)
		assert.Equal(t, "hello there", event.Content)
		assert.Equal(t, "2025-06-01T12:00:00Z", event.Timestamp)
	default:
		t.Fatal("expected a queued delivery")
	}
}

func TestHub_DeliversToRegisteredClient(t *testing.T) {
	hub := newTestHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.run(ctx)

	userID := uuid.New()
	client := NewClient(hub, nil, userID, hub.logger)
	hub.Register(client)

	message := &entity.Message{ID: uuid.New(), ChatID: uuid.New(), SenderID: uuid.New(), Content: "ping"}

	// Registration is asynchronous; keep broadcasting until the client sees
	// the payload.
	require.Eventually(t, func() bool {
		hub.BroadcastMessage(userID, message)
		select {
		case payload := <-client.send:
			var event MessageEvent
			require.NoError(t, json.Unmarshal(payload, &event))

			return event.Content == "ping"
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}

func TestHub_DoesNotDeliverToOtherUsers(t *testing.T) {
	hub := newTestHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.run(ctx)

	recipient := uuid.New()
	bystander := NewClient(hub, nil, uuid.New(), hub.logger)
	hub.Register(bystander)

	message := &entity.Message{ID: uuid.New(), ChatID: uuid.New(), SenderID: recipient, Content: "private"}
	hub.BroadcastMessage(recipient, message)

	select {
	case <-bystander.send:
		t.Fatal("bystander received another user's message")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_UnregisterClosesSendChannel(t *testing.T) {
	hub := newTestHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.run(ctx)

	userID := uuid.New()
	client := NewClient(hub, nil, userID, hub.logger)
	hub.Register(client)

	// Wait for the registration to land before unregistering.
	message := &entity.Message{ID: uuid.New(), ChatID: uuid.New(), SenderID: userID, Content: "ping"}
	require.Eventually(t, func() bool {
		hub.BroadcastMessage(userID, message)
		select {
		case <-client.send:
			return true
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)

	hub.Unregister(client)

	require.Eventually(t, func() bool {
		for {
			select {
			case _, open := <-client.send:
				if !open {
					return true
				}
			default:
				return false
			}
		}
	}, time.Second, 10*time.Millisecond)
}
