package usecase

import (
	"context"

	"tetatete/internal/domain/entity"

	"github.com/google/uuid"
)

// ChatRoomOutput is a chat room decorated with the data the room list needs.
type ChatRoomOutput struct {
	Chat        *entity.Chat
	Companion   *entity.User
	LastMessage *entity.Message
}

// ChatUsecase manages the chat rooms opened by matches and their messages.
type ChatUsecase interface {
	// ChatRooms lists the caller's chat rooms with companion and last message.
	ChatRooms(ctx context.Context, userID uuid.UUID) ([]*ChatRoomOutput, error)

	// Messages returns the full message history of a chat the caller is a
	// member of, oldest first.
	Messages(ctx context.Context, userID, chatID uuid.UUID) ([]*entity.Message, error)

	// Join clears the caller's left flag on the chat.
	Join(ctx context.Context, userID, chatID uuid.UUID) error

	// Leave sets the caller's left flag on the chat.
	Leave(ctx context.Context, userID, chatID uuid.UUID) error

	// SendMessage appends a message, pushes it to connected members over the
	// websocket hub, and leaves a notification for the companion.
	SendMessage(ctx context.Context, userID, chatID uuid.UUID, content string) (*entity.Message, error)
}
