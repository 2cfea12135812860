package repository

import (
	"context"

	"tetatete/internal/domain/entity"

	"github.com/google/uuid"
)

// ChatRepository defines the interface for chat and message persistence.
type ChatRepository interface {
	// CreateChat persists a new chat room.
	CreateChat(ctx context.Context, chat *entity.Chat) error

	// FindChatByID retrieves a chat by its unique ID.
	FindChatByID(ctx context.Context, id uuid.UUID) (*entity.Chat, error)

	// ListChatsByUser retrieves every chat the user participates in, most
	// recently created first.
	ListChatsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Chat, error)

	// UpdateLeftFlags persists the participant left flags of a chat.
	UpdateLeftFlags(ctx context.Context, chat *entity.Chat) error

	// CreateMessage persists a new chat message.
	CreateMessage(ctx context.Context, message *entity.Message) error

	// ListMessagesByChat retrieves all messages of a chat, oldest first.
	ListMessagesByChat(ctx context.Context, chatID uuid.UUID) ([]*entity.Message, error)

	// FindLastMessage retrieves the newest message of a chat. Returns nil
	// without error when the chat has no messages yet.
	FindLastMessage(ctx context.Context, chatID uuid.UUID) (*entity.Message, error)
}
