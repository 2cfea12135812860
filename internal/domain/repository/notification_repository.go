package repository

import (
	"context"

	"tetatete/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationRepository defines the interface for in-app notification persistence.
type NotificationRepository interface {
	// CreateNotification persists a new notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// ListUnreadByUser retrieves the newest unread notifications of a user,
	// newest first, capped at limit.
	ListUnreadByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error)

	// MarkRead marks the given notifications of the user as read. IDs that do
	// not belong to the user are ignored.
	MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error
}
