package usecase

import (
	"context"

	"tetatete/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase exposes the unread notification feed.
type NotificationUsecase interface {
	// ListUnread returns the newest unread notifications, capped at the feed
	// size the clients render.
	ListUnread(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// MarkRead acknowledges the given notifications. IDs not owned by the
	// caller are ignored.
	MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error
}
