package impl

import (
	"context"

	"tetatete/internal/domain/entity"
	"tetatete/internal/domain/repository"
	"tetatete/internal/usecase"

	"github.com/google/uuid"
)

// unreadFeedSize is how many unread notifications the clients render at once.
const unreadFeedSize = 15

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(notificationRepo repository.NotificationRepository) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
	}
}

// ListUnread returns the newest unread notifications, capped at the feed size.
func (srv *notificationService) ListUnread(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	return srv.notificationRepo.ListUnreadByUser(ctx, userID, unreadFeedSize)
}

// MarkRead acknowledges the given notifications for the owning user.
func (srv *notificationService) MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	return srv.notificationRepo.MarkRead(ctx, userID, ids)
}
