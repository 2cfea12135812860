package impl

import (
	"context"
	"testing"

	"tetatete/internal/domain/entity"
	mockRepo "tetatete/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_ListUnread_FeedSize(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(notificationRepo)

	ctx := context.Background()
	userID := uuid.New()
	feed := []*entity.Notification{
		{ID: uuid.New(), UserID: userID, Message: "You have a new match with Bob"},
	}

	notificationRepo.On("ListUnreadByUser", ctx, userID, unreadFeedSize).Return(feed, nil)

	notifications, err := service.ListUnread(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, feed, notifications)
}

func TestNotificationService_MarkRead(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(notificationRepo)

	ctx := context.Background()
	userID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	notificationRepo.On("MarkRead", ctx, userID, ids).Return(nil)

	assert.NoError(t, service.MarkRead(ctx, userID, ids))
}
