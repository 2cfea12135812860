package impl

import (
	"context"
	"io"
	"log/slog"

	"tetatete/internal/domain/repository"
	mockRepo "tetatete/internal/mocks/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubRepoFactory hands out the test mocks as transaction-bound repositories.
type stubRepoFactory struct {
	userRepo         *mockRepo.MockUserRepository
	categoryRepo     *mockRepo.MockCategoryRepository
	matchRepo        *mockRepo.MockMatchRepository
	chatRepo         *mockRepo.MockChatRepository
	notificationRepo *mockRepo.MockNotificationRepository
}

func (f *stubRepoFactory) NewUserRepository() repository.UserRepository { return f.userRepo }

func (f *stubRepoFactory) NewCategoryRepository() repository.CategoryRepository {
	return f.categoryRepo
}

func (f *stubRepoFactory) NewMatchRepository() repository.MatchRepository { return f.matchRepo }

func (f *stubRepoFactory) NewChatRepository() repository.ChatRepository { return f.chatRepo }

func (f *stubRepoFactory) NewNotificationRepository() repository.NotificationRepository {
	return f.notificationRepo
}

// stubTxManager runs the transactional function directly against the mocks.
type stubTxManager struct {
	factory *stubRepoFactory
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}
