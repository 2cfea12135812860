package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "tetatete/internal/delivery/context"
	"tetatete/internal/domain/entity"
	domainerrors "tetatete/internal/domain/errors"
	"tetatete/internal/domain/repository"
	"tetatete/internal/domain/service"
	"tetatete/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// chatService implements the ChatUsecase interface.
type chatService struct {
	txManager   repository.TransactionManager
	chatRepo    repository.ChatRepository
	userRepo    repository.UserRepository
	broadcaster service.MessageBroadcaster
	logger      *slog.Logger
}

// ChatServiceParams holds dependencies for chatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ChatRepo    repository.ChatRepository
	UserRepo    repository.UserRepository
	Broadcaster service.MessageBroadcaster
	Logger      *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		txManager:   params.TxManager,
		chatRepo:    params.ChatRepo,
		userRepo:    params.UserRepo,
		broadcaster: params.Broadcaster,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// memberChat loads the chat and verifies the caller is a participant.
func (srv *chatService) memberChat(ctx context.Context, userID, chatID uuid.UUID) (*entity.Chat, error) {
	chat, err := srv.chatRepo.FindChatByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !chat.HasMember(userID) {
		return nil, domainerrors.ErrChatAccessDenied
	}

	return chat, nil
}

// ChatRooms lists the caller's chat rooms with companion and last message.
func (srv *chatService) ChatRooms(ctx context.Context, userID uuid.UUID) ([]*usecase.ChatRoomOutput, error) {
	chats, err := srv.chatRepo.ListChatsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	rooms := make([]*usecase.ChatRoomOutput, 0, len(chats))
	for _, chat := range chats {
		companionID := chat.Companion(userID)

		companion, err := srv.userRepo.FindUserByID(ctx, companionID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrUserNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to load chat companion")
		}
		if profile, err := srv.userRepo.FindProfile(ctx, companionID); err == nil {
			companion.Profile = profile
		} else if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, errors.Wrap(err, "failed to load companion profile")
		}

		lastMessage, err := srv.chatRepo.FindLastMessage(ctx, chat.ID)
		if err != nil {
			return nil, err
		}

		rooms = append(rooms, &usecase.ChatRoomOutput{
			Chat:        chat,
			Companion:   companion,
			LastMessage: lastMessage,
		})
	}

	return rooms, nil
}

// Messages returns the full message history of a chat the caller is a member of.
func (srv *chatService) Messages(ctx context.Context, userID, chatID uuid.UUID) ([]*entity.Message, error) {
	if _, err := srv.memberChat(ctx, userID, chatID); err != nil {
		return nil, err
	}

	return srv.chatRepo.ListMessagesByChat(ctx, chatID)
}

// Join clears the caller's left flag on the chat.
func (srv *chatService) Join(ctx context.Context, userID, chatID uuid.UUID) error {
	chat, err := srv.memberChat(ctx, userID, chatID)
	if err != nil {
		return err
	}
	if !chat.HasLeft(userID) {
		return domainerrors.ErrChatAlreadyJoined
	}

	srv.setLeftFlag(chat, userID, false)

	return srv.chatRepo.UpdateLeftFlags(ctx, chat)
}

// Leave sets the caller's left flag on the chat.
func (srv *chatService) Leave(ctx context.Context, userID, chatID uuid.UUID) error {
	chat, err := srv.memberChat(ctx, userID, chatID)
	if err != nil {
		return err
	}
	if chat.HasLeft(userID) {
		return domainerrors.ErrChatAlreadyLeft
	}

	srv.setLeftFlag(chat, userID, true)

	return srv.chatRepo.UpdateLeftFlags(ctx, chat)
}

func (srv *chatService) setLeftFlag(chat *entity.Chat, userID uuid.UUID, left bool) {
	if chat.UserAID == userID {
		chat.UserALeft = left

		return
	}
	chat.UserBLeft = left
}

// SendMessage appends a message, notifies the companion and pushes the
// message to both participants over the live transport.
func (srv *chatService) SendMessage(ctx context.Context, userID, chatID uuid.UUID, content string) (*entity.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, validationError("message content must not be empty")
	}

	chat, err := srv.memberChat(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}
	if chat.HasLeft(userID) {
		return nil, domainerrors.ErrChatAccessDenied.WrapMessage("rejoin the chat before sending messages")
	}

	senderName, err := srv.senderDisplayName(ctx, userID)
	if err != nil {
		return nil, err
	}

	message := &entity.Message{
		ID:       uuid.New(),
		ChatID:   chatID,
		SenderID: userID,
		Content:  content,
	}
	companionID := chat.Companion(userID)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewChatRepository().CreateMessage(ctx, message); err != nil {
			return err
		}

		notification := &entity.Notification{
			ID:      uuid.New(),
			UserID:  companionID,
			Message: fmt.Sprintf("New message from %s", senderName),
		}

		return repoFactory.NewNotificationRepository().CreateNotification(ctx, notification)
	})
	if err != nil {
		return nil, err
	}

	srv.broadcaster.BroadcastMessage(companionID, message)
	srv.broadcaster.BroadcastMessage(userID, message)

	return message, nil
}

// senderDisplayName resolves the name shown in the companion's notification.
func (srv *chatService) senderDisplayName(ctx context.Context, userID uuid.UUID) (string, error) {
	if profile, err := srv.userRepo.FindProfile(ctx, userID); err == nil && profile.FullName != "" {
		return profile.FullName, nil
	} else if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return "", errors.Wrap(err, "failed to load sender profile")
	}

	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return "", errors.Wrap(err, "failed to load sender")
	}

	return user.Email, nil
}
