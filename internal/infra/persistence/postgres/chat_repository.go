package postgres

import (
	"context"

	"tetatete/internal/domain/entity"
	domainerrors "tetatete/internal/domain/errors"
	"tetatete/internal/domain/repository"
	"tetatete/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// chatRepository implements the repository.ChatRepository interface.
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(db *gorm.DB) repository.ChatRepository {
	return &chatRepository{
		db: db,
	}
}

// CreateChat persists a new chat room.
func (repo *chatRepository) CreateChat(ctx context.Context, chat *entity.Chat) error {
	chatM := fromChatDomain(chat)

	if err := repo.db.WithContext(ctx).Create(chatM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid chat participant reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create chat")
	}

	chat.ID = chatM.ID
	chat.CreatedAt = chatM.CreatedAt
	chat.UpdatedAt = chatM.UpdatedAt

	return nil
}

// FindChatByID retrieves a chat by its unique ID.
func (repo *chatRepository) FindChatByID(ctx context.Context, id uuid.UUID) (*entity.Chat, error) {
	var chatM model.ChatModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&chatM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrChatNotFound
		}

		return nil, errors.Wrap(err, "failed to find chat by ID")
	}

	return toChatDomain(&chatM), nil
}

// ListChatsByUser retrieves every chat the user participates in, most recently
// created first.
func (repo *chatRepository) ListChatsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Chat, error) {
	var chatModels []*model.ChatModel

	if err := repo.db.WithContext(ctx).
		Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&chatModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list chats by user")
	}

	chats := make([]*entity.Chat, 0, len(chatModels))
	for _, chatM := range chatModels {
		chats = append(chats, toChatDomain(chatM))
	}

	return chats, nil
}

// UpdateLeftFlags persists the participant left flags of a chat.
func (repo *chatRepository) UpdateLeftFlags(ctx context.Context, chat *entity.Chat) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ChatModel{}).
		Where("id = ?", chat.ID).
		Updates(map[string]any{
			"user_a_left": chat.UserALeft,
			"user_b_left": chat.UserBLeft,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update chat left flags")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrChatNotFound
	}

	return nil
}

// CreateMessage persists a new chat message.
func (repo *chatRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrChatNotFound.WrapMessage("invalid chat reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// ListMessagesByChat retrieves all messages of a chat, oldest first.
func (repo *chatRepository) ListMessagesByChat(ctx context.Context, chatID uuid.UUID) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list messages by chat")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages, nil
}

// FindLastMessage retrieves the newest message of a chat. Returns nil without
// error when the chat has no messages yet.
func (repo *chatRepository) FindLastMessage(ctx context.Context, chatID uuid.UUID) (*entity.Message, error) {
	var messageM model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at DESC").
		First(&messageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find last message")
	}

	return toMessageDomain(&messageM), nil
}

// --- Mapper Functions ---

func toChatDomain(data *model.ChatModel) *entity.Chat {
	if data == nil {
		return nil
	}

	return &entity.Chat{
		ID:        data.ID,
		Name:      data.Name,
		UserAID:   data.UserAID,
		UserBID:   data.UserBID,
		UserALeft: data.UserALeft,
		UserBLeft: data.UserBLeft,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromChatDomain(data *entity.Chat) *model.ChatModel {
	if data == nil {
		return nil
	}

	return &model.ChatModel{
		ID:        data.ID,
		Name:      data.Name,
		UserAID:   data.UserAID,
		UserBID:   data.UserBID,
		UserALeft: data.UserALeft,
		UserBLeft: data.UserBLeft,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:        data.ID,
		ChatID:    data.ChatID,
		SenderID:  data.SenderID,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
	}
}

func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:        data.ID,
		ChatID:    data.ChatID,
		SenderID:  data.SenderID,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
	}
}
