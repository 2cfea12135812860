package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatModel is the GORM-specific struct for the 'chats' table.
type ChatModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:text;not null"`
	UserAID   uuid.UUID `gorm:"type:uuid;not null;index"`
	UserBID   uuid.UUID `gorm:"type:uuid;not null;index"`
	UserALeft bool      `gorm:"not null;default:false"`
	UserBLeft bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChatModel) TableName() string {
	return "chats"
}

// MessageModel is the GORM-specific struct for the 'messages' table.
type MessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ChatID    uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderID  uuid.UUID `gorm:"type:uuid;not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
