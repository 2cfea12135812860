// Package model contains the GORM-specific structs that map domain entities
// to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email                 string    `gorm:"type:text;not null;uniqueIndex"`
	Phone                 *string   `gorm:"type:text;uniqueIndex"`
	PasswordHash          *string   `gorm:"type:text"`
	IsSubscriptionPaid    bool      `gorm:"not null;default:false"`
	StripeCustomerID      *string   `gorm:"type:text;index"`
	StripeSubscriptionID  *string   `gorm:"type:text"`
	SubscriptionExpiresAt *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ProfileModel is the GORM-specific struct for the 'user_profiles' table.
// It holds the presentable part of an account.
type ProfileModel struct {
	UserID         uuid.UUID  `gorm:"type:uuid;primary_key"`
	FullName       string     `gorm:"type:text;not null"`
	Age            int        `gorm:"not null"`
	About          string     `gorm:"type:text"`
	GenderID       *uuid.UUID `gorm:"type:uuid"`
	PlaceOfBirthID *uuid.UUID `gorm:"type:uuid"`
	LocationID     *uuid.UUID `gorm:"type:uuid"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "user_profiles"
}

// ProfileImageModel is the GORM-specific struct for the 'profile_images' table.
// One row per uploaded photo, ordered by position.
type ProfileImageModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index"`
	URL      string    `gorm:"type:text;not null"`
	Position int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileImageModel) TableName() string {
	return "profile_images"
}

// ProfileLanguageModel is the GORM-specific struct for the 'profile_languages'
// join table.
type ProfileLanguageModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primary_key"`
	LanguageID uuid.UUID `gorm:"type:uuid;primary_key"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileLanguageModel) TableName() string {
	return "profile_languages"
}
