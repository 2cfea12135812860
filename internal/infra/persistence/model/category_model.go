package model

import (
	"time"

	"github.com/google/uuid"
)

// FriendsProfileModel is the GORM-specific struct for the 'friends_profiles' table.
type FriendsProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Info      string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FriendsProfileModel) TableName() string {
	return "friends_profiles"
}

// LoveProfileModel is the GORM-specific struct for the 'love_profiles' table.
type LoveProfileModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Info      string     `gorm:"type:text;not null"`
	MinAge    *int       `gorm:"type:smallint"`
	MaxAge    *int       `gorm:"type:smallint"`
	GenderID  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LoveProfileModel) TableName() string {
	return "love_profiles"
}

// WorkProfileModel is the GORM-specific struct for the 'work_profiles' table.
type WorkProfileModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Occupation string    `gorm:"type:text;not null"`
	Income     int64     `gorm:"not null"`
	LookingFor string    `gorm:"type:text;not null"`
	Skills     string    `gorm:"type:text;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (WorkProfileModel) TableName() string {
	return "work_profiles"
}
