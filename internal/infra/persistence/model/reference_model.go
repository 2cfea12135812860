package model

import "github.com/google/uuid"

// GenderModel is the GORM-specific struct for the 'genders' reference table.
type GenderModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name string    `gorm:"type:text;not null;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (GenderModel) TableName() string {
	return "genders"
}

// LocationModel is the GORM-specific struct for the 'locations' reference table.
type LocationModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name string    `gorm:"type:text;not null;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}

// LanguageModel is the GORM-specific struct for the 'languages' reference table.
type LanguageModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name string    `gorm:"type:text;not null;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (LanguageModel) TableName() string {
	return "languages"
}
