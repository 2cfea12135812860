package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType identifies which of the three search categories a user has
// joined. A user holds at most one category profile at a time.
type CategoryType string

const (
	CategoryNone    CategoryType = ""
	CategoryFriends CategoryType = "friends"
	CategoryLove    CategoryType = "love"
	CategoryWork    CategoryType = "work"
)

// Valid reports whether the value names one of the three categories.
func (c CategoryType) Valid() bool {
	switch c {
	case CategoryFriends, CategoryLove, CategoryWork:
		return true
	}

	return false
}

// LookingFor enumerates what a work-category user is searching for.
type LookingFor string

const (
	LookingForEmployee LookingFor = "employee"
	LookingForEmployer LookingFor = "employer"
	LookingForPartners LookingFor = "partners"
)

// Valid reports whether the value is a known work search target.
func (l LookingFor) Valid() bool {
	switch l {
	case LookingForEmployee, LookingForEmployer, LookingForPartners:
		return true
	}

	return false
}

// FriendsProfile is the category profile for users searching for friends.
type FriendsProfile struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for this profile.
	UserID    uuid.UUID // Foreign Key that links this profile to its owner.
	Info      string    // Self description shown on friend cards, 10 to 1000 characters.
	CreatedAt time.Time // Timestamp of when this profile was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// LoveProfile is the category profile for users searching for a partner.
// MinAge and MaxAge express the preferred partner age range and are either
// both set or both unset.
type LoveProfile struct {
	ID        uuid.UUID  // The Global Unique Identifier (GUID) for this profile.
	UserID    uuid.UUID  // Foreign Key that links this profile to its owner.
	Info      string     // Self description, 10 to 1000 characters.
	MinAge    *int       // Lower bound of the preferred partner age, 18 to 98.
	MaxAge    *int       // Upper bound of the preferred partner age, 19 to 99.
	GenderID  *uuid.UUID // Preferred partner gender, references a Gender entry.
	CreatedAt time.Time  // Timestamp of when this profile was created.
	UpdatedAt time.Time  // Timestamp of the last modification.
}

// WorkProfile is the category profile for users searching for professional
// connections.
type WorkProfile struct {
	ID         uuid.UUID  // The Global Unique Identifier (GUID) for this profile.
	UserID     uuid.UUID  // Foreign Key that links this profile to its owner.
	Occupation string     // Current occupation, 3 to 120 characters.
	Income     int64      // Monthly income, 1 to 999,999,999.
	LookingFor LookingFor // What the user is searching for on the work market.
	Skills     string     // Skill summary, 3 to 120 characters.
	CreatedAt  time.Time  // Timestamp of when this profile was created.
	UpdatedAt  time.Time  // Timestamp of the last modification.
}

// CategoryProfile is the tagged union returned when a caller asks which
// category a user has filled. Exactly one of the three pointers is non-nil
// when Type names a category.
type CategoryProfile struct {
	Type    CategoryType
	Friends *FriendsProfile
	Love    *LoveProfile
	Work    *WorkProfile
}
