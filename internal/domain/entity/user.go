// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
// It carries credentials and billing state; everything presentable to other
// members lives in the Profile.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // The user's primary contact email, used as a login identifier.
	Phone        *string   // Optional phone number in +1-XXX-XXX-XXXX format, also usable for login.
	PasswordHash *string   // Bcrypt hash of the password. Nil for accounts created through OAuth.

	IsSubscriptionPaid    bool       // Whether the user currently holds an active paid subscription.
	StripeCustomerID      *string    // Stripe customer reference, set lazily on first checkout.
	StripeSubscriptionID  *string    // Stripe subscription reference while a subscription exists.
	SubscriptionExpiresAt *time.Time // End of the current paid period, if any.

	Profile *Profile // A pointer to the user's presentable profile. Nil until the profile is filled.

	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}

// Profile holds the presentable part of an account: the data other members
// see on match cards and in chats.
type Profile struct {
	UserID         uuid.UUID   // Foreign Key that links this profile to a core User entity.
	FullName       string      // Display name, latin letters and spaces only.
	Age            int         // Age in years, 18 to 100.
	About          string      // Free-form self description.
	GenderID       *uuid.UUID  // Optional reference to a Gender entry.
	PlaceOfBirthID *uuid.UUID  // Optional reference to a Location entry.
	LocationID     *uuid.UUID  // Optional reference to the user's current Location.
	LanguageIDs    []uuid.UUID // Languages the user speaks.
	ImageURLs      []string    // Public URLs of the user's uploaded photos.
	UpdatedAt      time.Time   // Timestamp of the last modification to this profile.
}
