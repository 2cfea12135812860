// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"tetatete/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by their unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user by their email address.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindUserByPhone retrieves a user by their phone number.
	FindUserByPhone(ctx context.Context, phone string) (*entity.User, error)

	// FindUserByStripeCustomerID retrieves a user by their Stripe customer reference.
	FindUserByStripeCustomerID(ctx context.Context, customerID string) (*entity.User, error)

	// UpdateUser persists changes to an existing user account.
	UpdateUser(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the stored password hash for a user.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// UpdateSubscriptionState updates the billing fields of a user in one statement.
	UpdateSubscriptionState(ctx context.Context, id uuid.UUID, paid bool, stripeSubscriptionID *string, expiresAt *time.Time) error

	// SaveProfile creates or replaces the presentable profile of a user.
	SaveProfile(ctx context.Context, profile *entity.Profile) error

	// FindProfile retrieves the presentable profile of a user.
	FindProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// FindProfiles retrieves the presentable profiles of several users at once.
	FindProfiles(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.Profile, error)
}
