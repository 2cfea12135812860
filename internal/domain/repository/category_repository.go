package repository

import (
	"context"

	"tetatete/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryRepository defines the interface for category profile persistence.
// Each user owns at most one row across the three tables; the use case layer
// asserts that invariant.
type CategoryRepository interface {
	// CreateFriends persists a new friends category profile.
	CreateFriends(ctx context.Context, profile *entity.FriendsProfile) error

	// CreateLove persists a new love category profile.
	CreateLove(ctx context.Context, profile *entity.LoveProfile) error

	// CreateWork persists a new work category profile.
	CreateWork(ctx context.Context, profile *entity.WorkProfile) error

	// FindFriendsByUser retrieves the friends profile owned by the user.
	FindFriendsByUser(ctx context.Context, userID uuid.UUID) (*entity.FriendsProfile, error)

	// FindLoveByUser retrieves the love profile owned by the user.
	FindLoveByUser(ctx context.Context, userID uuid.UUID) (*entity.LoveProfile, error)

	// FindWorkByUser retrieves the work profile owned by the user.
	FindWorkByUser(ctx context.Context, userID uuid.UUID) (*entity.WorkProfile, error)

	// UpdateFriends persists changes to an existing friends profile.
	UpdateFriends(ctx context.Context, profile *entity.FriendsProfile) error

	// UpdateLove persists changes to an existing love profile.
	UpdateLove(ctx context.Context, profile *entity.LoveProfile) error

	// UpdateWork persists changes to an existing work profile.
	UpdateWork(ctx context.Context, profile *entity.WorkProfile) error

	// DeleteByUser removes the profile of the given category owned by the user.
	DeleteByUser(ctx context.Context, category entity.CategoryType, userID uuid.UUID) error

	// ListPaidUserIDsWithCategory returns the IDs of all users who filled the
	// given category and hold an active subscription, excluding the given user.
	ListPaidUserIDsWithCategory(ctx context.Context, category entity.CategoryType, excludeUserID uuid.UUID) ([]uuid.UUID, error)
}
