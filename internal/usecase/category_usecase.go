package usecase

import (
	"context"

	"tetatete/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// FillFriendsInput defines the payload for creating a friends category profile.
type FillFriendsInput struct {
	Info string
}

// FillLoveInput defines the payload for creating a love category profile.
type FillLoveInput struct {
	Info     string
	MinAge   *int
	MaxAge   *int
	GenderID *uuid.UUID
}

// FillWorkInput defines the payload for creating a work category profile.
type FillWorkInput struct {
	Occupation string
	Income     int64
	LookingFor entity.LookingFor
	Skills     string
}

// UpdateFriendsInput defines a partial update; nil fields keep current values.
type UpdateFriendsInput struct {
	Info *string
}

// UpdateLoveInput defines a partial update; nil fields keep current values.
// MinAge and MaxAge are re-validated as a pair against the resulting state.
type UpdateLoveInput struct {
	Info     *string
	MinAge   *int
	MaxAge   *int
	GenderID *uuid.UUID
}

// UpdateWorkInput defines a partial update; nil fields keep current values.
type UpdateWorkInput struct {
	Occupation *string
	Income     *int64
	LookingFor *entity.LookingFor
	Skills     *string
}

// CategoryUsecase manages the single category profile a user may hold at a
// time. Filling a different category than the currently held one replaces it;
// filling the same category again is a conflict.
type CategoryUsecase interface {
	// FulfilledType reports which category the user currently holds, or
	// CategoryNone. More than one stored category is a consistency violation
	// and surfaces as an internal error.
	FulfilledType(ctx context.Context, userID uuid.UUID) (entity.CategoryType, error)

	FillFriends(ctx context.Context, userID uuid.UUID, input FillFriendsInput) (*entity.FriendsProfile, error)
	FillLove(ctx context.Context, userID uuid.UUID, input FillLoveInput) (*entity.LoveProfile, error)
	FillWork(ctx context.Context, userID uuid.UUID, input FillWorkInput) (*entity.WorkProfile, error)

	UpdateFriends(ctx context.Context, userID uuid.UUID, input UpdateFriendsInput) (*entity.FriendsProfile, error)
	UpdateLove(ctx context.Context, userID uuid.UUID, input UpdateLoveInput) (*entity.LoveProfile, error)
	UpdateWork(ctx context.Context, userID uuid.UUID, input UpdateWorkInput) (*entity.WorkProfile, error)

	// Delete removes the user's profile of the given category.
	Delete(ctx context.Context, userID uuid.UUID, category entity.CategoryType) error

	// Get returns the user's category profile tagged with its variant.
	Get(ctx context.Context, userID uuid.UUID) (*entity.CategoryProfile, error)
}
