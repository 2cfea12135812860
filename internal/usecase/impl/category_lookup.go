package impl

import (
	"context"
	"log/slog"

	"tetatete/internal/domain/entity"
	domainerrors "tetatete/internal/domain/errors"
	"tetatete/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// loadCategoryProfile reads all three category tables for the user and
// returns the tagged profile, with Type set to CategoryNone when the user has
// not filled any. A user stored in more than one table violates the
// exclusivity invariant and surfaces as an internal error.
func loadCategoryProfile(ctx context.Context, logger *slog.Logger, categoryRepo repository.CategoryRepository, userID uuid.UUID) (*entity.CategoryProfile, error) {
	result := &entity.CategoryProfile{Type: entity.CategoryNone}
	found := 0

	friends, err := categoryRepo.FindFriendsByUser(ctx, userID)
	switch {
	case err == nil:
		result.Type = entity.CategoryFriends
		result.Friends = friends
		found++
	case !errors.Is(err, domainerrors.ErrCategoryNotFound):
		return nil, errors.Wrap(err, "failed to read friends profile")
	}

	love, err := categoryRepo.FindLoveByUser(ctx, userID)
	switch {
	case err == nil:
		result.Type = entity.CategoryLove
		result.Love = love
		found++
	case !errors.Is(err, domainerrors.ErrCategoryNotFound):
		return nil, errors.Wrap(err, "failed to read love profile")
	}

	work, err := categoryRepo.FindWorkByUser(ctx, userID)
	switch {
	case err == nil:
		result.Type = entity.CategoryWork
		result.Work = work
		found++
	case !errors.Is(err, domainerrors.ErrCategoryNotFound):
		return nil, errors.Wrap(err, "failed to read work profile")
	}

	if found > 1 {
		logger.Error("User holds more than one category profile",
			slog.Any("userID", userID),
			slog.Int("count", found))

		return nil, domainerrors.ErrCategoryInconsistent
	}

	return result, nil
}
