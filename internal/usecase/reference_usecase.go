package usecase

import (
	"context"

	"tetatete/internal/domain/entity"
)

// ReferenceUsecase serves the static reference lists the profile forms use.
type ReferenceUsecase interface {
	ListGenders(ctx context.Context) ([]*entity.Gender, error)
	ListLocations(ctx context.Context) ([]*entity.Location, error)
	ListLanguages(ctx context.Context) ([]*entity.Language, error)
}
