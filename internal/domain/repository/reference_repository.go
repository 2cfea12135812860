package repository

import (
	"context"

	"tetatete/internal/domain/entity"

	"github.com/google/uuid"
)

// ReferenceRepository defines read access to the reference tables users pick
// from when filling profiles.
type ReferenceRepository interface {
	// ListGenders retrieves all gender entries.
	ListGenders(ctx context.Context) ([]*entity.Gender, error)

	// ListLocations retrieves all location entries.
	ListLocations(ctx context.Context) ([]*entity.Location, error)

	// ListLanguages retrieves all language entries.
	ListLanguages(ctx context.Context) ([]*entity.Language, error)

	// GenderExists reports whether a gender entry with the given ID exists.
	GenderExists(ctx context.Context, id uuid.UUID) (bool, error)
}
