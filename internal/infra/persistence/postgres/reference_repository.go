package postgres

import (
	"context"

	"tetatete/internal/domain/entity"
	"tetatete/internal/domain/repository"
	"tetatete/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// referenceRepository implements the repository.ReferenceRepository interface.
type referenceRepository struct {
	db *gorm.DB
}

// NewReferenceRepository is the constructor for referenceRepository.
func NewReferenceRepository(db *gorm.DB) repository.ReferenceRepository {
	return &referenceRepository{
		db: db,
	}
}

// ListGenders retrieves all gender reference entries ordered by name.
func (repo *referenceRepository) ListGenders(ctx context.Context) ([]*entity.Gender, error) {
	var genderModels []*model.GenderModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&genderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list genders")
	}

	genders := make([]*entity.Gender, 0, len(genderModels))
	for _, genderM := range genderModels {
		genders = append(genders, &entity.Gender{ID: genderM.ID, Name: genderM.Name})
	}

	return genders, nil
}

// ListLocations retrieves all location reference entries ordered by name.
func (repo *referenceRepository) ListLocations(ctx context.Context) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, &entity.Location{ID: locationM.ID, Name: locationM.Name})
	}

	return locations, nil
}

// ListLanguages retrieves all language reference entries ordered by name.
func (repo *referenceRepository) ListLanguages(ctx context.Context) ([]*entity.Language, error) {
	var languageModels []*model.LanguageModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&languageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list languages")
	}

	languages := make([]*entity.Language, 0, len(languageModels))
	for _, languageM := range languageModels {
		languages = append(languages, &entity.Language{ID: languageM.ID, Name: languageM.Name})
	}

	return languages, nil
}

// GenderExists reports whether a gender with the given ID is registered.
func (repo *referenceRepository) GenderExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.GenderModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check gender existence")
	}

	return count > 0, nil
}
