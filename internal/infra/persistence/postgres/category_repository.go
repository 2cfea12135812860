package postgres

import (
	"context"

	"tetatete/internal/domain/entity"
	domainerrors "tetatete/internal/domain/errors"
	"tetatete/internal/domain/repository"
	"tetatete/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// CreateFriends persists a new friends category profile.
func (repo *categoryRepository) CreateFriends(ctx context.Context, profile *entity.FriendsProfile) error {
	profileM := fromFriendsDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		return repo.mapCreateError(err, "failed to create friends profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// CreateLove persists a new love category profile.
func (repo *categoryRepository) CreateLove(ctx context.Context, profile *entity.LoveProfile) error {
	profileM := fromLoveDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		return repo.mapCreateError(err, "failed to create love profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// CreateWork persists a new work category profile.
func (repo *categoryRepository) CreateWork(ctx context.Context, profile *entity.WorkProfile) error {
	profileM := fromWorkDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		return repo.mapCreateError(err, "failed to create work profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

func (repo *categoryRepository) mapCreateError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrCategoryAlreadyFilled
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid user or gender reference")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// FindFriendsByUser retrieves the friends profile owned by the user.
func (repo *categoryRepository) FindFriendsByUser(ctx context.Context, userID uuid.UUID) (*entity.FriendsProfile, error) {
	var profileM model.FriendsProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find friends profile")
	}

	return toFriendsDomain(&profileM), nil
}

// FindLoveByUser retrieves the love profile owned by the user.
func (repo *categoryRepository) FindLoveByUser(ctx context.Context, userID uuid.UUID) (*entity.LoveProfile, error) {
	var profileM model.LoveProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find love profile")
	}

	return toLoveDomain(&profileM), nil
}

// FindWorkByUser retrieves the work profile owned by the user.
func (repo *categoryRepository) FindWorkByUser(ctx context.Context, userID uuid.UUID) (*entity.WorkProfile, error) {
	var profileM model.WorkProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find work profile")
	}

	return toWorkDomain(&profileM), nil
}

// UpdateFriends persists changes to an existing friends profile.
func (repo *categoryRepository) UpdateFriends(ctx context.Context, profile *entity.FriendsProfile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FriendsProfileModel{}).
		Where("id = ? AND user_id = ?", profile.ID, profile.UserID).
		Update("info", profile.Info)

	return repo.mapUpdateResult(result, "failed to update friends profile")
}

// UpdateLove persists changes to an existing love profile.
func (repo *categoryRepository) UpdateLove(ctx context.Context, profile *entity.LoveProfile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LoveProfileModel{}).
		Where("id = ? AND user_id = ?", profile.ID, profile.UserID).
		Updates(map[string]any{
			"info":      profile.Info,
			"min_age":   profile.MinAge,
			"max_age":   profile.MaxAge,
			"gender_id": profile.GenderID,
		})

	return repo.mapUpdateResult(result, "failed to update love profile")
}

// UpdateWork persists changes to an existing work profile.
func (repo *categoryRepository) UpdateWork(ctx context.Context, profile *entity.WorkProfile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WorkProfileModel{}).
		Where("id = ? AND user_id = ?", profile.ID, profile.UserID).
		Updates(map[string]any{
			"occupation":  profile.Occupation,
			"income":      profile.Income,
			"looking_for": string(profile.LookingFor),
			"skills":      profile.Skills,
		})

	return repo.mapUpdateResult(result, "failed to update work profile")
}

func (repo *categoryRepository) mapUpdateResult(result *gorm.DB, details string) error {
	if result.Error != nil {
		return errors.Wrap(result.Error, details)
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrCategoryNotFound
	}

	return nil
}

// DeleteByUser removes the profile of the given category owned by the user.
func (repo *categoryRepository) DeleteByUser(ctx context.Context, category entity.CategoryType, userID uuid.UUID) error {
	var result *gorm.DB

	switch category {
	case entity.CategoryFriends:
		result = repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.FriendsProfileModel{})
	case entity.CategoryLove:
		result = repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.LoveProfileModel{})
	case entity.CategoryWork:
		result = repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.WorkProfileModel{})
	default:
		return domainerrors.ErrValidationFailed.WrapMessage("unknown category")
	}

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete category profile")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrCategoryNotFound
	}

	return nil
}

// ListPaidUserIDsWithCategory returns the IDs of all users who filled the
// given category and hold an active subscription, excluding the given user.
func (repo *categoryRepository) ListPaidUserIDsWithCategory(ctx context.Context, category entity.CategoryType, excludeUserID uuid.UUID) ([]uuid.UUID, error) {
	var table string

	switch category {
	case entity.CategoryFriends:
		table = model.FriendsProfileModel{}.TableName()
	case entity.CategoryLove:
		table = model.LoveProfileModel{}.TableName()
	case entity.CategoryWork:
		table = model.WorkProfileModel{}.TableName()
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown category")
	}

	var userIDs []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Table(table).
		Select(table+".user_id").
		Joins("JOIN users ON users.id = "+table+".user_id").
		Where("users.is_subscription_paid = ?", true).
		Where(table+".user_id <> ?", excludeUserID).
		Scan(&userIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list category users")
	}

	return userIDs, nil
}

// --- Mapper Functions ---

func toFriendsDomain(data *model.FriendsProfileModel) *entity.FriendsProfile {
	if data == nil {
		return nil
	}

	return &entity.FriendsProfile{
		ID:        data.ID,
		UserID:    data.UserID,
		Info:      data.Info,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromFriendsDomain(data *entity.FriendsProfile) *model.FriendsProfileModel {
	if data == nil {
		return nil
	}

	return &model.FriendsProfileModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Info:      data.Info,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toLoveDomain(data *model.LoveProfileModel) *entity.LoveProfile {
	if data == nil {
		return nil
	}

	return &entity.LoveProfile{
		ID:        data.ID,
		UserID:    data.UserID,
		Info:      data.Info,
		MinAge:    data.MinAge,
		MaxAge:    data.MaxAge,
		GenderID:  data.GenderID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromLoveDomain(data *entity.LoveProfile) *model.LoveProfileModel {
	if data == nil {
		return nil
	}

	return &model.LoveProfileModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Info:      data.Info,
		MinAge:    data.MinAge,
		MaxAge:    data.MaxAge,
		GenderID:  data.GenderID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toWorkDomain(data *model.WorkProfileModel) *entity.WorkProfile {
	if data == nil {
		return nil
	}

	return &entity.WorkProfile{
		ID:         data.ID,
		UserID:     data.UserID,
		Occupation: data.Occupation,
		Income:     data.Income,
		LookingFor: entity.LookingFor(data.LookingFor),
		Skills:     data.Skills,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromWorkDomain(data *entity.WorkProfile) *model.WorkProfileModel {
	if data == nil {
		return nil
	}

	return &model.WorkProfileModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Occupation: data.Occupation,
		Income:     data.Income,
		LookingFor: string(data.LookingFor),
		Skills:     data.Skills,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
