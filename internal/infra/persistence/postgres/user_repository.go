// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"tetatete/internal/domain/entity"
	domainerrors "tetatete/internal/domain/errors"
	"tetatete/internal/domain/repository"
	"tetatete/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// CreateUser persists a new user account.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("email or phone already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindUserByID retrieves a user by their unique ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findUser(ctx, "id = ?", id)
}

// FindUserByEmail retrieves a user by their email address.
func (repo *userRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findUser(ctx, "email = ?", email)
}

// FindUserByPhone retrieves a user by their phone number.
func (repo *userRepository) FindUserByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return repo.findUser(ctx, "phone = ?", phone)
}

// FindUserByStripeCustomerID retrieves a user by their Stripe customer reference.
func (repo *userRepository) FindUserByStripeCustomerID(ctx context.Context, customerID string) (*entity.User, error) {
	return repo.findUser(ctx, "stripe_customer_id = ?", customerID)
}

func (repo *userRepository) findUser(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// UpdateUser persists changes to an existing user account.
func (repo *userRepository) UpdateUser(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"email":                   userM.Email,
			"phone":                   userM.Phone,
			"password_hash":           userM.PasswordHash,
			"is_subscription_paid":    userM.IsSubscriptionPaid,
			"stripe_customer_id":      userM.StripeCustomerID,
			"stripe_subscription_id":  userM.StripeSubscriptionID,
			"subscription_expires_at": userM.SubscriptionExpiresAt,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("email or phone already registered")
		}

		return errors.Wrap(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}

// UpdatePassword replaces the stored password hash for a user.
func (repo *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update password")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}

// UpdateSubscriptionState updates the billing fields of a user in one statement.
func (repo *userRepository) UpdateSubscriptionState(ctx context.Context, id uuid.UUID, paid bool, stripeSubscriptionID *string, expiresAt *time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_subscription_paid":    paid,
			"stripe_subscription_id":  stripeSubscriptionID,
			"subscription_expires_at": expiresAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update subscription state")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}

// SaveProfile creates or replaces the presentable profile of a user.
// Image and language links are replaced wholesale.
func (repo *userRepository) SaveProfile(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	db := repo.db.WithContext(ctx)

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("invalid gender, location or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save profile")
	}

	if err := db.Where("user_id = ?", profile.UserID).Delete(&model.ProfileImageModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear profile images")
	}
	for i, url := range profile.ImageURLs {
		imageM := &model.ProfileImageModel{UserID: profile.UserID, URL: url, Position: i}
		if err := db.Create(imageM).Error; err != nil {
			return errors.Wrap(err, "failed to save profile image")
		}
	}

	if err := db.Where("user_id = ?", profile.UserID).Delete(&model.ProfileLanguageModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear profile languages")
	}
	for _, languageID := range profile.LanguageIDs {
		linkM := &model.ProfileLanguageModel{UserID: profile.UserID, LanguageID: languageID}
		if err := db.Create(linkM).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return domainerrors.ErrUserUpdateFailed.WrapMessage("invalid language reference")
			}

			return errors.Wrap(err, "failed to save profile language")
		}
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindProfile retrieves the presentable profile of a user.
func (repo *userRepository) FindProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profiles, err := repo.FindProfiles(ctx, []uuid.UUID{userID})
	if err != nil {
		return nil, err
	}

	profile, ok := profiles[userID]
	if !ok {
		return nil, domainerrors.ErrNotFound.WrapMessage("profile not filled")
	}

	return profile, nil
}

// FindProfiles retrieves the presentable profiles of several users at once.
func (repo *userRepository) FindProfiles(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.Profile, error) {
	if len(userIDs) == 0 {
		return map[uuid.UUID]*entity.Profile{}, nil
	}

	var profileModels []*model.ProfileModel
	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profiles")
	}

	var imageModels []*model.ProfileImageModel
	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("position ASC").
		Find(&imageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profile images")
	}

	var languageModels []*model.ProfileLanguageModel
	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&languageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profile languages")
	}

	profiles := make(map[uuid.UUID]*entity.Profile, len(profileModels))
	for _, profileM := range profileModels {
		profiles[profileM.UserID] = toProfileDomain(profileM)
	}
	for _, imageM := range imageModels {
		if profile, ok := profiles[imageM.UserID]; ok {
			profile.ImageURLs = append(profile.ImageURLs, imageM.URL)
		}
	}
	for _, languageM := range languageModels {
		if profile, ok := profiles[languageM.UserID]; ok {
			profile.LanguageIDs = append(profile.LanguageIDs, languageM.LanguageID)
		}
	}

	return profiles, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                    data.ID,
		Email:                 data.Email,
		Phone:                 data.Phone,
		PasswordHash:          data.PasswordHash,
		IsSubscriptionPaid:    data.IsSubscriptionPaid,
		StripeCustomerID:      data.StripeCustomerID,
		StripeSubscriptionID:  data.StripeSubscriptionID,
		SubscriptionExpiresAt: data.SubscriptionExpiresAt,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                    data.ID,
		Email:                 data.Email,
		Phone:                 data.Phone,
		PasswordHash:          data.PasswordHash,
		IsSubscriptionPaid:    data.IsSubscriptionPaid,
		StripeCustomerID:      data.StripeCustomerID,
		StripeSubscriptionID:  data.StripeSubscriptionID,
		SubscriptionExpiresAt: data.SubscriptionExpiresAt,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		UserID:         data.UserID,
		FullName:       data.FullName,
		Age:            data.Age,
		About:          data.About,
		GenderID:       data.GenderID,
		PlaceOfBirthID: data.PlaceOfBirthID,
		LocationID:     data.LocationID,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		UserID:         data.UserID,
		FullName:       data.FullName,
		Age:            data.Age,
		About:          data.About,
		GenderID:       data.GenderID,
		PlaceOfBirthID: data.PlaceOfBirthID,
		LocationID:     data.LocationID,
		UpdatedAt:      data.UpdatedAt,
	}
}
