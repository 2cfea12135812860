package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "tetatete/internal/delivery/context"
	"tetatete/internal/domain/entity"
	domainerrors "tetatete/internal/domain/errors"
	"tetatete/internal/domain/repository"
	"tetatete/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager     repository.TransactionManager
	categoryRepo  repository.CategoryRepository
	userRepo      repository.UserRepository
	referenceRepo repository.ReferenceRepository
	logger        *slog.Logger
}

// CategoryServiceParams holds dependencies for categoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	CategoryRepo  repository.CategoryRepository
	UserRepo      repository.UserRepository
	ReferenceRepo repository.ReferenceRepository
	Logger        *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:     params.TxManager,
		categoryRepo:  params.CategoryRepo,
		userRepo:      params.UserRepo,
		referenceRepo: params.ReferenceRepo,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// loadCategory resolves the user's tagged category profile, asserting the
// one-category-per-user invariant.
func (srv *categoryService) loadCategory(ctx context.Context, categoryRepo repository.CategoryRepository, userID uuid.UUID) (*entity.CategoryProfile, error) {
	return loadCategoryProfile(ctx, srv.log(ctx), categoryRepo, userID)
}

// FulfilledType reports which category the user currently holds.
func (srv *categoryService) FulfilledType(ctx context.Context, userID uuid.UUID) (entity.CategoryType, error) {
	profile, err := srv.loadCategory(ctx, srv.categoryRepo, userID)
	if err != nil {
		return entity.CategoryNone, err
	}

	return profile.Type, nil
}

// Get returns the user's category profile tagged with its variant.
func (srv *categoryService) Get(ctx context.Context, userID uuid.UUID) (*entity.CategoryProfile, error) {
	profile, err := srv.loadCategory(ctx, srv.categoryRepo, userID)
	if err != nil {
		return nil, err
	}
	if profile.Type == entity.CategoryNone {
		return nil, domainerrors.ErrCategoryNotFound
	}

	return profile, nil
}

// prepareFill runs the shared checks before a category row is written: the
// user must hold a paid subscription, must not already hold the requested
// category, and any other category they hold is removed so the new one
// replaces it.
func (srv *categoryService) prepareFill(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID, category entity.CategoryType) error {
	categoryRepo := repoFactory.NewCategoryRepository()
	userRepo := repoFactory.NewUserRepository()

	current, err := srv.loadCategory(ctx, categoryRepo, userID)
	if err != nil {
		return err
	}
	if current.Type == category {
		return domainerrors.ErrCategoryAlreadyFilled
	}

	user, err := userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to load user for category fill")
	}
	if !user.IsSubscriptionPaid {
		return domainerrors.ErrSubscriptionRequired
	}

	if current.Type != entity.CategoryNone {
		srv.log(ctx).Info("Replacing category profile",
			slog.Any("userID", userID),
			slog.String("from", string(current.Type)),
			slog.String("to", string(category)))

		if err := categoryRepo.DeleteByUser(ctx, current.Type, userID); err != nil {
			return errors.Wrap(err, "failed to remove previous category profile")
		}
	}

	return nil
}

// FillFriends creates the friends category profile for the user.
func (srv *categoryService) FillFriends(ctx context.Context, userID uuid.UUID, input usecase.FillFriendsInput) (*entity.FriendsProfile, error) {
	if err := validateCategoryInfo("info", input.Info); err != nil {
		return nil, err
	}

	profile := &entity.FriendsProfile{
		ID:     uuid.New(),
		UserID: userID,
		Info:   input.Info,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.prepareFill(ctx, repoFactory, userID, entity.CategoryFriends); err != nil {
			return err
		}

		return repoFactory.NewCategoryRepository().CreateFriends(ctx, profile)
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// FillLove creates the love category profile for the user.
func (srv *categoryService) FillLove(ctx context.Context, userID uuid.UUID, input usecase.FillLoveInput) (*entity.LoveProfile, error) {
	if err := validateCategoryInfo("info", input.Info); err != nil {
		return nil, err
	}
	if err := validatePartnerAgeRange(input.MinAge, input.MaxAge); err != nil {
		return nil, err
	}
	if err := srv.checkGenderReference(ctx, input.GenderID); err != nil {
		return nil, err
	}

	profile := &entity.LoveProfile{
		ID:       uuid.New(),
		UserID:   userID,
		Info:     input.Info,
		MinAge:   input.MinAge,
		MaxAge:   input.MaxAge,
		GenderID: input.GenderID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.prepareFill(ctx, repoFactory, userID, entity.CategoryLove); err != nil {
			return err
		}

		return repoFactory.NewCategoryRepository().CreateLove(ctx, profile)
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// FillWork creates the work category profile for the user.
func (srv *categoryService) FillWork(ctx context.Context, userID uuid.UUID, input usecase.FillWorkInput) (*entity.WorkProfile, error) {
	if err := validateWorkText("occupation", input.Occupation); err != nil {
		return nil, err
	}
	if err := validateWorkText("skills", input.Skills); err != nil {
		return nil, err
	}
	if err := validateIncome(input.Income); err != nil {
		return nil, err
	}
	if !input.LookingFor.Valid() {
		return nil, validationError("lookingFor must be one of employee, employer or partners")
	}

	profile := &entity.WorkProfile{
		ID:         uuid.New(),
		UserID:     userID,
		Occupation: input.Occupation,
		Income:     input.Income,
		LookingFor: input.LookingFor,
		Skills:     input.Skills,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.prepareFill(ctx, repoFactory, userID, entity.CategoryWork); err != nil {
			return err
		}

		return repoFactory.NewCategoryRepository().CreateWork(ctx, profile)
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// UpdateFriends applies a partial update to the user's friends profile.
func (srv *categoryService) UpdateFriends(ctx context.Context, userID uuid.UUID, input usecase.UpdateFriendsInput) (*entity.FriendsProfile, error) {
	profile, err := srv.categoryRepo.FindFriendsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Info != nil {
		profile.Info = *input.Info
	}
	if err := validateCategoryInfo("info", profile.Info); err != nil {
		return nil, err
	}

	profile.UpdatedAt = time.Now()
	if err := srv.categoryRepo.UpdateFriends(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// UpdateLove applies a partial update to the user's love profile. The age
// bounds are re-validated as a pair against the resulting state.
func (srv *categoryService) UpdateLove(ctx context.Context, userID uuid.UUID, input usecase.UpdateLoveInput) (*entity.LoveProfile, error) {
	profile, err := srv.categoryRepo.FindLoveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Info != nil {
		profile.Info = *input.Info
	}
	if input.MinAge != nil {
		profile.MinAge = input.MinAge
	}
	if input.MaxAge != nil {
		profile.MaxAge = input.MaxAge
	}
	if input.GenderID != nil {
		profile.GenderID = input.GenderID
	}

	if err := validateCategoryInfo("info", profile.Info); err != nil {
		return nil, err
	}
	if err := validatePartnerAgeRange(profile.MinAge, profile.MaxAge); err != nil {
		return nil, err
	}
	if input.GenderID != nil {
		if err := srv.checkGenderReference(ctx, input.GenderID); err != nil {
			return nil, err
		}
	}

	profile.UpdatedAt = time.Now()
	if err := srv.categoryRepo.UpdateLove(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// UpdateWork applies a partial update to the user's work profile.
func (srv *categoryService) UpdateWork(ctx context.Context, userID uuid.UUID, input usecase.UpdateWorkInput) (*entity.WorkProfile, error) {
	profile, err := srv.categoryRepo.FindWorkByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Occupation != nil {
		profile.Occupation = *input.Occupation
	}
	if input.Income != nil {
		profile.Income = *input.Income
	}
	if input.LookingFor != nil {
		profile.LookingFor = *input.LookingFor
	}
	if input.Skills != nil {
		profile.Skills = *input.Skills
	}

	if err := validateWorkText("occupation", profile.Occupation); err != nil {
		return nil, err
	}
	if err := validateWorkText("skills", profile.Skills); err != nil {
		return nil, err
	}
	if err := validateIncome(profile.Income); err != nil {
		return nil, err
	}
	if !profile.LookingFor.Valid() {
		return nil, validationError("lookingFor must be one of employee, employer or partners")
	}

	profile.UpdatedAt = time.Now()
	if err := srv.categoryRepo.UpdateWork(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// Delete removes the user's profile of the given category.
func (srv *categoryService) Delete(ctx context.Context, userID uuid.UUID, category entity.CategoryType) error {
	if !category.Valid() {
		return validationError("unknown category %q", category)
	}

	return srv.categoryRepo.DeleteByUser(ctx, category, userID)
}

// checkGenderReference rejects gender IDs that are not registered.
func (srv *categoryService) checkGenderReference(ctx context.Context, genderID *uuid.UUID) error {
	if genderID == nil {
		return nil
	}

	exists, err := srv.referenceRepo.GenderExists(ctx, *genderID)
	if err != nil {
		return errors.Wrap(err, "failed to check gender reference")
	}
	if !exists {
		return validationError("gender %s is not registered", genderID)
	}

	return nil
}
