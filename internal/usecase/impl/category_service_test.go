package impl

import (
	"context"
	"testing"

	"tetatete/internal/domain/entity"
	domainerrors "tetatete/internal/domain/errors"
	mockRepo "tetatete/internal/mocks/repository"
	"tetatete/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type categoryServiceFixtures struct {
	service       usecase.CategoryUsecase
	userRepo      *mockRepo.MockUserRepository
	categoryRepo  *mockRepo.MockCategoryRepository
	referenceRepo *mockRepo.MockReferenceRepository
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	referenceRepo := mockRepo.NewMockReferenceRepository(t)

	txManager := &stubTxManager{factory: &stubRepoFactory{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
	}}

	service := NewCategoryService(CategoryServiceParams{
		TxManager:     txManager,
		CategoryRepo:  categoryRepo,
		UserRepo:      userRepo,
		ReferenceRepo: referenceRepo,
		Logger:        newDiscardLogger(),
	})

	return categoryServiceFixtures{
		service:       service,
		userRepo:      userRepo,
		categoryRepo:  categoryRepo,
		referenceRepo: referenceRepo,
	}
}

func expectNoCategory(fx categoryServiceFixtures, ctx context.Context, userID uuid.UUID) {
	fx.categoryRepo.On("FindFriendsByUser", ctx, userID).Return(nil, domainerrors.ErrCategoryNotFound)
	fx.categoryRepo.On("FindLoveByUser", ctx, userID).Return(nil, domainerrors.ErrCategoryNotFound)
	fx.categoryRepo.On("FindWorkByUser", ctx, userID).Return(nil, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_FillFriends(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectNoCategory(fx, ctx, userID)
	fx.userRepo.On("FindUserByID", ctx, userID).
		Return(&entity.User{ID: userID, IsSubscriptionPaid: true}, nil)
	fx.categoryRepo.On("CreateFriends", ctx, mock.AnythingOfType("*entity.FriendsProfile")).
		Return(nil)

	profile, err := fx.service.FillFriends(ctx, userID, usecase.FillFriendsInput{
		Info: "I enjoy board games and long walks.",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, profile.UserID)
	assert.Equal(t, "I enjoy board games and long walks.", profile.Info)
	assert.NotEqual(t, uuid.Nil, profile.ID)
}

func TestCategoryService_FillFriends_AlreadyFilled(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.categoryRepo.On("FindFriendsByUser", ctx, userID).
		Return(&entity.FriendsProfile{ID: uuid.New(), UserID: userID}, nil)
	fx.categoryRepo.On("FindLoveByUser", ctx, userID).Return(nil, domainerrors.ErrCategoryNotFound)
	fx.categoryRepo.On("FindWorkByUser", ctx, userID).Return(nil, domainerrors.ErrCategoryNotFound)

	_, err := fx.service.FillFriends(ctx, userID, usecase.FillFriendsInput{
		Info: "I enjoy board games and long walks.",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryAlreadyFilled))
}

func TestCategoryService_FillFriends_Unpaid(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectNoCategory(fx, ctx, userID)
	fx.userRepo.On("FindUserByID", ctx, userID).
		Return(&entity.User{ID: userID, IsSubscriptionPaid: false}, nil)

	_, err := fx.service.FillFriends(ctx, userID, usecase.FillFriendsInput{
		Info: "I enjoy board games and long walks.",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrSubscriptionRequired))
}

func TestCategoryService_FillFriends_InvalidInfo(t *testing.T) {
	fx := createTestCategoryService(t)

	_, err := fx.service.FillFriends(context.Background(), uuid.New(), usecase.FillFriendsInput{
		Info: "short",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCategoryService_FillLove_ReplacesFriends(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.categoryRepo.On("FindFriendsByUser", ctx, userID).
		Return(&entity.FriendsProfile{ID: uuid.New(), UserID: userID}, nil)
	fx.categoryRepo.On("FindLoveByUser", ctx, userID).Return(nil, domainerrors.ErrCategoryNotFound)
	fx.categoryRepo.On("FindWorkByUser", ctx, userID).Return(nil, domainerrors.ErrCategoryNotFound)
	fx.userRepo.On("FindUserByID", ctx, userID).
		Return(&entity.User{ID: userID, IsSubscriptionPaid: true}, nil)
	fx.categoryRepo.On("DeleteByUser", ctx, entity.CategoryFriends, userID).Return(nil)
	fx.categoryRepo.On("CreateLove", ctx, mock.AnythingOfType("*entity.LoveProfile")).Return(nil)

	minAge, maxAge := 25, 35
	profile, err := fx.service.FillLove(ctx, userID, usecase.FillLoveInput{
		Info:   "Looking for someone to share quiet mornings with.",
		MinAge: &minAge,
		MaxAge: &maxAge,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, profile.UserID)
	assert.Equal(t, 25, *profile.MinAge)
	assert.Equal(t, 35, *profile.MaxAge)
}

func TestCategoryService_FillLove_AgeBoundsRequireEachOther(t *testing.T) {
	fx := createTestCategoryService(t)

	minAge := 25
	_, err := fx.service.FillLove(context.Background(), uuid.New(), usecase.FillLoveInput{
		Info:   "Looking for someone to share quiet mornings with.",
		MinAge: &minAge,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCategoryService_FillWork(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectNoCategory(fx, ctx, userID)
	fx.userRepo.On("FindUserByID", ctx, userID).
		Return(&entity.User{ID: userID, IsSubscriptionPaid: true}, nil)
	fx.categoryRepo.On("CreateWork", ctx, mock.AnythingOfType("*entity.WorkProfile")).Return(nil)

	profile, err := fx.service.FillWork(ctx, userID, usecase.FillWorkInput{
		Occupation: "Backend developer",
		Income:     120_000,
		LookingFor: entity.LookingForEmployer,
		Skills:     "Distributed systems, databases",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(120_000), profile.Income)
	assert.Equal(t, entity.LookingForEmployer, profile.LookingFor)
}

func TestCategoryService_FillWork_UnknownLookingFor(t *testing.T) {
	fx := createTestCategoryService(t)

	_, err := fx.service.FillWork(context.Background(), uuid.New(), usecase.FillWorkInput{
		Occupation: "Backend developer",
		Income:     120_000,
		LookingFor: entity.LookingFor("friends"),
		Skills:     "Distributed systems, databases",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCategoryService_Get_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectNoCategory(fx, ctx, userID)

	_, err := fx.service.Get(ctx, userID)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestCategoryService_Get_TaggedWork(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	work := &entity.WorkProfile{ID: uuid.New(), UserID: userID, Occupation: "Designer"}

	fx.categoryRepo.On("FindFriendsByUser", ctx, userID).Return(nil, domainerrors.ErrCategoryNotFound)
	fx.categoryRepo.On("FindLoveByUser", ctx, userID).Return(nil, domainerrors.ErrCategoryNotFound)
	fx.categoryRepo.On("FindWorkByUser", ctx, userID).Return(work, nil)

	profile, err := fx.service.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryWork, profile.Type)
	assert.Equal(t, work, profile.Work)
	assert.Nil(t, profile.Friends)
	assert.Nil(t, profile.Love)
}

func TestCategoryService_Get_InconsistentState(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.categoryRepo.On("FindFriendsByUser", ctx, userID).
		Return(&entity.FriendsProfile{ID: uuid.New(), UserID: userID}, nil)
	fx.categoryRepo.On("FindLoveByUser", ctx, userID).
		Return(&entity.LoveProfile{ID: uuid.New(), UserID: userID}, nil)
	fx.categoryRepo.On("FindWorkByUser", ctx, userID).Return(nil, domainerrors.ErrCategoryNotFound)

	_, err := fx.service.Get(ctx, userID)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryInconsistent))
}

func TestCategoryService_UpdateLove_InvalidResultingRange(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	maxAge := 30
	existing := &entity.LoveProfile{
		ID:     uuid.New(),
		UserID: userID,
		Info:   "Looking for someone to share quiet mornings with.",
		MaxAge: &maxAge,
	}

	fx.categoryRepo.On("FindLoveByUser", ctx, userID).Return(existing, nil)

	// Raising minAge above the stored maxAge must fail against the resulting state.
	minAge := 40
	_, err := fx.service.UpdateLove(ctx, userID, usecase.UpdateLoveInput{MinAge: &minAge})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCategoryService_UpdateWork_IncomeCap(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.WorkProfile{
		ID:         uuid.New(),
		UserID:     userID,
		Occupation: "Backend developer",
		Income:     120_000,
		LookingFor: entity.LookingForEmployer,
		Skills:     "Distributed systems",
	}

	fx.categoryRepo.On("FindWorkByUser", ctx, userID).Return(existing, nil)

	income := int64(1_000_000_000)
	_, err := fx.service.UpdateWork(ctx, userID, usecase.UpdateWorkInput{Income: &income})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCategoryService_UpdateFriends(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.FriendsProfile{
		ID:     uuid.New(),
		UserID: userID,
		Info:   "I enjoy board games and long walks.",
	}

	fx.categoryRepo.On("FindFriendsByUser", ctx, userID).Return(existing, nil)
	fx.categoryRepo.On("UpdateFriends", ctx, existing).Return(nil)

	info := "New hobbies, new description, same person."
	profile, err := fx.service.UpdateFriends(ctx, userID, usecase.UpdateFriendsInput{Info: &info})
	require.NoError(t, err)
	assert.Equal(t, info, profile.Info)
	assert.False(t, profile.UpdatedAt.IsZero())
}

func TestCategoryService_Delete_UnknownCategory(t *testing.T) {
	fx := createTestCategoryService(t)

	err := fx.service.Delete(context.Background(), uuid.New(), entity.CategoryType("gaming"))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCategoryService_Delete(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.categoryRepo.On("DeleteByUser", ctx, entity.CategoryLove, userID).Return(nil)

	assert.NoError(t, fx.service.Delete(ctx, userID, entity.CategoryLove))
}
