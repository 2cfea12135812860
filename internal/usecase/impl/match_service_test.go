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

type matchServiceFixtures struct {
	service          usecase.MatchUsecase
	userRepo         *mockRepo.MockUserRepository
	categoryRepo     *mockRepo.MockCategoryRepository
	matchRepo        *mockRepo.MockMatchRepository
	chatRepo         *mockRepo.MockChatRepository
	notificationRepo *mockRepo.MockNotificationRepository
}

func createTestMatchService(t *testing.T) matchServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	matchRepo := mockRepo.NewMockMatchRepository(t)
	chatRepo := mockRepo.NewMockChatRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)

	txManager := &stubTxManager{factory: &stubRepoFactory{
		userRepo:         userRepo,
		categoryRepo:     categoryRepo,
		matchRepo:        matchRepo,
		chatRepo:         chatRepo,
		notificationRepo: notificationRepo,
	}}

	service := NewMatchService(MatchServiceParams{
		TxManager:    txManager,
		MatchRepo:    matchRepo,
		CategoryRepo: categoryRepo,
		UserRepo:     userRepo,
		Logger:       newDiscardLogger(),
	})

	return matchServiceFixtures{
		service:          service,
		userRepo:         userRepo,
		categoryRepo:     categoryRepo,
		matchRepo:        matchRepo,
		chatRepo:         chatRepo,
		notificationRepo: notificationRepo,
	}
}

// expectFriendsCategory sets up the three category lookups so the user reads
// as a friends-category member.
func expectFriendsCategory(fx matchServiceFixtures, ctx context.Context, userID uuid.UUID) {
	fx.categoryRepo.On("FindFriendsByUser", ctx, userID).
		Return(&entity.FriendsProfile{ID: uuid.New(), UserID: userID}, nil)
	fx.categoryRepo.On("FindLoveByUser", ctx, userID).Return(nil, domainerrors.ErrCategoryNotFound)
	fx.categoryRepo.On("FindWorkByUser", ctx, userID).Return(nil, domainerrors.ErrCategoryNotFound)
}

func expectLoveCategory(fx matchServiceFixtures, ctx context.Context, userID uuid.UUID) {
	fx.categoryRepo.On("FindFriendsByUser", ctx, userID).Return(nil, domainerrors.ErrCategoryNotFound)
	fx.categoryRepo.On("FindLoveByUser", ctx, userID).
		Return(&entity.LoveProfile{ID: uuid.New(), UserID: userID}, nil)
	fx.categoryRepo.On("FindWorkByUser", ctx, userID).Return(nil, domainerrors.ErrCategoryNotFound)
}

func TestMatchService_Like_SelfMatch(t *testing.T) {
	fx := createTestMatchService(t)

	userID := uuid.New()
	_, err := fx.service.Like(context.Background(), userID, userID)
	assert.True(t, errors.Is(err, domainerrors.ErrSelfMatch))
}

func TestMatchService_Like_CreatesProposal(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	targetID := uuid.New()

	expectFriendsCategory(fx, ctx, userID)
	expectFriendsCategory(fx, ctx, targetID)
	fx.matchRepo.On("FindProposal", ctx, userID, targetID).
		Return(nil, domainerrors.ErrProposalNotFound)
	fx.matchRepo.On("FindProposal", ctx, targetID, userID).
		Return(nil, domainerrors.ErrProposalNotFound)
	fx.matchRepo.On("CreateProposal", ctx, mock.MatchedBy(func(p *entity.MatchProposal) bool {
		return p.InitiatorID == userID && p.ReceiverID == targetID && !p.IsMatch
	})).Return(nil)

	output, err := fx.service.Like(ctx, userID, targetID)
	require.NoError(t, err)
	assert.False(t, output.Matched)
	assert.Nil(t, output.ChatID)
}

func TestMatchService_Like_CategoryMismatch(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	targetID := uuid.New()

	expectFriendsCategory(fx, ctx, userID)
	expectLoveCategory(fx, ctx, targetID)

	_, err := fx.service.Like(ctx, userID, targetID)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryMismatch))
}

func TestMatchService_Like_DuplicateLike(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	targetID := uuid.New()

	expectFriendsCategory(fx, ctx, userID)
	expectFriendsCategory(fx, ctx, targetID)
	fx.matchRepo.On("FindProposal", ctx, userID, targetID).
		Return(&entity.MatchProposal{ID: uuid.New(), InitiatorID: userID, ReceiverID: targetID}, nil)

	_, err := fx.service.Like(ctx, userID, targetID)
	assert.True(t, errors.Is(err, domainerrors.ErrProposalAlreadyExists))
}

func TestMatchService_Like_ReciprocalCompletesMatch(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	targetID := uuid.New()
	proposalID := uuid.New()

	expectFriendsCategory(fx, ctx, userID)
	expectFriendsCategory(fx, ctx, targetID)
	fx.matchRepo.On("FindProposal", ctx, userID, targetID).
		Return(nil, domainerrors.ErrProposalNotFound)
	fx.matchRepo.On("FindProposal", ctx, targetID, userID).
		Return(&entity.MatchProposal{ID: proposalID, InitiatorID: targetID, ReceiverID: userID}, nil)

	fx.userRepo.On("FindUserByID", ctx, userID).
		Return(&entity.User{ID: userID, Email: "alice@example.com", IsSubscriptionPaid: true}, nil)
	fx.userRepo.On("FindUserByID", ctx, targetID).
		Return(&entity.User{ID: targetID, Email: "bob@example.com", IsSubscriptionPaid: true}, nil)
	fx.userRepo.On("FindProfiles", ctx, []uuid.UUID{userID, targetID}).
		Return(map[uuid.UUID]*entity.Profile{
			userID:   {UserID: userID, FullName: "Alice"},
			targetID: {UserID: targetID, FullName: "Bob"},
		}, nil)

	fx.matchRepo.On("MarkAsMatch", ctx, proposalID).Return(nil)
	fx.chatRepo.On("CreateChat", ctx, mock.MatchedBy(func(c *entity.Chat) bool {
		return c.Name == "Chat between Alice and Bob" &&
			c.UserAID == targetID && c.UserBID == userID
	})).Return(nil)
	fx.notificationRepo.On("CreateNotification", ctx, mock.MatchedBy(func(n *entity.Notification) bool {
		return n.UserID == userID && n.Message == "You have a new match with Bob"
	})).Return(nil).Once()
	fx.notificationRepo.On("CreateNotification", ctx, mock.MatchedBy(func(n *entity.Notification) bool {
		return n.UserID == targetID && n.Message == "You have a new match with Alice"
	})).Return(nil).Once()

	output, err := fx.service.Like(ctx, userID, targetID)
	require.NoError(t, err)
	assert.True(t, output.Matched)
	require.NotNil(t, output.ChatID)
	assert.NotEqual(t, uuid.Nil, *output.ChatID)
}

func TestMatchService_Like_ReciprocalUnpaidTarget(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	targetID := uuid.New()

	expectFriendsCategory(fx, ctx, userID)
	expectFriendsCategory(fx, ctx, targetID)
	fx.matchRepo.On("FindProposal", ctx, userID, targetID).
		Return(nil, domainerrors.ErrProposalNotFound)
	fx.matchRepo.On("FindProposal", ctx, targetID, userID).
		Return(&entity.MatchProposal{ID: uuid.New(), InitiatorID: targetID, ReceiverID: userID}, nil)
	fx.userRepo.On("FindUserByID", ctx, userID).
		Return(&entity.User{ID: userID, IsSubscriptionPaid: true}, nil)
	fx.userRepo.On("FindUserByID", ctx, targetID).
		Return(&entity.User{ID: targetID, IsSubscriptionPaid: false}, nil)

	_, err := fx.service.Like(ctx, userID, targetID)
	assert.True(t, errors.Is(err, domainerrors.ErrSubscriptionRequired))
}

func TestMatchService_Like_AlreadyMatched(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	targetID := uuid.New()

	expectFriendsCategory(fx, ctx, userID)
	expectFriendsCategory(fx, ctx, targetID)
	fx.matchRepo.On("FindProposal", ctx, userID, targetID).
		Return(nil, domainerrors.ErrProposalNotFound)
	fx.matchRepo.On("FindProposal", ctx, targetID, userID).
		Return(&entity.MatchProposal{ID: uuid.New(), InitiatorID: targetID, ReceiverID: userID, IsMatch: true}, nil)

	_, err := fx.service.Like(ctx, userID, targetID)
	assert.True(t, errors.Is(err, domainerrors.ErrProposalAlreadyMatched))
}

func TestMatchService_Like_CallerWithoutCategory(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	targetID := uuid.New()

	fx.categoryRepo.On("FindFriendsByUser", ctx, userID).Return(nil, domainerrors.ErrCategoryNotFound)
	fx.categoryRepo.On("FindLoveByUser", ctx, userID).Return(nil, domainerrors.ErrCategoryNotFound)
	fx.categoryRepo.On("FindWorkByUser", ctx, userID).Return(nil, domainerrors.ErrCategoryNotFound)

	_, err := fx.service.Like(ctx, userID, targetID)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMatchService_Dislike_RemovesPending(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()
	proposalID := uuid.New()

	fx.userRepo.On("FindUserByID", ctx, userID).
		Return(&entity.User{ID: userID, IsSubscriptionPaid: true}, nil)
	fx.matchRepo.On("FindProposalBetween", ctx, userID, otherID).
		Return(&entity.MatchProposal{ID: proposalID, InitiatorID: otherID, ReceiverID: userID}, nil)
	fx.matchRepo.On("DeleteProposal", ctx, proposalID).Return(nil)

	assert.NoError(t, fx.service.Dislike(ctx, userID, otherID))
}

func TestMatchService_Dislike_MatchedProposal(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()

	fx.userRepo.On("FindUserByID", ctx, userID).
		Return(&entity.User{ID: userID, IsSubscriptionPaid: true}, nil)
	fx.matchRepo.On("FindProposalBetween", ctx, userID, otherID).
		Return(&entity.MatchProposal{ID: uuid.New(), InitiatorID: userID, ReceiverID: otherID, IsMatch: true}, nil)

	err := fx.service.Dislike(ctx, userID, otherID)
	assert.True(t, errors.Is(err, domainerrors.ErrProposalAlreadyMatched))
}

func TestMatchService_Dislike_Unpaid(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindUserByID", ctx, userID).
		Return(&entity.User{ID: userID, IsSubscriptionPaid: false}, nil)

	err := fx.service.Dislike(ctx, userID, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrSubscriptionRequired))
}

func TestMatchService_Dislike_NoProposal(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()

	fx.userRepo.On("FindUserByID", ctx, userID).
		Return(&entity.User{ID: userID, IsSubscriptionPaid: true}, nil)
	fx.matchRepo.On("FindProposalBetween", ctx, userID, otherID).
		Return(nil, domainerrors.ErrProposalNotFound)

	err := fx.service.Dislike(ctx, userID, otherID)
	assert.True(t, errors.Is(err, domainerrors.ErrProposalNotFound))
}

func TestMatchService_NewCandidates_ExcludesLinkedAndCaps(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectFriendsCategory(fx, ctx, userID)

	// Eight paid same-category members, two already linked to the caller.
	candidates := make([]uuid.UUID, 0, 8)
	for range 8 {
		candidates = append(candidates, uuid.New())
	}
	linked := []uuid.UUID{candidates[0], candidates[5]}

	fx.categoryRepo.On("ListPaidUserIDsWithCategory", ctx, entity.CategoryFriends, userID).
		Return(candidates, nil)
	fx.matchRepo.On("ListLinkedUserIDs", ctx, userID).Return(linked, nil)

	linkedSet := map[uuid.UUID]struct{}{linked[0]: {}, linked[1]: {}}
	profiles := make(map[uuid.UUID]*entity.Profile)
	for _, id := range candidates {
		if _, ok := linkedSet[id]; ok {
			continue
		}
		profiles[id] = &entity.Profile{UserID: id, FullName: "Somebody"}
		// The shuffle keeps only five of the six eligible users, so every
		// per-candidate lookup is optional.
		fx.userRepo.On("FindUserByID", ctx, id).
			Return(&entity.User{ID: id, IsSubscriptionPaid: true}, nil).Maybe()
		fx.categoryRepo.On("FindFriendsByUser", ctx, id).
			Return(&entity.FriendsProfile{ID: uuid.New(), UserID: id}, nil).Maybe()
		fx.categoryRepo.On("FindLoveByUser", ctx, id).
			Return(nil, domainerrors.ErrCategoryNotFound).Maybe()
		fx.categoryRepo.On("FindWorkByUser", ctx, id).
			Return(nil, domainerrors.ErrCategoryNotFound).Maybe()
	}
	fx.userRepo.On("FindProfiles", ctx, mock.AnythingOfType("[]uuid.UUID")).Return(profiles, nil)

	result, err := fx.service.NewCandidates(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, result, 5)
	for _, candidate := range result {
		assert.NotContains(t, linked, candidate.User.ID)
		assert.NotEqual(t, userID, candidate.User.ID)
		assert.Equal(t, entity.CategoryFriends, candidate.Category.Type)
	}
}

func TestMatchService_NewCandidates_Empty(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	linkedID := uuid.New()

	expectFriendsCategory(fx, ctx, userID)
	fx.categoryRepo.On("ListPaidUserIDsWithCategory", ctx, entity.CategoryFriends, userID).
		Return([]uuid.UUID{linkedID}, nil)
	fx.matchRepo.On("ListLinkedUserIDs", ctx, userID).Return([]uuid.UUID{linkedID}, nil)

	_, err := fx.service.NewCandidates(ctx, userID)
	assert.True(t, errors.Is(err, domainerrors.ErrNoCandidates))
}

func TestMatchService_UnansweredCandidates(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	initiatorID := uuid.New()

	expectFriendsCategory(fx, ctx, userID)
	fx.matchRepo.On("ListPendingInitiatorIDs", ctx, userID).Return([]uuid.UUID{initiatorID}, nil)
	fx.userRepo.On("FindProfiles", ctx, []uuid.UUID{initiatorID}).
		Return(map[uuid.UUID]*entity.Profile{}, nil)
	fx.userRepo.On("FindUserByID", ctx, initiatorID).
		Return(&entity.User{ID: initiatorID, IsSubscriptionPaid: true}, nil)
	expectFriendsCategory(fx, ctx, initiatorID)

	result, err := fx.service.UnansweredCandidates(ctx, userID)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, initiatorID, result[0].User.ID)
}

func TestMatchService_ExistingCandidates_Empty(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectFriendsCategory(fx, ctx, userID)
	fx.matchRepo.On("ListMatchedUserIDs", ctx, userID).Return([]uuid.UUID{}, nil)

	result, err := fx.service.ExistingCandidates(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, result)
}
