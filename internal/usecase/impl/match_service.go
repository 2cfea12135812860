package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	deliverycontext "tetatete/internal/delivery/context"
	"tetatete/internal/domain/entity"
	domainerrors "tetatete/internal/domain/errors"
	"tetatete/internal/domain/repository"
	"tetatete/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// newCandidateLimit caps how many fresh candidates one feed request returns.
const newCandidateLimit = 5

// matchService implements the MatchUsecase interface.
type matchService struct {
	txManager    repository.TransactionManager
	matchRepo    repository.MatchRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// MatchServiceParams holds dependencies for matchService, injected by Fx.
type MatchServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	MatchRepo    repository.MatchRepository
	CategoryRepo repository.CategoryRepository
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// NewMatchService is the constructor for matchService.
func NewMatchService(params MatchServiceParams) usecase.MatchUsecase {
	return &matchService{
		txManager:    params.TxManager,
		matchRepo:    params.MatchRepo,
		categoryRepo: params.CategoryRepo,
		userRepo:     params.UserRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *matchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// callerCategory resolves the caller's category; a caller without one cannot
// use the matching feeds.
func (srv *matchService) callerCategory(ctx context.Context, categoryRepo repository.CategoryRepository, userID uuid.UUID) (entity.CategoryType, error) {
	profile, err := loadCategoryProfile(ctx, srv.log(ctx), categoryRepo, userID)
	if err != nil {
		return entity.CategoryNone, err
	}
	if profile.Type == entity.CategoryNone {
		return entity.CategoryNone, domainerrors.ErrValidationFailed.WrapMessage("fill a category before matching")
	}

	return profile.Type, nil
}

// loadCandidates assembles feed entries for the given user IDs, preserving
// their order.
func (srv *matchService) loadCandidates(ctx context.Context, ids []uuid.UUID) ([]*entity.MatchCandidate, error) {
	if len(ids) == 0 {
		return []*entity.MatchCandidate{}, nil
	}

	profiles, err := srv.userRepo.FindProfiles(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load candidate profiles")
	}

	candidates := make([]*entity.MatchCandidate, 0, len(ids))
	for _, id := range ids {
		user, err := srv.userRepo.FindUserByID(ctx, id)
		if err != nil {
			if errors.Is(err, domainerrors.ErrUserNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to load candidate user")
		}
		user.Profile = profiles[id]

		category, err := loadCategoryProfile(ctx, srv.log(ctx), srv.categoryRepo, id)
		if err != nil {
			return nil, err
		}

		candidates = append(candidates, &entity.MatchCandidate{
			User:     user,
			Category: category,
		})
	}

	return candidates, nil
}

// NewCandidates returns up to five random same-category users the caller has
// no proposal with yet.
func (srv *matchService) NewCandidates(ctx context.Context, userID uuid.UUID) ([]*entity.MatchCandidate, error) {
	category, err := srv.callerCategory(ctx, srv.categoryRepo, userID)
	if err != nil {
		return nil, err
	}

	ids, err := srv.categoryRepo.ListPaidUserIDsWithCategory(ctx, category, userID)
	if err != nil {
		return nil, err
	}

	linked, err := srv.matchRepo.ListLinkedUserIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	linkedSet := make(map[uuid.UUID]struct{}, len(linked))
	for _, id := range linked {
		linkedSet[id] = struct{}{}
	}

	eligible := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := linkedSet[id]; !ok {
			eligible = append(eligible, id)
		}
	}

	if len(eligible) == 0 {
		return nil, domainerrors.ErrNoCandidates
	}

	rand.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	if len(eligible) > newCandidateLimit {
		eligible = eligible[:newCandidateLimit]
	}

	return srv.loadCandidates(ctx, eligible)
}

// UnansweredCandidates returns the users still waiting for the caller's
// answer, oldest like first.
func (srv *matchService) UnansweredCandidates(ctx context.Context, userID uuid.UUID) ([]*entity.MatchCandidate, error) {
	if _, err := srv.callerCategory(ctx, srv.categoryRepo, userID); err != nil {
		return nil, err
	}

	ids, err := srv.matchRepo.ListPendingInitiatorIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.loadCandidates(ctx, ids)
}

// ExistingCandidates returns the users the caller is matched with.
func (srv *matchService) ExistingCandidates(ctx context.Context, userID uuid.UUID) ([]*entity.MatchCandidate, error) {
	if _, err := srv.callerCategory(ctx, srv.categoryRepo, userID); err != nil {
		return nil, err
	}

	ids, err := srv.matchRepo.ListMatchedUserIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.loadCandidates(ctx, ids)
}

// Like records a like from the caller towards the target. A reciprocal
// pending like becomes a match: the proposal flips, a chat opens and both
// parties get a notification, all in one transaction.
func (srv *matchService) Like(ctx context.Context, userID, targetID uuid.UUID) (*usecase.LikeOutput, error) {
	if userID == targetID {
		return nil, domainerrors.ErrSelfMatch
	}

	output := &usecase.LikeOutput{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		matchRepo := repoFactory.NewMatchRepository()
		categoryRepo := repoFactory.NewCategoryRepository()

		callerCategory, err := srv.callerCategory(ctx, categoryRepo, userID)
		if err != nil {
			return err
		}

		targetProfile, err := loadCategoryProfile(ctx, srv.log(ctx), categoryRepo, targetID)
		if err != nil {
			return err
		}
		if targetProfile.Type != callerCategory {
			return domainerrors.ErrCategoryMismatch
		}

		_, err = matchRepo.FindProposal(ctx, userID, targetID)
		if err == nil {
			return domainerrors.ErrProposalAlreadyExists
		}
		if !errors.Is(err, domainerrors.ErrProposalNotFound) {
			return errors.Wrap(err, "failed to look up existing proposal")
		}

		reciprocal, err := matchRepo.FindProposal(ctx, targetID, userID)
		if err == nil {
			return srv.completeMatch(ctx, repoFactory, reciprocal, userID, targetID, output)
		}
		if !errors.Is(err, domainerrors.ErrProposalNotFound) {
			return errors.Wrap(err, "failed to look up reciprocal proposal")
		}

		proposal := &entity.MatchProposal{
			ID:          uuid.New(),
			InitiatorID: userID,
			ReceiverID:  targetID,
		}

		return matchRepo.CreateProposal(ctx, proposal)
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// completeMatch closes a reciprocal proposal: both parties must hold a paid
// subscription, then the proposal flips to matched, the chat room opens and
// both users are notified.
func (srv *matchService) completeMatch(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	reciprocal *entity.MatchProposal,
	userID, targetID uuid.UUID,
	output *usecase.LikeOutput,
) error {
	if reciprocal.IsMatch {
		return domainerrors.ErrProposalAlreadyMatched
	}

	userRepo := repoFactory.NewUserRepository()

	caller, err := userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to load caller")
	}
	target, err := userRepo.FindUserByID(ctx, targetID)
	if err != nil {
		return errors.Wrap(err, "failed to load target")
	}
	if !caller.IsSubscriptionPaid || !target.IsSubscriptionPaid {
		return domainerrors.ErrSubscriptionRequired
	}

	if err := repoFactory.NewMatchRepository().MarkAsMatch(ctx, reciprocal.ID); err != nil {
		return err
	}

	names, err := srv.displayNames(ctx, userRepo, caller, target)
	if err != nil {
		return err
	}

	chat := &entity.Chat{
		ID:      uuid.New(),
		Name:    fmt.Sprintf("Chat between %s and %s", names[caller.ID], names[target.ID]),
		UserAID: reciprocal.InitiatorID,
		UserBID: reciprocal.ReceiverID,
	}
	if err := repoFactory.NewChatRepository().CreateChat(ctx, chat); err != nil {
		return err
	}

	notificationRepo := repoFactory.NewNotificationRepository()
	pairs := []struct {
		recipient uuid.UUID
		other     uuid.UUID
	}{
		{recipient: caller.ID, other: target.ID},
		{recipient: target.ID, other: caller.ID},
	}
	for _, pair := range pairs {
		notification := &entity.Notification{
			ID:      uuid.New(),
			UserID:  pair.recipient,
			Message: fmt.Sprintf("You have a new match with %s", names[pair.other]),
		}
		if err := notificationRepo.CreateNotification(ctx, notification); err != nil {
			return err
		}
	}

	srv.log(ctx).Info("Match completed",
		slog.Any("proposalID", reciprocal.ID),
		slog.Any("chatID", chat.ID))

	output.Matched = true
	output.ChatID = &chat.ID

	return nil
}

// displayNames resolves the name to show for each of the two users: the
// profile full name when filled, the email otherwise.
func (srv *matchService) displayNames(ctx context.Context, userRepo repository.UserRepository, users ...*entity.User) (map[uuid.UUID]string, error) {
	ids := make([]uuid.UUID, 0, len(users))
	for _, user := range users {
		ids = append(ids, user.ID)
	}

	profiles, err := userRepo.FindProfiles(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profiles for display names")
	}

	names := make(map[uuid.UUID]string, len(users))
	for _, user := range users {
		if profile, ok := profiles[user.ID]; ok && profile.FullName != "" {
			names[user.ID] = profile.FullName

			continue
		}
		names[user.ID] = user.Email
	}

	return names, nil
}

// Dislike removes the pending proposal between the caller and the other user.
func (srv *matchService) Dislike(ctx context.Context, userID, otherID uuid.UUID) error {
	caller, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to load caller")
	}
	if !caller.IsSubscriptionPaid {
		return domainerrors.ErrSubscriptionRequired
	}

	proposal, err := srv.matchRepo.FindProposalBetween(ctx, userID, otherID)
	if err != nil {
		return err
	}
	if proposal.IsMatch {
		return domainerrors.ErrProposalAlreadyMatched
	}

	return srv.matchRepo.DeleteProposal(ctx, proposal.ID)
}
