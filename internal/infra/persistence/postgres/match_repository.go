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

// matchRepository implements the repository.MatchRepository interface.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository is the constructor for matchRepository.
func NewMatchRepository(db *gorm.DB) repository.MatchRepository {
	return &matchRepository{
		db: db,
	}
}

// CreateProposal persists a new directed like.
func (repo *matchRepository) CreateProposal(ctx context.Context, proposal *entity.MatchProposal) error {
	proposalM := fromProposalDomain(proposal)

	if err := repo.db.WithContext(ctx).Create(proposalM).Error; err != nil {
		// The unique pair index catches two concurrent likes of the same direction.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProposalAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid initiator or receiver reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create match proposal")
	}

	proposal.ID = proposalM.ID
	proposal.CreatedAt = proposalM.CreatedAt
	proposal.UpdatedAt = proposalM.UpdatedAt

	return nil
}

// FindProposal retrieves the proposal sent by initiator to receiver.
func (repo *matchRepository) FindProposal(ctx context.Context, initiatorID, receiverID uuid.UUID) (*entity.MatchProposal, error) {
	var proposalM model.MatchProposalModel

	if err := repo.db.WithContext(ctx).
		Where("initiator_id = ? AND receiver_id = ?", initiatorID, receiverID).
		First(&proposalM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrProposalNotFound
		}

		return nil, errors.Wrap(err, "failed to find match proposal")
	}

	return toProposalDomain(&proposalM), nil
}

// FindProposalBetween retrieves the proposal linking the two users in either direction.
func (repo *matchRepository) FindProposalBetween(ctx context.Context, userA, userB uuid.UUID) (*entity.MatchProposal, error) {
	var proposalM model.MatchProposalModel

	if err := repo.db.WithContext(ctx).
		Where("(initiator_id = ? AND receiver_id = ?) OR (initiator_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		First(&proposalM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrProposalNotFound
		}

		return nil, errors.Wrap(err, "failed to find match proposal between users")
	}

	return toProposalDomain(&proposalM), nil
}

// MarkAsMatch flips IsMatch on the proposal.
func (repo *matchRepository) MarkAsMatch(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MatchProposalModel{}).
		Where("id = ?", id).
		Update("is_match", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark proposal as match")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrProposalNotFound
	}

	return nil
}

// DeleteProposal removes a proposal.
func (repo *matchRepository) DeleteProposal(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MatchProposalModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete match proposal")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrProposalNotFound
	}

	return nil
}

// ListLinkedUserIDs returns the counterparts of every proposal the user is a
// party to, regardless of direction or match state.
func (repo *matchRepository) ListLinkedUserIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var proposalModels []*model.MatchProposalModel

	if err := repo.db.WithContext(ctx).
		Where("initiator_id = ? OR receiver_id = ?", userID, userID).
		Find(&proposalModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list linked users")
	}

	linked := make([]uuid.UUID, 0, len(proposalModels))
	for _, proposalM := range proposalModels {
		if proposalM.InitiatorID == userID {
			linked = append(linked, proposalM.ReceiverID)
		} else {
			linked = append(linked, proposalM.InitiatorID)
		}
	}

	return linked, nil
}

// ListPendingInitiatorIDs returns the users who liked the given user and have
// not been answered yet, oldest like first.
func (repo *matchRepository) ListPendingInitiatorIDs(ctx context.Context, receiverID uuid.UUID) ([]uuid.UUID, error) {
	var initiatorIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.MatchProposalModel{}).
		Where("receiver_id = ? AND is_match = ?", receiverID, false).
		Order("created_at ASC").
		Pluck("initiator_id", &initiatorIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pending initiators")
	}

	return initiatorIDs, nil
}

// ListMatchedUserIDs returns the counterparts of every matched proposal the
// user is a party to.
func (repo *matchRepository) ListMatchedUserIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var proposalModels []*model.MatchProposalModel

	if err := repo.db.WithContext(ctx).
		Where("is_match = ? AND (initiator_id = ? OR receiver_id = ?)", true, userID, userID).
		Find(&proposalModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list matched users")
	}

	matched := make([]uuid.UUID, 0, len(proposalModels))
	for _, proposalM := range proposalModels {
		if proposalM.InitiatorID == userID {
			matched = append(matched, proposalM.ReceiverID)
		} else {
			matched = append(matched, proposalM.InitiatorID)
		}
	}

	return matched, nil
}

// --- Mapper Functions ---

func toProposalDomain(data *model.MatchProposalModel) *entity.MatchProposal {
	if data == nil {
		return nil
	}

	return &entity.MatchProposal{
		ID:          data.ID,
		InitiatorID: data.InitiatorID,
		ReceiverID:  data.ReceiverID,
		IsMatch:     data.IsMatch,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProposalDomain(data *entity.MatchProposal) *model.MatchProposalModel {
	if data == nil {
		return nil
	}

	return &model.MatchProposalModel{
		ID:          data.ID,
		InitiatorID: data.InitiatorID,
		ReceiverID:  data.ReceiverID,
		IsMatch:     data.IsMatch,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
