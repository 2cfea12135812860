package repository

import (
	"context"

	"tetatete/internal/domain/entity"

	"github.com/google/uuid"
)

// MatchRepository defines the interface for match proposal persistence.
type MatchRepository interface {
	// CreateProposal persists a new directed like. The (initiator, receiver)
	// pair is unique; a duplicate insert surfaces as a conflict error.
	CreateProposal(ctx context.Context, proposal *entity.MatchProposal) error

	// FindProposal retrieves the proposal sent by initiator to receiver.
	FindProposal(ctx context.Context, initiatorID, receiverID uuid.UUID) (*entity.MatchProposal, error)

	// FindProposalBetween retrieves the proposal linking the two users in
	// either direction.
	FindProposalBetween(ctx context.Context, userA, userB uuid.UUID) (*entity.MatchProposal, error)

	// MarkAsMatch flips IsMatch on the proposal.
	MarkAsMatch(ctx context.Context, id uuid.UUID) error

	// DeleteProposal removes a proposal.
	DeleteProposal(ctx context.Context, id uuid.UUID) error

	// ListLinkedUserIDs returns the counterparts of every proposal the user is
	// a party to, regardless of direction or match state.
	ListLinkedUserIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// ListPendingInitiatorIDs returns the users who liked the given user and
	// have not been answered yet, oldest like first.
	ListPendingInitiatorIDs(ctx context.Context, receiverID uuid.UUID) ([]uuid.UUID, error)

	// ListMatchedUserIDs returns the counterparts of every matched proposal
	// the user is a party to.
	ListMatchedUserIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
