package usecase

import (
	"context"

	"tetatete/internal/domain/entity"

	"github.com/google/uuid"
)

// LikeOutput reports the outcome of a like. When the like closed a reciprocal
// proposal, Matched is true and ChatID points at the freshly created chat.
type LikeOutput struct {
	Matched bool
	ChatID  *uuid.UUID
}

// MatchUsecase drives the like/dislike proposal ledger and the candidate
// feeds built on top of it.
type MatchUsecase interface {
	// NewCandidates returns up to five random same-category users the caller
	// has no proposal with yet. Unpaid users and the caller are excluded.
	NewCandidates(ctx context.Context, userID uuid.UUID) ([]*entity.MatchCandidate, error)

	// UnansweredCandidates returns the users who liked the caller and are
	// still waiting for an answer, oldest proposal first.
	UnansweredCandidates(ctx context.Context, userID uuid.UUID) ([]*entity.MatchCandidate, error)

	// ExistingCandidates returns the users the caller is matched with.
	ExistingCandidates(ctx context.Context, userID uuid.UUID) ([]*entity.MatchCandidate, error)

	// Like records a like from the caller towards the target. A reciprocal
	// pending like turns both into a match and opens a chat atomically.
	Like(ctx context.Context, userID, targetID uuid.UUID) (*LikeOutput, error)

	// Dislike removes the pending proposal between the caller and the other
	// user, in whichever direction it exists.
	Dislike(ctx context.Context, userID, otherID uuid.UUID) error
}
