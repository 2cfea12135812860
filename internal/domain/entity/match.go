package entity

import (
	"time"

	"github.com/google/uuid"
)

// MatchProposal is one directed like from the initiator towards the receiver.
// The (InitiatorID, ReceiverID) pair is unique; a reciprocal like does not
// insert a second row but flips IsMatch on the existing one.
type MatchProposal struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the proposal.
	InitiatorID uuid.UUID // The user who sent the like.
	ReceiverID  uuid.UUID // The user the like was sent to.
	IsMatch     bool      // True once the receiver has liked back.
	CreatedAt   time.Time // Timestamp of when the like was sent.
	UpdatedAt   time.Time // Timestamp of the last state change.
}

// Involves reports whether the given user is a party to the proposal.
func (p *MatchProposal) Involves(userID uuid.UUID) bool {
	return p.InitiatorID == userID || p.ReceiverID == userID
}

// OtherParty returns the counterpart of the given user within the proposal.
// The caller must be a party to the proposal.
func (p *MatchProposal) OtherParty(userID uuid.UUID) uuid.UUID {
	if p.InitiatorID == userID {
		return p.ReceiverID
	}

	return p.InitiatorID
}

// MatchCandidate is one entry of a candidate feed: the counterpart user
// together with their category profile.
type MatchCandidate struct {
	User     *User
	Category *CategoryProfile
}
