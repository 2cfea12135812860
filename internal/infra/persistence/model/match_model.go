package model

import (
	"time"

	"github.com/google/uuid"
)

// MatchProposalModel is the GORM-specific struct for the 'match_proposals' table.
// The composite unique index on (initiator_id, receiver_id) turns concurrent
// duplicate likes into a constraint violation instead of a silent double row.
type MatchProposalModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	InitiatorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_match_proposals_pair;index"`
	ReceiverID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_match_proposals_pair;index"`
	IsMatch     bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MatchProposalModel) TableName() string {
	return "match_proposals"
}
