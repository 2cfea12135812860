package service

import (
	"tetatete/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageBroadcaster pushes chat messages to users connected over a live
// transport. Delivery is best effort; a user without an open connection is
// silently skipped.
type MessageBroadcaster interface {
	BroadcastMessage(userID uuid.UUID, message *entity.Message)
}
