package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a short in-app message shown to a user, created when a
// match happens or a chat message arrives while the user is away.
type Notification struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the notification.
	UserID    uuid.UUID // The user this notification is addressed to.
	Message   string    // Human readable notification text.
	IsRead    bool      // Whether the user has seen the notification.
	CreatedAt time.Time // Timestamp of when the notification was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}
