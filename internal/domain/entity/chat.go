package entity

import (
	"time"

	"github.com/google/uuid"
)

// Chat is the private conversation created when two users match. Either side
// can leave and rejoin; the room itself survives until the match is gone.
type Chat struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the chat.
	Name      string    // Display name of the chat room.
	UserAID   uuid.UUID // First participant, the match initiator.
	UserBID   uuid.UUID // Second participant, the match receiver.
	UserALeft bool      // Whether the first participant has left the room.
	UserBLeft bool      // Whether the second participant has left the room.
	CreatedAt time.Time // Timestamp of when the chat was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// HasMember reports whether the given user is a participant of the chat.
func (c *Chat) HasMember(userID uuid.UUID) bool {
	return c.UserAID == userID || c.UserBID == userID
}

// Companion returns the other participant of the chat.
// The caller must be a participant.
func (c *Chat) Companion(userID uuid.UUID) uuid.UUID {
	if c.UserAID == userID {
		return c.UserBID
	}

	return c.UserAID
}

// HasLeft reports whether the given participant has left the chat.
func (c *Chat) HasLeft(userID uuid.UUID) bool {
	if c.UserAID == userID {
		return c.UserALeft
	}

	return c.UserBLeft
}

// Message is a single chat message.
type Message struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the message.
	ChatID    uuid.UUID // The chat this message belongs to.
	SenderID  uuid.UUID // The participant who sent the message.
	Content   string    // Message text.
	CreatedAt time.Time // Timestamp of when the message was sent.
}
