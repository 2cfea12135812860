package entity

import "github.com/google/uuid"

// Gender is a reference table entry users pick from when filling a profile.
type Gender struct {
	ID   uuid.UUID
	Name string
}

// Location is a reference table entry for places of birth and current
// locations.
type Location struct {
	ID   uuid.UUID
	Name string
}

// Language is a reference table entry for languages a user speaks.
type Language struct {
	ID   uuid.UUID
	Name string
}
