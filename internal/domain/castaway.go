package domain

import "github.com/google/uuid"

// Castaway is a contestant on the show. Reference data, read-only here.
type Castaway struct {
	ID             uuid.UUID
	Name           string
	Season         int
	ImageURL       *string
	EliminatedWeek *int
}
