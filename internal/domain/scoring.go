package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType classifies a scoring event for a castaway in a given week.
type EventType string

const (
	EventNonImmunityWin EventType = "NON_IMMUNITY_WIN"
	EventFindIdol       EventType = "FIND_IDOL"
	EventPlayIdol       EventType = "PLAY_IDOL"
	EventProtectedIdol  EventType = "PROTECTED_BY_IDOL"
	EventVoteForExiled  EventType = "VOTE_FOR_EXILED"
	EventWonImmunity    EventType = "WON_IMMUNITY"
	EventVoteReceived   EventType = "VOTE_RECEIVED"
)

// ScoreWeights maps each event type to its point value. Static lookup data.
var ScoreWeights = map[EventType]int{
	EventNonImmunityWin: 1,
	EventFindIdol:       1,
	EventPlayIdol:       1,
	EventProtectedIdol:  1,
	EventVoteForExiled:  1,
	EventWonImmunity:    2,
	EventVoteReceived:   -1,
}

// CastawayEvent records one scoring event. It follows the same soft-delete
// convention as Selection: RemovedAt == nil means the event counts.
type CastawayEvent struct {
	ID         uuid.UUID
	CastawayID uuid.UUID
	Season     int
	Episode    int
	EventType  EventType
	CreatedAt  time.Time
	RemovedAt  *time.Time
}
