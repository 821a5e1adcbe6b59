package domain

import (
	"time"

	"github.com/google/uuid"
)

// SelectionSource tags the provenance of a ledger row.
type SelectionSource string

const (
	// SourceUserSubmitted marks rows written by the pick submission pipeline.
	SourceUserSubmitted SelectionSource = "user-submitted"
)

func (s SelectionSource) String() string { return string(s) }

// Selection is one row of the picks ledger. Rows are append-only: a
// selection is never mutated after creation except for RemovedAt, which is
// set exactly once when a later submission supersedes it.
//
// RemovedAt == nil means the row is active. The transition is monotonic:
// active → removed, never the reverse.
type Selection struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	Season     int
	Episode    int
	CastawayID uuid.UUID
	IsCaptain  bool
	Source     SelectionSource
	CreatedAt  time.Time
	RemovedAt  *time.Time
}

// IsActive reports whether the selection has not been superseded.
func (s Selection) IsActive() bool {
	return s.RemovedAt == nil
}

// Pick is a single submitted choice within a pick submission.
type Pick struct {
	CastawayID uuid.UUID
	IsCaptain  bool
}

// LeagueSelection is the public, possibly redacted view of a ledger row.
// For weeks whose gate is still open the castaway identity and captain flag
// are withheld (nil) so the UI can show who has picked without leaking what
// they picked.
type LeagueSelection struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	Season     int
	Episode    int
	CastawayID *uuid.UUID
	IsCaptain  *bool
	CreatedAt  time.Time
}
