package picks

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/survivor-league/internal/domain"
)

// SubmitInput is a pick submission for one week. The season is implied by
// the league configuration, never chosen by the caller.
type SubmitInput struct {
	Episode int
	Picks   []domain.Pick
}

// Validate checks the submission shape against the league rules. It never
// touches storage: castaway existence is enforced by the ledger's foreign
// keys inside the replace transaction.
func (in SubmitInput) Validate(pickLimit int) error {
	if in.Episode <= 0 {
		return domain.NewValidationError("episode", "must be a positive episode number")
	}
	if len(in.Picks) == 0 {
		return domain.NewValidationError("picks", "at least one pick is required")
	}
	if len(in.Picks) > pickLimit {
		return domain.NewValidationError("picks",
			fmt.Sprintf("at most %d pick(s) allowed per week", pickLimit))
	}

	seen := make(map[uuid.UUID]struct{}, len(in.Picks))
	captains := 0
	for _, p := range in.Picks {
		if p.CastawayID == uuid.Nil {
			return domain.NewValidationError("picks", "castaway id is required")
		}
		if _, dup := seen[p.CastawayID]; dup {
			return domain.NewValidationError("picks", "duplicate castaway in submission")
		}
		seen[p.CastawayID] = struct{}{}
		if p.IsCaptain {
			captains++
		}
	}
	if captains > 1 {
		return domain.NewValidationError("picks", "at most one captain per week")
	}

	return nil
}
