package domain

import "time"

// Week is one episode of a season, keyed by (season, episode number).
// LockTime is the hard submission deadline for that week's picks.
type Week struct {
	Season   int
	Episode  int
	LockTime time.Time
}

// IsLocked reports whether the submission gate for this week is closed.
// The gate locks strictly after the deadline: now == LockTime is still open.
func (w Week) IsLocked(now time.Time) bool {
	return now.After(w.LockTime)
}

// InGraceWindow reports whether the week's deadline passed within the last
// `grace` duration. Such a week is treated as the one currently airing when
// ranking candidates for "the current week".
func (w Week) InGraceWindow(now time.Time, grace time.Duration) bool {
	return w.IsLocked(now) && now.Sub(w.LockTime) <= grace
}
