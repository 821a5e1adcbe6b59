package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is the durable local record for a league member. It is created on
// first successful identity resolution and never deleted.
//
// Email is the natural key used for de-duplication: exactly one account
// exists per email. Subject is the external provider's identifier and is
// write-once — once stored it is never overwritten, even if the provider
// later issues a different subject for the same email.
type Account struct {
	ID        uuid.UUID
	Subject   string
	Email     string
	Name      string
	CreatedAt time.Time
}
