package profile

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound marks operations on a profile row that does not exist.
var ErrNotFound = errors.New("profile not found")

// Profile is the one-row-per-tenant record keyed by the tenant id.
type Profile struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Note      string
	UpdatedAt time.Time
}
