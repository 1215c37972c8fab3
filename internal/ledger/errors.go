package ledger

import (
	"errors"
	"fmt"
)

// ErrNotFound marks update/delete operations that targeted a record which
// does not exist or belongs to another tenant. Callers must not be able
// to tell the two cases apart.
var ErrNotFound = errors.New("record not found")

// ValidationError rejects malformed input before any store access.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}
