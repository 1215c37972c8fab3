// Package tenant validates caller-supplied tenant identifiers. Every
// engine entry point parses the raw identifier through this package and
// passes only the validated ID downstream.
package tenant

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidID rejects identifiers that are not well-formed UUIDs. It is
// returned before any store access happens.
var ErrInvalidID = errors.New("invalid tenant id")

// Parse validates a raw tenant identifier. The returned ID is the only
// form the stores accept.
func Parse(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}

	return id, nil
}
