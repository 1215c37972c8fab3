package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=profile
type Repository interface {
	GetProfile(ctx context.Context, tenantID uuid.UUID) (*Profile, error)
	// CreateProfile inserts the profile unless the row already exists
	// (insert-on-conflict-do-nothing). Reports whether a row was written;
	// on true the profile's generated fields are filled in.
	CreateProfile(ctx context.Context, p *Profile) (bool, error)
	UpdateNote(ctx context.Context, tenantID uuid.UUID, note string) (*Profile, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetOrCreate reads the tenant's profile, creating it with the supplied
// email and name on first access. A concurrent caller may win the
// insert; in that case the freshly inserted row is re-read, so the
// returned profile always exists.
func (s *Service) GetOrCreate(ctx context.Context, tenantID uuid.UUID, email, name string) (*Profile, error) {
	p, err := s.repo.GetProfile(ctx, tenantID)
	if err == nil {
		return p, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	created := &Profile{ID: tenantID, Name: name, Email: email}

	inserted, err := s.repo.CreateProfile(ctx, created)
	if err != nil {
		return nil, err
	}

	if inserted {
		return created, nil
	}

	return s.repo.GetProfile(ctx, tenantID)
}

// Create inserts a profile after signup. When the row already exists
// nothing is written and inserted is false.
func (s *Service) Create(ctx context.Context, tenantID uuid.UUID, name, email string) (*Profile, bool, error) {
	p := &Profile{ID: tenantID, Name: name, Email: email}

	inserted, err := s.repo.CreateProfile(ctx, p)
	if err != nil {
		return nil, false, err
	}

	if !inserted {
		return nil, false, nil
	}

	return p, true, nil
}

// UpdateNote sets the tenant's note, bumping updated_at. Returns
// ErrNotFound when no profile row exists.
func (s *Service) UpdateNote(ctx context.Context, tenantID uuid.UUID, note string) (*Profile, error) {
	return s.repo.UpdateNote(ctx, tenantID, note)
}
