package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/kharcha-app/kharcha/internal/database"
	"github.com/kharcha-app/kharcha/internal/profile"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectProfileColumns = `id, name, email, note, updated_at`

func scanProfile(s scanner) (*profile.Profile, error) {
	var p profile.Profile

	var note sql.NullString

	if err := s.Scan(&p.ID, &p.Name, &p.Email, &note, &p.UpdatedAt); err != nil {
		return nil, err
	}

	p.Note = note.String

	return &p, nil
}

func (s *Store) GetProfile(ctx context.Context, tenantID uuid.UUID) (*profile.Profile, error) {
	query := `SELECT ` + selectProfileColumns + `
		FROM user_profiles
		WHERE id = $1`

	var result *profile.Profile

	err := database.WithTenant(ctx, s.db, tenantID, func(tx *sql.Tx) error {
		p, err := scanProfile(tx.QueryRowContext(ctx, query, tenantID))
		if err != nil {
			if err == sql.ErrNoRows {
				return profile.ErrNotFound
			}

			return fmt.Errorf("getting profile: %w", err)
		}

		result = p

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Store) CreateProfile(ctx context.Context, p *profile.Profile) (bool, error) {
	query := `
		INSERT INTO user_profiles (id, name, email, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (id) DO NOTHING
		RETURNING updated_at
	`

	inserted := false

	err := database.WithTenant(ctx, s.db, p.ID, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, query, p.ID, p.Name, p.Email).Scan(&p.UpdatedAt)
		if err != nil {
			if err == sql.ErrNoRows {
				// Lost the insert race; the row already exists.
				return nil
			}

			return fmt.Errorf("creating profile: %w", err)
		}

		inserted = true

		return nil
	})
	if err != nil {
		return false, err
	}

	return inserted, nil
}

func (s *Store) UpdateNote(ctx context.Context, tenantID uuid.UUID, note string) (*profile.Profile, error) {
	query := `
		UPDATE user_profiles
		SET note = $1, updated_at = now()
		WHERE id = $2
		RETURNING ` + selectProfileColumns

	var result *profile.Profile

	err := database.WithTenant(ctx, s.db, tenantID, func(tx *sql.Tx) error {
		p, err := scanProfile(tx.QueryRowContext(ctx, query, note, tenantID))
		if err != nil {
			if err == sql.ErrNoRows {
				return profile.ErrNotFound
			}

			return fmt.Errorf("updating note: %w", err)
		}

		result = p

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
