package profile_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kharcha-app/kharcha/internal/profile"
)

func TestService_GetOrCreate_Existing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	existing := &profile.Profile{ID: tenantID, Name: "Asha", Email: "asha@example.com"}

	repo := profile.NewMockRepository(ctrl)
	repo.EXPECT().GetProfile(gomock.Any(), tenantID).Return(existing, nil)

	svc := profile.NewService(repo)
	got, err := svc.GetOrCreate(context.Background(), tenantID, "other@example.com", "Other")

	require.NoError(t, err)
	assert.Equal(t, existing, got)
}

func TestService_GetOrCreate_CreatesOnFirstAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()

	repo := profile.NewMockRepository(ctrl)
	repo.EXPECT().GetProfile(gomock.Any(), tenantID).Return(nil, profile.ErrNotFound)
	repo.EXPECT().
		CreateProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *profile.Profile) (bool, error) {
			assert.Equal(t, tenantID, p.ID)
			assert.Equal(t, "Asha", p.Name)
			assert.Equal(t, "asha@example.com", p.Email)
			return true, nil
		})

	svc := profile.NewService(repo)
	got, err := svc.GetOrCreate(context.Background(), tenantID, "asha@example.com", "Asha")

	require.NoError(t, err)
	assert.Equal(t, tenantID, got.ID)
	assert.Equal(t, "Asha", got.Name)
}

func TestService_GetOrCreate_ToleratesInsertRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	winner := &profile.Profile{ID: tenantID, Name: "First", Email: "first@example.com"}

	// Another caller inserts between our read and our insert; the
	// conflict-do-nothing insert reports no row and we re-read.
	repo := profile.NewMockRepository(ctrl)
	gomock.InOrder(
		repo.EXPECT().GetProfile(gomock.Any(), tenantID).Return(nil, profile.ErrNotFound),
		repo.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Return(false, nil),
		repo.EXPECT().GetProfile(gomock.Any(), tenantID).Return(winner, nil),
	)

	svc := profile.NewService(repo)
	got, err := svc.GetOrCreate(context.Background(), tenantID, "second@example.com", "Second")

	require.NoError(t, err)
	assert.Equal(t, winner, got)
}

func TestService_GetOrCreate_ReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()

	repo := profile.NewMockRepository(ctrl)
	repo.EXPECT().GetProfile(gomock.Any(), tenantID).Return(nil, errors.New("db error"))

	svc := profile.NewService(repo)
	got, err := svc.GetOrCreate(context.Background(), tenantID, "a@example.com", "A")

	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestService_Create_AlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()

	repo := profile.NewMockRepository(ctrl)
	repo.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Return(false, nil)

	svc := profile.NewService(repo)
	got, inserted, err := svc.Create(context.Background(), tenantID, "Asha", "asha@example.com")

	require.NoError(t, err)
	assert.False(t, inserted)
	assert.Nil(t, got)
}

func TestService_UpdateNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	updated := &profile.Profile{ID: tenantID, Note: "pay rent on the 1st"}

	repo := profile.NewMockRepository(ctrl)
	repo.EXPECT().UpdateNote(gomock.Any(), tenantID, "pay rent on the 1st").Return(updated, nil)

	svc := profile.NewService(repo)
	got, err := svc.UpdateNote(context.Background(), tenantID, "pay rent on the 1st")

	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestService_UpdateNote_MissingProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()

	repo := profile.NewMockRepository(ctrl)
	repo.EXPECT().UpdateNote(gomock.Any(), tenantID, "note").Return(nil, profile.ErrNotFound)

	svc := profile.NewService(repo)
	got, err := svc.UpdateNote(context.Background(), tenantID, "note")

	assert.ErrorIs(t, err, profile.ErrNotFound)
	assert.Nil(t, got)
}
