package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kharcha-app/kharcha/internal/ledger"
)

func TestService_AddExpense(t *testing.T) {
	tenantID := uuid.New()

	type testCase struct {
		name      string
		params    ledger.AddExpenseParams
		setupMock func(m *ledger.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: ledger.AddExpenseParams{
				Amount:   decimal.NewFromInt(500),
				Category: "groceries",
				Date:     time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					CreateExpense(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *ledger.Expense) error {
						e.ID = uuid.New()
						e.CreatedAt = time.Now()
						e.UpdatedAt = e.CreatedAt
						return nil
					})
			},
		},
		{
			name: "ZeroAmount",
			params: ledger.AddExpenseParams{
				Amount:   decimal.Zero,
				Category: "groceries",
			},
			wantErr: true,
		},
		{
			name: "NegativeAmount",
			params: ledger.AddExpenseParams{
				Amount:   decimal.NewFromInt(-50),
				Category: "groceries",
			},
			wantErr: true,
		},
		{
			name: "EmptyCategory",
			params: ledger.AddExpenseParams{
				Amount:   decimal.NewFromInt(100),
				Category: "   ",
			},
			wantErr: true,
		},
		{
			name: "RepoError",
			params: ledger.AddExpenseParams{
				Amount:   decimal.NewFromInt(100),
				Category: "transport",
			},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					CreateExpense(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := ledger.NewService(repo)
			got, err := svc.AddExpense(context.Background(), tenantID, tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, tenantID, got.TenantID)
			assert.True(t, got.Amount.Equal(tt.params.Amount))
		})
	}
}

func TestService_AddExpense_ValidationRejectsBeforeStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: the repository must never be reached.
	repo := ledger.NewMockRepository(ctrl)
	svc := ledger.NewService(repo)

	_, err := svc.AddExpense(context.Background(), uuid.New(), ledger.AddExpenseParams{
		Amount:   decimal.NewFromInt(-1),
		Category: "groceries",
	})

	var vErr *ledger.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "amount", vErr.Field)
}

func TestService_AddExpense_DefaultsDateToNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)

	var captured time.Time

	repo.EXPECT().
		CreateExpense(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *ledger.Expense) error {
			captured = e.Date
			return nil
		})

	svc := ledger.NewService(repo)

	before := time.Now().UTC()
	_, err := svc.AddExpense(context.Background(), uuid.New(), ledger.AddExpenseParams{
		Amount:   decimal.NewFromInt(100),
		Category: "food",
	})
	after := time.Now().UTC()

	require.NoError(t, err)
	assert.False(t, captured.Before(before))
	assert.False(t, captured.After(after))
}

func TestService_ExpensesByMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	repo := ledger.NewMockRepository(ctrl)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().
		ExpensesByRange(gomock.Any(), tenantID, start, end).
		Return([]*ledger.Expense{{ID: uuid.New()}}, nil)

	svc := ledger.NewService(repo)
	got, err := svc.ExpensesByMonth(context.Background(), tenantID, 2024, 6)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestService_ExpensesByMonth_EmptyMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	repo := ledger.NewMockRepository(ctrl)

	repo.EXPECT().
		ExpensesByRange(gomock.Any(), tenantID, gomock.Any(), gomock.Any()).
		Return(nil, nil)

	svc := ledger.NewService(repo)
	got, err := svc.ExpensesByMonth(context.Background(), tenantID, 2024, 1)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestService_UpdateExpense(t *testing.T) {
	tenantID := uuid.New()
	expenseID := uuid.New()
	newAmount := decimal.NewFromInt(750)
	badAmount := decimal.Zero

	type testCase struct {
		name      string
		params    ledger.UpdateExpenseParams
		setupMock func(m *ledger.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			params: ledger.UpdateExpenseParams{Amount: &newAmount},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					UpdateExpense(gomock.Any(), tenantID, expenseID, gomock.Any()).
					Return(&ledger.Expense{ID: expenseID, Amount: newAmount}, nil)
			},
		},
		{
			name:    "InvalidAmount",
			params:  ledger.UpdateExpenseParams{Amount: &badAmount},
			wantErr: &ledger.ValidationError{Field: "amount", Reason: "must be greater than 0"},
		},
		{
			name:   "NotFound",
			params: ledger.UpdateExpenseParams{Amount: &newAmount},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					UpdateExpense(gomock.Any(), tenantID, expenseID, gomock.Any()).
					Return(nil, ledger.ErrNotFound)
			},
			wantErr: ledger.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := ledger.NewService(repo)
			got, err := svc.UpdateExpense(context.Background(), tenantID, expenseID, tt.params)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.True(t, got.Amount.Equal(newAmount))
		})
	}
}

func TestService_DeleteExpense_NotFoundPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	expenseID := uuid.New()

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().
		DeleteExpense(gomock.Any(), tenantID, expenseID).
		Return(nil, ledger.ErrNotFound)

	svc := ledger.NewService(repo)
	got, err := svc.DeleteExpense(context.Background(), tenantID, expenseID)

	assert.ErrorIs(t, err, ledger.ErrNotFound)
	assert.Nil(t, got)
}

func TestService_SetBudget(t *testing.T) {
	tenantID := uuid.New()

	type testCase struct {
		name      string
		category  string
		limit     decimal.Decimal
		setupMock func(m *ledger.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name:     "Success",
			category: "groceries",
			limit:    decimal.NewFromInt(5000),
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					UpsertBudget(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b *ledger.Budget) error {
						b.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:     "ZeroLimit",
			category: "groceries",
			limit:    decimal.Zero,
			wantErr:  true,
		},
		{
			name:     "EmptyCategory",
			category: "",
			limit:    decimal.NewFromInt(1000),
			wantErr:  true,
		},
		{
			name:     "RepoError",
			category: "food",
			limit:    decimal.NewFromInt(1000),
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					UpsertBudget(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := ledger.NewService(repo)
			got, err := svc.SetBudget(context.Background(), tenantID, tt.category, tt.limit, 2024, 6)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), got.Month)
			assert.True(t, got.Limit.Equal(tt.limit))
		})
	}
}
