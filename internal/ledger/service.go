package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	CreateExpense(ctx context.Context, e *Expense) error
	ExpensesByRange(ctx context.Context, tenantID uuid.UUID, start, end time.Time) ([]*Expense, error)
	UpdateExpense(ctx context.Context, tenantID, id uuid.UUID, params UpdateExpenseParams) (*Expense, error)
	DeleteExpense(ctx context.Context, tenantID, id uuid.UUID) (*Expense, error)

	UpsertBudget(ctx context.Context, b *Budget) error
	BudgetsByMonth(ctx context.Context, tenantID uuid.UUID, month time.Time) ([]*Budget, error)
	DeleteBudget(ctx context.Context, tenantID, id uuid.UUID) (*Budget, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type AddExpenseParams struct {
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time
}

type UpdateExpenseParams struct {
	Amount      *decimal.Decimal
	Category    *string
	Description *string
	Date        *time.Time
}

// AddExpense records a new expense for the tenant. Amount must be
// strictly positive and category non-empty; the date defaults to now.
func (s *Service) AddExpense(ctx context.Context, tenantID uuid.UUID, params AddExpenseParams) (*Expense, error) {
	if !params.Amount.IsPositive() {
		return nil, &ValidationError{Field: "amount", Reason: "must be greater than 0"}
	}

	if strings.TrimSpace(params.Category) == "" {
		return nil, &ValidationError{Field: "category", Reason: "is required"}
	}

	date := params.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	e := &Expense{
		TenantID:    tenantID,
		Amount:      params.Amount,
		Category:    params.Category,
		Description: params.Description,
		Date:        date,
	}
	if err := s.repo.CreateExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

// ExpensesByMonth returns the tenant's expenses within the calendar
// month, most recent first. An empty month yields an empty slice.
func (s *Service) ExpensesByMonth(ctx context.Context, tenantID uuid.UUID, year, month int) ([]*Expense, error) {
	start, end := MonthRange(year, month)

	return s.repo.ExpensesByRange(ctx, tenantID, start, end)
}

// UpdateExpense applies only the supplied fields. Returns ErrNotFound
// when the expense does not exist or belongs to another tenant.
func (s *Service) UpdateExpense(ctx context.Context, tenantID, id uuid.UUID, params UpdateExpenseParams) (*Expense, error) {
	if params.Amount != nil && !params.Amount.IsPositive() {
		return nil, &ValidationError{Field: "amount", Reason: "must be greater than 0"}
	}

	if params.Category != nil && strings.TrimSpace(*params.Category) == "" {
		return nil, &ValidationError{Field: "category", Reason: "is required"}
	}

	return s.repo.UpdateExpense(ctx, tenantID, id, params)
}

func (s *Service) DeleteExpense(ctx context.Context, tenantID, id uuid.UUID) (*Expense, error) {
	return s.repo.DeleteExpense(ctx, tenantID, id)
}

// SetBudget creates or updates the budget for (tenant, category, month).
// The upsert is atomic at the store, so concurrent calls for the same
// key cannot produce duplicate rows; the last write wins.
func (s *Service) SetBudget(ctx context.Context, tenantID uuid.UUID, category string, limit decimal.Decimal, year, month int) (*Budget, error) {
	if !limit.IsPositive() {
		return nil, &ValidationError{Field: "limit", Reason: "must be greater than 0"}
	}

	if strings.TrimSpace(category) == "" {
		return nil, &ValidationError{Field: "category", Reason: "is required"}
	}

	b := &Budget{
		TenantID: tenantID,
		Category: category,
		Limit:    limit,
		Month:    FirstOfMonth(year, month),
	}
	if err := s.repo.UpsertBudget(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Service) BudgetsByMonth(ctx context.Context, tenantID uuid.UUID, year, month int) ([]*Budget, error) {
	return s.repo.BudgetsByMonth(ctx, tenantID, FirstOfMonth(year, month))
}

func (s *Service) DeleteBudget(ctx context.Context, tenantID, id uuid.UUID) (*Budget, error) {
	return s.repo.DeleteBudget(ctx, tenantID, id)
}
