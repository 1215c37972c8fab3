// Package accounting computes derived views over the ledger: spending
// grouped by category, monthly totals and budget-versus-actual status.
package accounting

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kharcha-app/kharcha/internal/ledger"
)

// CategoryTotal is the exact decimal sum and count of a category's
// expenses within a month.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
	Count    int
}

// BudgetStatus joins one budget row with the category's actual spend.
// Percentage is clamped to 100 for presentation while Exceeded is
// computed from the unclamped values; the alert formatting relies on
// that asymmetry, so the two must stay independent.
type BudgetStatus struct {
	Category   string
	Budget     decimal.Decimal
	Spent      decimal.Decimal
	Remaining  decimal.Decimal
	Percentage float64
	Exceeded   bool
}

//go:generate mockgen -source=service.go -destination=reader_mock.go -package=accounting
type Reader interface {
	CategorySpending(ctx context.Context, tenantID uuid.UUID, start, end time.Time) ([]CategoryTotal, error)
	TotalSpending(ctx context.Context, tenantID uuid.UUID, start, end time.Time) (decimal.Decimal, error)
	BudgetsByMonth(ctx context.Context, tenantID uuid.UUID, month time.Time) ([]*ledger.Budget, error)
}

type Service struct {
	reader Reader
}

func NewService(reader Reader) *Service {
	return &Service{reader: reader}
}

// CategorySpending groups the month's expenses by category. Categories
// without expenses produce no entry.
func (s *Service) CategorySpending(ctx context.Context, tenantID uuid.UUID, year, month int) ([]CategoryTotal, error) {
	start, end := ledger.MonthRange(year, month)

	return s.reader.CategorySpending(ctx, tenantID, start, end)
}

// TotalSpending returns the month's total across all categories, zero
// when no expenses exist.
func (s *Service) TotalSpending(ctx context.Context, tenantID uuid.UUID, year, month int) (decimal.Decimal, error) {
	start, end := ledger.MonthRange(year, month)

	return s.reader.TotalSpending(ctx, tenantID, start, end)
}

var hundred = decimal.NewFromInt(100)

// BudgetStatus computes the status of every budget row in the month.
// A single grouped spending query serves all budgets, so the cost stays
// at two queries regardless of how many categories have budgets.
// Categories with a budget but no spend yield spent=0, percentage=0,
// exceeded=false; categories with spend but no budget yield no entry.
func (s *Service) BudgetStatus(ctx context.Context, tenantID uuid.UUID, year, month int) ([]BudgetStatus, error) {
	start, end := ledger.MonthRange(year, month)

	budgets, err := s.reader.BudgetsByMonth(ctx, tenantID, start)
	if err != nil {
		return nil, err
	}

	if len(budgets) == 0 {
		return nil, nil
	}

	spending, err := s.reader.CategorySpending(ctx, tenantID, start, end)
	if err != nil {
		return nil, err
	}

	spentByCategory := make(map[string]decimal.Decimal, len(spending))
	for _, ct := range spending {
		spentByCategory[ct.Category] = ct.Total
	}

	statuses := make([]BudgetStatus, 0, len(budgets))

	for _, b := range budgets {
		spent := spentByCategory[b.Category]

		percentage := spent.Div(b.Limit).Mul(hundred).InexactFloat64()
		if percentage > 100 {
			percentage = 100
		}

		statuses = append(statuses, BudgetStatus{
			Category:   b.Category,
			Budget:     b.Limit,
			Spent:      spent,
			Remaining:  b.Limit.Sub(spent),
			Percentage: percentage,
			Exceeded:   spent.GreaterThan(b.Limit),
		})
	}

	return statuses, nil
}
