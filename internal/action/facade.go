// Package action translates external tool and UI calls into engine
// operations. It is the only layer that decides presentation-facing
// message text, and the boundary where every engine error is caught and
// folded into a {success:false, error} envelope.
package action

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/kharcha-app/kharcha/internal/accounting"
	"github.com/kharcha-app/kharcha/internal/ledger"
	"github.com/kharcha-app/kharcha/internal/profile"
	"github.com/kharcha-app/kharcha/internal/tenant"
)

// alertThreshold is the budget-status percentage at or above which a
// category produces an alert.
const alertThreshold = 75

const (
	fallbackName  = "User"
	fallbackEmail = "unknown@example.com"
)

// Not-found messages deliberately do not distinguish a missing record
// from another tenant's record.
const (
	expenseNotFoundUpdate = "Expense not found or you don't have permission to update it"
	expenseNotFoundDelete = "Expense not found or you don't have permission to delete it"
	budgetNotFoundDelete  = "Budget not found or you don't have permission to delete it"
)

type Facade struct {
	ledger     *ledger.Service
	accounting *accounting.Service
	profiles   *profile.Service
	now        func() time.Time
}

func NewFacade(l *ledger.Service, a *accounting.Service, p *profile.Service) *Facade {
	return &Facade{
		ledger:     l,
		accounting: a,
		profiles:   p,
		now:        time.Now,
	}
}

type RecordExpenseParams struct {
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time
}

// RecordExpense records a new expense for the tenant.
func (f *Facade) RecordExpense(ctx context.Context, rawTenantID string, params RecordExpenseParams) ExpenseResult {
	tenantID, err := tenant.Parse(rawTenantID)
	if err != nil {
		return ExpenseResult{Error: err.Error()}
	}

	e, err := f.ledger.AddExpense(ctx, tenantID, ledger.AddExpenseParams{
		Amount:      params.Amount,
		Category:    params.Category,
		Description: params.Description,
		Date:        params.Date,
	})
	if err != nil {
		return ExpenseResult{Error: err.Error()}
	}

	return ExpenseResult{
		Success: true,
		Expense: toExpenseView(e),
		Message: fmt.Sprintf("Recorded ₹%s spent on %s", e.Amount, e.Category),
	}
}

// Dashboard serves the UI's current-month view. The four reads are
// independent and read-only, so they run concurrently; a write racing
// in between may leave them observing slightly different snapshots,
// which is accepted.
func (f *Facade) Dashboard(ctx context.Context, rawTenantID string) DashboardResult {
	tenantID, err := tenant.Parse(rawTenantID)
	if err != nil {
		return DashboardResult{Error: err.Error()}
	}

	year, month := f.currentMonth()

	var (
		expenses []*ledger.Expense
		byCat    []accounting.CategoryTotal
		total    decimal.Decimal
		statuses []accounting.BudgetStatus
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		expenses, err = f.ledger.ExpensesByMonth(gctx, tenantID, year, month)
		return err
	})
	g.Go(func() error {
		var err error
		byCat, err = f.accounting.CategorySpending(gctx, tenantID, year, month)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = f.accounting.TotalSpending(gctx, tenantID, year, month)
		return err
	})
	g.Go(func() error {
		var err error
		statuses, err = f.accounting.BudgetStatus(gctx, tenantID, year, month)
		return err
	})

	if err := g.Wait(); err != nil {
		return DashboardResult{Error: err.Error()}
	}

	return DashboardResult{
		Success: true,
		Data: &DashboardData{
			CurrentMonth:      fmt.Sprintf("%04d-%02d", year, month),
			Expenses:          toExpenseViews(expenses),
			CategoryBreakdown: toCategoryViews(byCat),
			TotalSpent:        total,
			BudgetStatus:      toBudgetStatusViews(statuses),
		},
	}
}

// SetBudget sets the category's limit for the current month.
func (f *Facade) SetBudget(ctx context.Context, rawTenantID, category string, limit decimal.Decimal) MessageResult {
	tenantID, err := tenant.Parse(rawTenantID)
	if err != nil {
		return MessageResult{Error: err.Error()}
	}

	year, month := f.currentMonth()

	b, err := f.ledger.SetBudget(ctx, tenantID, category, limit, year, month)
	if err != nil {
		return MessageResult{Error: err.Error()}
	}

	return MessageResult{
		Success: true,
		Message: fmt.Sprintf("Budget set: ₹%s for %s", b.Limit, b.Category),
	}
}

// BudgetAlerts reports the current month's categories at or past 75% of
// their budget.
func (f *Facade) BudgetAlerts(ctx context.Context, rawTenantID string) AlertsResult {
	tenantID, err := tenant.Parse(rawTenantID)
	if err != nil {
		return AlertsResult{Error: err.Error()}
	}

	year, month := f.currentMonth()

	statuses, err := f.accounting.BudgetStatus(ctx, tenantID, year, month)
	if err != nil {
		return AlertsResult{Error: err.Error()}
	}

	var alerts []Alert

	for _, st := range statuses {
		if st.Percentage < alertThreshold {
			continue
		}

		rounded := int(math.Round(st.Percentage))

		message := fmt.Sprintf("You're %d%% of your %s budget", rounded, st.Category)
		if st.Exceeded {
			message = fmt.Sprintf("Over budget for %s: ₹%s / ₹%s",
				st.Category, st.Spent.StringFixed(2), st.Budget.StringFixed(2))
		}

		alerts = append(alerts, Alert{
			Category:   st.Category,
			Percentage: rounded,
			Spent:      st.Spent,
			Budget:     st.Budget,
			Exceeded:   st.Exceeded,
			Message:    message,
		})
	}

	return AlertsResult{Success: true, Alerts: alerts}
}

type UpdateExpenseParams struct {
	Amount      *decimal.Decimal
	Category    *string
	Description *string
	Date        *time.Time
}

// UpdateExpense applies the supplied fields to the tenant's expense.
func (f *Facade) UpdateExpense(ctx context.Context, rawTenantID, rawExpenseID string, params UpdateExpenseParams) ExpenseResult {
	tenantID, err := tenant.Parse(rawTenantID)
	if err != nil {
		return ExpenseResult{Error: err.Error()}
	}

	expenseID, err := tenant.Parse(rawExpenseID)
	if err != nil {
		return ExpenseResult{Error: "invalid expense id"}
	}

	e, err := f.ledger.UpdateExpense(ctx, tenantID, expenseID, ledger.UpdateExpenseParams{
		Amount:      params.Amount,
		Category:    params.Category,
		Description: params.Description,
		Date:        params.Date,
	})
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return ExpenseResult{Error: expenseNotFoundUpdate}
		}

		return ExpenseResult{Error: err.Error()}
	}

	return ExpenseResult{
		Success: true,
		Expense: toExpenseView(e),
		Message: "Expense updated successfully",
	}
}

// DeleteExpense removes the tenant's expense.
func (f *Facade) DeleteExpense(ctx context.Context, rawTenantID, rawExpenseID string) MessageResult {
	tenantID, err := tenant.Parse(rawTenantID)
	if err != nil {
		return MessageResult{Error: err.Error()}
	}

	expenseID, err := tenant.Parse(rawExpenseID)
	if err != nil {
		return MessageResult{Error: "invalid expense id"}
	}

	e, err := f.ledger.DeleteExpense(ctx, tenantID, expenseID)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return MessageResult{Error: expenseNotFoundDelete}
		}

		return MessageResult{Error: err.Error()}
	}

	return MessageResult{
		Success: true,
		Message: fmt.Sprintf("Deleted expense: ₹%s - %s", e.Amount.StringFixed(2), e.Category),
	}
}

// DeleteBudget removes the tenant's budget row.
func (f *Facade) DeleteBudget(ctx context.Context, rawTenantID, rawBudgetID string) MessageResult {
	tenantID, err := tenant.Parse(rawTenantID)
	if err != nil {
		return MessageResult{Error: err.Error()}
	}

	budgetID, err := tenant.Parse(rawBudgetID)
	if err != nil {
		return MessageResult{Error: "invalid budget id"}
	}

	b, err := f.ledger.DeleteBudget(ctx, tenantID, budgetID)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return MessageResult{Error: budgetNotFoundDelete}
		}

		return MessageResult{Error: err.Error()}
	}

	return MessageResult{
		Success: true,
		Message: fmt.Sprintf("Deleted budget for %s", b.Category),
	}
}

// Profile returns the tenant's profile, creating it on first access.
func (f *Facade) Profile(ctx context.Context, rawTenantID, email, name string) ProfileResult {
	tenantID, err := tenant.Parse(rawTenantID)
	if err != nil {
		return ProfileResult{Error: err.Error()}
	}

	p, err := f.profiles.GetOrCreate(ctx, tenantID, email, name)
	if err != nil {
		return ProfileResult{Error: err.Error()}
	}

	return ProfileResult{Success: true, Profile: toProfileView(p)}
}

// UpdateNote sets the tenant's note, creating the profile with fallback
// name and email first when it does not exist yet.
func (f *Facade) UpdateNote(ctx context.Context, rawTenantID, note, email, name string) ProfileResult {
	tenantID, err := tenant.Parse(rawTenantID)
	if err != nil {
		return ProfileResult{Error: err.Error()}
	}

	if email == "" {
		email = fallbackEmail
	}

	if name == "" {
		name = fallbackName
	}

	if _, err := f.profiles.GetOrCreate(ctx, tenantID, email, name); err != nil {
		return ProfileResult{Error: err.Error()}
	}

	p, err := f.profiles.UpdateNote(ctx, tenantID, note)
	if err != nil {
		return ProfileResult{Error: err.Error()}
	}

	return ProfileResult{Success: true, Profile: toProfileView(p)}
}

func (f *Facade) currentMonth() (int, int) {
	now := f.now()

	return now.Year(), int(now.Month())
}
