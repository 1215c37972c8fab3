package action

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kharcha-app/kharcha/internal/accounting"
	"github.com/kharcha-app/kharcha/internal/ledger"
	"github.com/kharcha-app/kharcha/internal/profile"
)

// ExpenseView is the presentation shape of one expense.
type ExpenseView struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
}

type CategoryView struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

type BudgetStatusView struct {
	Category   string          `json:"category"`
	Budget     decimal.Decimal `json:"budget"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage float64         `json:"percentage"`
	Exceeded   bool            `json:"exceeded"`
}

// DashboardData combines the four current-month views the UI renders.
type DashboardData struct {
	CurrentMonth      string             `json:"currentMonth"`
	Expenses          []ExpenseView      `json:"expenses"`
	CategoryBreakdown []CategoryView     `json:"categoryBreakdown"`
	TotalSpent        decimal.Decimal    `json:"totalSpent"`
	BudgetStatus      []BudgetStatusView `json:"budgetStatus"`
}

// Alert warns about a category at or past 75% of its budget.
type Alert struct {
	Category   string          `json:"category"`
	Percentage int             `json:"percentage"`
	Spent      decimal.Decimal `json:"spent"`
	Budget     decimal.Decimal `json:"budget"`
	Exceeded   bool            `json:"exceeded"`
	Message    string          `json:"message"`
}

type ProfileView struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Note        string    `json:"note,omitempty"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Result envelopes: every facade call reports success or a message the
// caller can show verbatim; engine errors never propagate raw.

type ExpenseResult struct {
	Success bool         `json:"success"`
	Expense *ExpenseView `json:"expense,omitempty"`
	Message string       `json:"message,omitempty"`
	Error   string       `json:"error,omitempty"`
}

type DashboardResult struct {
	Success bool           `json:"success"`
	Data    *DashboardData `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
}

type MessageResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type AlertsResult struct {
	Success bool    `json:"success"`
	Alerts  []Alert `json:"alerts,omitempty"`
	Error   string  `json:"error,omitempty"`
}

type ProfileResult struct {
	Success bool         `json:"success"`
	Profile *ProfileView `json:"profile,omitempty"`
	Error   string       `json:"error,omitempty"`
}

func toExpenseView(e *ledger.Expense) *ExpenseView {
	return &ExpenseView{
		ID:          e.ID,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		Date:        e.Date,
	}
}

func toExpenseViews(expenses []*ledger.Expense) []ExpenseView {
	views := make([]ExpenseView, len(expenses))
	for i, e := range expenses {
		views[i] = *toExpenseView(e)
	}

	return views
}

func toCategoryViews(totals []accounting.CategoryTotal) []CategoryView {
	views := make([]CategoryView, len(totals))
	for i, ct := range totals {
		views[i] = CategoryView{Category: ct.Category, Total: ct.Total, Count: ct.Count}
	}

	return views
}

func toBudgetStatusViews(statuses []accounting.BudgetStatus) []BudgetStatusView {
	views := make([]BudgetStatusView, len(statuses))
	for i, st := range statuses {
		views[i] = BudgetStatusView{
			Category:   st.Category,
			Budget:     st.Budget,
			Spent:      st.Spent,
			Remaining:  st.Remaining,
			Percentage: st.Percentage,
			Exceeded:   st.Exceeded,
		}
	}

	return views
}

func toProfileView(p *profile.Profile) *ProfileView {
	return &ProfileView{
		Name:        p.Name,
		Email:       p.Email,
		Note:        p.Note,
		LastUpdated: p.UpdatedAt,
	}
}
