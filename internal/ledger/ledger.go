package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents one recorded transaction, owned by a single tenant.
// Date marks when the spend occurred and is distinct from CreatedAt.
type Expense struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Budget represents a monthly spending limit for one category. At most
// one row exists per (tenant, category, month); Month holds the first
// day of the month.
type Budget struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Category  string
	Limit     decimal.Decimal
	Month     time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
