package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kharcha-app/kharcha/internal/ledger"
)

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     int
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "MidYear",
			year:      2024,
			month:     6,
			wantStart: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "DecemberRollsIntoNextYear",
			year:      2024,
			month:     12,
			wantStart: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "LeapFebruary",
			year:      2024,
			month:     2,
			wantStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "NonLeapFebruary",
			year:      2023,
			month:     2,
			wantStart: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := ledger.MonthRange(tt.year, tt.month)

			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestMonthRange_LastInstantIncluded(t *testing.T) {
	start, end := ledger.MonthRange(2024, 6)

	lastInstant := time.Date(2024, 6, 30, 23, 59, 59, 999999999, time.UTC)
	assert.True(t, !lastInstant.Before(start) && lastInstant.Before(end))

	firstOfNext := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, firstOfNext.Before(end))
}

func TestFirstOfMonth(t *testing.T) {
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), ledger.FirstOfMonth(2024, 6))
}
