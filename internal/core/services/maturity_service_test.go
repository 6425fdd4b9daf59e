package services

import (
	"context"
	"testing"
	"time"

	"peerloan/internal/adapters/persistence/models"
	"peerloan/internal/core/domain"
)

func TestSweep_MarksMaturedLoansOnly(t *testing.T) {
	updated := map[uint]string{}
	loanRepo := &mockLoanRepo{
		ListByStatusFn: func(ctx context.Context, status string) ([]*models.Loan, error) {
			if status != domain.StatusActive {
				t.Fatalf("listed status %q", status)
			}
			return []*models.Loan{
				{ID: 1, StartDate: "2020-01-15", DurationYears: 3},   // matured 2023-01-15
				{ID: 2, StartDate: "2024-11-25", DurationYears: 3},   // matures 2027-11-25
				{ID: 3, StartDate: "2024-06-01", DurationYears: 0.5}, // matured ~2024-12-01
				{ID: 4, StartDate: "garbage", DurationYears: 1},
			}, nil
		},
		UpdateFn: func(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
			updated[id] = fields["status"].(string)
			return 1, nil
		},
	}

	svc := NewMaturityService(loanRepo, time.UTC, "")
	svc.now = func() time.Time { return time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC) }

	swept, err := svc.Sweep(context.Background())
	if err != nil {
		t.Fatalf("Sweep err: %v", err)
	}
	if swept != 2 {
		t.Fatalf("swept = %d, want 2", swept)
	}
	if updated[1] != domain.StatusCompleted || updated[3] != domain.StatusCompleted {
		t.Fatalf("updates = %v", updated)
	}
	if _, ok := updated[2]; ok {
		t.Fatal("unmatured loan was completed")
	}
	if _, ok := updated[4]; ok {
		t.Fatal("loan with bad start_date was touched")
	}
}

func TestMaturityDate(t *testing.T) {
	start := time.Date(2024, 11, 25, 0, 0, 0, 0, time.UTC)

	if got := maturityDate(start, 3); !got.Equal(time.Date(2027, 11, 25, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("3y maturity = %v", got)
	}

	half := maturityDate(start, 0.5)
	if half.Before(start.AddDate(0, 5, 0)) || half.After(start.AddDate(0, 7, 0)) {
		t.Fatalf("0.5y maturity = %v", half)
	}
}
