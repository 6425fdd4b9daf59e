package services

import (
	"context"
	"log"
	"time"

	"peerloan/internal/adapters/persistence/repositories"
	"peerloan/internal/core/domain"

	"github.com/robfig/cron/v3"
)

// MaturityService flips active loans whose term has elapsed to the
// completed status. It runs on a cron schedule in the configured
// location; an empty schedule disables it.
type MaturityService struct {
	loanRepo repositories.LoanRepository
	cron     *cron.Cron
	spec     string
	loc      *time.Location
	now      func() time.Time
}

// NewMaturityService creates a new maturity sweep service
func NewMaturityService(loanRepo repositories.LoanRepository, loc *time.Location, spec string) *MaturityService {
	return &MaturityService{
		loanRepo: loanRepo,
		cron:     cron.New(cron.WithLocation(loc)),
		spec:     spec,
		loc:      loc,
		now:      func() time.Time { return time.Now().In(loc) },
	}
}

// Start schedules the sweep.
func (s *MaturityService) Start() error {
	if s.spec == "" {
		log.Println("Maturity sweep disabled (no schedule)")
		return nil
	}

	_, err := s.cron.AddFunc(s.spec, func() {
		if _, err := s.Sweep(context.Background()); err != nil {
			log.Printf("Maturity sweep error: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("Maturity sweep scheduled [%s]", s.spec)
	return nil
}

// Stop halts the schedule; a running sweep finishes.
func (s *MaturityService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Sweep marks every matured active loan completed and reports how
// many rows changed. A loan with an unparseable start date is skipped.
func (s *MaturityService) Sweep(ctx context.Context) (int, error) {
	loans, err := s.loanRepo.ListByStatus(ctx, domain.StatusActive)
	if err != nil {
		return 0, err
	}

	now := s.now()
	swept := 0
	for _, loan := range loans {
		start, err := time.ParseInLocation("2006-01-02", loan.StartDate, s.loc)
		if err != nil {
			log.Printf("Maturity sweep: loan %d has bad start_date %q", loan.ID, loan.StartDate)
			continue
		}
		if maturityDate(start, loan.DurationYears).After(now) {
			continue
		}

		n, err := s.loanRepo.Update(ctx, loan.ID, map[string]interface{}{
			"status":     domain.StatusCompleted,
			"updated_at": now,
		})
		if err != nil {
			return swept, err
		}
		swept += int(n)
	}

	if swept > 0 {
		log.Printf("Maturity sweep completed %d loan(s)", swept)
	}
	return swept, nil
}

// maturityDate adds a possibly fractional number of years to the start
// date. Whole years keep calendar semantics; the fraction counts as
// 365-day days.
func maturityDate(start time.Time, years float64) time.Time {
	whole := int(years)
	fraction := years - float64(whole)
	end := start.AddDate(whole, 0, 0)
	if fraction > 0 {
		end = end.Add(time.Duration(fraction * 365 * 24 * float64(time.Hour)))
	}
	return end
}
