package services

import (
	"context"
	"errors"
	"time"

	"peerloan/internal/adapters/persistence/models"
	"peerloan/internal/adapters/persistence/repositories"
	"peerloan/internal/core/domain"
	"peerloan/internal/core/validation"

	"gorm.io/gorm"
)

// LoanService orchestrates validation, party authorization and the
// storage gateway for each loan operation. Each call is an independent
// pass: validate, authorize, then a single storage mutation, stopping
// at the first failure.
type LoanService struct {
	loanRepo repositories.LoanRepository
	authz    *AuthzService

	// emptyListNotFound reports an empty store as a not-found
	// condition, which existing clients depend on.
	emptyListNotFound bool
	now               func() time.Time
}

// NewLoanService creates a new loan service. Timestamps come from the
// given location rather than ambient process state.
func NewLoanService(loanRepo repositories.LoanRepository, authz *AuthzService, loc *time.Location, emptyListNotFound bool) *LoanService {
	return &LoanService{
		loanRepo:          loanRepo,
		authz:             authz,
		emptyListNotFound: emptyListNotFound,
		now:               func() time.Time { return time.Now().In(loc) },
	}
}

// Create validates the payload, confirms both parties hold the
// matching roles, and inserts the loan.
func (s *LoanService) Create(ctx context.Context, p *validation.LoanPayload) (*models.Loan, error) {
	if err := validation.ValidateCreate(p); err != nil {
		return nil, err
	}

	ok, err := s.authz.IsValidLender(ctx, uint(*p.LenderID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrLenderNotValid
	}

	ok, err = s.authz.IsValidBorrower(ctx, uint(*p.BorrowerID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrBorrowerNotValid
	}

	now := s.now()
	loan := &models.Loan{
		LenderID:      uint(*p.LenderID),
		BorrowerID:    uint(*p.BorrowerID),
		LoanAmount:    *p.LoanAmount,
		InterestRate:  *p.InterestRate,
		DurationYears: *p.DurationYears,
		StartDate:     *p.StartDate,
		Status:        domain.StatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.loanRepo.Insert(ctx, loan); err != nil {
		return nil, domain.ErrPersistenceFailure
	}
	return loan, nil
}

// Update validates the payload and lets only the loan's original
// lender change it. actorID is the identity the caller operates as:
// the JWT subject when a token was presented, otherwise the payload's
// claimed lender. Ownership is judged against the stored lender_id,
// so claiming a different lender fails even if that user is a valid
// lender.
func (s *LoanService) Update(ctx context.Context, id uint, actorID uint, p *validation.LoanPayload) error {
	exists, err := s.loanRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrLoanNotFound
	}

	if err := validation.ValidateUpdate(p); err != nil {
		return err
	}

	claimed := uint(*p.LenderID)
	if actorID != claimed {
		return domain.ErrUnauthorized
	}

	ok, err := s.authz.IsOriginalLender(ctx, id, claimed)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotOriginalLender
	}

	ok, err = s.authz.IsValidBorrower(ctx, uint(*p.BorrowerID))
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrBorrowerNotValid
	}

	fields := map[string]interface{}{
		"lender_id":      claimed,
		"borrower_id":    uint(*p.BorrowerID),
		"loan_amount":    *p.LoanAmount,
		"interest_rate":  *p.InterestRate,
		"duration_years": *p.DurationYears,
		"start_date":     *p.StartDate,
		"status":         *p.Status,
		"updated_at":     s.now(),
	}

	n, err := s.loanRepo.Update(ctx, id, fields)
	if err != nil || n == 0 {
		return domain.ErrPersistenceFailure
	}
	return nil
}

// Delete removes a loan. Only the original lender may delete, and the
// same actor rule as Update applies.
func (s *LoanService) Delete(ctx context.Context, id uint, actorID uint, p *validation.DeletePayload) error {
	exists, err := s.loanRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrLoanNotFound
	}

	if err := validation.ValidateDelete(p); err != nil {
		return err
	}

	claimed := uint(*p.LenderID)
	if actorID != claimed {
		return domain.ErrUnauthorized
	}

	ok, err := s.authz.IsOriginalLender(ctx, id, claimed)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotOriginalLender
	}

	if err := s.loanRepo.Delete(ctx, id); err != nil {
		return domain.ErrPersistenceFailure
	}
	return nil
}

// Get fetches a single loan by id.
func (s *LoanService) Get(ctx context.Context, id uint) (*models.Loan, error) {
	loan, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLoanNotFound
		}
		return nil, err
	}
	return loan, nil
}

// List fetches every loan. With the compatibility flag on, an empty
// store is reported as ErrNoLoans rather than an empty success.
func (s *LoanService) List(ctx context.Context) ([]*models.Loan, error) {
	loans, err := s.loanRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(loans) == 0 && s.emptyListNotFound {
		return nil, domain.ErrNoLoans
	}
	return loans, nil
}
