package services

import (
	"context"
	"errors"

	"peerloan/internal/adapters/persistence/repositories"
	"peerloan/internal/core/domain"

	"gorm.io/gorm"
)

// AuthzService answers whether an actor is a legitimate party to a
// loan operation. Every check is backed by a storage lookup; absence
// and role mismatch both come back as false, not as an error.
type AuthzService struct {
	userRepo repositories.UserRepository
	loanRepo repositories.LoanRepository
}

// NewAuthzService creates a new authorization checker
func NewAuthzService(userRepo repositories.UserRepository, loanRepo repositories.LoanRepository) *AuthzService {
	return &AuthzService{
		userRepo: userRepo,
		loanRepo: loanRepo,
	}
}

// IsValidLender reports whether a user with that id holds the lender role.
func (s *AuthzService) IsValidLender(ctx context.Context, lenderID uint) (bool, error) {
	_, err := s.userRepo.GetByIDAndRole(ctx, lenderID, domain.RoleLender)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// IsValidBorrower reports whether a user with that id holds the borrower role.
func (s *AuthzService) IsValidBorrower(ctx context.Context, borrowerID uint) (bool, error) {
	_, err := s.userRepo.GetByIDAndRole(ctx, borrowerID, domain.RoleBorrower)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// IsOriginalLender reports whether the loan exists, its stored
// lender_id equals lenderID, and that user still holds the lender
// role. Only the original lender may update or delete a loan.
func (s *AuthzService) IsOriginalLender(ctx context.Context, loanID, lenderID uint) (bool, error) {
	return s.loanRepo.ExistsWithLender(ctx, loanID, lenderID)
}
