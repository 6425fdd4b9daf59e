package repositories

import (
	"context"

	"peerloan/internal/adapters/persistence/models"
	"peerloan/internal/core/domain"
)

// LoanRepository is the storage gateway for the loans table. It holds
// no business logic; callers decide what an empty result means.
type LoanRepository interface {
	Insert(ctx context.Context, loan *models.Loan) error
	GetByID(ctx context.Context, id uint) (*models.Loan, error)
	Exists(ctx context.Context, id uint) (bool, error)
	// Update applies the given column set and reports affected rows.
	Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.Loan, error)
	ListByStatus(ctx context.Context, status string) ([]*models.Loan, error)
	// ExistsWithLender joins users to check that the loan's stored
	// lender matches lenderID and that user still holds the lender role.
	ExistsWithLender(ctx context.Context, loanID, lenderID uint) (bool, error)
}

// UserRepository is the storage gateway for the users table (read only
// from this core's perspective).
type UserRepository interface {
	GetByIDAndRole(ctx context.Context, id uint, role domain.Role) (*models.User, error)
	GetByEmailAndRole(ctx context.Context, email string, role domain.Role) (*models.User, error)
}
