package repositories

import (
	"context"

	"peerloan/internal/adapters/persistence/models"
	"peerloan/internal/core/domain"

	"gorm.io/gorm"
)

// loanRepository implements LoanRepository on gorm
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) LoanRepository {
	return &loanRepository{db: db}
}

// Insert creates a new loan row
func (r *loanRepository) Insert(ctx context.Context, loan *models.Loan) error {
	return r.db.WithContext(ctx).Create(loan).Error
}

// GetByID gets a loan by ID
func (r *loanRepository) GetByID(ctx context.Context, id uint) (*models.Loan, error) {
	var loan models.Loan
	err := r.db.WithContext(ctx).First(&loan, id).Error
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// Exists checks whether a loan row exists
func (r *loanRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Loan{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Update applies the given columns to a loan and reports affected rows
func (r *loanRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Loan{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

// Delete hard deletes a loan
func (r *loanRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Loan{}, id).Error
}

// List lists all loans, oldest first
func (r *loanRepository) List(ctx context.Context) ([]*models.Loan, error) {
	var loans []*models.Loan
	err := r.db.WithContext(ctx).Order("id ASC").Find(&loans).Error
	return loans, err
}

// ListByStatus lists loans carrying the given status label
func (r *loanRepository) ListByStatus(ctx context.Context, status string) ([]*models.Loan, error) {
	var loans []*models.Loan
	err := r.db.WithContext(ctx).Where("status = ?", status).Order("id ASC").Find(&loans).Error
	return loans, err
}

// ExistsWithLender checks that the loan's stored lender_id equals
// lenderID and that the referenced user still has the lender role.
func (r *loanRepository) ExistsWithLender(ctx context.Context, loanID, lenderID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Loan{}).
		Joins("JOIN users ON users.id = loans.lender_id").
		Where("loans.id = ? AND loans.lender_id = ? AND users.role = ?", loanID, lenderID, string(domain.RoleLender)).
		Count(&count).Error
	return count > 0, err
}
