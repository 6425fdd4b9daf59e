package handlers

import (
	"context"
	"errors"

	"peerloan/internal/adapters/persistence/models"
	"peerloan/internal/core/domain"

	"gorm.io/gorm"
)

// ----- test doubles (func-field repositories) -----

type mockLoanRepo struct {
	InsertFn           func(ctx context.Context, loan *models.Loan) error
	GetByIDFn          func(ctx context.Context, id uint) (*models.Loan, error)
	ExistsFn           func(ctx context.Context, id uint) (bool, error)
	UpdateFn           func(ctx context.Context, id uint, fields map[string]interface{}) (int64, error)
	DeleteFn           func(ctx context.Context, id uint) error
	ListFn             func(ctx context.Context) ([]*models.Loan, error)
	ListByStatusFn     func(ctx context.Context, status string) ([]*models.Loan, error)
	ExistsWithLenderFn func(ctx context.Context, loanID, lenderID uint) (bool, error)
}

func (m *mockLoanRepo) Insert(ctx context.Context, loan *models.Loan) error {
	if m.InsertFn != nil {
		return m.InsertFn(ctx, loan)
	}
	return nil
}

func (m *mockLoanRepo) GetByID(ctx context.Context, id uint) (*models.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockLoanRepo) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, id)
	}
	return false, nil
}

func (m *mockLoanRepo) Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, fields)
	}
	return 1, nil
}

func (m *mockLoanRepo) Delete(ctx context.Context, id uint) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *mockLoanRepo) List(ctx context.Context) ([]*models.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *mockLoanRepo) ListByStatus(ctx context.Context, status string) ([]*models.Loan, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status)
	}
	return nil, nil
}

func (m *mockLoanRepo) ExistsWithLender(ctx context.Context, loanID, lenderID uint) (bool, error) {
	if m.ExistsWithLenderFn != nil {
		return m.ExistsWithLenderFn(ctx, loanID, lenderID)
	}
	return false, nil
}

type mockUserRepo struct {
	GetByIDAndRoleFn    func(ctx context.Context, id uint, role domain.Role) (*models.User, error)
	GetByEmailAndRoleFn func(ctx context.Context, email string, role domain.Role) (*models.User, error)
}

func (m *mockUserRepo) GetByIDAndRole(ctx context.Context, id uint, role domain.Role) (*models.User, error) {
	if m.GetByIDAndRoleFn != nil {
		return m.GetByIDAndRoleFn(ctx, id, role)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmailAndRole(ctx context.Context, email string, role domain.Role) (*models.User, error) {
	if m.GetByEmailAndRoleFn != nil {
		return m.GetByEmailAndRoleFn(ctx, email, role)
	}
	return nil, gorm.ErrRecordNotFound
}

// usersByIDRole builds a user repo backed by a fixed id→role table.
func usersByIDRole(table map[uint]domain.Role) *mockUserRepo {
	return &mockUserRepo{
		GetByIDAndRoleFn: func(ctx context.Context, id uint, role domain.Role) (*models.User, error) {
			if r, ok := table[id]; ok && r == role {
				return &models.User{ID: id, Role: string(r)}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
}
