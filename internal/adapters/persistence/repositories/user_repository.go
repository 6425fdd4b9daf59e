package repositories

import (
	"context"

	"peerloan/internal/adapters/persistence/models"
	"peerloan/internal/core/domain"

	"gorm.io/gorm"
)

// userRepository implements UserRepository on gorm
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// GetByIDAndRole gets a user by ID holding the given role
func (r *userRepository) GetByIDAndRole(ctx context.Context, id uint, role domain.Role) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ? AND role = ?", id, string(role)).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmailAndRole gets a user by email holding the given role
func (r *userRepository) GetByEmailAndRole(ctx context.Context, email string, role domain.Role) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ? AND role = ?", email, string(role)).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
