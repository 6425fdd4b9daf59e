package config

import (
	"log"

	"peerloan/internal/adapters/persistence/models"
	"peerloan/internal/core/domain"
	"peerloan/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db     *gorm.DB
	hasher password.Hasher
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, hasher: password.NewBcrypt()}
}

// Run seeds one lender and one borrower account for development.
// User management is out of scope for this service, so without a seed
// there is no way to exercise the API against a fresh database.
func (s *Seeder) Run() error {
	log.Println("Running database seeders...")

	if err := s.seedUsers(); err != nil {
		log.Printf("Warning: user seeder skipped: %v", err)
	}

	log.Println("Database seeding completed")
	return nil
}

func (s *Seeder) seedUsers() error {
	var count int64
	s.db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return nil // Users already present
	}

	hashed, err := s.hasher.Hash("123456")
	if err != nil {
		return err
	}

	users := []models.User{
		{Email: "john@x.com", Password: hashed, Role: string(domain.RoleLender), Name: "John Doe"},
		{Email: "jane@x.com", Password: hashed, Role: string(domain.RoleBorrower), Name: "Jane Roe"},
	}
	return s.db.Create(&users).Error
}
