package models

import (
	"time"

	"peerloan/internal/core/domain"

	"gorm.io/gorm"
)

// User represents the users table. Rows are managed outside this
// service; the core only reads them for role and credential checks.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
	Role     string `gorm:"size:20;not null;index" json:"role"`
	Name     string `gorm:"size:100;not null" json:"name"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) ToDomain() *domain.User {
	return &domain.User{
		ID:       u.ID,
		Email:    u.Email,
		Password: u.Password,
		Role:     domain.Role(u.Role),
		Name:     u.Name,
	}
}

// ToSummary builds the public login view.
func (u *User) ToSummary() *domain.UserSummary {
	return &domain.UserSummary{
		Email: u.Email,
		Role:  u.Role,
		Name:  u.Name,
	}
}

// Loan represents the loans table. Deletes are hard deletes; there is
// no soft-delete column.
type Loan struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	LenderID      uint      `gorm:"not null;index" json:"lender_id"`
	BorrowerID    uint      `gorm:"not null;index" json:"borrower_id"`
	LoanAmount    float64   `gorm:"type:decimal(15,2);not null" json:"loan_amount"`
	InterestRate  float64   `gorm:"type:decimal(5,2);not null" json:"interest_rate"`
	DurationYears float64   `gorm:"type:decimal(5,2);not null" json:"duration_years"`
	StartDate     string    `gorm:"size:10;not null" json:"start_date"`
	Status        string    `gorm:"size:30;not null;default:'active'" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Lender   *User `gorm:"foreignKey:LenderID" json:"-"`
	Borrower *User `gorm:"foreignKey:BorrowerID" json:"-"`
}

func (Loan) TableName() string {
	return "loans"
}

// LoanResponse DTO: the column set the view and list endpoints expose.
type LoanResponse struct {
	LenderID      uint      `json:"lender_id"`
	BorrowerID    uint      `json:"borrower_id"`
	LoanAmount    float64   `json:"loan_amount"`
	InterestRate  float64   `json:"interest_rate"`
	DurationYears float64   `json:"duration_years"`
	StartDate     string    `json:"start_date"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func (l *Loan) ToResponse() *LoanResponse {
	return &LoanResponse{
		LenderID:      l.LenderID,
		BorrowerID:    l.BorrowerID,
		LoanAmount:    l.LoanAmount,
		InterestRate:  l.InterestRate,
		DurationYears: l.DurationYears,
		StartDate:     l.StartDate,
		Status:        l.Status,
		CreatedAt:     l.CreatedAt,
	}
}

// AutoMigrate creates the tables if they do not exist.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Loan{},
	)
}
