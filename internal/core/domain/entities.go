package domain

import "time"

// Role represents user role in the system
type Role string

const (
	RoleLender   Role = "lender"
	RoleBorrower Role = "borrower"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleLender || r == RoleBorrower
}

// Loan status labels. The status column itself is free text; these are
// the values the seeder and the maturity sweep use.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// User represents a lender or borrower account. User management is
// handled outside this service; the core only reads users.
type User struct {
	ID       uint
	Email    string
	Password string // Hashed
	Role     Role
	Name     string
}

// UserSummary is the public view of a user returned on login.
type UserSummary struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

// Loan represents a single loan agreement in the domain layer.
type Loan struct {
	ID            uint
	LenderID      uint
	BorrowerID    uint
	LoanAmount    float64
	InterestRate  float64
	DurationYears float64
	StartDate     string // YYYY-MM-DD
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
