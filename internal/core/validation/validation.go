// Package validation implements the pure field checks run before any
// loan mutation. One violation is reported per call: presence first,
// in declared field order, then type/range/format.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"peerloan/internal/core/domain"

	"github.com/go-playground/validator/v10"
)

// Kind classifies a validation failure.
type Kind string

const (
	KindMissing Kind = "missing_field"
	KindType    Kind = "invalid_type"
	KindRange   Kind = "invalid_range"
	KindFormat  Kind = "invalid_format"
)

// Error is a single field violation.
type Error struct {
	Field   string
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func missing(field string) *Error {
	return &Error{Field: field, Kind: KindMissing, Message: fmt.Sprintf("Field '%s' is required", field)}
}

var dateFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validate backs the email grammar check only; field ordering rules
// here are stricter than struct-tag evaluation allows.
var validate = validator.New()

// LoanPayload is the decoded body of a create or update request.
// Pointer fields distinguish an absent key from a supplied zero, so
// interest_rate 0 is present and valid while a missing key is not.
type LoanPayload struct {
	LenderID      *int64   `json:"lender_id"`
	BorrowerID    *int64   `json:"borrower_id"`
	LoanAmount    *float64 `json:"loan_amount"`
	InterestRate  *float64 `json:"interest_rate"`
	DurationYears *float64 `json:"duration_years"`
	StartDate     *string  `json:"start_date"`
	Status        *string  `json:"status"`
}

// DeletePayload is the decoded body of a delete request.
type DeletePayload struct {
	LenderID *int64 `json:"lender_id"`
}

// LoginPayload is the decoded body of a login request.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ValidateCreate checks a create payload. All presence checks run
// before any range check so the caller always sees the first missing
// field in declared order.
func ValidateCreate(p *LoanPayload) error {
	if p.LenderID == nil {
		return missing("lender_id")
	}
	if p.BorrowerID == nil {
		return missing("borrower_id")
	}
	if p.LoanAmount == nil {
		return missing("loan_amount")
	}
	if p.InterestRate == nil {
		return missing("interest_rate")
	}
	if p.DurationYears == nil {
		return missing("duration_years")
	}
	if p.StartDate == nil || *p.StartDate == "" {
		return missing("start_date")
	}
	return checkLoanRanges(p)
}

// ValidateUpdate checks an update payload. The allowed field set is
// treated as required, status included.
func ValidateUpdate(p *LoanPayload) error {
	if p.LenderID == nil {
		return missing("lender_id")
	}
	if p.BorrowerID == nil {
		return missing("borrower_id")
	}
	if p.LoanAmount == nil {
		return missing("loan_amount")
	}
	if p.InterestRate == nil {
		return missing("interest_rate")
	}
	if p.DurationYears == nil {
		return missing("duration_years")
	}
	if p.StartDate == nil || *p.StartDate == "" {
		return missing("start_date")
	}
	if p.Status == nil || *p.Status == "" {
		return missing("status")
	}
	return checkLoanRanges(p)
}

// ValidateDelete checks a delete payload: the claimed lender only.
func ValidateDelete(p *DeletePayload) error {
	if p.LenderID == nil {
		return missing("lender_id")
	}
	if *p.LenderID <= 0 {
		return &Error{Field: "lender_id", Kind: KindRange, Message: "Invalid Lender ID"}
	}
	return nil
}

// ValidateLogin checks a login payload and returns the normalized
// role. Role matching is case-insensitive.
func ValidateLogin(p *LoginPayload) (domain.Role, error) {
	if p.Email == "" {
		return "", missing("email")
	}
	if p.Password == "" {
		return "", missing("password")
	}
	if p.Role == "" {
		return "", missing("role")
	}
	if err := validate.Var(p.Email, "email"); err != nil {
		return "", &Error{Field: "email", Kind: KindFormat, Message: "Invalid email format"}
	}
	role := domain.Role(strings.ToLower(p.Role))
	if !role.Valid() {
		return "", &Error{Field: "role", Kind: KindRange, Message: `Role must be either "lender" or "borrower"`}
	}
	return role, nil
}

func checkLoanRanges(p *LoanPayload) error {
	if *p.LenderID <= 0 {
		return &Error{Field: "lender_id", Kind: KindRange, Message: "Invalid Lender ID"}
	}
	if *p.BorrowerID <= 0 {
		return &Error{Field: "borrower_id", Kind: KindRange, Message: "Invalid Borrower ID"}
	}
	if *p.LoanAmount <= 0 {
		return &Error{Field: "loan_amount", Kind: KindRange, Message: "Invalid loan_amount"}
	}
	if *p.InterestRate < 0 || *p.InterestRate > 100 {
		return &Error{Field: "interest_rate", Kind: KindRange, Message: "Invalid interest_rate"}
	}
	if *p.DurationYears <= 0 {
		return &Error{Field: "duration_years", Kind: KindRange, Message: "Invalid duration_years"}
	}
	if !dateFormat.MatchString(*p.StartDate) {
		return &Error{Field: "start_date", Kind: KindFormat, Message: "Invalid date format for start_date. Use YYYY-MM-DD"}
	}
	return nil
}
