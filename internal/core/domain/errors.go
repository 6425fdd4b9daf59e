package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInternalServer     = errors.New("internal server error")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Loan errors. Party and ownership failures stay distinct from plain
// not-found even though the HTTP layer collapses them to 404.
var (
	ErrLoanNotFound       = errors.New("loan not found")
	ErrLenderNotValid     = errors.New("lender not found or not a lender")
	ErrBorrowerNotValid   = errors.New("borrower not found or not a borrower")
	ErrNotOriginalLender  = errors.New("lender is not the original lender of the loan")
	ErrNoLoans            = errors.New("no loans found")
	ErrPersistenceFailure = errors.New("storage write had no effect")
)
