package handlers

import (
	"errors"
	"strconv"

	"peerloan/internal/adapters/persistence/models"
	"peerloan/internal/core/domain"
	"peerloan/internal/core/services"
	"peerloan/internal/core/validation"
	"peerloan/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LoanHandler handles loan CRUD endpoints
type LoanHandler struct {
	loanService *services.LoanService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanService *services.LoanService) *LoanHandler {
	return &LoanHandler{
		loanService: loanService,
	}
}

// Create handles loan creation
// @Summary Create loan
// @Description Create a new loan between a lender and a borrower
// @Tags Loans
// @Accept json
// @Produce json
// @Param body body validation.LoanPayload true "Loan data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /loans [post]
func (h *LoanHandler) Create(c *fiber.Ctx) error {
	var p validation.LoanPayload
	if err := c.BodyParser(&p); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	_, err := h.loanService.Create(c.Context(), &p)
	if err != nil {
		var vErr *validation.Error
		switch {
		case errors.As(err, &vErr):
			return response.BadRequest(c, vErr.Message)
		case errors.Is(err, domain.ErrLenderNotValid):
			return response.NotFound(c, "Invalid lender ID")
		case errors.Is(err, domain.ErrBorrowerNotValid):
			return response.NotFound(c, "Invalid borrower ID")
		case errors.Is(err, domain.ErrPersistenceFailure):
			return response.BadRequest(c, "Failed to create loan")
		default:
			return response.InternalServerError(c, "Failed to create loan")
		}
	}

	return response.Created(c, "Loan created successfully")
}

// Update handles loan updates
// @Summary Update loan
// @Description Update an existing loan. Only the original lender may update.
// @Tags Loans
// @Accept json
// @Produce json
// @Param id path int true "Loan ID"
// @Param body body validation.LoanPayload true "Loan data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /loans/{id} [put]
func (h *LoanHandler) Update(c *fiber.Ctx) error {
	id, err := parseLoanID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid or missing loan ID")
	}

	var p validation.LoanPayload
	if err := c.BodyParser(&p); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	err = h.loanService.Update(c.Context(), id, actorID(c, p.LenderID), &p)
	if err != nil {
		var vErr *validation.Error
		switch {
		case errors.As(err, &vErr):
			return response.BadRequest(c, vErr.Message)
		case errors.Is(err, domain.ErrLoanNotFound):
			return response.NotFound(c, "Loan not found")
		case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrNotOriginalLender):
			return response.NotFound(c, "Unauthorized: Only the original lender can update this loan")
		case errors.Is(err, domain.ErrBorrowerNotValid):
			return response.NotFound(c, "Invalid borrower ID")
		case errors.Is(err, domain.ErrPersistenceFailure):
			return response.NotFound(c, "Failed to update loan or loan not found")
		default:
			return response.InternalServerError(c, "Failed to update loan")
		}
	}

	return response.OK(c, "Loan updated successfully")
}

// Delete handles loan deletion
// @Summary Delete loan
// @Description Delete an existing loan. Only the original lender may delete.
// @Tags Loans
// @Accept json
// @Produce json
// @Param id path int true "Loan ID"
// @Param body body validation.DeletePayload true "Claimed lender"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /loans/{id} [delete]
func (h *LoanHandler) Delete(c *fiber.Ctx) error {
	id, err := parseLoanID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid or missing loan ID")
	}

	var p validation.DeletePayload
	if err := c.BodyParser(&p); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	err = h.loanService.Delete(c.Context(), id, actorID(c, p.LenderID), &p)
	if err != nil {
		var vErr *validation.Error
		switch {
		case errors.As(err, &vErr):
			return response.BadRequest(c, vErr.Message)
		case errors.Is(err, domain.ErrLoanNotFound):
			return response.NotFound(c, "Loan not found")
		case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrNotOriginalLender):
			return response.NotFound(c, "Unauthorized: Only the original lender can delete this loan")
		case errors.Is(err, domain.ErrPersistenceFailure):
			return response.InternalServerError(c, "Failed to delete loan")
		default:
			return response.InternalServerError(c, "Failed to delete loan")
		}
	}

	return response.OK(c, "Loan deleted successfully")
}

// GetByID handles single loan retrieval
// @Summary View loan
// @Description Get a single loan by ID
// @Tags Loans
// @Accept json
// @Produce json
// @Param id path int true "Loan ID"
// @Success 200 {object} models.LoanResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /loans/{id} [get]
func (h *LoanHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseLoanID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid or missing loan ID")
	}

	loan, err := h.loanService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrLoanNotFound) {
			return response.NotFound(c, "Loan not found")
		}
		return response.InternalServerError(c, "Failed to retrieve loan")
	}

	return c.JSON(loan.ToResponse())
}

// List handles loan listing
// @Summary List loans
// @Description Get all loans
// @Tags Loans
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /loans [get]
func (h *LoanHandler) List(c *fiber.Ctx) error {
	loans, err := h.loanService.List(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoLoans) {
			return response.NotFound(c, "No loans found")
		}
		return response.InternalServerError(c, "Failed to retrieve loans")
	}

	out := make([]*models.LoanResponse, 0, len(loans))
	for _, loan := range loans {
		out = append(out, loan.ToResponse())
	}

	return c.JSON(fiber.Map{
		"loans":   out,
		"message": "Loans retrieved successfully",
	})
}

// parseLoanID reads the :id path parameter.
func parseLoanID(c *fiber.Ctx) (uint, error) {
	raw := c.Params("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid loan id")
	}
	return uint(id), nil
}

// actorID resolves the identity a mutation runs as: the authenticated
// user when a valid token was presented, otherwise the payload's
// claimed lender. The service still checks the claim against the
// stored loan either way.
func actorID(c *fiber.Ctx, claimed *int64) uint {
	if id, ok := c.Locals("userID").(uint); ok && id > 0 {
		return id
	}
	if claimed != nil && *claimed > 0 {
		return uint(*claimed)
	}
	return 0
}
