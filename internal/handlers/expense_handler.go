package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/export"
	"expensetracker/internal/models"
	"expensetracker/internal/services"
	"expensetracker/internal/validator"
)

// ExpenseHandler handles expense-related requests
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ExpenseResponse wraps a single stored expense
type ExpenseResponse struct {
	Expense models.Expense `json:"expense"`
}

// ExpenseListResponse wraps the full expense list
type ExpenseListResponse struct {
	Expenses []models.Expense `json:"expenses"`
}

// CreateExpense records a new expense
// @Summary     Create an expense
// @Description Validate and store a new expense. The store assigns id and created_at.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       request body models.CreateExpenseRequest true "Expense details"
// @Success     201 {object} ExpenseResponse "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Storage failure"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, validator.FromBindError(err))
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Expense: *expense})
}

// GetExpenses lists every expense
// @Summary     List expenses
// @Description Return all expenses, most recent date first. Expenses sharing a date are ordered by id, newest first.
// @Tags        expenses
// @Produce     json
// @Success     200 {object} ExpenseListResponse "All expenses"
// @Failure     500 {object} ErrorResponse "Storage failure"
// @Router      /expenses [get]
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	expenses, err := h.expenseService.GetExpenses(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Expenses: expenses})
}

// ExportExpenses downloads every expense as a spreadsheet
// @Summary     Export expenses
// @Description Download all expenses and the per-category totals as an XLSX workbook.
// @Tags        expenses
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success     200 {file} file "Workbook"
// @Failure     500 {object} ErrorResponse "Storage failure"
// @Router      /expenses/export [get]
func (h *ExpenseHandler) ExportExpenses(c *gin.Context) {
	expenses, err := h.expenseService.GetExpenses(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, expenses); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.FileName+`"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}
