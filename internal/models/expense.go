package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies an expense. The set of categories is closed.
type ExpenseCategory string

const (
	CategoryFood          ExpenseCategory = "Food"
	CategoryTransport     ExpenseCategory = "Transport"
	CategoryUtilities     ExpenseCategory = "Utilities"
	CategoryEntertainment ExpenseCategory = "Entertainment"
	CategoryShopping      ExpenseCategory = "Shopping"
)

// Categories returns every valid category in display order.
func Categories() []ExpenseCategory {
	return []ExpenseCategory{
		CategoryFood,
		CategoryTransport,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryShopping,
	}
}

// Valid reports whether c is one of the known categories. Matching is case-sensitive.
func (c ExpenseCategory) Valid() bool {
	switch c {
	case CategoryFood, CategoryTransport, CategoryUtilities, CategoryEntertainment, CategoryShopping:
		return true
	}
	return false
}

// AmountScale is the number of fractional digits kept for amounts.
const AmountScale = 2

// CreateExpenseRequest is the input for recording a new expense.
type CreateExpenseRequest struct {
	Amount      float64         `json:"amount" binding:"gt=0,money,lt=100000000"`
	Category    ExpenseCategory `json:"category" binding:"required,expense_category"`
	Date        Date            `json:"date" binding:"required" swaggertype:"string" example:"2024-01-15"`
	Description *string         `json:"description"`
}

// Expense is a stored expense as returned to callers.
type Expense struct {
	ID          uint            `json:"id" binding:"required,gt=0"`
	Amount      float64         `json:"amount" binding:"gt=0"`
	Category    ExpenseCategory `json:"category" binding:"expense_category"`
	Date        Date            `json:"date" binding:"required" swaggertype:"string" example:"2024-01-15"`
	Description *string         `json:"description"`
	CreatedAt   time.Time       `json:"created_at" binding:"required"`
}

// ExpenseRecord is the storage row backing an Expense.
type ExpenseRecord struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null;check:chk_expenses_amount,amount > 0"`
	Category    ExpenseCategory `gorm:"type:varchar(20);not null;check:chk_expenses_category,category IN ('Food','Transport','Utilities','Entertainment','Shopping')"`
	Date        Date            `gorm:"type:date;not null"`
	Description *string         `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName pins the table name used by the migrations.
func (ExpenseRecord) TableName() string {
	return "expenses"
}

// NewExpenseRecord converts a request into its storage form. The amount is
// held as a fixed-scale decimal and the date as a pure calendar date.
func NewExpenseRecord(req CreateExpenseRequest) ExpenseRecord {
	var description *string
	if req.Description != nil {
		d := *req.Description
		description = &d
	}
	return ExpenseRecord{
		Amount:      decimal.NewFromFloat(req.Amount).Round(AmountScale),
		Category:    req.Category,
		Date:        DateOf(req.Date.Time),
		Description: description,
	}
}

// ToExpense converts a stored row back into the boundary representation.
func (r ExpenseRecord) ToExpense() Expense {
	return Expense{
		ID:          r.ID,
		Amount:      r.Amount.Round(AmountScale).InexactFloat64(),
		Category:    r.Category,
		Date:        r.Date,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}
